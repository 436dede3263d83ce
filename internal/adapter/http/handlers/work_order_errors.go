package handlers

import (
	"errors"
	"net/http"

	"rainbow_workshop/internal/adapter/http/dto/request"
	"rainbow_workshop/internal/usecase"
	"rainbow_workshop/pkg"
)

var (
	errInvalidRequest  = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidQuantity = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Quantity must be an integer", http.StatusBadRequest)
	errInvalidPartID   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Part id must be an integer", http.StatusBadRequest)
)

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidWorkOrderID):
		return pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_ID", "Invalid work order id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRating):
		return pkg.NewDomainError("INVALID_REQUEST", "Rating must be between 0 and 5", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAttachment):
		return pkg.NewDomainError("INVALID_REQUEST", "Unknown attachment", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPartID), errors.Is(err, request.ErrInvalidPartID):
		return errInvalidPartID
	case errors.Is(err, request.ErrInvalidQuantity):
		return errInvalidQuantity
	case errors.Is(err, usecase.ErrInvalidFieldValue):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActionNotImplemented):
		return pkg.NewDomainError("NOT_IMPLEMENTED", "This action is not available yet", err, http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
