package handlers

import (
	"context"
	"net/http"

	"rainbow_workshop/internal/adapter/http/dto/request"
	"rainbow_workshop/internal/adapter/http/dto/response"
	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:generate mockgen -source=../../../usecase/work_order_usecase.go -destination=mocks/mock_work_order_usecase.go -package=mocks

// WorkOrderHandler serves the JSON API of the work-order form.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
	logger  *zap.Logger
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase, logger *zap.Logger) *WorkOrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderHandler{usecase: uc, logger: logger}
}

// ListParts returns the parts catalog.
//
// @Summary  List catalog parts
// @Tags     parts
// @Produce  json
// @Success  200 {array} response.PartResponse
// @Router   /parts [get]
func (h *WorkOrderHandler) ListParts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromParts(h.usecase.Catalog()))
}

// CreateWorkOrder opens a new, empty work-order form.
//
// @Summary  Open a work order
// @Tags     work-orders
// @Produce  json
// @Success  201 {object} response.WorkOrderResponse
// @Router   /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	wo, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(wo, h.usecase.LaborRate()))
}

// GetWorkOrder returns the full state of a work order including derived totals.
//
// @Summary  Get a work order
// @Tags     work-orders
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /work-orders/{id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, wo)
}

// DeleteWorkOrder discards a work order and stops its timer.
//
// @Summary  Discard a work order
// @Tags     work-orders
// @Param    id  path  string  true  "Work order id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /work-orders/{id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateBasicInfo replaces the basic-info section.
//
// @Summary  Update basic info
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                    true  "Work order id"
// @Param    payload  body  request.BasicInfoRequest  true  "Basic info"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/basic-info [put]
func (h *WorkOrderHandler) UpdateBasicInfo(c *gin.Context) {
	var payload request.BasicInfoRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateBasicInfo(ctx, id, payload.ToEntity())
	})
}

// @Summary  Update customer
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                   true  "Work order id"
// @Param    payload  body  request.CustomerRequest  true  "Customer"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/customer [put]
func (h *WorkOrderHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateCustomer(ctx, id, payload.ToEntity())
	})
}

// @Summary  Update machine
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                  true  "Work order id"
// @Param    payload  body  request.MachineRequest  true  "Machine"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/machine [put]
func (h *WorkOrderHandler) UpdateMachine(c *gin.Context) {
	var payload request.MachineRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateMachine(ctx, id, payload.ToEntity())
	})
}

// @Summary  Update service
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                  true  "Work order id"
// @Param    payload  body  request.ServiceRequest  true  "Service"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/service [put]
func (h *WorkOrderHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateService(ctx, id, payload.ToEntity())
	})
}

// @Summary  Update billing
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                  true  "Work order id"
// @Param    payload  body  request.BillingRequest  true  "Billing"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/billing [put]
func (h *WorkOrderHandler) UpdateBilling(c *gin.Context) {
	var payload request.BillingRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateBilling(ctx, id, payload.ToEntity())
	})
}

// AddPart adds one unit of a catalog part. Unknown part ids leave the work order unchanged.
//
// @Summary  Add a part
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    id       path  string                  true  "Work order id"
// @Param    payload  body  request.AddPartRequest  true  "Part"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/parts [post]
func (h *WorkOrderHandler) AddPart(c *gin.Context) {
	var payload request.AddPartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartID.HTTPStatus, errInvalidPartID.ToHTTPError())
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.AddPart(ctx, id, *payload.PartID)
	})
}

// @Summary  Add the first catalog part
// @Tags     parts
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/parts/quick-add [post]
func (h *WorkOrderHandler) QuickAddPart(c *gin.Context) {
	h.respond(c, h.usecase.QuickAddPart)
}

// UpdatePartQuantity sets a line quantity verbatim. Non-integer quantities are rejected.
//
// @Summary  Update a part quantity
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    id       path  string                         true  "Work order id"
// @Param    part_id  path  int                            true  "Part id"
// @Param    payload  body  request.UpdateQuantityRequest  true  "Quantity"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /work-orders/{id}/parts/{part_id} [patch]
func (h *WorkOrderHandler) UpdatePartQuantity(c *gin.Context) {
	partID, err := request.ParsePartID(c.Param("part_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	var payload request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuantity.HTTPStatus, errInvalidQuantity.ToHTTPError())
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdatePartQuantity(ctx, id, partID, *payload.Quantity)
	})
}

// @Summary  Remove a part line
// @Tags     parts
// @Produce  json
// @Param    id       path  string  true  "Work order id"
// @Param    part_id  path  int     true  "Part id"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/parts/{part_id} [delete]
func (h *WorkOrderHandler) RemovePart(c *gin.Context) {
	partID, err := request.ParsePartID(c.Param("part_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.RemovePart(ctx, id, partID)
	})
}

// @Summary  Start the labor timer
// @Tags     timer
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/timer/start [post]
func (h *WorkOrderHandler) StartTimer(c *gin.Context) {
	h.respond(c, h.usecase.StartTimer)
}

// @Summary  Stop the labor timer
// @Tags     timer
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/timer/stop [post]
func (h *WorkOrderHandler) StopTimer(c *gin.Context) {
	h.respond(c, h.usecase.StopTimer)
}

// @Summary  Start or stop the labor timer
// @Tags     timer
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/timer/toggle [post]
func (h *WorkOrderHandler) ToggleTimer(c *gin.Context) {
	h.respond(c, h.usecase.ToggleTimer)
}

// @Summary  Set the customer rating
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                 true  "Work order id"
// @Param    payload  body  request.RatingRequest  true  "Rating 0-5"
// @Success  200 {object} response.WorkOrderResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /work-orders/{id}/rating [put]
func (h *WorkOrderHandler) SetRating(c *gin.Context) {
	var payload request.RatingRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.SetRating(ctx, id, *payload.Rating)
	})
}

// @Summary  Check or uncheck an attachment
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path  string                     true  "Work order id"
// @Param    kind     path  string                     true  "power_nozzle, aqua_mate or mini_jet"
// @Param    payload  body  request.AttachmentRequest  true  "Attachment"
// @Success  200 {object} response.WorkOrderResponse
// @Router   /work-orders/{id}/attachments/{kind} [put]
func (h *WorkOrderHandler) SetAttachment(c *gin.Context) {
	var payload request.AttachmentRequest
	if !bindJSON(c, &payload) {
		return
	}
	kind := entities.AttachmentKind(c.Param("kind"))
	h.respond(c, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.SetAttachment(ctx, id, kind, payload.Checked, payload.SerialNumber)
	})
}

// @Summary  Get the invoice summary
// @Tags     billing
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.InvoiceResponse
// @Router   /work-orders/{id}/invoice [get]
func (h *WorkOrderHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.Invoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// @Summary  Get the work order summary
// @Tags     work-orders
// @Produce  json
// @Param    id  path  string  true  "Work order id"
// @Success  200 {object} response.SummaryResponse
// @Router   /work-orders/{id}/summary [get]
func (h *WorkOrderHandler) GetSummary(c *gin.Context) {
	s, err := h.usecase.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSummary(s))
}

// Action returns a handler for a placeholder button. It always answers 501 for existing
// work orders.
func (h *WorkOrderHandler) Action(action usecase.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.usecase.RunAction(c.Request.Context(), c.Param("id"), action); err != nil {
			h.fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *WorkOrderHandler) respond(c *gin.Context, op func(ctx context.Context, id string) (entities.WorkOrder, error)) {
	wo, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.ok(c, wo)
}

func (h *WorkOrderHandler) ok(c *gin.Context, wo entities.WorkOrder) {
	c.JSON(http.StatusOK, response.FromWorkOrder(wo, h.usecase.LaborRate()))
}

func (h *WorkOrderHandler) fail(c *gin.Context, err error) {
	appErr := mapWorkOrderError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError && appErr.HTTPStatus != http.StatusNotImplemented {
		h.logger.Error("work order request failed",
			zap.String("work_order_id", c.Param("id")),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return false
	}
	return true
}
