package request

import (
	"errors"
	"strconv"
	"strings"

	"rainbow_workshop/internal/domain/entities"
)

var (
	ErrInvalidPartID   = errors.New("invalid part id")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// Section payloads carry both json and form tags so the JSON API and the HTML form bind the
// same structs.

type BasicInfoRequest struct {
	ServiceType  string `json:"service_type" form:"service_type"`
	CreationDate string `json:"creation_date" form:"creation_date"`
	DueDate      string `json:"due_date" form:"due_date"`
	Status       string `json:"status" form:"status"`
	Priority     string `json:"priority" form:"priority"`
	Urgency      string `json:"urgency" form:"urgency"`
}

func (r BasicInfoRequest) ToEntity() entities.BasicInfo {
	return entities.BasicInfo{
		ServiceType:  strings.TrimSpace(r.ServiceType),
		CreationDate: strings.TrimSpace(r.CreationDate),
		DueDate:      strings.TrimSpace(r.DueDate),
		Status:       strings.TrimSpace(r.Status),
		Priority:     strings.TrimSpace(r.Priority),
		Urgency:      strings.TrimSpace(r.Urgency),
	}
}

type CustomerRequest struct {
	Name             string `json:"name" form:"name"`
	CustomerID       string `json:"customer_id" form:"customer_id"`
	ContactNumber    string `json:"contact_number" form:"contact_number"`
	Email            string `json:"email" form:"email"`
	Address          string `json:"address" form:"address"`
	PreferredContact string `json:"preferred_contact" form:"preferred_contact"`
}

func (r CustomerRequest) ToEntity() entities.CustomerInfo {
	return entities.CustomerInfo{
		Name:             r.Name,
		CustomerID:       r.CustomerID,
		ContactNumber:    r.ContactNumber,
		Email:            r.Email,
		Address:          r.Address,
		PreferredContact: strings.TrimSpace(r.PreferredContact),
	}
}

type MachineRequest struct {
	Model        string `json:"model" form:"model"`
	SerialNumber string `json:"serial_number" form:"serial_number"`
	PurchaseDate string `json:"purchase_date" form:"purchase_date"`
	Condition    string `json:"condition" form:"condition"`
}

func (r MachineRequest) ToEntity() entities.MachineInfo {
	return entities.MachineInfo{
		Model:        strings.TrimSpace(r.Model),
		SerialNumber: r.SerialNumber,
		PurchaseDate: strings.TrimSpace(r.PurchaseDate),
		Condition:    strings.TrimSpace(r.Condition),
	}
}

type ServiceRequest struct {
	ReportedIssue      string `json:"reported_issue" form:"reported_issue"`
	SymptomsObserved   string `json:"symptoms_observed" form:"symptoms_observed"`
	Severity           string `json:"severity" form:"severity"`
	AssignedTechnician string `json:"assigned_technician" form:"assigned_technician"`
	TechnicianNotes    string `json:"technician_notes" form:"technician_notes"`
}

func (r ServiceRequest) ToEntity() entities.ServiceInfo {
	return entities.ServiceInfo{
		ReportedIssue:      r.ReportedIssue,
		SymptomsObserved:   r.SymptomsObserved,
		Severity:           strings.TrimSpace(r.Severity),
		AssignedTechnician: r.AssignedTechnician,
		TechnicianNotes:    r.TechnicianNotes,
	}
}

type BillingRequest struct {
	InvoiceID        string `json:"invoice_id" form:"invoice_id"`
	PaymentStatus    string `json:"payment_status" form:"payment_status"`
	CustomerFeedback string `json:"customer_feedback" form:"customer_feedback"`
}

func (r BillingRequest) ToEntity() entities.BillingInfo {
	return entities.BillingInfo{
		InvoiceID:        r.InvoiceID,
		PaymentStatus:    strings.TrimSpace(r.PaymentStatus),
		CustomerFeedback: r.CustomerFeedback,
	}
}

// AddPartRequest selects a catalog part. Binding fails for non-integer ids.
type AddPartRequest struct {
	PartID *int `json:"part_id" form:"part_id" binding:"required"`
}

// UpdateQuantityRequest sets a line quantity. Any integer is accepted, zero and negatives
// included; binding fails for anything that is not an integer.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required"`
}

type RatingRequest struct {
	Rating *int `json:"rating" form:"rating" binding:"required"`
}

type AttachmentRequest struct {
	Checked      bool   `json:"checked" form:"checked"`
	SerialNumber string `json:"serial_number" form:"serial_number"`
}

// ParsePartID reads the :part_id path parameter.
func ParsePartID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidPartID
	}
	return id, nil
}

// ParseQuantity reads a quantity typed into the form. Only integers are accepted.
func ParseQuantity(raw string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return q, nil
}
