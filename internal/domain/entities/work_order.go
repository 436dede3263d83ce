package entities

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidFieldValue = errors.New("invalid field value")

// DateLayout is the value format of the native date inputs.
const DateLayout = "2006-01-02"

// Option is one entry of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var (
	ServiceTypeOptions = []Option{
		{Value: "maintenance", Label: "Maintenance"},
		{Value: "repair", Label: "Repair"},
		{Value: "warranty", Label: "Warranty Check"},
	}
	StatusOptions = []Option{
		{Value: "scheduled", Label: "Scheduled"},
		{Value: "inProgress", Label: "In Progress"},
		{Value: "awaitingParts", Label: "Awaiting Parts"},
		{Value: "completed", Label: "Completed"},
	}
	PriorityOptions = []Option{
		{Value: "low", Label: "Low"},
		{Value: "medium", Label: "Medium"},
		{Value: "high", Label: "High"},
		{Value: "critical", Label: "Critical"},
	}
	UrgencyOptions = []Option{
		{Value: "normal", Label: "Normal"},
		{Value: "urgent", Label: "Urgent"},
	}
	ContactMethodOptions = []Option{
		{Value: "phone", Label: "Phone"},
		{Value: "sms", Label: "SMS"},
		{Value: "email", Label: "Email"},
	}
	MachineModelOptions = []Option{
		{Value: "srx", Label: "SRX"},
		{Value: "e2Black", Label: "E2 Black (E2 Type 12)"},
		{Value: "e2Gold", Label: "E2 Gold (E2 Type 12)"},
		{Value: "e2Series", Label: "E-2 (e SERIES)"},
	}
	MachineConditionOptions = []Option{
		{Value: "good", Label: "Good"},
		{Value: "fair", Label: "Fair"},
		{Value: "poor", Label: "Poor"},
	}
	SeverityOptions      = PriorityOptions
	PaymentStatusOptions = []Option{
		{Value: "unpaid", Label: "Unpaid"},
		{Value: "paid", Label: "Paid"},
		{Value: "partiallyPaid", Label: "Partially Paid"},
	}
)

// OptionLabel returns the label of value in opts, or value itself when it is not listed.
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func checkChoice(field, value string, opts []Option) error {
	if value == "" {
		return nil
	}
	for _, o := range opts {
		if o.Value == value {
			return nil
		}
	}
	return fmt.Errorf("%w: %s=%q", ErrInvalidFieldValue, field, value)
}

func checkDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("%w: %s=%q", ErrInvalidFieldValue, field, value)
	}
	return nil
}

// BasicInfo is the "Basic Info" tab.
type BasicInfo struct {
	ServiceType  string `json:"service_type"`
	CreationDate string `json:"creation_date"`
	DueDate      string `json:"due_date"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	Urgency      string `json:"urgency"`
}

func (b BasicInfo) Validate() error {
	return errors.Join(
		checkChoice("service_type", b.ServiceType, ServiceTypeOptions),
		checkDate("creation_date", b.CreationDate),
		checkDate("due_date", b.DueDate),
		checkChoice("status", b.Status, StatusOptions),
		checkChoice("priority", b.Priority, PriorityOptions),
		checkChoice("urgency", b.Urgency, UrgencyOptions),
	)
}

// CustomerInfo is the "Customer" tab.
type CustomerInfo struct {
	Name             string `json:"name"`
	CustomerID       string `json:"customer_id"`
	ContactNumber    string `json:"contact_number"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	PreferredContact string `json:"preferred_contact"`
}

func (c CustomerInfo) Validate() error {
	return checkChoice("preferred_contact", c.PreferredContact, ContactMethodOptions)
}

// MachineInfo is the "Rainbow" tab, without the attachment checkboxes.
type MachineInfo struct {
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	PurchaseDate string `json:"purchase_date"`
	Condition    string `json:"condition"`
}

func (m MachineInfo) Validate() error {
	return errors.Join(
		checkChoice("model", m.Model, MachineModelOptions),
		checkDate("purchase_date", m.PurchaseDate),
		checkChoice("condition", m.Condition, MachineConditionOptions),
	)
}

// ServiceInfo is the diagnostic part of the "Service" tab.
type ServiceInfo struct {
	ReportedIssue      string `json:"reported_issue"`
	SymptomsObserved   string `json:"symptoms_observed"`
	Severity           string `json:"severity"`
	AssignedTechnician string `json:"assigned_technician"`
	TechnicianNotes    string `json:"technician_notes"`
}

func (s ServiceInfo) Validate() error {
	return checkChoice("severity", s.Severity, SeverityOptions)
}

// BillingInfo holds the free fields of the "Billing" tab.
type BillingInfo struct {
	InvoiceID        string `json:"invoice_id"`
	PaymentStatus    string `json:"payment_status"`
	CustomerFeedback string `json:"customer_feedback"`
}

func (b BillingInfo) Validate() error {
	return checkChoice("payment_status", b.PaymentStatus, PaymentStatusOptions)
}

// WorkOrder is the whole state of one open work-order form. It lives in memory only.
type WorkOrder struct {
	ID          string         `json:"id"`
	Number      string         `json:"number"`
	BasicInfo   BasicInfo      `json:"basic_info"`
	Customer    CustomerInfo   `json:"customer"`
	Machine     MachineInfo    `json:"machine"`
	Service     ServiceInfo    `json:"service"`
	Billing     BillingInfo    `json:"billing"`
	Parts       PartsSelection `json:"parts"`
	Labor       LaborSession   `json:"labor"`
	Rating      Rating         `json:"rating"`
	Attachments Attachments    `json:"attachments"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func NewWorkOrder(id, number string, now time.Time) WorkOrder {
	return WorkOrder{
		ID:        id,
		Number:    number,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Total is the grand total for the given labor rate.
func (w WorkOrder) Total(rate float64) float64 {
	return CalculateTotal(w.Parts.Lines, w.Labor.ElapsedHours, rate)
}

// Invoice is the billing-tab summary for the given labor rate.
func (w WorkOrder) Invoice(rate float64) Invoice {
	return BuildInvoice(w.Parts.Lines, w.Labor.ElapsedHours, rate)
}

// Clone returns a deep copy, safe to hand out while the original keeps changing.
func (w WorkOrder) Clone() WorkOrder {
	w.Parts = w.Parts.Clone()
	w.Labor = w.Labor.Clone()
	return w
}

// FormatNumber renders the display number of a work order, e.g. WO-2024-001.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("WO-%d-%03d", year, seq)
}
