package response

import (
	"time"

	"rainbow_workshop/internal/domain/entities"
)

type PartResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

func FromParts(parts []entities.Part) []PartResponse {
	out := make([]PartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, PartResponse{ID: p.ID, Name: p.Name, UnitPrice: p.UnitPrice})
	}
	return out
}

type PartLineResponse struct {
	PartID    int     `json:"part_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type LaborResponse struct {
	Running      bool       `json:"running"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	ElapsedHours float64    `json:"elapsed_hours"`
	Rate         float64    `json:"rate"`
	LaborTotal   float64    `json:"labor_total"`
}

type WorkOrderResponse struct {
	ID            string                `json:"id"`
	Number        string                `json:"number"`
	BasicInfo     entities.BasicInfo    `json:"basic_info"`
	Customer      entities.CustomerInfo `json:"customer"`
	Machine       entities.MachineInfo  `json:"machine"`
	Service       entities.ServiceInfo  `json:"service"`
	Billing       entities.BillingInfo  `json:"billing"`
	Parts         []PartLineResponse    `json:"parts"`
	Labor         LaborResponse         `json:"labor"`
	Rating        int                   `json:"rating"`
	Attachments   entities.Attachments  `json:"attachments"`
	PartsSubtotal float64               `json:"parts_subtotal"`
	Total         float64               `json:"total"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// FromWorkOrder renders a work order with its derived totals for the given labor rate.
func FromWorkOrder(wo entities.WorkOrder, rate float64) WorkOrderResponse {
	inv := wo.Invoice(rate)
	lines := make([]PartLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, PartLineResponse{
			PartID:    l.PartID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	return WorkOrderResponse{
		ID:        wo.ID,
		Number:    wo.Number,
		BasicInfo: wo.BasicInfo,
		Customer:  wo.Customer,
		Machine:   wo.Machine,
		Service:   wo.Service,
		Billing:   wo.Billing,
		Parts:     lines,
		Labor: LaborResponse{
			Running:      wo.Labor.Running,
			StartedAt:    wo.Labor.StartedAt,
			ElapsedHours: inv.LaborHours,
			Rate:         inv.LaborRate,
			LaborTotal:   inv.LaborTotal,
		},
		Rating:        int(wo.Rating),
		Attachments:   wo.Attachments,
		PartsSubtotal: inv.PartsSubtotal,
		Total:         inv.Total,
		CreatedAt:     wo.CreatedAt,
		UpdatedAt:     wo.UpdatedAt,
	}
}

type InvoiceResponse struct {
	Lines         []PartLineResponse `json:"lines"`
	PartsSubtotal float64            `json:"parts_subtotal"`
	LaborHours    float64            `json:"labor_hours"`
	LaborRate     float64            `json:"labor_rate"`
	LaborTotal    float64            `json:"labor_total"`
	Total         float64            `json:"total"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]PartLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, PartLineResponse{
			PartID:    l.PartID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	return InvoiceResponse{
		Lines:         lines,
		PartsSubtotal: inv.PartsSubtotal,
		LaborHours:    inv.LaborHours,
		LaborRate:     inv.LaborRate,
		LaborTotal:    inv.LaborTotal,
		Total:         inv.Total,
	}
}

type SummaryResponse struct {
	WorkOrderID        string             `json:"work_order_id"`
	Number             string             `json:"number"`
	Status             string             `json:"status"`
	CustomerName       string             `json:"customer_name"`
	CustomerContact    string             `json:"customer_contact"`
	CustomerAddress    string             `json:"customer_address"`
	MachineModel       string             `json:"machine_model"`
	MachineSerial      string             `json:"machine_serial"`
	Attachments        []string           `json:"attachments"`
	ReportedIssue      string             `json:"reported_issue"`
	ServicesPerformed  string             `json:"services_performed"`
	AssignedTechnician string             `json:"assigned_technician"`
	PartsUsed          []PartLineResponse `json:"parts_used"`
	LaborHours         float64            `json:"labor_hours"`
	TotalCost          float64            `json:"total_cost"`
	Rating             int                `json:"rating"`
}

func FromSummary(s entities.Summary) SummaryResponse {
	parts := FromInvoice(entities.Invoice{Lines: s.PartsUsed}).Lines
	return SummaryResponse{
		WorkOrderID:        s.WorkOrderID,
		Number:             s.Number,
		Status:             s.Status,
		CustomerName:       s.CustomerName,
		CustomerContact:    s.CustomerContact,
		CustomerAddress:    s.CustomerAddress,
		MachineModel:       s.MachineModel,
		MachineSerial:      s.MachineSerial,
		Attachments:        s.Attachments,
		ReportedIssue:      s.ReportedIssue,
		ServicesPerformed:  s.ServicesPerformed,
		AssignedTechnician: s.AssignedTechnician,
		PartsUsed:          parts,
		LaborHours:         s.LaborHours,
		TotalCost:          s.TotalCost,
		Rating:             s.Rating,
	}
}
