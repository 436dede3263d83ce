package entities

// Summary is the customer-facing digest of a work order.
type Summary struct {
	WorkOrderID        string        `json:"work_order_id"`
	Number             string        `json:"number"`
	Status             string        `json:"status"`
	CustomerName       string        `json:"customer_name"`
	CustomerContact    string        `json:"customer_contact"`
	CustomerAddress    string        `json:"customer_address"`
	MachineModel       string        `json:"machine_model"`
	MachineSerial      string        `json:"machine_serial"`
	Attachments        []string      `json:"attachments"`
	ReportedIssue      string        `json:"reported_issue"`
	ServicesPerformed  string        `json:"services_performed"`
	AssignedTechnician string        `json:"assigned_technician"`
	PartsUsed          []InvoiceLine `json:"parts_used"`
	LaborHours         float64       `json:"labor_hours"`
	TotalCost          float64       `json:"total_cost"`
	Rating             int           `json:"rating"`
}

// BuildSummary collects the figures of the summary tab. Select values are rendered with
// their labels.
func BuildSummary(wo WorkOrder, rate float64) Summary {
	inv := wo.Invoice(rate)

	contact := wo.Customer.ContactNumber
	if wo.Customer.PreferredContact == "email" && wo.Customer.Email != "" {
		contact = wo.Customer.Email
	}

	attachments := make([]string, 0, 3)
	for _, kind := range AttachmentKinds() {
		a, _ := wo.Attachments.Get(kind)
		if !a.Checked {
			continue
		}
		label := kind.Label()
		if a.SerialNumber != "" {
			label += " (" + a.SerialNumber + ")"
		}
		attachments = append(attachments, label)
	}

	return Summary{
		WorkOrderID:        wo.ID,
		Number:             wo.Number,
		Status:             OptionLabel(StatusOptions, wo.BasicInfo.Status),
		CustomerName:       wo.Customer.Name,
		CustomerContact:    contact,
		CustomerAddress:    wo.Customer.Address,
		MachineModel:       OptionLabel(MachineModelOptions, wo.Machine.Model),
		MachineSerial:      wo.Machine.SerialNumber,
		Attachments:        attachments,
		ReportedIssue:      wo.Service.ReportedIssue,
		ServicesPerformed:  wo.Service.TechnicianNotes,
		AssignedTechnician: wo.Service.AssignedTechnician,
		PartsUsed:          inv.Lines,
		LaborHours:         inv.LaborHours,
		TotalCost:          inv.Total,
		Rating:             int(wo.Rating),
	}
}
