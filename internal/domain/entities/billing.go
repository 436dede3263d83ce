package entities

import "math"

// Round2 rounds a monetary or hour value to 2 decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LaborTotal is elapsedHours x rate at full precision.
func LaborTotal(elapsedHours, rate float64) float64 {
	return elapsedHours * rate
}

// CalculateTotal is the grand total of a work order: parts plus labor, rounded to cents.
// Inputs are used at full precision; only the result is rounded.
func CalculateTotal(lines []SelectedPartLine, elapsedHours, rate float64) float64 {
	parts := 0.0
	for _, l := range lines {
		parts += l.LineTotal()
	}
	return Round2(parts + LaborTotal(elapsedHours, rate))
}

// InvoiceLine is one row of the invoice summary.
type InvoiceLine struct {
	PartID    int     `json:"part_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Invoice is the billing summary shown to the customer. Every figure is rounded for display
// and derived from the same unrounded state, so Total may differ from the sum of the rounded
// parts by a cent.
type Invoice struct {
	Lines         []InvoiceLine `json:"lines"`
	PartsSubtotal float64       `json:"parts_subtotal"`
	LaborHours    float64       `json:"labor_hours"`
	LaborRate     float64       `json:"labor_rate"`
	LaborTotal    float64       `json:"labor_total"`
	Total         float64       `json:"total"`
}

func BuildInvoice(lines []SelectedPartLine, elapsedHours, rate float64) Invoice {
	inv := Invoice{
		Lines:      make([]InvoiceLine, 0, len(lines)),
		LaborHours: Round2(elapsedHours),
		LaborRate:  rate,
		LaborTotal: Round2(LaborTotal(elapsedHours, rate)),
		Total:      CalculateTotal(lines, elapsedHours, rate),
	}
	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.LineTotal()
		inv.Lines = append(inv.Lines, InvoiceLine{
			PartID:    l.ID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: Round2(l.LineTotal()),
		})
	}
	inv.PartsSubtotal = Round2(subtotal)
	return inv
}
