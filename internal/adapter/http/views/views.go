// Package views holds the server-rendered work-order form.
package views

import (
	"embed"
	"fmt"
	"html/template"

	"rainbow_workshop/internal/domain/entities"
)

//go:embed templates/*.html
var templatesFS embed.FS

// FormTemplate is the name of the work-order page template.
const FormTemplate = "work_order_page"

// Tab is one tab of the work-order form.
type Tab struct {
	ID    string
	Label string
}

var tabs = []Tab{
	{ID: "basic", Label: "Basic Info"},
	{ID: "customer", Label: "Customer"},
	{ID: "machine", Label: "Rainbow"},
	{ID: "service", Label: "Service"},
	{ID: "billing", Label: "Billing"},
	{ID: "summary", Label: "Summary"},
}

// Tabs lists the form tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// ResolveTab returns id when it names a tab, otherwise the first tab.
func ResolveTab(id string) string {
	for _, t := range tabs {
		if t.ID == id {
			return id
		}
	}
	return tabs[0].ID
}

// AttachmentView is one accessory checkbox and its serial field.
type AttachmentView struct {
	Kind   entities.AttachmentKind
	Label  string
	Status entities.Attachment
}

// Options groups the select choices of every form section.
type Options struct {
	ServiceType      []entities.Option
	Status           []entities.Option
	Priority         []entities.Option
	Urgency          []entities.Option
	ContactMethod    []entities.Option
	MachineModel     []entities.Option
	MachineCondition []entities.Option
	Severity         []entities.Option
	PaymentStatus    []entities.Option
}

func FormOptions() Options {
	return Options{
		ServiceType:      entities.ServiceTypeOptions,
		Status:           entities.StatusOptions,
		Priority:         entities.PriorityOptions,
		Urgency:          entities.UrgencyOptions,
		ContactMethod:    entities.ContactMethodOptions,
		MachineModel:     entities.MachineModelOptions,
		MachineCondition: entities.MachineConditionOptions,
		Severity:         entities.SeverityOptions,
		PaymentStatus:    entities.PaymentStatusOptions,
	}
}

// Page is everything the work-order template renders.
type Page struct {
	WorkOrder   entities.WorkOrder
	Invoice     entities.Invoice
	Summary     entities.Summary
	Catalog     []entities.Part
	Options     Options
	Tabs        []Tab
	ActiveTab   string
	Stars       []int
	Attachments []AttachmentView
	Error       string
	Notice      string
}

// NewPage assembles the view of wo for the given tab.
func NewPage(wo entities.WorkOrder, rate float64, tab string) Page {
	attachments := make([]AttachmentView, 0, 3)
	for _, kind := range entities.AttachmentKinds() {
		a, _ := wo.Attachments.Get(kind)
		attachments = append(attachments, AttachmentView{Kind: kind, Label: kind.Label(), Status: a})
	}
	return Page{
		WorkOrder:   wo,
		Invoice:     wo.Invoice(rate),
		Summary:     entities.BuildSummary(wo, rate),
		Catalog:     entities.Catalog(),
		Options:     FormOptions(),
		Tabs:        Tabs(),
		ActiveTab:   ResolveTab(tab),
		Stars:       entities.Stars(),
		Attachments: attachments,
	}
}

// SelectField is a select input with its current value.
type SelectField struct {
	Name        string
	Placeholder string
	Value       string
	Options     []entities.Option
}

// Load parses the embedded templates.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"rate":  func(v float64) string { return fmt.Sprintf("%g", v) },
		"select": func(name, placeholder, value string, opts []entities.Option) SelectField {
			return SelectField{Name: name, Placeholder: placeholder, Value: value, Options: opts}
		},
	}).ParseFS(templatesFS, "templates/*.html")
}
