package entities

import (
	"testing"
	"time"
)

func TestBuildSummary(t *testing.T) {
	wo := NewWorkOrder("wo-1", "WO-2024-001", time.Now())
	wo.BasicInfo.Status = "inProgress"
	wo.Customer = CustomerInfo{Name: "Ana", ContactNumber: "555-0101", Email: "ana@example.com", PreferredContact: "email"}
	wo.Machine = MachineInfo{Model: "e2Black", SerialNumber: "RB-77"}
	wo.Service = ServiceInfo{ReportedIssue: "No suction", TechnicianNotes: "Replaced belt"}
	wo.Parts.AddPart(3)
	wo.Parts.AddPart(3)
	wo.Labor.ElapsedHours = 0.5
	_ = wo.Attachments.Set(AttachmentAquaMate, true)
	_ = wo.Attachments.SetSerial(AttachmentAquaMate, "AQ-1")
	_ = wo.Attachments.Set(AttachmentMiniJet, true)
	_ = wo.Rating.Set(4)

	s := BuildSummary(wo, 85)

	if s.Status != "In Progress" || s.MachineModel != "E2 Black (E2 Type 12)" {
		t.Fatalf("expected labels, got %q %q", s.Status, s.MachineModel)
	}
	if s.CustomerContact != "ana@example.com" {
		t.Fatalf("expected email as contact, got %q", s.CustomerContact)
	}
	if len(s.Attachments) != 2 || s.Attachments[0] != "AquaMate (AQ-1)" || s.Attachments[1] != "MiniJet" {
		t.Fatalf("unexpected attachments: %v", s.Attachments)
	}
	if len(s.PartsUsed) != 1 || s.PartsUsed[0].Quantity != 2 {
		t.Fatalf("unexpected parts: %+v", s.PartsUsed)
	}
	// 2 x 9.99 + 0.5 x 85
	if s.TotalCost != 62.48 {
		t.Fatalf("expected 62.48, got %v", s.TotalCost)
	}
	if s.ServicesPerformed != "Replaced belt" || s.Rating != 4 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary(NewWorkOrder("wo-1", "WO-2024-001", time.Now()), 85)
	if s.TotalCost != 0 || len(s.PartsUsed) != 0 || len(s.Attachments) != 0 {
		t.Fatalf("unexpected summary for empty work order: %+v", s)
	}
}
