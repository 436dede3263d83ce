package entities

import (
	"errors"
	"testing"
	"time"
)

func TestSectionValidation(t *testing.T) {
	t.Run("empty sections are valid", func(t *testing.T) {
		for name, err := range map[string]error{
			"basic":    BasicInfo{}.Validate(),
			"customer": CustomerInfo{}.Validate(),
			"machine":  MachineInfo{}.Validate(),
			"service":  ServiceInfo{}.Validate(),
			"billing":  BillingInfo{}.Validate(),
		} {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", name, err)
			}
		}
	})

	t.Run("listed values are valid", func(t *testing.T) {
		b := BasicInfo{ServiceType: "repair", CreationDate: "2024-01-15", DueDate: "2024-01-20", Status: "awaitingParts", Priority: "critical", Urgency: "urgent"}
		if err := b.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := MachineInfo{Model: "e2Gold", SerialNumber: "anything", PurchaseDate: "2019-07-04", Condition: "fair"}
		if err := m.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unlisted values are rejected", func(t *testing.T) {
		cases := map[string]error{
			"service type":  BasicInfo{ServiceType: "cleaning"}.Validate(),
			"due date":      BasicInfo{DueDate: "20/01/2024"}.Validate(),
			"contact":       CustomerInfo{PreferredContact: "fax"}.Validate(),
			"model":         MachineInfo{Model: "d4"}.Validate(),
			"severity":      ServiceInfo{Severity: "extreme"}.Validate(),
			"payment state": BillingInfo{PaymentStatus: "refunded"}.Validate(),
		}
		for name, err := range cases {
			if !errors.Is(err, ErrInvalidFieldValue) {
				t.Fatalf("%s: expected ErrInvalidFieldValue, got %v", name, err)
			}
		}
	})
}

func TestWorkOrder(t *testing.T) {
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	wo := NewWorkOrder("id-1", FormatNumber(2024, 1), now)
	if wo.Number != "WO-2024-001" {
		t.Fatalf("unexpected number %q", wo.Number)
	}
	if !wo.CreatedAt.Equal(now) || !wo.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: %+v", wo)
	}

	wo.Parts.AddPart(2)
	wo.Labor.ElapsedHours = 1
	if got := wo.Total(85); got != 134.99 {
		t.Fatalf("expected 134.99, got %v", got)
	}
	if inv := wo.Invoice(85); inv.Total != 134.99 || len(inv.Lines) != 1 {
		t.Fatalf("unexpected invoice: %+v", inv)
	}

	wo.Labor.Start(now)
	c := wo.Clone()
	wo.Parts.AddPart(2)
	*wo.Labor.StartedAt = now.Add(time.Hour)
	if c.Parts.Lines[0].Quantity != 1 || !c.Labor.StartedAt.Equal(now) {
		t.Fatalf("clone shares memory with original")
	}
}

func TestOptionLabel(t *testing.T) {
	if got := OptionLabel(StatusOptions, "inProgress"); got != "In Progress" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := OptionLabel(StatusOptions, "other"); got != "other" {
		t.Fatalf("unexpected fallback %q", got)
	}
}
