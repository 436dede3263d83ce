package entities

import (
	"errors"
	"testing"
)

func TestAttachments(t *testing.T) {
	t.Run("flags are independent", func(t *testing.T) {
		var a Attachments
		if err := a.Set(AttachmentAquaMate, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.PowerNozzle.Checked || !a.AquaMate.Checked || a.MiniJet.Checked {
			t.Fatalf("unexpected flags: %+v", a)
		}
	})

	t.Run("serial dropped on uncheck", func(t *testing.T) {
		var a Attachments
		_ = a.Set(AttachmentPowerNozzle, true)
		_ = a.SetSerial(AttachmentPowerNozzle, "PN-123")
		if got, _ := a.Get(AttachmentPowerNozzle); got.SerialNumber != "PN-123" {
			t.Fatalf("expected serial, got %+v", got)
		}

		_ = a.Set(AttachmentPowerNozzle, false)
		_ = a.Set(AttachmentPowerNozzle, true)
		if got, _ := a.Get(AttachmentPowerNozzle); got.SerialNumber != "" {
			t.Fatalf("expected empty serial after recheck, got %q", got.SerialNumber)
		}
	})

	t.Run("serial ignored while unchecked", func(t *testing.T) {
		var a Attachments
		_ = a.SetSerial(AttachmentMiniJet, "MJ-9")
		if a.MiniJet.SerialNumber != "" {
			t.Fatalf("expected serial to be ignored")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		var a Attachments
		if err := a.Set("vacuum", true); !errors.Is(err, ErrUnknownAttachment) {
			t.Fatalf("expected ErrUnknownAttachment, got %v", err)
		}
		if err := a.SetSerial("vacuum", "x"); !errors.Is(err, ErrUnknownAttachment) {
			t.Fatalf("expected ErrUnknownAttachment, got %v", err)
		}
		if _, err := a.Get("vacuum"); !errors.Is(err, ErrUnknownAttachment) {
			t.Fatalf("expected ErrUnknownAttachment, got %v", err)
		}
	})

	t.Run("labels", func(t *testing.T) {
		want := []string{"Power Nozzle", "AquaMate", "MiniJet"}
		for i, k := range AttachmentKinds() {
			if k.Label() != want[i] {
				t.Fatalf("expected %q, got %q", want[i], k.Label())
			}
		}
	})
}
