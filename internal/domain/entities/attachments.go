package entities

import "errors"

// AttachmentKind identifies an accessory that can be left with the machine.
type AttachmentKind string

const (
	AttachmentPowerNozzle AttachmentKind = "power_nozzle"
	AttachmentAquaMate    AttachmentKind = "aqua_mate"
	AttachmentMiniJet     AttachmentKind = "mini_jet"
)

var ErrUnknownAttachment = errors.New("unknown attachment")

// AttachmentKinds lists the accessories in form order.
func AttachmentKinds() []AttachmentKind {
	return []AttachmentKind{AttachmentPowerNozzle, AttachmentAquaMate, AttachmentMiniJet}
}

func (k AttachmentKind) Label() string {
	switch k {
	case AttachmentPowerNozzle:
		return "Power Nozzle"
	case AttachmentAquaMate:
		return "AquaMate"
	case AttachmentMiniJet:
		return "MiniJet"
	}
	return string(k)
}

// Attachment is one checkbox plus the serial-number field it reveals.
type Attachment struct {
	Checked      bool   `json:"checked"`
	SerialNumber string `json:"serial_number,omitempty"`
}

// Attachments are the three independent accessory flags of the machine tab.
type Attachments struct {
	PowerNozzle Attachment `json:"power_nozzle"`
	AquaMate    Attachment `json:"aqua_mate"`
	MiniJet     Attachment `json:"mini_jet"`
}

// Set checks or unchecks an accessory. Unchecking discards its serial number, so the field
// comes back empty when checked again.
func (a *Attachments) Set(kind AttachmentKind, checked bool) error {
	slot, err := a.slot(kind)
	if err != nil {
		return err
	}
	slot.Checked = checked
	if !checked {
		slot.SerialNumber = ""
	}
	return nil
}

// SetSerial stores the serial number of a checked accessory. The field is hidden while the
// accessory is unchecked, so the value is dropped in that case.
func (a *Attachments) SetSerial(kind AttachmentKind, serial string) error {
	slot, err := a.slot(kind)
	if err != nil {
		return err
	}
	if slot.Checked {
		slot.SerialNumber = serial
	}
	return nil
}

// Get returns the state of one accessory.
func (a Attachments) Get(kind AttachmentKind) (Attachment, error) {
	slot, err := a.slot(kind)
	if err != nil {
		return Attachment{}, err
	}
	return *slot, nil
}

func (a *Attachments) slot(kind AttachmentKind) (*Attachment, error) {
	switch kind {
	case AttachmentPowerNozzle:
		return &a.PowerNozzle, nil
	case AttachmentAquaMate:
		return &a.AquaMate, nil
	case AttachmentMiniJet:
		return &a.MiniJet, nil
	}
	return nil, ErrUnknownAttachment
}
