package entities

// Part is an entry of the fixed parts catalog.
type Part struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// catalog is the embedded list of purchasable parts. It never changes at runtime.
var catalog = []Part{
	{ID: 1, Name: "HEPA Neutralizer", UnitPrice: 29.99},
	{ID: 2, Name: "Water Basin", UnitPrice: 49.99},
	{ID: 3, Name: "Power Nozzle Belt", UnitPrice: 9.99},
	{ID: 4, Name: "Main Brush Roll", UnitPrice: 39.99},
}

// Catalog returns a copy of the parts catalog in display order.
func Catalog() []Part {
	out := make([]Part, len(catalog))
	copy(out, catalog)
	return out
}

// FindPart looks a part up by id.
func FindPart(id int) (Part, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Part{}, false
}

// SelectedPartLine is one catalog part plus the chosen quantity.
type SelectedPartLine struct {
	Part
	Quantity int `json:"quantity"`
}

// LineTotal is the full-precision price of the line.
func (l SelectedPartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// PartsSelection holds the parts chosen for a work order, at most one line per part id,
// in the order they were first added.
//
// Quantities are stored as given. Nothing here enforces quantity >= 1.
type PartsSelection struct {
	Lines []SelectedPartLine `json:"lines"`
}

// AddPart appends a line with quantity 1, or increments the existing line for the part.
// Unknown ids are ignored. It reports whether the selection changed.
func (s *PartsSelection) AddPart(partID int) bool {
	part, ok := FindPart(partID)
	if !ok {
		return false
	}
	if i := s.index(partID); i >= 0 {
		s.Lines[i].Quantity++
		return true
	}
	s.Lines = append(s.Lines, SelectedPartLine{Part: part, Quantity: 1})
	return true
}

// UpdateQuantity sets the quantity of the line for partID verbatim.
func (s *PartsSelection) UpdateQuantity(partID, quantity int) bool {
	i := s.index(partID)
	if i < 0 {
		return false
	}
	s.Lines[i].Quantity = quantity
	return true
}

// RemovePart drops the line for partID if present.
func (s *PartsSelection) RemovePart(partID int) bool {
	i := s.index(partID)
	if i < 0 {
		return false
	}
	s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
	return true
}

// Line returns the line for partID.
func (s PartsSelection) Line(partID int) (SelectedPartLine, bool) {
	if i := s.index(partID); i >= 0 {
		return s.Lines[i], true
	}
	return SelectedPartLine{}, false
}

// Subtotal sums every line at full precision.
func (s PartsSelection) Subtotal() float64 {
	total := 0.0
	for _, l := range s.Lines {
		total += l.LineTotal()
	}
	return total
}

func (s PartsSelection) index(partID int) int {
	for i, l := range s.Lines {
		if l.ID == partID {
			return i
		}
	}
	return -1
}

// Clone returns a selection that shares no memory with s.
func (s PartsSelection) Clone() PartsSelection {
	if s.Lines == nil {
		return PartsSelection{}
	}
	lines := make([]SelectedPartLine, len(s.Lines))
	copy(lines, s.Lines)
	return PartsSelection{Lines: lines}
}
