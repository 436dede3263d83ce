package entities

import "time"

// DefaultLaborRate is the hourly labor rate used when none is configured.
const DefaultLaborRate = 85.0

// LaborSession tracks billable labor time for a work order.
//
// While Running, ElapsedHours is refreshed by Sample from the current StartedAt. Stopping
// freezes the last sampled value. Starting again moves StartedAt to the new instant, so a
// new run replaces the previous elapsed time instead of adding to it.
type LaborSession struct {
	Running      bool       `json:"running"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	ElapsedHours float64    `json:"elapsed_hours"`
}

// Start moves a stopped session to Running. It is a no-op on a running session.
func (s *LaborSession) Start(now time.Time) bool {
	if s.Running {
		return false
	}
	start := now
	s.StartedAt = &start
	s.Running = true
	return true
}

// Stop moves a running session to Stopped, keeping the last sampled elapsed value.
func (s *LaborSession) Stop() bool {
	if !s.Running {
		return false
	}
	s.Running = false
	return true
}

// Toggle starts a stopped session and stops a running one. It returns the new state.
func (s *LaborSession) Toggle(now time.Time) bool {
	if s.Running {
		s.Stop()
	} else {
		s.Start(now)
	}
	return s.Running
}

// Sample recomputes ElapsedHours as the time since StartedAt. Ignored when stopped.
func (s *LaborSession) Sample(now time.Time) bool {
	if !s.Running || s.StartedAt == nil {
		return false
	}
	s.ElapsedHours = now.Sub(*s.StartedAt).Hours()
	return true
}

// Clone returns a copy that does not share StartedAt with s.
func (s LaborSession) Clone() LaborSession {
	if s.StartedAt != nil {
		started := *s.StartedAt
		s.StartedAt = &started
	}
	return s
}

// LaborSample is the timer state pushed to open forms after each change or sample.
type LaborSample struct {
	WorkOrderID  string    `json:"work_order_id"`
	Running      bool      `json:"running"`
	ElapsedHours float64   `json:"elapsed_hours"`
	LaborTotal   float64   `json:"labor_total"`
	Total        float64   `json:"total"`
	SampledAt    time.Time `json:"sampled_at"`
}

// NewLaborSample derives the pushed figures from wo, rounded for display.
func NewLaborSample(wo WorkOrder, rate float64, at time.Time) LaborSample {
	return LaborSample{
		WorkOrderID:  wo.ID,
		Running:      wo.Labor.Running,
		ElapsedHours: Round2(wo.Labor.ElapsedHours),
		LaborTotal:   Round2(LaborTotal(wo.Labor.ElapsedHours, rate)),
		Total:        wo.Total(rate),
		SampledAt:    at,
	}
}
