package entities

import (
	"math"
	"testing"
	"time"
)

func TestLaborSession(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("initially stopped", func(t *testing.T) {
		var s LaborSession
		if s.Running || s.StartedAt != nil || s.ElapsedHours != 0 {
			t.Fatalf("unexpected initial state: %+v", s)
		}
		if s.Sample(t0) {
			t.Fatalf("sampling a stopped session must be ignored")
		}
		if s.Stop() {
			t.Fatalf("stopping a stopped session must be a no-op")
		}
	})

	t.Run("start sample stop", func(t *testing.T) {
		var s LaborSession
		if !s.Start(t0) {
			t.Fatalf("expected start")
		}
		if s.Start(t0.Add(time.Minute)) {
			t.Fatalf("second start must be a no-op")
		}
		if !s.StartedAt.Equal(t0) {
			t.Fatalf("start instant must not move, got %v", s.StartedAt)
		}

		s.Sample(t0.Add(30 * time.Minute))
		if s.ElapsedHours != 0.5 {
			t.Fatalf("expected 0.5h, got %v", s.ElapsedHours)
		}
		s.Sample(t0.Add(90 * time.Minute))
		if s.ElapsedHours != 1.5 {
			t.Fatalf("expected 1.5h, got %v", s.ElapsedHours)
		}

		if !s.Stop() {
			t.Fatalf("expected stop")
		}
		s.Sample(t0.Add(3 * time.Hour))
		if s.ElapsedHours != 1.5 {
			t.Fatalf("stopped session must keep last sample, got %v", s.ElapsedHours)
		}
	})

	t.Run("restart replaces the window", func(t *testing.T) {
		var s LaborSession
		s.Start(t0)
		s.Sample(t0.Add(2 * time.Hour))
		s.Stop()

		restart := t0.Add(5 * time.Hour)
		s.Start(restart)
		if s.ElapsedHours != 2 {
			t.Fatalf("value is kept until the first sample of the new run, got %v", s.ElapsedHours)
		}
		s.Sample(restart.Add(15 * time.Minute))
		if s.ElapsedHours != 0.25 {
			t.Fatalf("expected 0.25h from the new start, got %v", s.ElapsedHours)
		}
	})

	t.Run("elapsed is non-decreasing while running", func(t *testing.T) {
		var s LaborSession
		s.Start(t0)
		prev := 0.0
		for i := 1; i <= 120; i++ {
			s.Sample(t0.Add(time.Duration(i) * time.Second))
			if s.ElapsedHours < prev {
				t.Fatalf("elapsed decreased at tick %d", i)
			}
			prev = s.ElapsedHours
		}
		if math.Abs(prev-120.0/3600) > 1e-12 {
			t.Fatalf("expected 120s in hours, got %v", prev)
		}
	})

	t.Run("toggle", func(t *testing.T) {
		var s LaborSession
		if !s.Toggle(t0) {
			t.Fatalf("expected running after first toggle")
		}
		if s.Toggle(t0.Add(time.Minute)) {
			t.Fatalf("expected stopped after second toggle")
		}
	})

	t.Run("clone does not share start instant", func(t *testing.T) {
		var s LaborSession
		s.Start(t0)
		c := s.Clone()
		*s.StartedAt = t0.Add(time.Hour)
		if !c.StartedAt.Equal(t0) {
			t.Fatalf("clone shares StartedAt")
		}
	})
}
