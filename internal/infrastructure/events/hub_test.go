package events

import (
	"testing"
)

func TestHub(t *testing.T) {
	t.Run("publish reaches only the work order's clients", func(t *testing.T) {
		h := NewHub(4, nil)
		a := h.Subscribe("wo-1")
		b := h.Subscribe("wo-2")

		h.Publish("wo-1", Event{Type: "labor_sample", Data: "{}"})

		select {
		case e := <-a.Events:
			if e.Type != "labor_sample" {
				t.Fatalf("unexpected event: %+v", e)
			}
		default:
			t.Fatalf("expected event for wo-1 client")
		}
		select {
		case e := <-b.Events:
			t.Fatalf("unexpected event for wo-2 client: %+v", e)
		default:
		}
	})

	t.Run("full buffer drops instead of blocking", func(t *testing.T) {
		h := NewHub(1, nil)
		c := h.Subscribe("wo-1")
		h.Publish("wo-1", Event{Type: "first"})
		h.Publish("wo-1", Event{Type: "second"})

		if e := <-c.Events; e.Type != "first" {
			t.Fatalf("expected first event, got %+v", e)
		}
		select {
		case e := <-c.Events:
			t.Fatalf("expected second event to be dropped, got %+v", e)
		default:
		}
	})

	t.Run("unsubscribe closes the channel once", func(t *testing.T) {
		h := NewHub(1, nil)
		c := h.Subscribe("wo-1")
		if h.Subscribers("wo-1") != 1 {
			t.Fatalf("expected one subscriber")
		}
		h.Unsubscribe(c)
		h.Unsubscribe(c)
		if _, ok := <-c.Events; ok {
			t.Fatalf("expected closed channel")
		}
		if h.Subscribers("wo-1") != 0 {
			t.Fatalf("expected no subscribers")
		}
	})

	t.Run("close topic ends every stream", func(t *testing.T) {
		h := NewHub(1, nil)
		a := h.Subscribe("wo-1")
		b := h.Subscribe("wo-1")
		h.CloseTopic("wo-1")
		for _, c := range []*Client{a, b} {
			if _, ok := <-c.Events; ok {
				t.Fatalf("expected closed channel")
			}
		}
		// unsubscribing after the topic is gone is harmless
		h.Unsubscribe(a)
	})

	t.Run("publish json", func(t *testing.T) {
		h := NewHub(1, nil)
		c := h.Subscribe("wo-1")
		if err := h.PublishJSON("wo-1", "labor_sample", map[string]any{"running": true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		e := <-c.Events
		if e.Data != `{"running":true}` {
			t.Fatalf("unexpected data %q", e.Data)
		}
		if err := h.PublishJSON("wo-1", "bad", func() {}); err == nil {
			t.Fatalf("expected marshal error")
		}
	})

	t.Run("close all ends streams of every work order", func(t *testing.T) {
		h := NewHub(1, nil)
		a := h.Subscribe("wo-1")
		b := h.Subscribe("wo-2")
		h.CloseAll()
		for _, c := range []*Client{a, b} {
			if _, ok := <-c.Events; ok {
				t.Fatalf("expected closed channel")
			}
		}
		if h.Subscribers("wo-1") != 0 || h.Subscribers("wo-2") != 0 {
			t.Fatalf("expected no subscribers left")
		}
	})
}
