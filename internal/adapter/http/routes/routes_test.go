package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rainbow_workshop/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: 0, Mode: gin.TestMode},
		Billing: config.BillingConfig{LaborRate: 85},
		Timer:   config.TimerConfig{SampleInterval: time.Hour},
		Session: config.SessionConfig{IdleTTL: time.Hour, ReapInterval: time.Hour},
		Events:  config.EventsConfig{ClientBuffer: 4, Heartbeat: time.Hour},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	t.Cleanup(app.WorkOrders.Close)
	return app
}

func serve(app *App, method, path, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestNewApp_Ping(t *testing.T) {
	app := newTestApp(t)
	w := serve(app, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "pong") {
		t.Fatalf("unexpected ping response: %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestNewApp_WorkOrderFlow(t *testing.T) {
	app := newTestApp(t)

	w := serve(app, http.MethodPost, "/v1/work-orders", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     string `json:"id"`
		Number string `json:"number"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if created.ID == "" || !strings.HasPrefix(created.Number, "WO-") {
		t.Fatalf("unexpected work order: %+v", created)
	}
	base := "/v1/work-orders/" + created.ID

	if w := serve(app, http.MethodPost, base+"/parts", `{"part_id":3}`); w.Code != http.StatusOK {
		t.Fatalf("add part failed: %d %s", w.Code, w.Body.String())
	}
	if w := serve(app, http.MethodPatch, base+"/parts/3", `{"quantity":2}`); w.Code != http.StatusOK {
		t.Fatalf("update quantity failed: %d %s", w.Code, w.Body.String())
	}

	w = serve(app, http.MethodGet, base+"/invoice", "")
	var invoice struct {
		Total float64 `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &invoice); err != nil {
		t.Fatalf("failed to decode invoice: %v", err)
	}
	if invoice.Total != 19.98 {
		t.Fatalf("expected total 19.98, got %v", invoice.Total)
	}

	if w := serve(app, http.MethodPost, base+"/save", ""); w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}

	w = serve(app, http.MethodGet, "/work-orders/"+created.ID+"?tab=service", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Power Nozzle Belt") {
		t.Fatalf("unexpected form page: %d", w.Code)
	}

	if w := serve(app, http.MethodDelete, base, ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := serve(app, http.MethodGet, base, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestNewApp_FormEntry(t *testing.T) {
	app := newTestApp(t)

	w := serve(app, http.MethodGet, "/", "")
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/work-orders/new" {
		t.Fatalf("unexpected root redirect: %d %s", w.Code, w.Header().Get("Location"))
	}

	w = serve(app, http.MethodGet, "/work-orders/new", "")
	if w.Code != http.StatusSeeOther || !strings.HasSuffix(w.Header().Get("Location"), "?tab=basic") {
		t.Fatalf("unexpected new redirect: %d %s", w.Code, w.Header().Get("Location"))
	}
}

func TestNewApp_Middleware(t *testing.T) {
	app := newTestApp(t)

	t.Run("json responses are compressed", func(t *testing.T) {
		w := serve(app, http.MethodGet, "/v1/parts", "", "Accept-Encoding", "gzip")
		if w.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("expected gzip encoding")
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		w := serve(app, http.MethodOptions, "/v1/parts", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("swagger", func(t *testing.T) {
		w := serve(app, http.MethodGet, "/swagger/doc.json", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/work-orders") {
			t.Fatalf("unexpected swagger response: %d", w.Code)
		}
	})
}
