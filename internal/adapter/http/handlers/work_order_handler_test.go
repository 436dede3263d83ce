package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rainbow_workshop/internal/adapter/http/handlers/mocks"
	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleWorkOrder() entities.WorkOrder {
	wo := entities.NewWorkOrder("wo-1", "WO-2024-001", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	wo.Parts.AddPart(1)
	return wo
}

func newWorkOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIWorkOrderUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIWorkOrderUseCase(ctrl)
	uc.EXPECT().LaborRate().Return(85.0).AnyTimes()
	h := NewWorkOrderHandler(uc, nil)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.GET("/parts", h.ListParts)
	v1.POST("/work-orders", h.CreateWorkOrder)
	v1.GET("/work-orders/:id", h.GetWorkOrder)
	v1.DELETE("/work-orders/:id", h.DeleteWorkOrder)
	v1.PUT("/work-orders/:id/basic-info", h.UpdateBasicInfo)
	v1.PUT("/work-orders/:id/machine", h.UpdateMachine)
	v1.POST("/work-orders/:id/parts", h.AddPart)
	v1.POST("/work-orders/:id/parts/quick-add", h.QuickAddPart)
	v1.PATCH("/work-orders/:id/parts/:part_id", h.UpdatePartQuantity)
	v1.DELETE("/work-orders/:id/parts/:part_id", h.RemovePart)
	v1.POST("/work-orders/:id/timer/toggle", h.ToggleTimer)
	v1.PUT("/work-orders/:id/rating", h.SetRating)
	v1.PUT("/work-orders/:id/attachments/:kind", h.SetAttachment)
	v1.GET("/work-orders/:id/invoice", h.GetInvoice)
	v1.GET("/work-orders/:id/summary", h.GetSummary)
	v1.POST("/work-orders/:id/save", h.Action(usecase.ActionSave))
	return r, uc
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestWorkOrderHandler_ListParts(t *testing.T) {
	r, uc := newWorkOrderRouter(t)
	uc.EXPECT().Catalog().Return(entities.Catalog())

	w := doJSON(r, http.MethodGet, "/v1/parts", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var parts []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &parts)
	if len(parts) != 4 || parts[0]["name"] != "HEPA Neutralizer" {
		t.Fatalf("unexpected catalog: %s", w.Body.String())
	}
}

func TestWorkOrderHandler_CreateAndGet(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().Create(gomock.Any()).Return(sampleWorkOrder(), nil)

		w := doJSON(r, http.MethodPost, "/v1/work-orders", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "wo-1" || body["total"] != 29.99 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "wo-9").Return(entities.WorkOrder{}, usecase.ErrWorkOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/work-orders/wo-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if decodeError(t, w)["code"] != "WORK_ORDER_NOT_FOUND" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("get internal error", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "wo-1").Return(entities.WorkOrder{}, errors.New("boom"))

		w := doJSON(r, http.MethodGet, "/v1/work-orders/wo-1", "")
		if w.Code != http.StatusInternalServerError || decodeError(t, w)["code"] != "INTERNAL_ERROR" {
			t.Fatalf("expected 500 INTERNAL_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("delete", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().Discard(gomock.Any(), "wo-1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/work-orders/wo-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_Sections(t *testing.T) {
	t.Run("basic info", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().UpdateBasicInfo(gomock.Any(), "wo-1", entities.BasicInfo{ServiceType: "repair", DueDate: "2024-02-01"}).
			Return(sampleWorkOrder(), nil)

		w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/basic-info", `{"service_type":"repair","due_date":"2024-02-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		r, _ := newWorkOrderRouter(t)
		w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/basic-info", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid select value", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().UpdateMachine(gomock.Any(), "wo-1", gomock.Any()).
			Return(entities.WorkOrder{}, fmt.Errorf("%w: model=%q", usecase.ErrInvalidFieldValue, "x"))

		w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/machine", `{"model":"x"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w)["code"] != "INVALID_REQUEST" {
			t.Fatalf("expected 400 INVALID_REQUEST, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestWorkOrderHandler_Parts(t *testing.T) {
	t.Run("add part", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().AddPart(gomock.Any(), "wo-1", 2).Return(sampleWorkOrder(), nil)
		w := doJSON(r, http.MethodPost, "/v1/work-orders/wo-1/parts", `{"part_id":2}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add part missing id", func(t *testing.T) {
		r, _ := newWorkOrderRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/work-orders/wo-1/parts", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quick add", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().QuickAddPart(gomock.Any(), "wo-1").Return(sampleWorkOrder(), nil)
		if w := doJSON(r, http.MethodPost, "/v1/work-orders/wo-1/parts/quick-add", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quantity zero and negative are accepted", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().UpdatePartQuantity(gomock.Any(), "wo-1", 1, 0).Return(sampleWorkOrder(), nil)
		uc.EXPECT().UpdatePartQuantity(gomock.Any(), "wo-1", 1, -4).Return(sampleWorkOrder(), nil)
		for _, body := range []string{`{"quantity":0}`, `{"quantity":-4}`} {
			if w := doJSON(r, http.MethodPatch, "/v1/work-orders/wo-1/parts/1", body); w.Code != http.StatusOK {
				t.Fatalf("expected 200 for %s, got %d", body, w.Code)
			}
		}
	})

	t.Run("non integer quantity is rejected", func(t *testing.T) {
		r, _ := newWorkOrderRouter(t)
		for _, body := range []string{`{"quantity":2.5}`, `{"quantity":"2"}`, `{}`} {
			w := doJSON(r, http.MethodPatch, "/v1/work-orders/wo-1/parts/1", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %s, got %d", body, w.Code)
			}
		}
	})

	t.Run("non integer part id is rejected", func(t *testing.T) {
		r, _ := newWorkOrderRouter(t)
		w := doJSON(r, http.MethodDelete, "/v1/work-orders/wo-1/parts/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().RemovePart(gomock.Any(), "wo-1", 3).Return(sampleWorkOrder(), nil)
		if w := doJSON(r, http.MethodDelete, "/v1/work-orders/wo-1/parts/3", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_TimerRatingAttachments(t *testing.T) {
	t.Run("toggle timer", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		wo := sampleWorkOrder()
		wo.Labor.Start(time.Now())
		uc.EXPECT().ToggleTimer(gomock.Any(), "wo-1").Return(wo, nil)

		w := doJSON(r, http.MethodPost, "/v1/work-orders/wo-1/timer/toggle", "")
		var body struct {
			Labor struct {
				Running bool `json:"running"`
			} `json:"labor"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || !body.Labor.Running {
			t.Fatalf("expected running timer, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("rating", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().SetRating(gomock.Any(), "wo-1", 4).Return(sampleWorkOrder(), nil)
		if w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/rating", `{"rating":4}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rating out of range", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().SetRating(gomock.Any(), "wo-1", 9).Return(entities.WorkOrder{}, usecase.ErrInvalidRating)
		if w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/rating", `{"rating":9}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("attachment", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().SetAttachment(gomock.Any(), "wo-1", entities.AttachmentMiniJet, true, "MJ-1").Return(sampleWorkOrder(), nil)
		w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/attachments/mini_jet", `{"checked":true,"serial_number":"MJ-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown attachment", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().SetAttachment(gomock.Any(), "wo-1", entities.AttachmentKind("hose"), true, "").
			Return(entities.WorkOrder{}, usecase.ErrInvalidAttachment)
		w := doJSON(r, http.MethodPut, "/v1/work-orders/wo-1/attachments/hose", `{"checked":true}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_InvoiceSummaryActions(t *testing.T) {
	t.Run("invoice", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		wo := sampleWorkOrder()
		wo.Labor.ElapsedHours = 1
		uc.EXPECT().Invoice(gomock.Any(), "wo-1").Return(wo.Invoice(85), nil)

		w := doJSON(r, http.MethodGet, "/v1/work-orders/wo-1/invoice", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["total"] != 114.99 || body["labor_total"] != 85.0 {
			t.Fatalf("unexpected invoice: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("summary", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().Summary(gomock.Any(), "wo-1").Return(entities.BuildSummary(sampleWorkOrder(), 85), nil)
		if w := doJSON(r, http.MethodGet, "/v1/work-orders/wo-1/summary", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stub action", func(t *testing.T) {
		r, uc := newWorkOrderRouter(t)
		uc.EXPECT().RunAction(gomock.Any(), "wo-1", usecase.ActionSave).
			Return(fmt.Errorf("%w: save", usecase.ErrActionNotImplemented))
		w := doJSON(r, http.MethodPost, "/v1/work-orders/wo-1/save", "")
		if w.Code != http.StatusNotImplemented || decodeError(t, w)["code"] != "NOT_IMPLEMENTED" {
			t.Fatalf("expected 501 NOT_IMPLEMENTED, got %d %s", w.Code, w.Body.String())
		}
	})
}
