package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"rainbow_workshop/internal/adapter/http/dto/request"
	"rainbow_workshop/internal/adapter/http/views"
	"rainbow_workshop/internal/domain/entities"
	"rainbow_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FormPageHandler serves the HTML work-order form. Every post applies one use-case operation
// and redirects back to the tab it came from.
type FormPageHandler struct {
	usecase usecase.IWorkOrderUseCase
	logger  *zap.Logger
}

func NewFormPageHandler(uc usecase.IWorkOrderUseCase, logger *zap.Logger) *FormPageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormPageHandler{usecase: uc, logger: logger}
}

// New opens a work order and redirects to its page.
func (h *FormPageHandler) New(c *gin.Context) {
	wo, err := h.usecase.Create(c.Request.Context())
	if err != nil {
		h.renderError(c, "basic", err)
		return
	}
	c.Redirect(http.StatusSeeOther, pagePath(wo.ID, "basic"))
}

// Show renders the tab named by the "tab" query parameter.
func (h *FormPageHandler) Show(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, c.Query("tab"), err)
		return
	}
	c.HTML(http.StatusOK, views.FormTemplate, views.NewPage(wo, h.usecase.LaborRate(), c.Query("tab")))
}

func (h *FormPageHandler) PostBasicInfo(c *gin.Context) {
	var form request.BasicInfoRequest
	h.apply(c, "basic", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateBasicInfo(ctx, id, form.ToEntity())
	})
}

func (h *FormPageHandler) PostCustomer(c *gin.Context) {
	var form request.CustomerRequest
	h.apply(c, "customer", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateCustomer(ctx, id, form.ToEntity())
	})
}

func (h *FormPageHandler) PostMachine(c *gin.Context) {
	var form request.MachineRequest
	h.apply(c, "machine", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateMachine(ctx, id, form.ToEntity())
	})
}

func (h *FormPageHandler) PostService(c *gin.Context) {
	var form request.ServiceRequest
	h.apply(c, "service", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateService(ctx, id, form.ToEntity())
	})
}

func (h *FormPageHandler) PostBilling(c *gin.Context) {
	var form request.BillingRequest
	h.apply(c, "billing", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.UpdateBilling(ctx, id, form.ToEntity())
	})
}

// PostAddPart handles the parts select. Submitting the placeholder option changes nothing.
func (h *FormPageHandler) PostAddPart(c *gin.Context) {
	raw := c.PostForm("part_id")
	if raw == "" {
		c.Redirect(http.StatusSeeOther, pagePath(c.Param("id"), "service"))
		return
	}
	partID, err := request.ParsePartID(raw)
	h.apply(c, "service", nil, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		if err != nil {
			return entities.WorkOrder{}, err
		}
		return h.usecase.AddPart(ctx, id, partID)
	})
}

func (h *FormPageHandler) PostQuickAddPart(c *gin.Context) {
	h.apply(c, "service", nil, h.usecase.QuickAddPart)
}

func (h *FormPageHandler) PostPartQuantity(c *gin.Context) {
	h.apply(c, "service", nil, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		partID, err := request.ParsePartID(c.Param("part_id"))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		quantity, err := request.ParseQuantity(c.PostForm("quantity"))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		return h.usecase.UpdatePartQuantity(ctx, id, partID, quantity)
	})
}

func (h *FormPageHandler) PostRemovePart(c *gin.Context) {
	h.apply(c, "service", nil, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		partID, err := request.ParsePartID(c.Param("part_id"))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		return h.usecase.RemovePart(ctx, id, partID)
	})
}

func (h *FormPageHandler) PostToggleTimer(c *gin.Context) {
	h.apply(c, "service", nil, h.usecase.ToggleTimer)
}

func (h *FormPageHandler) PostRating(c *gin.Context) {
	var form request.RatingRequest
	h.apply(c, "billing", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.SetRating(ctx, id, *form.Rating)
	})
}

func (h *FormPageHandler) PostAttachment(c *gin.Context) {
	var form request.AttachmentRequest
	kind := entities.AttachmentKind(c.Param("kind"))
	h.apply(c, "machine", &form, func(ctx context.Context, id string) (entities.WorkOrder, error) {
		return h.usecase.SetAttachment(ctx, id, kind, form.Checked, form.SerialNumber)
	})
}

// PostDiscard discards the work order and opens a fresh one.
func (h *FormPageHandler) PostDiscard(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, "basic", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/work-orders/new")
}

var actionTabs = map[usecase.Action]string{
	usecase.ActionSave:              "basic",
	usecase.ActionGenerateInvoice:   "billing",
	usecase.ActionGenerateDocument:  "summary",
	usecase.ActionUploadPhotos:      "service",
	usecase.ActionCompleteChecklist: "service",
}

// PostAction answers the placeholder buttons by re-rendering the page with a notice.
func (h *FormPageHandler) PostAction(c *gin.Context) {
	action := usecase.Action(c.Param("action"))
	tab, ok := actionTabs[action]
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	h.renderError(c, tab, h.usecase.RunAction(c.Request.Context(), c.Param("id"), action))
}

// apply binds form (when given), runs op and redirects to tab. Failures re-render the page
// with the error and the matching status.
func (h *FormPageHandler) apply(c *gin.Context, tab string, form any, op func(ctx context.Context, id string) (entities.WorkOrder, error)) {
	if form != nil {
		if err := c.ShouldBind(form); err != nil {
			h.renderError(c, tab, fmt.Errorf("%w: %v", errFormBinding, err))
			return
		}
	}
	if _, err := op(c.Request.Context(), c.Param("id")); err != nil {
		h.renderError(c, tab, err)
		return
	}
	c.Redirect(http.StatusSeeOther, pagePath(c.Param("id"), tab))
}

var errFormBinding = errors.New("invalid form submission")

func (h *FormPageHandler) renderError(c *gin.Context, tab string, err error) {
	var appStatus int
	var message string
	if errors.Is(err, errFormBinding) {
		appStatus, message = errInvalidRequest.HTTPStatus, errInvalidRequest.Message
	} else {
		appErr := mapWorkOrderError(err)
		appStatus, message = appErr.HTTPStatus, appErr.Message
		if appStatus >= http.StatusInternalServerError && appStatus != http.StatusNotImplemented {
			h.logger.Error("work order form failed", zap.String("work_order_id", c.Param("id")), zap.Error(err))
		}
	}

	// without a work order to show there is no page to re-render
	var wo entities.WorkOrder
	if id := c.Param("id"); id != "" && appStatus != http.StatusNotFound {
		wo, _ = h.usecase.GetByID(c.Request.Context(), id)
	}
	if wo.ID == "" {
		c.String(appStatus, message)
		return
	}

	page := views.NewPage(wo, h.usecase.LaborRate(), tab)
	if appStatus == http.StatusNotImplemented {
		page.Notice = message
	} else {
		page.Error = message
	}
	c.HTML(appStatus, views.FormTemplate, page)
}

func pagePath(id, tab string) string {
	return "/work-orders/" + url.PathEscape(id) + "?tab=" + url.QueryEscape(views.ResolveTab(tab))
}
