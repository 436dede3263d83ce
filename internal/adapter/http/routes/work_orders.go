package routes

import (
	"net/http"

	"rainbow_workshop/internal/adapter/http/handlers"
	"rainbow_workshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathParts      = "/parts"
	PathWorkOrders = "/work-orders"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler, eventsHandler *handlers.EventsHandler) {
	rg.GET(PathParts, h.ListParts)

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", h.CreateWorkOrder)
		workOrders.GET("/:id", h.GetWorkOrder)
		workOrders.DELETE("/:id", h.DeleteWorkOrder)

		workOrders.PUT("/:id/basic-info", h.UpdateBasicInfo)
		workOrders.PUT("/:id/customer", h.UpdateCustomer)
		workOrders.PUT("/:id/machine", h.UpdateMachine)
		workOrders.PUT("/:id/service", h.UpdateService)
		workOrders.PUT("/:id/billing", h.UpdateBilling)

		workOrders.POST("/:id/parts", h.AddPart)
		workOrders.POST("/:id/parts/quick-add", h.QuickAddPart)
		workOrders.PATCH("/:id/parts/:part_id", h.UpdatePartQuantity)
		workOrders.DELETE("/:id/parts/:part_id", h.RemovePart)

		workOrders.POST("/:id/timer/start", h.StartTimer)
		workOrders.POST("/:id/timer/stop", h.StopTimer)
		workOrders.POST("/:id/timer/toggle", h.ToggleTimer)
		workOrders.GET("/:id/events", eventsHandler.Stream)

		workOrders.PUT("/:id/rating", h.SetRating)
		workOrders.PUT("/:id/attachments/:kind", h.SetAttachment)

		workOrders.GET("/:id/invoice", h.GetInvoice)
		workOrders.GET("/:id/summary", h.GetSummary)

		workOrders.POST("/:id/save", h.Action(usecase.ActionSave))
		workOrders.POST("/:id/invoice/generate", h.Action(usecase.ActionGenerateInvoice))
		workOrders.POST("/:id/document/generate", h.Action(usecase.ActionGenerateDocument))
		workOrders.POST("/:id/photos", h.Action(usecase.ActionUploadPhotos))
		workOrders.POST("/:id/checklist", h.Action(usecase.ActionCompleteChecklist))
	}
}

// addFormRoutes registers the HTML form. Browsers can only post forms, so every mutation is
// a POST to a sub path.
func addFormRoutes(router *gin.Engine, h *handlers.FormPageHandler) {
	page := router.Group(PathWorkOrders)
	{
		page.GET("/new", h.New)
		page.GET("/:id", h.Show)
		page.POST("/:id/basic-info", h.PostBasicInfo)
		page.POST("/:id/customer", h.PostCustomer)
		page.POST("/:id/machine", h.PostMachine)
		page.POST("/:id/service", h.PostService)
		page.POST("/:id/billing", h.PostBilling)
		page.POST("/:id/parts", h.PostAddPart)
		page.POST("/:id/parts/quick-add", h.PostQuickAddPart)
		page.POST("/:id/parts/:part_id/quantity", h.PostPartQuantity)
		page.POST("/:id/parts/:part_id/remove", h.PostRemovePart)
		page.POST("/:id/timer/toggle", h.PostToggleTimer)
		page.POST("/:id/rating", h.PostRating)
		page.POST("/:id/attachments/:kind", h.PostAttachment)
		page.POST("/:id/discard", h.PostDiscard)
		page.POST("/:id/actions/:action", h.PostAction)
	}
	router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, PathWorkOrders+"/new") })
}
