package http

import (
	"github.com/gin-gonic/gin"

	"listkeeper/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	lists := rg.Group("/lists", mw.Auth())
	{
		lists.GET("", h.Lists)
		lists.GET("/state", h.State)
		lists.POST("/reload", h.Reload)
		lists.POST("", h.Create)
		lists.POST("/import", h.Import)
		lists.POST("/import/shared", h.ImportShared)

		lists.GET("/:id", h.Detail)
		lists.PUT("/:id", h.Update)
		lists.DELETE("/:id", h.Delete)
		lists.POST("/:id/pin", h.TogglePin)
		lists.POST("/:id/tags", h.AddTag)
		lists.DELETE("/:id/tags/:tag", h.RemoveTag)
		lists.POST("/:id/collaborators", h.AddCollaborator)
		lists.POST("/:id/share", h.Share)
		lists.DELETE("/:id/share", h.Unshare)
		lists.GET("/:id/export", h.Export)

		lists.POST("/:id/items", h.AddItem)
		lists.PUT("/:id/items/:itemID", h.UpdateItem)
		lists.DELETE("/:id/items/:itemID", h.DeleteItem)
		lists.POST("/:id/items/:itemID/toggle", h.ToggleItem)
		lists.POST("/:id/items/reorder", h.ReorderItems)
		lists.POST("/:id/items/bulk", h.BulkUpdateItems)
		lists.POST("/:id/items/bulk-delete", h.BulkDeleteItems)
	}

	templates := rg.Group("/templates", mw.Auth())
	{
		templates.POST("/:id/instantiate", h.InstantiateTemplate)
		templates.POST("/redeem", h.RedeemTemplateCode)
	}
}
