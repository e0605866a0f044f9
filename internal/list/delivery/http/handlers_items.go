package http

import (
	"github.com/gin-gonic/gin"

	"listkeeper/pkg/response"
)

// AddItem godoc
// @Summary     Add an item to a list
// @Description Appends an item at the end of the list. A duplicate text does not block the add but is flagged in the response.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string     true "List ID"
// @Param       body body addItemReq true "Item data"
// @Success     200 {object} addItemResp
// @Failure     403 {object} response.Resp "Plan item limit reached"
// @Failure     404 {object} response.Resp "List not found"
// @Router      /api/v1/lists/{id}/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	listID, req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddItem(ctx, req.toInput(listID))
	if err != nil {
		h.l.Errorf(ctx, "uc.AddItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newAddItemResp(output))
}

// UpdateItem godoc
// @Summary     Update an item
// @Description Partial update; absent fields are untouched. Set clear_due to remove the due date.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id     path string        true "List ID"
// @Param       itemID path string        true "Item ID"
// @Param       body   body updateItemReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id}/items/{itemID} [PUT]
func (h *handler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.UpdateItem(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// DeleteItem godoc
// @Summary     Delete an item
// @Tags        Items
// @Produce     json
// @Param       id     path string true "List ID"
// @Param       itemID path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id}/items/{itemID} [DELETE]
func (h *handler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteItem(ctx, c.Param("id"), c.Param("itemID")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// ToggleItem godoc
// @Summary     Toggle an item's completed flag
// @Tags        Items
// @Produce     json
// @Param       id     path string true "List ID"
// @Param       itemID path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id}/items/{itemID}/toggle [POST]
func (h *handler) ToggleItem(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ToggleItemCompleted(ctx, c.Param("id"), c.Param("itemID")); err != nil {
		h.l.Errorf(ctx, "uc.ToggleItemCompleted: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// ReorderItems godoc
// @Summary     Reorder a list's items
// @Description Renumbers sort order to match the given ID sequence. Unknown IDs reject the whole request.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string     true "List ID"
// @Param       body body reorderReq true "Ordered item IDs"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown item"
// @Router      /api/v1/lists/{id}/items/reorder [POST]
func (h *handler) ReorderItems(c *gin.Context) {
	ctx := c.Request.Context()

	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ReorderItems(ctx, c.Param("id"), req.ItemIDs); err != nil {
		h.l.Errorf(ctx, "uc.ReorderItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// BulkUpdateItems godoc
// @Summary     Update several items at once
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string        true "List ID"
// @Param       body body bulkUpdateReq true "Item IDs and shared changes"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown item"
// @Router      /api/v1/lists/{id}/items/bulk [POST]
func (h *handler) BulkUpdateItems(c *gin.Context) {
	ctx := c.Request.Context()

	var req bulkUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	input := req.toInput(c.Param("id"))
	if err := h.uc.BulkUpdateItems(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.BulkUpdateItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// BulkDeleteItems godoc
// @Summary     Delete several items at once
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string        true "List ID"
// @Param       body body bulkDeleteReq true "Item IDs"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown item"
// @Router      /api/v1/lists/{id}/items/bulk-delete [POST]
func (h *handler) BulkDeleteItems(c *gin.Context) {
	ctx := c.Request.Context()

	var req bulkDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.BulkDeleteItems(ctx, c.Param("id"), req.ItemIDs); err != nil {
		h.l.Errorf(ctx, "uc.BulkDeleteItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
