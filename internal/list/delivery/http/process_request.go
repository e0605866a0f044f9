package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processCreateReq binds and validates the create list request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, nil
}

// processFilterReq binds the list filter query parameters.
func (h *handler) processFilterReq(c *gin.Context) (filterReq, error) {
	var req filterReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddItemReq binds the add item body + parent list URI param.
func (h *handler) processAddItemReq(c *gin.Context) (string, addItemReq, error) {
	var req addItemReq
	listID := c.Param("id")
	if listID == "" {
		return "", req, errMissingID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, err
	}
	return listID, req, nil
}

// processUpdateItemReq binds the update item body + URI params.
func (h *handler) processUpdateItemReq(c *gin.Context) (updateItemReq, error) {
	var req updateItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ListID = c.Param("id")
	req.ItemID = c.Param("itemID")
	if req.ListID == "" || req.ItemID == "" {
		return req, errMissingID
	}
	return req, nil
}
