package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"listkeeper/internal/list"
	"listkeeper/pkg/response"
)

// Lists godoc
// @Summary     List the user's lists
// @Description Returns the current snapshot, filtered and sorted (pinned first, then newest). Archived lists are hidden unless include_archived is set.
// @Tags        Lists
// @Produce     json
// @Param       q                query string false "Search in list titles and item texts"
// @Param       category         query string false "Filter by category"
// @Param       tag              query string false "Filter by tag"
// @Param       include_archived query bool   false "Include archived lists"
// @Success     200 {object} listsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/lists [GET]
func (h *handler) Lists(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFilterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.uc.State() != list.StateReady {
		if err := h.uc.Load(ctx); err != nil {
			h.l.Errorf(ctx, "uc.Load: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
	}

	response.OK(c, h.newListsResp(h.uc.FilterLists(req.toInput())))
}

// State godoc
// @Summary     Snapshot load state
// @Description Reports the load cycle state (idle, loading, ready, error) and the last load error if any.
// @Tags        Lists
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/lists/state [GET]
func (h *handler) State(c *gin.Context) {
	resp := stateResp{State: string(h.uc.State())}
	if err := h.uc.LoadError(); err != nil {
		resp.Error = err.Error()
	}
	response.OK(c, resp)
}

// Reload godoc
// @Summary     Retry a failed load
// @Description Re-fetches the snapshot from the backend.
// @Tags        Lists
// @Produce     json
// @Success     200 {object} stateResp
// @Failure     502 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/lists/reload [POST]
func (h *handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RetryLoad(ctx); err != nil {
		h.l.Errorf(ctx, "uc.RetryLoad: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, stateResp{State: string(h.uc.State())})
}

// Create godoc
// @Summary     Create a list
// @Description Creates a new list. Rejects duplicate titles, gated list types and plan limit overruns.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       body body createReq true "List data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Plan limit or gated type"
// @Failure     409 {object} response.Resp "Duplicate title"
// @Router      /api/v1/lists [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateList(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCreateResp(output))
}

// Detail godoc
// @Summary     Get one list
// @Tags        Lists
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	l, err := h.uc.GetList(id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(l))
}

// Update godoc
// @Summary     Update a list
// @Description Partial update; absent fields are untouched. Guest access and gated types enforce plan checks.
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path string    true "List ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Gated by plan"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Duplicate title"
// @Router      /api/v1/lists/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.UpdateList(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a list
// @Tags        Lists
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.DeleteList(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// TogglePin godoc
// @Summary     Toggle the pinned flag
// @Tags        Lists
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id}/pin [POST]
func (h *handler) TogglePin(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.TogglePin(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.TogglePin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// AddTag godoc
// @Summary     Add a tag
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path string true "List ID"
// @Param       body body tagReq true "Tag"
// @Success     200 {object} response.Resp "OK"
// @Failure     409 {object} response.Resp "Tag already on list"
// @Router      /api/v1/lists/{id}/tags [POST]
func (h *handler) AddTag(c *gin.Context) {
	ctx := c.Request.Context()

	var req tagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.AddTag(ctx, c.Param("id"), req.Tag); err != nil {
		h.l.Errorf(ctx, "uc.AddTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// RemoveTag godoc
// @Summary     Remove a tag
// @Tags        Lists
// @Produce     json
// @Param       id  path string true "List ID"
// @Param       tag path string true "Tag"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/lists/{id}/tags/{tag} [DELETE]
func (h *handler) RemoveTag(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.RemoveTag(ctx, c.Param("id"), c.Param("tag")); err != nil {
		h.l.Errorf(ctx, "uc.RemoveTag: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// AddCollaborator godoc
// @Summary     Add a collaborator by email
// @Tags        Lists
// @Accept      json
// @Produce     json
// @Param       id   path string          true "List ID"
// @Param       body body collaboratorReq true "Collaborator email"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Sharing requires a paid plan"
// @Failure     409 {object} response.Resp "Already a collaborator"
// @Router      /api/v1/lists/{id}/collaborators [POST]
func (h *handler) AddCollaborator(c *gin.Context) {
	ctx := c.Request.Context()

	var req collaboratorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.AddCollaborator(ctx, c.Param("id"), req.Email); err != nil {
		h.l.Errorf(ctx, "uc.AddCollaborator: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Share godoc
// @Summary     Generate a share link
// @Description Mints (or returns the existing) share URL for the list.
// @Tags        Sharing
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} shareResp
// @Failure     403 {object} response.Resp "Sharing requires a paid plan"
// @Router      /api/v1/lists/{id}/share [POST]
func (h *handler) Share(c *gin.Context) {
	ctx := c.Request.Context()

	url, err := h.uc.GenerateShareLink(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateShareLink: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, shareResp{URL: url})
}

// Unshare godoc
// @Summary     Revoke the share link
// @Tags        Sharing
// @Produce     json
// @Param       id path string true "List ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "List is not shared"
// @Router      /api/v1/lists/{id}/share [DELETE]
func (h *handler) Unshare(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.UnshareList(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.UnshareList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Import godoc
// @Summary     Import a list from CSV or TXT
// @Description Parses the payload into a brand-new list. The whole import is validated before anything is written.
// @Tags        Sharing
// @Accept      json
// @Produce     json
// @Param       body body importReq true "Import payload"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Empty or malformed payload"
// @Failure     403 {object} response.Resp "Importing requires a paid plan"
// @Router      /api/v1/lists/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportList(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newCreateResp(output))
}

// ImportShared godoc
// @Summary     Import a shared list by token
// @Description Clones another user's shared list into the caller's lists. Items are reset to incomplete.
// @Tags        Sharing
// @Accept      json
// @Produce     json
// @Param       body body importSharedReq true "Share token"
// @Success     200 {object} createResp
// @Failure     403 {object} response.Resp "Plan list limit reached"
// @Failure     404 {object} response.Resp "Share link not found"
// @Router      /api/v1/lists/import/shared [POST]
func (h *handler) ImportShared(c *gin.Context) {
	ctx := c.Request.Context()

	var req importSharedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ImportFromShareLink(ctx, req.Token)
	if err != nil {
		h.l.Errorf(ctx, "uc.ImportFromShareLink: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newCreateResp(output))
}

// Export godoc
// @Summary     Export a list
// @Description Downloads the list as csv, txt or pdf.
// @Tags        Sharing
// @Produce     octet-stream
// @Param       id     path  string true  "List ID"
// @Param       format query string false "csv | txt | pdf (default csv)"
// @Success     200 {file} file
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lists/{id}/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	format := list.ExportFormat(c.DefaultQuery("format", "csv"))
	output, err := h.uc.ExportList(ctx, c.Param("id"), format)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportList: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+output.Filename+`"`)
	c.Data(http.StatusOK, output.MIMEType, output.Data)
}

// InstantiateTemplate godoc
// @Summary     Instantiate a curated template
// @Tags        Templates
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} createResp
// @Failure     403 {object} response.Resp "Templates require a paid plan"
// @Failure     404 {object} response.Resp "Template not found"
// @Router      /api/v1/templates/{id}/instantiate [POST]
func (h *handler) InstantiateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.InstantiateTemplate(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.InstantiateTemplate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newCreateResp(output))
}

// RedeemTemplateCode godoc
// @Summary     Redeem a template code
// @Tags        Templates
// @Accept      json
// @Produce     json
// @Param       body body redeemReq true "Code"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Invalid code"
// @Router      /api/v1/templates/redeem [POST]
func (h *handler) RedeemTemplateCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req redeemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.RedeemTemplateCode(ctx, req.Code); err != nil {
		h.l.Errorf(ctx, "uc.RedeemTemplateCode: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
