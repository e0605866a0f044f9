package http

import (
	"io"

	"github.com/gin-gonic/gin"

	"listkeeper/pkg/response"
)

const avatarBucket = "avatars"

// SignUp godoc
// @Summary     Create an account
// @Description Registers with the hosted backend and establishes a session.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.SignUp(ctx, req.Email, req.Password); err != nil {
		h.l.Errorf(ctx, "sessions.SignUp: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newProfileResp(h.sessions.Profile()))
}

// SignIn godoc
// @Summary     Sign in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.SignIn(ctx, req.Email, req.Password); err != nil {
		h.l.Errorf(ctx, "sessions.SignIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newProfileResp(h.sessions.Profile()))
}

// SignOut godoc
// @Summary     Sign out
// @Description Revokes the session and drops local state. The cached tier mirror is cleared.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.sessions.SignOut(ctx); err != nil {
		h.l.Errorf(ctx, "sessions.SignOut: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// State godoc
// @Summary     Session state
// @Description Reports whether a user is signed in and the effective plan tier.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} stateResp
// @Router      /api/v1/auth/state [GET]
func (h *handler) State(c *gin.Context) {
	response.OK(c, stateResp{
		State: string(h.sessions.State()),
		Tier:  string(h.sessions.Tier()),
	})
}

// Profile godoc
// @Summary     Current profile
// @Tags        Profile
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	response.OK(c, newProfileResp(h.sessions.Profile()))
}

// UpdateDisplayName godoc
// @Summary     Change the display name
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body displayNameReq true "New display name"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Invalid name"
// @Router      /api/v1/profile/display-name [PUT]
func (h *handler) UpdateDisplayName(c *gin.Context) {
	ctx := c.Request.Context()

	var req displayNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.UpdateDisplayName(ctx, req.DisplayName); err != nil {
		h.l.Errorf(ctx, "sessions.UpdateDisplayName: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newProfileResp(h.sessions.Profile()))
}

// UploadAvatar godoc
// @Summary     Upload an avatar image
// @Description Accepts a multipart "avatar" file. Images only, 5MB max.
// @Tags        Profile
// @Accept      multipart/form-data
// @Produce     json
// @Param       avatar formData file true "Avatar image"
// @Success     200 {object} avatarResp
// @Failure     400 {object} response.Resp "Bad file"
// @Router      /api/v1/profile/avatar [POST]
func (h *handler) UploadAvatar(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.Error(c, err)
		return
	}

	url, err := h.sessions.UploadAvatar(ctx, avatarBucket, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		h.l.Errorf(ctx, "sessions.UploadAvatar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, avatarResp{URL: url})
}

// UpdateEmail godoc
// @Summary     Change the account email
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body emailReq true "New email"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/profile/email [PUT]
func (h *handler) UpdateEmail(c *gin.Context) {
	ctx := c.Request.Context()

	var req emailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.UpdateEmail(ctx, req.Email); err != nil {
		h.l.Errorf(ctx, "sessions.UpdateEmail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// UpdatePassword godoc
// @Summary     Change the password
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body passwordReq true "New password"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/profile/password [PUT]
func (h *handler) UpdatePassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req passwordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.UpdatePassword(ctx, req.Password); err != nil {
		h.l.Errorf(ctx, "sessions.UpdatePassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// ResetPassword godoc
// @Summary     Request a password reset email
// @Description Works for signed-out users; the backend sends the reset link.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body emailReq true "Account email"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/auth/reset-password [POST]
func (h *handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()

	var req emailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.sessions.ResetPassword(ctx, req.Email); err != nil {
		h.l.Errorf(ctx, "sessions.ResetPassword: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}
