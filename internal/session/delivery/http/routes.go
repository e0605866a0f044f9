package http

import (
	"github.com/gin-gonic/gin"

	"listkeeper/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/signout", mw.Auth(), h.SignOut)
		auth.GET("/state", h.State)
		auth.POST("/reset-password", h.ResetPassword)
	}

	profile := rg.Group("/profile", mw.Auth())
	{
		profile.GET("", h.Profile)
		profile.PUT("/display-name", h.UpdateDisplayName)
		profile.POST("/avatar", h.UploadAvatar)
		profile.PUT("/email", h.UpdateEmail)
		profile.PUT("/password", h.UpdatePassword)
	}
}
