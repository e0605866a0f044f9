package http

import (
	"listkeeper/internal/model"
	"listkeeper/pkg/response"
)

// --- Request DTOs ---

type credentialsReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type displayNameReq struct {
	DisplayName string `json:"display_name" binding:"required,min=1,max=50"`
}

type emailReq struct {
	Email string `json:"email" binding:"required,email"`
}

type passwordReq struct {
	Password string `json:"password" binding:"required,min=6"`
}

// --- Response DTOs ---

type profileResp struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	DisplayName string            `json:"display_name,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Tier        string            `json:"tier"`
	CreatedAt   response.DateTime `json:"created_at"`
}

func newProfileResp(p model.Profile) profileResp {
	return profileResp{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Tier:        string(p.Tier),
		CreatedAt:   response.DateTime(p.CreatedAt),
	}
}

type stateResp struct {
	State string `json:"state"`
	Tier  string `json:"tier"`
}

type avatarResp struct {
	URL string `json:"url"`
}
