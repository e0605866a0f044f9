package http

import (
	"github.com/gin-gonic/gin"

	"listkeeper/internal/list"
	"listkeeper/pkg/log"
)

// Handler is the public interface for the list HTTP delivery layer.
type Handler interface {
	Lists(c *gin.Context)
	State(c *gin.Context)
	Reload(c *gin.Context)
	Create(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	TogglePin(c *gin.Context)
	AddTag(c *gin.Context)
	RemoveTag(c *gin.Context)
	AddCollaborator(c *gin.Context)
	Share(c *gin.Context)
	Unshare(c *gin.Context)
	Import(c *gin.Context)
	ImportShared(c *gin.Context)
	Export(c *gin.Context)
	AddItem(c *gin.Context)
	UpdateItem(c *gin.Context)
	DeleteItem(c *gin.Context)
	ToggleItem(c *gin.Context)
	ReorderItems(c *gin.Context)
	BulkUpdateItems(c *gin.Context)
	BulkDeleteItems(c *gin.Context)
	InstantiateTemplate(c *gin.Context)
	RedeemTemplateCode(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc list.UseCase
}

// New creates a new HTTP handler for the list domain.
func New(l log.Logger, uc list.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
