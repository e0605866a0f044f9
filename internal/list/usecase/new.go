package usecase

import (
	"context"
	"sync"

	"listkeeper/internal/list"
	"listkeeper/internal/list/repository"
	"listkeeper/internal/model"
	"listkeeper/pkg/log"
)

// Exporter renders a list into the supported download formats.
// Implemented by internal/export.
type Exporter interface {
	RenderCSV(l model.List) []byte
	RenderTXT(l model.List) []byte
	RenderPDF(ctx context.Context, l model.List) ([]byte, error)
}

// implUseCase is the private implementation of list.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	me       list.Identity
	exporter Exporter

	shareBaseURL string

	// mu guards state, loadErr and snapshot. Mutations do not hold it across
	// network calls: two concurrent mutations can race and the last reload
	// to complete wins, at whole-snapshot granularity.
	mu       sync.RWMutex
	state    list.LoadState
	loadErr  error
	snapshot []model.List

	newID      func() string
	newShareID func() (string, error)
}

// New creates a new list UseCase implementation.
func New(repo repository.Repository, l log.Logger, me list.Identity, exporter Exporter, shareBaseURL string) *implUseCase {
	return &implUseCase{
		repo:         repo,
		l:            l,
		me:           me,
		exporter:     exporter,
		shareBaseURL: shareBaseURL,
		state:        list.StateIdle,
		newID:        defaultNewID,
		newShareID:   defaultNewShareID,
	}
}
