package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"listkeeper/internal/list"
	"listkeeper/internal/model"
	"listkeeper/pkg/backend"
)

// Load fetches the complete snapshot: all lists for the user, then all items
// for those lists, assembled into a nested structure. Any failure transitions
// the store to the error state with a classified message.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	uc.state = list.StateLoading
	uc.loadErr = nil
	uc.mu.Unlock()

	lists, err := uc.repo.ListLists(ctx, uc.me.UserID())
	if err != nil {
		return uc.failLoad(ctx, err)
	}

	items, err := uc.repo.ListItems(ctx, lists)
	if err != nil {
		return uc.failLoad(ctx, err)
	}

	byList := make(map[string][]model.Item, len(lists))
	for _, it := range items {
		byList[it.ListID] = append(byList[it.ListID], it)
	}
	for i := range lists {
		lists[i].Items = byList[lists[i].ID]
	}

	uc.mu.Lock()
	uc.snapshot = lists
	uc.state = list.StateReady
	uc.loadErr = nil
	uc.mu.Unlock()
	return nil
}

// RetryLoad re-enters loading from the error state.
func (uc *implUseCase) RetryLoad(ctx context.Context) error {
	return uc.Load(ctx)
}

func (uc *implUseCase) failLoad(ctx context.Context, err error) error {
	classified := classifyLoadError(err)
	uc.l.Errorf(ctx, "uc.Load: %v", err)
	uc.mu.Lock()
	uc.state = list.StateError
	uc.loadErr = classified
	uc.mu.Unlock()
	return classified
}

// classifyLoadError maps transport failures to stable user-facing messages.
func classifyLoadError(err error) error {
	switch {
	case errors.Is(err, backend.ErrTimeout):
		return fmt.Errorf("loading your lists timed out: %w", backend.ErrTimeout)
	case errors.Is(err, backend.ErrNetwork):
		return fmt.Errorf("could not reach the server: %w", backend.ErrNetwork)
	case errors.Is(err, backend.ErrSessionExpired):
		return fmt.Errorf("your session has expired, please sign in again: %w", backend.ErrSessionExpired)
	default:
		return fmt.Errorf("failed to load lists: %w", err)
	}
}

// reload refreshes the snapshot after a successful write. A reload failure
// does not void the write: the pre-mutation snapshot stays visible until the
// next successful reload, so log and move on.
func (uc *implUseCase) reload(ctx context.Context) {
	if err := uc.Load(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.reload after write: %v", err)
	}
}

// State returns the current load-cycle state.
func (uc *implUseCase) State() list.LoadState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// LoadError returns the classified error from the last failed load.
func (uc *implUseCase) LoadError() error {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loadErr
}

// Snapshot returns the current nested lists+items snapshot.
func (uc *implUseCase) Snapshot() []model.List {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]model.List, len(uc.snapshot))
	copy(out, uc.snapshot)
	return out
}

// GetList returns one list from the snapshot.
func (uc *implUseCase) GetList(id string) (model.List, error) {
	return uc.findList(id)
}

// HandleChange reacts to a backend change notification. Any insert, update
// or delete on the lists or items tables scoped to the user triggers an
// unconditional full reload; there is no incremental-patch path.
func (uc *implUseCase) HandleChange(ctx context.Context, ev model.ChangeEvent) {
	if ev.Table != model.TableLists && ev.Table != model.TableListItems {
		return
	}
	if ev.OwnerID != "" && ev.OwnerID != uc.me.UserID() {
		return
	}
	uc.reload(ctx)
}

// ensureLoaded lazily performs the initial load so mutation entry points can
// run their uniqueness and limit checks against a real snapshot.
func (uc *implUseCase) ensureLoaded(ctx context.Context) error {
	if uc.State() == list.StateReady {
		return nil
	}
	return uc.Load(ctx)
}

// FilterLists searches the snapshot. Pinned lists sort first, then newest
// first. Archived lists are hidden unless requested.
func (uc *implUseCase) FilterLists(input list.FilterInput) []model.List {
	lists := uc.Snapshot()

	query := strings.ToLower(strings.TrimSpace(input.Query))
	out := make([]model.List, 0, len(lists))
	for _, l := range lists {
		if !input.IncludeArchived && l.IsArchived() {
			continue
		}
		if input.Category != "" && string(l.Category) != input.Category {
			continue
		}
		if input.Tag != "" && !l.HasTag(input.Tag) {
			continue
		}
		if query != "" && !matchesQuery(l, query) {
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func matchesQuery(l model.List, query string) bool {
	if strings.Contains(strings.ToLower(l.Title), query) {
		return true
	}
	for _, it := range l.Items {
		if strings.Contains(strings.ToLower(it.Text), query) {
			return true
		}
	}
	return false
}
