package console

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"foodgram-admin/internal/dto/response"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

// ModalState tracks which modal the page currently shows
type ModalState string

const (
	ModalNone ModalState = "none"
	ModalView ModalState = "view"
	ModalEdit ModalState = "edit"
)

// Ops binds a ListController to one resource. SetStatus is nil for
// resources without a status lifecycle (reviews).
type Ops[T any, Q any] struct {
	Resource        string
	Fetch           func(ctx context.Context, page, size int, filters Q) (*response.Page[T], error)
	Get             func(ctx context.Context, id string) (*T, error)
	Update          func(ctx context.Context, id string, draft any) (*T, error)
	SetStatus       func(ctx context.Context, id, status string) (*T, error)
	Delete          func(ctx context.Context, id string) error
	ID              func(t *T) string
	SeedDraft       func(t *T) any
	Match           func(t *T, term string) bool
	AllowedStatuses []string
}

// PageView is a snapshot of the page state handed to the rendering layer
type PageView[T any] struct {
	Items         []T        `json:"items"`
	Page          int        `json:"page"`
	Size          int        `json:"size"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	HasPrev       bool       `json:"hasPrev"`
	HasNext       bool       `json:"hasNext"`
	Modal         ModalState `json:"modal"`
	Selected      *T         `json:"selected,omitempty"`
}

// ListController is the per-resource page state machine: filters and
// pagination, view/edit modals, mutation-then-reload, and a generation
// counter that discards stale list responses when filters change faster
// than the round trip.
type ListController[T any, Q any] struct {
	ops Ops[T, Q]
	log *zap.Logger

	mu            sync.Mutex
	gen           uint64
	loaded        bool
	page          int
	size          int
	filters       Q
	content       []T
	totalPages    int
	totalElements int64
	modal         ModalState
	selected      *T
	draft         any
}

func NewListController[T any, Q any](ops Ops[T, Q], log *zap.Logger) *ListController[T, Q] {
	return &ListController[T, Q]{
		ops:     ops,
		log:     log,
		content: []T{},
		modal:   ModalNone,
	}
}

// Load fetches a page for the given pagination and filter state. On failure
// the prior content is kept and the error returned alongside the unchanged
// view. A response that resolves after a newer Load has been issued is
// discarded.
func (c *ListController[T, Q]) Load(ctx context.Context, page, size int, filters Q) (*PageView[T], error) {
	c.mu.Lock()
	c.gen++
	token := c.gen
	c.page = page
	c.size = size
	c.filters = filters
	c.mu.Unlock()

	result, err := c.ops.Fetch(ctx, page, size, filters)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.gen {
		// Stale response: a newer request owns the page state now
		c.log.Debug("Discarding stale list response",
			zap.String("resource", c.ops.Resource),
			zap.Uint64("token", token),
			zap.Uint64("current", c.gen),
		)
		return c.snapshotLocked(), nil
	}

	if err != nil {
		c.log.Error("List fetch failed, keeping prior content",
			zap.String("resource", c.ops.Resource),
			zap.Int("page", page),
			zap.Error(err),
		)
		return c.snapshotLocked(), err
	}

	c.loaded = true
	c.content = result.Content
	c.totalPages = result.TotalPages
	c.totalElements = result.TotalElements

	return c.snapshotLocked(), nil
}

// Reload re-fetches with the current pagination and filter state. Every
// mutation funnels through here: full re-fetch, never an optimistic patch.
func (c *ListController[T, Q]) Reload(ctx context.Context) (*PageView[T], error) {
	c.mu.Lock()
	page, size, filters := c.page, c.size, c.filters
	c.mu.Unlock()

	return c.Load(ctx, page, size, filters)
}

// View returns the current snapshot without fetching
func (c *ListController[T, Q]) View() *PageView[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Search filters the currently loaded page's rows. This is page-scoped by
// design: it refines what is visible, it is not a cross-page query.
func (c *ListController[T, Q]) Search(term string) []T {
	c.mu.Lock()
	content := c.content
	c.mu.Unlock()

	term = strings.TrimSpace(term)
	if term == "" || c.ops.Match == nil {
		return content
	}

	matched := []T{}
	for i := range content {
		if c.ops.Match(&content[i], term) {
			matched = append(matched, content[i])
		}
	}
	return matched
}

// OpenView fetches the full record by id and opens the view modal
func (c *ListController[T, Q]) OpenView(ctx context.Context, id string) (*T, error) {
	item, err := c.ops.Get(ctx, id)
	if err != nil {
		c.log.Warn("Failed to open detail view",
			zap.String("resource", c.ops.Resource),
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, err
	}

	c.mu.Lock()
	c.modal = ModalView
	c.selected = item
	c.draft = nil
	c.mu.Unlock()

	return item, nil
}

// OpenEdit seeds a draft from the selected row and opens the edit modal.
// The row is taken from the loaded page when present, fetched otherwise.
func (c *ListController[T, Q]) OpenEdit(ctx context.Context, id string) (any, error) {
	if c.ops.SeedDraft == nil || c.ops.Update == nil {
		return nil, fmt.Errorf("%s is not editable", c.ops.Resource)
	}

	var item *T

	c.mu.Lock()
	for i := range c.content {
		if c.ops.ID(&c.content[i]) == id {
			item = &c.content[i]
			break
		}
	}
	c.mu.Unlock()

	if item == nil {
		fetched, err := c.ops.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		item = fetched
	}

	draft := c.ops.SeedDraft(item)

	c.mu.Lock()
	c.modal = ModalEdit
	c.selected = item
	c.draft = draft
	c.mu.Unlock()

	return draft, nil
}

// SaveEdit submits the draft for the selected entity, closes the modal and
// reloads the list
func (c *ListController[T, Q]) SaveEdit(ctx context.Context, draft any) (*PageView[T], error) {
	if c.ops.Update == nil {
		return nil, fmt.Errorf("%s is not editable", c.ops.Resource)
	}

	c.mu.Lock()
	if c.modal != ModalEdit || c.selected == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("no edit in progress")
	}
	id := c.ops.ID(c.selected)
	c.mu.Unlock()

	if _, err := c.ops.Update(ctx, id, draft); err != nil {
		// Modal stays open so the draft is not lost
		return c.View(), err
	}

	c.closeModal()
	return c.Reload(ctx)
}

// ChangeStatus transitions the entity's status. Values outside the allowed
// enum are rejected here, before any dispatch. Any open modal closes and
// the list reloads.
func (c *ListController[T, Q]) ChangeStatus(ctx context.Context, id, status string) (*PageView[T], error) {
	if c.ops.SetStatus == nil {
		return nil, fmt.Errorf("%s does not support status changes", c.ops.Resource)
	}
	if !c.statusAllowed(status) {
		c.log.Warn("Rejected status outside enum",
			zap.String("resource", c.ops.Resource),
			zap.String("id", id),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if _, err := c.ops.SetStatus(ctx, id, status); err != nil {
		return c.View(), err
	}

	c.closeModal()
	return c.Reload(ctx)
}

// Delete removes the entity and reloads. Deleting an already-deleted id
// surfaces the backend's NotFound; nothing else is touched.
func (c *ListController[T, Q]) Delete(ctx context.Context, id string) (*PageView[T], error) {
	if err := c.ops.Delete(ctx, id); err != nil {
		return c.View(), err
	}

	c.closeModal()
	return c.Reload(ctx)
}

// CloseModal returns the page to its idle state
func (c *ListController[T, Q]) CloseModal() {
	c.closeModal()
}

func (c *ListController[T, Q]) closeModal() {
	c.mu.Lock()
	c.modal = ModalNone
	c.selected = nil
	c.draft = nil
	c.mu.Unlock()
}

func (c *ListController[T, Q]) statusAllowed(status string) bool {
	for _, allowed := range c.ops.AllowedStatuses {
		if status == allowed {
			return true
		}
	}
	return false
}

func (c *ListController[T, Q]) snapshotLocked() *PageView[T] {
	items := make([]T, len(c.content))
	copy(items, c.content)

	return &PageView[T]{
		Items:         items,
		Page:          c.page,
		Size:          c.size,
		TotalPages:    c.totalPages,
		TotalElements: c.totalElements,
		HasPrev:       utils.HasPrevPage(c.page),
		HasNext:       utils.HasNextPage(c.page, c.totalPages),
		Modal:         c.modal,
		Selected:      c.selected,
	}
}
