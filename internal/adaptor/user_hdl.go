package adaptor

import (
	"encoding/json"
	"net/http"

	"foodgram-admin/internal/console"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service     usecase.UserService
	ctrl        *console.ListController[entity.User, console.UserFilters]
	defaultSize int
	maxSize     int
	log         *zap.Logger
}

func NewUserHandler(
	service usecase.UserService,
	ctrl *console.ListController[entity.User, console.UserFilters],
	config *utils.Config,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		service:     service,
		ctrl:        ctrl,
		defaultSize: config.Console.DefaultPageSize,
		maxSize:     config.Console.MaxPageSize,
		log:         log,
	}
}

// List handles GET /console/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParsePage(query.Get("page"))
	size := utils.ParseSize(query.Get("size"), h.defaultSize, h.maxSize)

	filters := console.UserFilters{
		Role:   normalizeFilter(query.Get("role")),
		Status: normalizeFilter(query.Get("status")),
	}

	view, err := h.ctrl.Load(r.Context(), page, size, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	// Page-scoped search refinement
	if term := query.Get("q"); term != "" {
		view.Items = h.ctrl.Search(term)
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", view)
}

// Get handles GET /console/users/{id}: opens the detail view
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	user, err := h.ctrl.OpenView(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// ByRole handles GET /console/users/role/{role}
func (h *UserHandler) ByRole(w http.ResponseWriter, r *http.Request) {
	role := chi.URLParam(r, "role")

	users, err := h.service.ByRole(r.Context(), role)
	if err != nil {
		handleServiceError(w, h.log, err, "get users by role")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// Update handles PUT /console/users/{id}: seeds the edit draft, applies the
// submitted fields and saves
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var draft request.UserDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if _, err := h.ctrl.OpenEdit(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "edit user")
		return
	}

	view, err := h.ctrl.SaveEdit(r.Context(), &draft)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", view)
}

// UpdateStatus handles PATCH /console/users/{id}/status?status=
func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	status := r.URL.Query().Get("status")
	if userID == "" || status == "" {
		utils.ResponseBadRequest(w, "User ID and status are required", nil)
		return
	}

	view, err := h.ctrl.ChangeStatus(r.Context(), userID, status)
	if err != nil {
		handleServiceError(w, h.log, err, "update user status")
		return
	}

	utils.ResponseSuccess(w, "User status updated to "+status, view)
}

// Delete handles DELETE /console/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	view, err := h.ctrl.Delete(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", view)
}
