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

type RestaurantHandler struct {
	service     usecase.RestaurantService
	ctrl        *console.ListController[entity.Restaurant, console.RestaurantFilters]
	defaultSize int
	maxSize     int
	log         *zap.Logger
}

func NewRestaurantHandler(
	service usecase.RestaurantService,
	ctrl *console.ListController[entity.Restaurant, console.RestaurantFilters],
	config *utils.Config,
	log *zap.Logger,
) *RestaurantHandler {
	return &RestaurantHandler{
		service:     service,
		ctrl:        ctrl,
		defaultSize: config.Console.DefaultPageSize,
		maxSize:     config.Console.MaxPageSize,
		log:         log,
	}
}

// List handles GET /console/restaurants
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParsePage(query.Get("page"))
	size := utils.ParseSize(query.Get("size"), h.defaultSize, h.maxSize)

	filters := console.RestaurantFilters{
		VerificationStatus: normalizeFilter(query.Get("verificationStatus")),
		CuisineType:        normalizeFilter(query.Get("cuisineType")),
	}

	view, err := h.ctrl.Load(r.Context(), page, size, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get all restaurants")
		return
	}

	if term := query.Get("q"); term != "" {
		view.Items = h.ctrl.Search(term)
	}

	utils.ResponseSuccess(w, "Restaurants retrieved successfully", view)
}

// Pending handles GET /console/restaurants/pending
func (h *RestaurantHandler) Pending(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.Pending(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get pending restaurants")
		return
	}

	utils.ResponseSuccess(w, "Pending restaurants retrieved successfully", restaurants)
}

// Get handles GET /console/restaurants/{id}
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	restaurant, err := h.ctrl.OpenView(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant retrieved successfully", restaurant)
}

// Update handles PUT /console/restaurants/{id}
func (h *RestaurantHandler) Update(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var draft request.RestaurantDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if _, err := h.ctrl.OpenEdit(r.Context(), restaurantID); err != nil {
		handleServiceError(w, h.log, err, "edit restaurant")
		return
	}

	view, err := h.ctrl.SaveEdit(r.Context(), &draft)
	if err != nil {
		handleServiceError(w, h.log, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant updated successfully", view)
}

// UpdateVerification handles PATCH /console/restaurants/{id}/verification?status=
func (h *RestaurantHandler) UpdateVerification(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	status := r.URL.Query().Get("status")
	if restaurantID == "" || status == "" {
		utils.ResponseBadRequest(w, "Restaurant ID and status are required", nil)
		return
	}

	view, err := h.ctrl.ChangeStatus(r.Context(), restaurantID, status)
	if err != nil {
		handleServiceError(w, h.log, err, "update restaurant verification")
		return
	}

	utils.ResponseSuccess(w, "Restaurant "+status+" successfully", view)
}

// Delete handles DELETE /console/restaurants/{id}
func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	view, err := h.ctrl.Delete(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete restaurant")
		return
	}

	utils.ResponseSuccess(w, "Restaurant deleted successfully", view)
}
