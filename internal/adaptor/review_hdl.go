package adaptor

import (
	"net/http"

	"foodgram-admin/internal/console"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service     usecase.ReviewService
	ctrl        *console.ListController[entity.Review, console.ReviewFilters]
	defaultSize int
	maxSize     int
	log         *zap.Logger
}

func NewReviewHandler(
	service usecase.ReviewService,
	ctrl *console.ListController[entity.Review, console.ReviewFilters],
	config *utils.Config,
	log *zap.Logger,
) *ReviewHandler {
	return &ReviewHandler{
		service:     service,
		ctrl:        ctrl,
		defaultSize: config.Console.DefaultPageSize,
		maxSize:     config.Console.MaxPageSize,
		log:         log,
	}
}

// List handles GET /console/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParsePage(query.Get("page"))
	size := utils.ParseSize(query.Get("size"), h.defaultSize, h.maxSize)

	filters := console.ReviewFilters{
		RestaurantID:     query.Get("restaurantId"),
		DeliveryPersonID: query.Get("deliveryPersonId"),
	}

	view, err := h.ctrl.Load(r.Context(), page, size, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get all reviews")
		return
	}

	if term := query.Get("q"); term != "" {
		view.Items = h.ctrl.Search(term)
	}

	utils.ResponseSuccess(w, "Reviews retrieved successfully", view)
}

// Get handles GET /console/reviews/{id}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.ctrl.OpenView(r.Context(), reviewID)
	if err != nil {
		handleServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "Review retrieved successfully", review)
}

// ByRestaurant handles GET /console/reviews/restaurant/{id}
func (h *ReviewHandler) ByRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	reviews, err := h.service.ByRestaurant(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant reviews")
		return
	}

	utils.ResponseSuccess(w, "Restaurant reviews retrieved successfully", reviews)
}

// ByDeliveryPerson handles GET /console/reviews/delivery-person/{id}
func (h *ReviewHandler) ByDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")

	reviews, err := h.service.ByDeliveryPerson(r.Context(), personID)
	if err != nil {
		handleServiceError(w, h.log, err, "get delivery person reviews")
		return
	}

	utils.ResponseSuccess(w, "Delivery person reviews retrieved successfully", reviews)
}

// RestaurantRating handles GET /console/reviews/restaurant/{id}/rating
func (h *ReviewHandler) RestaurantRating(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")

	rating, err := h.service.RestaurantRating(r.Context(), restaurantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get restaurant rating")
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved successfully", rating)
}

// DeliveryPersonRating handles GET /console/reviews/delivery-person/{id}/rating
func (h *ReviewHandler) DeliveryPersonRating(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")

	rating, err := h.service.DeliveryPersonRating(r.Context(), personID)
	if err != nil {
		handleServiceError(w, h.log, err, "get delivery person rating")
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved successfully", rating)
}

// Delete handles DELETE /console/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	view, err := h.ctrl.Delete(r.Context(), reviewID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", view)
}
