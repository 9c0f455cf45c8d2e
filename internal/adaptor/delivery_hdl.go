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

type DeliveryPersonHandler struct {
	service     usecase.DeliveryPersonService
	ctrl        *console.ListController[entity.DeliveryPerson, console.DeliveryPersonFilters]
	defaultSize int
	maxSize     int
	log         *zap.Logger
}

func NewDeliveryPersonHandler(
	service usecase.DeliveryPersonService,
	ctrl *console.ListController[entity.DeliveryPerson, console.DeliveryPersonFilters],
	config *utils.Config,
	log *zap.Logger,
) *DeliveryPersonHandler {
	return &DeliveryPersonHandler{
		service:     service,
		ctrl:        ctrl,
		defaultSize: config.Console.DefaultPageSize,
		maxSize:     config.Console.MaxPageSize,
		log:         log,
	}
}

// List handles GET /console/delivery-persons
func (h *DeliveryPersonHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParsePage(query.Get("page"))
	size := utils.ParseSize(query.Get("size"), h.defaultSize, h.maxSize)

	filters := console.DeliveryPersonFilters{
		VerificationStatus: normalizeFilter(query.Get("verificationStatus")),
		OperatingArea:      normalizeFilter(query.Get("operatingArea")),
	}

	view, err := h.ctrl.Load(r.Context(), page, size, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get all delivery persons")
		return
	}

	if term := query.Get("q"); term != "" {
		view.Items = h.ctrl.Search(term)
	}

	utils.ResponseSuccess(w, "Delivery persons retrieved successfully", view)
}

// Pending handles GET /console/delivery-persons/pending
func (h *DeliveryPersonHandler) Pending(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParsePage(query.Get("page"))
	size := utils.ParseSize(query.Get("size"), h.defaultSize, h.maxSize)

	persons, err := h.service.Pending(r.Context(), page, size)
	if err != nil {
		handleServiceError(w, h.log, err, "get pending delivery persons")
		return
	}

	utils.ResponseSuccess(w, "Pending delivery persons retrieved successfully", persons)
}

// Get handles GET /console/delivery-persons/{id}
func (h *DeliveryPersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	if personID == "" {
		utils.ResponseBadRequest(w, "Delivery person ID is required", nil)
		return
	}

	person, err := h.ctrl.OpenView(r.Context(), personID)
	if err != nil {
		handleServiceError(w, h.log, err, "get delivery person")
		return
	}

	utils.ResponseSuccess(w, "Delivery person retrieved successfully", person)
}

// Update handles PUT /console/delivery-persons/{id}
func (h *DeliveryPersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	if personID == "" {
		utils.ResponseBadRequest(w, "Delivery person ID is required", nil)
		return
	}

	var draft request.DeliveryPersonDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if _, err := h.ctrl.OpenEdit(r.Context(), personID); err != nil {
		handleServiceError(w, h.log, err, "edit delivery person")
		return
	}

	view, err := h.ctrl.SaveEdit(r.Context(), &draft)
	if err != nil {
		handleServiceError(w, h.log, err, "update delivery person")
		return
	}

	utils.ResponseSuccess(w, "Delivery person updated successfully", view)
}

// UpdateVerification handles PATCH /console/delivery-persons/{id}/verification?status=
func (h *DeliveryPersonHandler) UpdateVerification(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	status := r.URL.Query().Get("status")
	if personID == "" || status == "" {
		utils.ResponseBadRequest(w, "Delivery person ID and status are required", nil)
		return
	}

	view, err := h.ctrl.ChangeStatus(r.Context(), personID, status)
	if err != nil {
		handleServiceError(w, h.log, err, "update delivery person verification")
		return
	}

	utils.ResponseSuccess(w, "Delivery person "+status+" successfully", view)
}

// Delete handles DELETE /console/delivery-persons/{id}
func (h *DeliveryPersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	if personID == "" {
		utils.ResponseBadRequest(w, "Delivery person ID is required", nil)
		return
	}

	view, err := h.ctrl.Delete(r.Context(), personID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete delivery person")
		return
	}

	utils.ResponseSuccess(w, "Delivery person deleted successfully", view)
}
