package request

// Edit drafts: the editable subset of each record, seeded from the selected
// entity when an edit modal opens and sent back on save.

type UserDraft struct {
	FullName string `json:"fullName" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=7"`
	Role     string `json:"role" validate:"required,oneof=customer restaurant_owner delivery_person admin"`
}

type RestaurantDraft struct {
	Name          string `json:"name" validate:"required,min=2"`
	CuisineType   string `json:"cuisineType" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,min=7"`
	Address       string `json:"address" validate:"required"`
	OpenTime      string `json:"openTime" validate:"required"`
	CloseTime     string `json:"closeTime" validate:"required"`
}

type DeliveryPersonDraft struct {
	VehicleNumber string `json:"vehicleNumber" validate:"required"`
	OperatingArea string `json:"operatingArea" validate:"required"`
}

// ComplaintResponseDraft carries the admin's reply text
type ComplaintResponseDraft struct {
	Response string `json:"response" validate:"required,min=1"`
}
