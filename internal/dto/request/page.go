package request

// PageQuery is the zero-indexed pagination request shared by every list view
type PageQuery struct {
	Page int `json:"page" validate:"gte=0"`
	Size int `json:"size" validate:"gte=1,lte=100"`
}

type UserListQuery struct {
	PageQuery
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

type RestaurantListQuery struct {
	PageQuery
	VerificationStatus string `json:"verificationStatus,omitempty"`
	CuisineType        string `json:"cuisineType,omitempty"`
}

type DeliveryPersonListQuery struct {
	PageQuery
	VerificationStatus string `json:"verificationStatus,omitempty"`
	OperatingArea      string `json:"operatingArea,omitempty"`
}

type ComplaintListQuery struct {
	PageQuery
	Status string `json:"status,omitempty"`
}

type ReviewListQuery struct {
	PageQuery
	RestaurantID     string `json:"restaurantId,omitempty"`
	DeliveryPersonID string `json:"deliveryPersonId,omitempty"`
}
