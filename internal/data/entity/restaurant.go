package entity

// Restaurant record as the backend serves it. Created pending, becomes
// verified or rejected; editable and deletable regardless.
type Restaurant struct {
	RestaurantID       string             `json:"restaurantId"`
	Name               string             `json:"name"`
	CuisineType        string             `json:"cuisineType"`
	ContactNumber      string             `json:"contactNumber"`
	Address            string             `json:"address"`
	OpenTime           string             `json:"openTime"`
	CloseTime          string             `json:"closeTime"`
	Rating             float64            `json:"rating"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
}
