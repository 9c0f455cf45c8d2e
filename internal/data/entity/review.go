package entity

// Review has no status lifecycle; the console can only inspect and delete it.
// A review targets either a restaurant or a delivery person, never both.
type Review struct {
	ReviewID         string `json:"reviewId"`
	UserName         string `json:"userName"`
	Rating           int    `json:"rating"`
	Comment          string `json:"comment"`
	RestaurantID     string `json:"restaurantId,omitempty"`
	DeliveryPersonID string `json:"deliveryPersonId,omitempty"`
	OrderID          string `json:"orderId,omitempty"`
	CreatedAt        string `json:"createdAt"`
}
