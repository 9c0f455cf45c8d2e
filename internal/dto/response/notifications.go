package response

// Notification is one actionable item in the console's notification feed
type Notification struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	RefID   string `json:"refId"`
}

const (
	NotificationRestaurantPending     = "restaurant_pending"
	NotificationDeliveryPersonPending = "delivery_person_pending"
	NotificationComplaintNew          = "complaint_new"
)

// NavBadges are the sidebar counts polled in the background
type NavBadges struct {
	Restaurants     int `json:"restaurants"`
	DeliveryPersons int `json:"deliveryPersons"`
	Complaints      int `json:"complaints"`
}
