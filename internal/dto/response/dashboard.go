package response

// DashboardStats is the aggregate summary shown on the dashboard. Every
// field defaults to zero; a failed branch of the fan-out leaves its
// statistic at zero instead of failing the whole aggregation.
type DashboardStats struct {
	TotalUsers                int64 `json:"totalUsers"`
	TotalCustomers            int64 `json:"totalCustomers"`
	TotalRestaurantOwners     int64 `json:"totalRestaurantOwners"`
	TotalDeliveryPersonsUsers int64 `json:"totalDeliveryPersonsUsers"`

	TotalRestaurants   int64 `json:"totalRestaurants"`
	PendingRestaurants int64 `json:"pendingRestaurants"`

	TotalDeliveryPersons   int64 `json:"totalDeliveryPersons"`
	PendingDeliveryPersons int64 `json:"pendingDeliveryPersons"`

	TotalComplaints int64 `json:"totalComplaints"`
	NewComplaints   int64 `json:"newComplaints"`

	TotalReviews int64 `json:"totalReviews"`

	// Order statistics are not served by the admin API yet
	TotalOrders      int64   `json:"totalOrders"`
	TodayRevenue     float64 `json:"todayRevenue"`
	ActiveDeliveries int64   `json:"activeDeliveries"`
	DeliveredToday   int64   `json:"deliveredToday"`
}
