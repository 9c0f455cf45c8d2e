package entity

// DeliveryPerson wraps a platform user with courier details. Same
// pending/verified/rejected lifecycle as restaurants; the backend names
// the field "status" here rather than "verificationStatus".
type DeliveryPerson struct {
	DeliveryPersonID string             `json:"deliveryPersonId"`
	UserID           string             `json:"userId"`
	FullName         string             `json:"fullName"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	VehicleNumber    string             `json:"vehicleNumber"`
	OperatingArea    string             `json:"operatingArea"`
	Earnings         float64            `json:"earnings"`
	Status           VerificationStatus `json:"status"`
}
