package entity

// VerificationStatus gates whether a restaurant or delivery person is publicly active
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) Valid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// VerificationStatuses lists every value the console may set
var VerificationStatuses = []VerificationStatus{
	VerificationPending,
	VerificationVerified,
	VerificationRejected,
}
