package entity

// AdminSession is the record returned by the login endpoint and persisted
// locally until logout or a 401. The token is opaque; no expiry is tracked
// client-side.
type AdminSession struct {
	UserID   string     `json:"userId"`
	Email    string     `json:"email"`
	FullName string     `json:"fullName"`
	Role     UserRole   `json:"role"`
	Status   UserStatus `json:"status"`
	Token    string     `json:"token"`
}

// IsAdmin reports whether the record may be accepted by the console
func (a *AdminSession) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
