package response

import "foodgram-admin/internal/data/entity"

// AdminProfile is the identity exposed to console views; the bearer token
// never leaves the session store
type AdminProfile struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func NewAdminProfile(admin *entity.AdminSession) *AdminProfile {
	if admin == nil {
		return nil
	}
	return &AdminProfile{
		UserID:   admin.UserID,
		Email:    admin.Email,
		FullName: admin.FullName,
		Role:     string(admin.Role),
		Status:   string(admin.Status),
	}
}

// LoginResult reports the outcome of a login attempt. Failure carries the
// backend's message verbatim and never persists a session.
type LoginResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Admin   *AdminProfile `json:"admin,omitempty"`
}
