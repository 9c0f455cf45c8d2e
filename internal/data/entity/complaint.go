package entity

type ComplaintStatus string

const (
	ComplaintNew        ComplaintStatus = "new"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintNew, ComplaintInProgress, ComplaintResolved, ComplaintClosed:
		return true
	}
	return false
}

// ComplaintStatuses lists every status the console may set on a complaint
var ComplaintStatuses = []ComplaintStatus{
	ComplaintNew,
	ComplaintInProgress,
	ComplaintResolved,
	ComplaintClosed,
}

// Complaint record as the backend serves it. Once closed, the admin
// response may no longer be edited.
type Complaint struct {
	ComplaintID   string          `json:"complaintId"`
	UserName      string          `json:"userName"`
	UserEmail     string          `json:"userEmail"`
	OrderID       string          `json:"orderId,omitempty"`
	Message       string          `json:"message"`
	AdminResponse string          `json:"adminResponse,omitempty"`
	Status        ComplaintStatus `json:"status"`
	CreatedAt     string          `json:"createdAt"`
}

// AcceptsResponse reports whether the admin may still add or edit a response
func (c *Complaint) AcceptsResponse() bool {
	return c.Status != ComplaintClosed
}
