package leave

import "go-portal/internal/notification"

type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=Annual Sick Casual Unpaid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     string  `json:"reason"`
	ApproverID *string `json:"approver_id,omitempty"`
	Status     string  `json:"status"`
	DecidedAt  *string `json:"decided_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// DecisionResponse carries the two-phase outcome of an approval: the
// transition result plus the best-effort notification result, so callers can
// assert on both independently.
type DecisionResponse struct {
	Leave        LeaveResponse                `json:"leave"`
	Notification notification.DeliveryOutcome `json:"notification"`
}
