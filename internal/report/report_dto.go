package report

import "go-portal/internal/notification"

type CreateReportRequest struct {
	Title    string  `json:"title" binding:"required,max=200"`
	Type     string  `json:"type" binding:"required,oneof='Daily Report' 'Weekly Report' 'Incident Report' 'Progress Update' 'Issue Report'"`
	Content  string  `json:"content" binding:"required"`
	ProofURL *string `json:"proof_url" binding:"omitempty,max=500"`
}

type ReportResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	ReferenceNumber string  `json:"reference_number"`
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Content         string  `json:"content"`
	ProofURL        *string `json:"proof_url,omitempty"`
	ApproverID      *string `json:"approver_id,omitempty"`
	Status          string  `json:"status"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type DecisionResponse struct {
	Report       ReportResponse               `json:"report"`
	Notification notification.DeliveryOutcome `json:"notification"`
}
