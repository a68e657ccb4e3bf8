package handler

import "time"

type applyRequest struct {
	Message string `json:"message" validate:"max=1000"`
}

type updateApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type applicantResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type applicationResponse struct {
	ID         string            `json:"id"`
	JobID      string            `json:"jobId"`
	EmployeeID string            `json:"employeeId"`
	EmployerID string            `json:"employerId"`
	Applicant  applicantResponse `json:"applicantDetails"`
	Status     string            `json:"status"`
	Message    string            `json:"message,omitempty"`
	AppliedAt  time.Time         `json:"appliedAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type applicationEnvelope struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Application applicationResponse `json:"application"`
}

type applicationsResponse struct {
	Success      bool                  `json:"success"`
	Applications []applicationResponse `json:"applications"`
}
