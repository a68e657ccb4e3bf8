package domain

import "time"

// ApplicationStatus is the employer's decision on an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Applicant is the employee snapshot stored with an application.
type Applicant struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Application links an employee to a job posting.
type Application struct {
	ID         string            `json:"id"`
	JobID      string            `json:"jobId"`
	EmployeeID string            `json:"employeeId"`
	EmployerID string            `json:"employerId"`
	Applicant  Applicant         `json:"applicant"`
	Status     ApplicationStatus `json:"status"`
	Message    string            `json:"message,omitempty"`
	AppliedAt  time.Time         `json:"appliedAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
