package handler

import "time"

type createJobRequest struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	Location     string   `json:"location"     validate:"required"`
	Category     string   `json:"category"`
	Phone        string   `json:"phone"        validate:"required"`
	WhatsApp     string   `json:"whatsapp"`
	BusinessType string   `json:"businessType"`
	Salary       string   `json:"salary"`
	Requirements []string `json:"requirements"`
}

// updateJobRequest lists the only fields an owner may change. Absent fields
// stay nil and are left untouched.
type updateJobRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	Category     *string  `json:"category"`
	Phone        *string  `json:"phone"`
	WhatsApp     *string  `json:"whatsapp"`
	BusinessType *string  `json:"businessType"`
	Salary       *string  `json:"salary"`
	Requirements []string `json:"requirements"`
	IsActive     *bool    `json:"isActive"`
}

type jobResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Phone        string    `json:"phone"`
	WhatsApp     string    `json:"whatsapp,omitempty"`
	BusinessType string    `json:"businessType"`
	EmployerID   string    `json:"employerId"`
	EmployerName string    `json:"employerName"`
	Salary       string    `json:"salary,omitempty"`
	Requirements []string  `json:"requirements"`
	IsActive     bool      `json:"isActive"`
	Applicants   []string  `json:"applicants"`
	Views        int64     `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type jobEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Job     jobResponse `json:"job"`
}

type listJobsResponse struct {
	Success     bool          `json:"success"`
	Jobs        []jobResponse `json:"jobs"`
	Total       int64         `json:"total"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

type myJobsResponse struct {
	Success bool          `json:"success"`
	Jobs    []jobResponse `json:"jobs"`
}
