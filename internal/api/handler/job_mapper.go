package handler

import (
	"github.com/kazimashinani/jobboard/internal/core/domain"
	"github.com/kazimashinani/jobboard/internal/core/ports"
)

func toCreateJobInput(req createJobRequest) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Category:     req.Category,
		Phone:        req.Phone,
		WhatsApp:     req.WhatsApp,
		BusinessType: req.BusinessType,
		Salary:       req.Salary,
		Requirements: req.Requirements,
	}
}

func toJobPatch(req updateJobRequest) domain.JobPatch {
	return domain.JobPatch{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Category:     req.Category,
		Phone:        req.Phone,
		WhatsApp:     req.WhatsApp,
		BusinessType: req.BusinessType,
		Salary:       req.Salary,
		Requirements: req.Requirements,
		IsActive:     req.IsActive,
	}
}

func toJobResponse(j *domain.Job) jobResponse {
	requirements := j.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	applicants := j.Applicants
	if applicants == nil {
		applicants = []string{}
	}
	return jobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		Location:     j.Location,
		Category:     j.Category,
		Phone:        j.Phone,
		WhatsApp:     j.WhatsApp,
		BusinessType: j.BusinessType,
		EmployerID:   j.EmployerID,
		EmployerName: j.EmployerName,
		Salary:       j.Salary,
		Requirements: requirements,
		IsActive:     j.IsActive,
		Applicants:   applicants,
		Views:        j.Views,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func toJobResponses(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return out
}
