package handler

import "github.com/kazimashinani/jobboard/internal/core/domain"

func toApplicationResponse(a *domain.Application) applicationResponse {
	return applicationResponse{
		ID:         a.ID,
		JobID:      a.JobID,
		EmployeeID: a.EmployeeID,
		EmployerID: a.EmployerID,
		Applicant: applicantResponse{
			Name:     a.Applicant.Name,
			Phone:    a.Applicant.Phone,
			Location: a.Applicant.Location,
		},
		Status:    string(a.Status),
		Message:   a.Message,
		AppliedAt: a.AppliedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toApplicationResponses(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}
	return out
}
