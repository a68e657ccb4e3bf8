package handler

import "github.com/kazimashinani/jobboard/internal/core/domain"

func toIdentityResponse(i *domain.Identity) identityResponse {
	return identityResponse{
		ID:         i.ID,
		Name:       i.Name,
		Phone:      i.Phone,
		Email:      i.Email,
		Role:       i.Role,
		Location:   i.Location,
		IsVerified: i.IsVerified,
		CreatedAt:  i.CreatedAt,
		LastLogin:  i.LastLogin,
	}
}
