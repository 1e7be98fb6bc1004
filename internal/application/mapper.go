package application

import (
	"users-api/internal/domain/entity"
	"users-api/pkg/timefmt"
)

func toResponse(u *entity.User, f *timefmt.Formatter) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: f.Format(u.CreatedAt),
	}
}

func toResponseList(users []*entity.User, f *timefmt.Formatter) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toResponse(u, f))
	}
	return out
}
