package cms

import (
	"dashboard/internal/core/domain/model/session"
	"dashboard/internal/pkg/errs"
)

type userDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

type loginResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type meResponseDTO struct {
	User *userDTO `json:"user"`
}

func (dto userDTO) toDomain() (session.User, error) {
	if dto.ID == "" {
		return session.User{}, errs.NewValueIsRequiredError("user.id")
	}
	role, err := session.ParseRole(dto.Role)
	if err != nil {
		return session.User{}, err
	}

	return session.User{
		ID:       dto.ID,
		Email:    dto.Email,
		Role:     role,
		FullName: dto.FullName,
	}, nil
}
