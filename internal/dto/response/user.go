package response

import (
	"time"

	"shopkart/internal/data/entity"
)

// UserResponse is the client user shape. The password hash never serializes.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"createdAt"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
	}
}
