package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopkart/internal/data/entity"
	"shopkart/internal/data/repository"
	"shopkart/internal/dto/request"

	"go.uber.org/zap"
)

type UserService interface {
	UpdateProfile(ctx context.Context, user *entity.User, req *request.UpdateProfileRequest) (*entity.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

// UpdateProfile applies the patch fields that pass their rules and silently
// ignores the rest: name only when its trimmed length is at least 2, gender
// only when non-empty.
func (s *userService) UpdateProfile(ctx context.Context, user *entity.User, req *request.UpdateProfileRequest) (*entity.User, error) {
	changed := false

	if req.Name != nil {
		if name := strings.TrimSpace(*req.Name); len(name) >= 2 {
			user.Name = name
			changed = true
		}
	}
	if req.Gender != nil && *req.Gender != "" {
		user.Gender = *req.Gender
		changed = true
	}

	if !changed {
		return user, nil
	}

	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", user.ID.String()))
	return user, nil
}
