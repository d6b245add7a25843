package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/commercebook/commerce-api/internal/core/domain"
	"github.com/commercebook/commerce-api/internal/core/ports"
)

// UserService implements registration and role lookup.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Register stores the profile document once per email. The profile is kept
// as-given, except that a plaintext "password" field, when present, is
// replaced with its bcrypt hash before hitting the store.
func (s *UserService) Register(ctx context.Context, profile map[string]any) (*ports.RegisterResult, error) {
	email, _ := profile["email"].(string)

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		s.log.Debug().Str("email", email).Msg("registration replay ignored")
		return &ports.RegisterResult{InsertedID: nil, Message: "user is already exist"}, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	if pw, ok := profile["password"].(string); ok && pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("register: hash password: %w", err)
		}
		delete(profile, "password")
		profile["passwordHash"] = string(hash)
	}

	id, err := s.repo.Insert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("email", email).Msg("user registered")
	return &ports.RegisterResult{InsertedID: &id}, nil
}

// Role returns the stored role for email; an unknown email yields "".
func (s *UserService) Role(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("role lookup: %w", err)
	}
	return user.Role, nil
}
