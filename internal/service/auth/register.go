package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/powerline/gridstock/internal/domain"
)

// Register creates a new user account and issues an access token.
// Returns ErrAlreadyExists if the username is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Username = strings.TrimSpace(input.Username)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.State = strings.TrimSpace(input.State)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	role := domain.UserRole(input.Role)
	if input.Role == "" {
		role = domain.UserRoleEmployee
	}
	fullName := input.FullName
	if fullName == "" {
		fullName = input.Username
	}

	// Username uniqueness is enforced by the DB constraint.
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         role,
		State:        input.State,
		CreatedAt:    s.now(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Register generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &AuthResult{AccessToken: token, User: user}, nil
}
