package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/powerline/gridstock/internal/domain"
	"github.com/powerline/gridstock/pkg/ctxutil"
)

// Login authenticates by username and password and issues an access token.
// Returns ErrUnauthorized for both unknown usernames and wrong passwords.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Best-effort bookkeeping; an audit timestamp must not block the login.
	if err := s.users.TouchLastLogin(ctx, user.ID, s.now()); err != nil {
		s.log.WarnContext(ctx, "touch last login failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
	)

	return &AuthResult{AccessToken: token, User: user}, nil
}

// Me returns the profile of the user authenticated in the context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}
	return user, nil
}
