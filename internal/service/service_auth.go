package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/models"
)

// authService is the concrete implementation of AuthService.
// It looks users up by email through a UserRepository and compares the
// supplied password against the stored bcrypt digest.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// hasher verifies plaintext passwords against stored digests.
	hasher *utils.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher *utils.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Authenticate verifies a Basic credential pair.
//
// Both email and password must be non-empty. The reason of a rejection is
// logged but never returned: callers only see [ErrAccessDenied].
//
// Returns the authenticated user or:
//   - ErrAccessDenied if a credential is empty, the email is unknown or the
//     password does not match.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Warn().Msg("authentication failed: credentials are incomplete")
		return models.User{}, ErrAccessDenied
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", email).Msg("authentication failed: user not found")
		return models.User{}, ErrAccessDenied
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(password, user.Password) {
		log.Warn().Int64("user_id", user.UserID).Msg("authentication failed: wrong password")
		return models.User{}, ErrAccessDenied
	}

	log.Debug().Int64("user_id", user.UserID).Msg("authentication successful")
	return user, nil
}
