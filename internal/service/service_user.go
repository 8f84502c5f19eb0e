package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-courses-api/internal/logger"
	"github.com/MKhiriev/go-courses-api/internal/store"
	"github.com/MKhiriev/go-courses-api/internal/utils"
	"github.com/MKhiriev/go-courses-api/internal/validators"
	"github.com/MKhiriev/go-courses-api/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         *utils.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher *utils.PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// RegisterUser hashes the password, validates the payload and persists the
// new account.
//
// The password is hashed before validation, so the rules see the digest.
// An empty password is not hashed and is treated as absent.
//
// Returns the created user or:
//   - *validators.ValidationError of KindValidation listing every violated
//     rule.
//   - *validators.ValidationError of KindUniqueness when the email address
//     is taken.
//   - A wrapped error for any other failure.
func (s *userService) RegisterUser(ctx context.Context, request models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Password != nil {
		digest, err := s.hasher.Hash(*request.Password)
		if err != nil {
			log.Err(err).Msg("error hashing password")
			return models.User{}, err
		}

		request.Password = nil
		if digest != "" {
			request.Password = &digest
		}
	}

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Msg("user payload is invalid")
		return models.User{}, err
	}

	user := models.User{
		FirstName:    *request.FirstName,
		LastName:     *request.LastName,
		EmailAddress: *request.EmailAddress,
		Password:     *request.Password,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Debug().Str("email", user.EmailAddress).Msg("email address is already registered")
		return models.User{}, validators.NewUniquenessError(validators.MsgEmailAlreadyExists)
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user registered")
	return created, nil
}

// ListUsers returns the public projection of every user.
func (s *userService) ListUsers(ctx context.Context) ([]models.UserProjection, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	projections := make([]models.UserProjection, 0, len(users))
	for _, user := range users {
		projections = append(projections, user.Projection())
	}

	return projections, nil
}
