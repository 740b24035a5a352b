// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "collegeblog/internal/delivery/context"
	"collegeblog/internal/domain/entity"
	domainerrors "collegeblog/internal/domain/errors"
	"collegeblog/internal/domain/repository"
	"collegeblog/internal/domain/service"
	"collegeblog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Register creates an account and signs the caller in. The email lookup and the
// insert are separate statements; a concurrent registration of the same email
// loses on the unique index and surfaces as a database error.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, email already registered", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up email during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         entity.Role(input.Role),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("user_id", user.ID))

	return &usecase.AuthOutput{Token: token, User: user.Summary()}, nil
}

// Login verifies credentials. An unknown email and a wrong password produce the
// same error so callers cannot probe which emails are registered.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Login failed, unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up email during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unusable", slog.Int64("user_id", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}
	if !ok {
		srv.log(ctx).Debug("Login failed, password mismatch", slog.Int64("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Token: token, User: user.Summary()}, nil
}

func (srv *userService) issueToken(ctx context.Context, user *entity.User) (string, error) {
	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Int64("user_id", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}
