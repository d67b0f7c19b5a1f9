package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything longer
)

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Users        repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	users        repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		users:        params.Users,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user and its profile in one identity store transaction.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)

	fields := domainerrors.FieldErrors{}
	if name == "" {
		fields["name"] = "required"
	}
	if err := srv.validate.Var(email, "required,email"); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if n := len(input.Password); n < minPasswordLength || n > maxPasswordLength {
		fields["password"] = "must be between 8 and 72 characters"
	}
	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now()
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.InIdentityStore(ctx, func(repos repository.IdentityRepositoryFactory) error {
		return repos.NewUserRepository().CreateUser(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Uint64("user_id", uint64(user.ID)))

	return srv.issueToken(user)
}

// Login checks the credentials and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	user, err := srv.users.FindUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Uint64("user_id", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(user)
}

func (srv *accountService) issueToken(user *entity.User) (*usecase.AuthResult, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthResult{User: user, AccessToken: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
