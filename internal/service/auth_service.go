package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"itda/internal/auth"
	apperrors "itda/internal/errors"
	"itda/internal/model"
	"itda/internal/repository"
)

// RegisterInput carries a registration request after binding.
type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Phone      string
	Role       model.Role
	BrokerInfo *model.BrokerProfile
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	guard      auth.LoginGuardInterface
	cost       int
	dummyHash  []byte
}

// NewAuthService creates a new authentication service. cost is the bcrypt
// work factor for new password hashes.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, guard auth.LoginGuardInterface, cost int) AuthService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	// Unknown emails are compared against this hash so both failure paths
	// spend one bcrypt comparison.
	dummy, err := bcrypt.GenerateFromPassword([]byte("itda-dummy-password"), cost)
	if err != nil {
		slog.Warn("generate dummy hash", "error", err)
	}
	return &authService{
		users:      users,
		jwtService: jwtService,
		guard:      guard,
		cost:       cost,
		dummyHash:  dummy,
	}
}

// Register creates a member or broker account and returns a signed token.
func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *model.User, error) {
	email := model.NormalizeEmail(in.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", nil, fmt.Errorf("check email: %w", err)
	}

	role := in.Role
	if role == "" {
		role = model.RoleMember
	}
	if !role.Valid() {
		return "", nil, apperrors.NewValidationError("role", "must be one of [member broker]")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Phone:        in.Phone,
		Role:         role,
	}
	if role == model.RoleBroker && in.BrokerInfo != nil {
		profile := *in.BrokerInfo
		profile.Verified = false
		user.BrokerInfo = &profile
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateEmail) {
			return "", nil, err
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials. Unknown email and wrong password both yield
// ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	email = model.NormalizeEmail(email)

	allowed, _ := s.guard.Allowed(ctx, email)
	if !allowed {
		return "", nil, apperrors.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("find user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		_ = s.guard.RecordFailure(ctx, email)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		_ = s.guard.RecordFailure(ctx, email)
		return "", nil, apperrors.ErrInvalidCredentials
	}
	_ = s.guard.Reset(ctx, email)

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}
