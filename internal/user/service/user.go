package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/user/auth"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/user/domain"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/user/notify"
	"github.com/Bilal-Raza-SWE/AutoMERNate/internal/user/repository"
	apperrors "github.com/Bilal-Raza-SWE/AutoMERNate/pkg/errors"
)

// bcryptCost is the cost factor for bcrypt password hashing.
const bcryptCost = 10

// UserService implements the business logic for account and auth operations.
type UserService struct {
	repo        repository.UserRepository
	tokens      *auth.Manager
	notifier    *notify.Client
	frontendURL string
	logger      *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(
	repo repository.UserRepository,
	tokens *auth.Manager,
	notifier *notify.Client,
	frontendURL string,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		repo:        repo,
		tokens:      tokens,
		notifier:    notifier,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// RegisterInput holds the parameters for registering a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateProfileInput holds the parameters for a self-service profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	Password *string
}

// AdminUpdateInput holds the parameters for an admin edit of another user.
type AdminUpdateInput struct {
	Name    *string
	Email   *string
	IsAdmin bool
}

// Register creates a new account and issues a session token.
// Duplicate emails fail with Conflict.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateSessionToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.Hex()),
		slog.String("email", user.Email),
	)

	return user, token, nil
}

// Login authenticates by email and password, issuing a session token.
// Unknown emails fail with NotFound, a failed hash comparison with Unauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperrors.NotFound("Invalid email address. Please check your email and try again.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperrors.Unauthorized("Invalid password. Please check your password and try again.")
	}

	token, err := s.tokens.GenerateSessionToken(user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("generate session token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.Hex()),
	)

	return user, token, nil
}

// GetByID returns a user by id, failing with NotFound when absent.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile applies a partial self-service update. A supplied password is
// re-hashed before persisting.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != "" {
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all non-admin accounts, failing with NotFound when empty.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.ListByAdminFlag(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.NotFound("No users found!")
	}
	return users, nil
}

// ListAdmins returns all admin accounts, failing with NotFound when empty.
func (s *UserService) ListAdmins(ctx context.Context) ([]domain.User, error) {
	admins, err := s.repo.ListByAdminFlag(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, apperrors.NotFound("No admins found!")
	}
	return admins, nil
}

// AdminUpdate applies an admin edit to the target user.
func (s *UserService) AdminUpdate(ctx context.Context, userID string, input AdminUpdateInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Email != nil && *input.Email != "" {
		user.Email = *input.Email
	}
	user.IsAdmin = input.IsAdmin

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the target user, failing with NotFound when absent.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.repo.Delete(ctx, userID)
}

// RequestPasswordReset issues a short-lived reset token for the account and
// best-effort relays the reset link through the notification service. A relay
// failure is logged but never fails the request.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	resetToken, err := s.tokens.GenerateResetToken(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken)
	subject, text, html := notify.ResetEmail(user.Name, resetLink)
	if err := s.notifier.SendEmail(ctx, user.Email, subject, text, html); err != nil {
		s.logger.ErrorContext(ctx, "failed to send password reset email",
			slog.String("user_id", user.ID.Hex()),
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.InfoContext(ctx, "password reset email sent",
			slog.String("user_id", user.ID.Hex()),
		)
	}

	return user, resetToken, nil
}

// ResetPassword redeems a reset token and persists a new password hash.
// A malformed or expired token fails with BadRequest.
func (s *UserService) ResetPassword(ctx context.Context, token, newPassword string) (*domain.User, error) {
	claims, err := s.tokens.ValidateResetToken(token)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid or expired reset token.")
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "password reset",
		slog.String("user_id", user.ID.Hex()),
	)

	return user, nil
}
