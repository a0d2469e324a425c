//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
}

// TokenRevoker stores ids of logged-out tokens.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

type registration struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginResult is a signed token plus the authenticated user.
type LoginResult struct {
	Token string
	User  *models.UserDB
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	log := logger.FromContext(ctx)

	if err := validateStruct(registration{Username: username, Email: email, Password: password}); err != nil {
		return err
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		log.Infow("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), email); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			log.Infow("user already exists", "username", username, "email", email)
			return ErrUserAlreadyExists
		}
		log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user by email and returns a signed token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	log := logger.FromContext(ctx)

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		log.Infow("user does not exist", "email", email)
		return nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout revokes the presented token until it would have expired.
// Without a revocation store it is a no-op and clients discard the token.
func (svc *AuthService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if svc.revoker == nil || claims == nil || claims.TokenID == "" {
		return nil
	}

	if err := svc.revoker.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt)); err != nil {
		logger.FromContext(ctx).Errorw("failed to revoke token", "err", err, "user_id", claims.UserID)
		return err
	}
	return nil
}
