package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"brand-dna/internal/domain"
	"brand-dna/internal/repository"
)

// UserService coordina reglas de negocio para usuarios.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewUserService(logger *zap.Logger, users repository.UserRepository) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{logger: logger, users: users}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLength = 8

type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return domain.User{}, ErrInvalidEmail
	}
	if len(strings.TrimSpace(input.Password)) < minPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	normalized := normalizeEmail(email)
	if normalized == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	e := lowerTrim(email)
	at := strings.Index(e, "@")
	if at <= 0 || at == len(e)-1 || !strings.Contains(e[at:], ".") {
		return ""
	}
	return e
}
