package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown operators and wrong
// passwords so login failures don't leak which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, operatorID uuid.UUID) (*response.OperatorResponse, error)
}

type authService struct {
	operators repository.OperatorRepository
	sessions  repository.SessionRepository
	expiry    time.Duration
	log       *zap.Logger
}

func NewAuthService(operators repository.OperatorRepository, sessions repository.SessionRepository, expiryHours int, log *zap.Logger) AuthService {
	if expiryHours <= 0 {
		expiryHours = 24
	}

	return &authService{
		operators: operators,
		sessions:  sessions,
		expiry:    time.Duration(expiryHours) * time.Hour,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	operator, err := s.operators.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Operator login failed", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		OperatorID: operator.ID,
		Token:      utils.GenerateSessionToken(),
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
		ExpiresAt:  now.Add(s.expiry),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Operator logged in",
		zap.String("operator_id", operator.ID.String()),
		zap.String("email", operator.Email),
	)

	return &response.LoginResponse{
		Token:     session.Token,
		Name:      operator.Name,
		Email:     operator.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("Operator logged out")
	return nil
}

func (s *authService) Profile(ctx context.Context, operatorID uuid.UUID) (*response.OperatorResponse, error) {
	operator, err := s.operators.FindByID(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("get operator profile: %w", err)
	}

	return &response.OperatorResponse{
		ID:    operator.ID.String(),
		Name:  operator.Name,
		Email: operator.Email,
	}, nil
}
