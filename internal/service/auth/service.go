package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/auth"
	"github.com/fleetworks/timesheet-backend-go/internal/domain/operator"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	// Login authenticates an operator by code and PIN and issues an access
	// token.
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
}

type AuthServiceImpl struct {
	operator.OperatorRepository
	jwtService jwt.Service
}

func NewAuthService(operatorRepo operator.OperatorRepository, jwtService jwt.Service) AuthService {
	return &AuthServiceImpl{
		OperatorRepository: operatorRepo,
		jwtService:         jwtService,
	}
}

// Login implements AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	op, err := a.OperatorRepository.GetByCode(ctx, req.OperatorCode)
	if err != nil {
		if errors.Is(err, operator.ErrOperatorNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up operator: %w", err)
	}

	if !op.Active {
		return auth.LoginResponse{}, operator.ErrOperatorInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PINHash), []byte(req.PIN)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(op.ID, op.Code, op.Name)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:  token,
		ExpiresAt:    expiresAt,
		OperatorID:   op.ID,
		OperatorName: op.Name,
	}, nil
}
