package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/presensia/presensia-backend-go/internal/domain/auth"
	"github.com/presensia/presensia-backend-go/internal/domain/user"
	"github.com/presensia/presensia-backend-go/internal/pkg/database"
	"github.com/presensia/presensia-backend-go/internal/pkg/jwt"
	"github.com/presensia/presensia-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db         *database.DB
	jwtService jwt.Service
	userRepo   user.UserRepository
	tokenRepo  postgresql.RefreshTokenRepository
}

func NewAuthService(
	db *database.DB,
	jwtService jwt.Service,
	userRepo user.UserRepository,
	tokenRepo postgresql.RefreshTokenRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:         db,
		jwtService: jwtService,
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if !userData.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var response auth.LoginResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		response.AccessToken, response.ExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}

		var refreshExpiresAt int64
		response.RefreshToken, refreshExpiresAt, err = a.jwtService.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.tokenRepo.CreateRefreshToken(txCtx, userData.ID, response.RefreshToken, refreshExpiresAt); err != nil {
			return fmt.Errorf("failed to save refresh token: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.LoginResponse{}, err
	}

	response.User = auth.UserResponse{
		ID:       userData.ID,
		Email:    userData.Email,
		FullName: userData.FullName,
		Role:     string(userData.Role),
	}

	return response, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		_, revoked, err := a.tokenRepo.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil // unknown token, nothing to revoke
			}
			return fmt.Errorf("failed to check refresh token: %w", err)
		}
		if revoked {
			return nil
		}

		if err := a.tokenRepo.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
		return nil
	})
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	userID, revoked, err := a.tokenRepo.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if revoked {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrUserNotFound
	}
	if !userData.IsActive {
		return auth.RefreshResponse{}, user.ErrUserInactive
	}

	var response auth.RefreshResponse
	response.AccessToken, response.ExpiresAt, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return response, nil
}
