package admin

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/model"
	redisrepo "github.com/muhammadheryan/kidswear/repository/redis"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type AdminAppImpl struct {
	config *config.Config
	// sessions is nil when Redis is unavailable; admin login is then refused.
	sessions redisrepo.Repository
}

func NewAdminApp(config *config.Config, sessions redisrepo.Repository) AdminApp {
	return &AdminAppImpl{config: config, sessions: sessions}
}

func (s *AdminAppImpl) configured() bool {
	return s.sessions != nil && s.config.Auth.AdminPasswordHash != "" && s.config.Auth.JWTSecret != ""
}

func (s *AdminAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if !s.configured() {
		return nil, errors.SetNotConfiguredError("admin-auth")
	}

	// bcrypt runs regardless of the username so both failures cost the same
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.config.Auth.AdminPasswordHash), []byte(req.Password))
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.config.Auth.AdminUsername)) == 1
	if !usernameOK || passwordErr != nil {
		logger.Info("[Login] rejected admin login", zap.String("username", req.Username))
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(s.config.Auth.AdminUsername)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.sessions.SetSession(ctx, jti, s.config.Auth.AdminUsername, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{Username: s.config.Auth.AdminUsername, Token: token}, nil
}

func (s *AdminAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.sessions.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *AdminAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}

	// Check Redis session key
	subject, err := s.sessions.GetSession(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	if subject != claims.Subject {
		return "", fmt.Errorf("token does not match session")
	}

	return subject, nil
}

func (s *AdminAppImpl) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	if !s.configured() {
		return nil, fmt.Errorf("admin auth not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a session token for the admin
func (s *AdminAppImpl) generateJWT(subject string) (string, string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
