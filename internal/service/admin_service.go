package service

import (
	"crypto/subtle"
	"fmt"

	"life-go/internal/config"
	"life-go/internal/dto"
	apperrors "life-go/internal/errors"
	"life-go/internal/utils"

	"github.com/sirupsen/logrus"
)

// AdminService authenticates the single configured admin account
type AdminService struct {
	jwtManager   *utils.JWTManager
	username     string
	passwordHash string
	logger       *logrus.Logger
}

// NewAdminService hashes the configured admin password unless it is already a bcrypt hash
func NewAdminService(jwtManager *utils.JWTManager, cfg *config.Config, logger *logrus.Logger) (*AdminService, error) {
	passwordHash := cfg.Admin.Password
	if !utils.IsBcryptHash(passwordHash) {
		hashed, err := utils.HashPassword(cfg.Admin.Password)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		passwordHash = hashed
	}

	return &AdminService{
		jwtManager:   jwtManager,
		username:     cfg.Admin.Username,
		passwordHash: passwordHash,
		logger:       logger,
	}, nil
}

// Login issues an admin token for valid credentials
func (s *AdminService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	passwordErr := utils.CheckPassword(req.Password, s.passwordHash)
	if !usernameOK || passwordErr != nil {
		s.logger.WithField("username", req.Username).Warn("admin login rejected")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(s.username, true)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("generate token: %w", err))
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.jwtManager.ExpiresIn().Seconds()),
	}, nil
}
