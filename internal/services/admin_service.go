package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/storage"
	"github.com/codescope-coders/codescope-rework/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// AdminClaims is the JWT payload issued on login.
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type adminService struct {
	adminRepo  storage.AdminRepository
	secret     []byte
	expiration time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewAdminService creates a new instance of AdminService.
func NewAdminService(adminRepo storage.AdminRepository, secret string, expiration time.Duration, logger *zap.Logger) AdminService {
	return &adminService{
		adminRepo:  adminRepo,
		secret:     []byte(secret),
		expiration: expiration,
		logger:     logger,
		now:        time.Now,
	}
}

// Login authenticates an admin and returns a signed token. An email with no
// account yet registers one with the supplied password, so the first login
// bootstraps the back office.
func (s *adminService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		admin, err = s.register(ctx, req)
		if err != nil {
			return nil, "", err
		}
	case err != nil:
		s.logger.Error("fetching admin for login", zap.Error(err))
		return nil, "", mapRepoError(err, "fetching admin for login")
	default:
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			return nil, "", ErrInvalidCredentials
		}
	}

	token, err := s.signToken(admin)
	if err != nil {
		s.logger.Error("signing admin token", zap.Error(err))
		return nil, "", fmt.Errorf("internal error signing token: %w", err)
	}
	return admin, token, nil
}

func (s *adminService) register(ctx context.Context, req *dto.LoginRequest) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	admin, err := s.adminRepo.Create(ctx, req.Email, string(hash))
	if err != nil {
		// A concurrent first login can win the insert; fall back to the
		// normal credential check against the stored row.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("registering admin", zap.Error(err))
		return nil, mapRepoError(err, "registering admin")
	}
	s.logger.Info("registered admin account", zap.String("email", admin.Email))
	return admin, nil
}

func (s *adminService) signToken(admin *models.Admin) (string, error) {
	now := s.now()
	claims := AdminClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates a bearer token, returning its claims.
func (s *adminService) VerifyToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
