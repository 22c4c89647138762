package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/appinventory/config"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
	"github.com/appinventory/repositories"
	"github.com/appinventory/utils"
)

const tokenLifetime = 24 * time.Hour

// AuthService handles user registration, login and token verification
type AuthService struct {
	userRepo *repositories.UserRepository
	now      func() time.Time
}

// NewAuthService creates a new auth service instance
func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
		now:      time.Now,
	}
}

// Register creates a user account and returns a signed token for it
func (s *AuthService) Register(req dto.RegisterRequest) (dto.AuthResponse, error) {
	taken, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if taken {
		return dto.AuthResponse{}, utils.BadRequestError("username '%s' is already taken", req.Username)
	}

	taken, err = s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	if taken {
		return dto.AuthResponse{}, utils.BadRequestError("email '%s' is already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return s.buildAuthResponse(created)
}

// Login verifies credentials and returns a signed token
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, utils.UnauthorizedError("invalid username or password")
		}
		return dto.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, utils.UnauthorizedError("invalid username or password")
	}

	return s.buildAuthResponse(user)
}

// GetCurrentUser returns the profile behind a validated token
func (s *AuthService) GetCurrentUser(userID string) (dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, utils.NotFoundError("user not found with id: %s", userID)
		}
		return dto.UserResponse{}, err
	}
	return mapUserResponse(user), nil
}

// GenerateToken creates an HS256 token carrying the user's id, name and role
func (s *AuthService) GenerateToken(user models.User) (string, time.Time, error) {
	expiresAt := s.now().Add(tokenLifetime)
	claims := dto.TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.GetEnv("JWT_SECRET", "dev-secret")))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a token string, returning its claims
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, utils.UnauthorizedError("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetEnv("JWT_SECRET", "dev-secret")), nil
	})
	if err != nil {
		return nil, utils.UnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid {
		return nil, utils.UnauthorizedError("invalid token claims")
	}
	return claims, nil
}

func (s *AuthService) buildAuthResponse(user models.User) (dto.AuthResponse, error) {
	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return dto.AuthResponse{}, err
	}
	return dto.AuthResponse{
		Token:     token,
		User:      mapUserResponse(user),
		ExpiresAt: expiresAt,
	}, nil
}
