package service

import (
	"errors"
	"time"

	"github.com/akozyreva/coursehub/config"
	"github.com/akozyreva/coursehub/internal/apperr"
	"github.com/akozyreva/coursehub/internal/dto"
	"github.com/akozyreva/coursehub/internal/model"
	"github.com/akozyreva/coursehub/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, login and the bearer-token session.
// Tokens are signed JWTs carrying the user id and an expiry; the transport
// delivers them in a cookie.
type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.UserResponseDTO, error)
	// Login returns the signed token together with the user profile.
	Login(req dto.LoginDTO) (string, *dto.UserResponseDTO, error)
	// Verify maps a token to a user id or an Unauthenticated error.
	Verify(token string) (uint, error)
	UserByID(id uint) (*model.User, error)
	TokenTTL() time.Duration
}

type authService struct {
	userRepo repository.UserRepository
	secret   []byte
	ttl      time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		secret:   []byte(cfg.Auth.SecretKey),
		ttl:      time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	}
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.UserResponseDTO, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Register: email lookup failed")
		return nil, apperr.Internal("error checking existing user", err)
	}
	if existing != nil {
		return nil, apperr.Validation("user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Register: password hashing failed")
		return nil, apperr.Internal("error hashing password", err)
	}

	user := model.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: string(hash),
		Role:           model.RoleFromLegacy(req.IsTeacher),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: failed to create user")
		return nil, apperr.Internal("error creating user", err)
	}

	log.Info().Uint("userID", user.ID).Str("role", string(user.Role)).Msg("User registered")
	return userToDTO(&user), nil
}

func (s *authService) Login(req dto.LoginDTO) (string, *dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Unauthenticated("incorrect email or password")
		}
		log.Error().Err(err).Msg("Login: email lookup failed")
		return "", nil, apperr.Internal("error looking up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return "", nil, apperr.Unauthenticated("incorrect email or password")
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     jwt.NewNumericDate(time.Now().Add(s.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error().Err(err).Msg("Login: token signing failed")
		return "", nil, apperr.Internal("error issuing token", err)
	}

	log.Info().Uint("userID", user.ID).Msg("User logged in")
	return token, userToDTO(user), nil
}

func (s *authService) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperr.Unauthenticated("invalid authentication credentials")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperr.Unauthenticated("invalid token payload")
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, apperr.Unauthenticated("invalid token payload")
	}
	return uint(rawID), nil
}

func (s *authService) UserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("user not found")
		}
		return nil, apperr.Internal("error loading user", err)
	}
	return user, nil
}

func (s *authService) TokenTTL() time.Duration { return s.ttl }

func userToDTO(user *model.User) *dto.UserResponseDTO {
	return &dto.UserResponseDTO{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}
}
