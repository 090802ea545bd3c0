package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/360Pawan/360Tube/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenMissingClaim = errors.New("token missing required claim")
)

// AccessClaims ride on short-lived session tokens.
type AccessClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// SubjectClaims carry only the user id; used by refresh and
// email-verification tokens.
type SubjectClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	emailSecret   []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	emailTTL      time.Duration
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		accessSecret:  []byte(cfg.AccessTokenSecret),
		refreshSecret: []byte(cfg.RefreshTokenSecret),
		emailSecret:   []byte(cfg.EmailTokenSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		emailTTL:      cfg.EmailTokenTTL,
	}
}

func (s *Service) GenerateAccessToken(userID, email, username, fullName string) (string, error) {
	claims := &AccessClaims{
		UserID:   userID,
		Email:    email,
		Username: username,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.accessSecret)
}

func (s *Service) GenerateRefreshToken(userID string) (string, error) {
	return s.generateSubjectToken(userID, s.refreshSecret, s.refreshTTL)
}

func (s *Service) GenerateEmailToken(userID string) (string, error) {
	return s.generateSubjectToken(userID, s.emailSecret, s.emailTTL)
}

func (s *Service) generateSubjectToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	claims := &SubjectClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (s *Service) ValidateAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parseInto(tokenString, s.accessSecret, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, ErrTokenMissingClaim
	}
	return claims, nil
}

func (s *Service) ValidateRefreshToken(tokenString string) (*SubjectClaims, error) {
	return s.validateSubjectToken(tokenString, s.refreshSecret)
}

func (s *Service) ValidateEmailToken(tokenString string) (*SubjectClaims, error) {
	return s.validateSubjectToken(tokenString, s.emailSecret)
}

func (s *Service) validateSubjectToken(tokenString string, secret []byte) (*SubjectClaims, error) {
	claims := &SubjectClaims{}
	if err := s.parseInto(tokenString, secret, claims); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, ErrTokenMissingClaim
	}
	return claims, nil
}

func (s *Service) parseInto(tokenString string, secret []byte, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return ErrTokenInvalid
	}
	return nil
}
