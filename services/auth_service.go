package services

import (
	"crypto/subtle"
	"time"

	"github.com/hpd-transportes/wash-registry/utils"
)

// AuthService checks the shared password and issues session tokens.
type AuthService struct {
	password  string
	secret    []byte
	ttl       time.Duration
	blacklist *utils.TokenBlacklist
	Now       func() time.Time
}

func NewAuthService(password, jwtSecret string, ttl time.Duration) *AuthService {
	return &AuthService{
		password:  password,
		secret:    []byte(jwtSecret),
		ttl:       ttl,
		blacklist: utils.NewTokenBlacklist(),
		Now:       time.Now,
	}
}

// Session is an issued token and its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Authenticate compares password with the shared secret and opens a session.
func (s *AuthService) Authenticate(password string) (*Session, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return nil, ErrWrongPassword
	}

	token, claims, err := utils.GenerateToken(s.secret, s.ttl, s.Now())
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Validate returns the claims of a live, unrevoked token.
func (s *AuthService) Validate(token string) (*utils.SessionClaims, error) {
	claims, err := utils.ParseToken(s.secret, token)
	if err != nil {
		return nil, ErrInvalidSession
	}
	if s.blacklist.IsRevoked(claims.ID) {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

// Revoke ends the session carried by token.
func (s *AuthService) Revoke(token string) error {
	claims, err := s.Validate(token)
	if err != nil {
		return err
	}
	s.blacklist.Revoke(claims.ID, claims.ExpiresAt.Time)
	return nil
}
