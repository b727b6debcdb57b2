// Package jwt issues and validates the HS512 session tokens handed to raisers.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now

var (
	ErrTokenNotValid error = errors.New("token is not valid")
	ErrTokenExpired  error = errors.New("token expired")
)

type TokenInfo struct {
	Subject    string
	Email      string
	Role       string
	Expiration time.Duration
}

// Claims is the validated content of a token.
type Claims struct {
	Subject string
	Email   string
	Role    string
}

type Service struct {
	secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{
		secret: secret,
	}
}

// Issue builds and signs a token for info.
func (s *Service) Issue(info TokenInfo) (string, error) {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":   info.Subject,
		"email": info.Email,
		"role":  info.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(info.Expiration).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Validate(token string) (Claims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}
	if !jwtToken.Valid {
		return Claims{}, ErrTokenNotValid
	}

	mapClaims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := mapClaims["exp"].(float64)
	if !ok {
		return Claims{}, fmt.Errorf("missing exp claim: %w", ErrTokenNotValid)
	}
	if int64(expVal) < TimeNow().Unix() {
		return Claims{}, fmt.Errorf("token expired at %v: %w", time.Unix(int64(expVal), 0), ErrTokenExpired)
	}

	subject, _ := mapClaims["sub"].(string)
	if subject == "" {
		return Claims{}, fmt.Errorf("missing sub claim: %w", ErrTokenNotValid)
	}
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{Subject: subject, Email: email, Role: role}, nil
}
