package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const memberClaim = "member"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Tokens issues and verifies member session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, expiryHours int) *Tokens {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &Tokens{secret: []byte(secret), ttl: time.Duration(expiryHours) * time.Hour}
}

func (t *Tokens) GenerateToken(memberName string) (string, error) {
	claims := jwt.MapClaims{
		memberClaim: memberName,
		"exp":       time.Now().Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// ParseToken returns the member name carried by a valid token.
func (t *Tokens) ParseToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidClaims
	}
	member, ok := claims[memberClaim].(string)
	if !ok || member == "" {
		return "", ErrInvalidClaims
	}

	return member, nil
}
