package jwtutil

import (
	"crypto/rand"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Username string `json:"uname"`
	jwt.RegisteredClaims
}

// Signer holds the process signing secret. The secret is injected at
// construction; there is no package-level key state.
type Signer struct {
	Secret []byte
	Issuer string
	ExpMin int
}

// NewRandomSecret returns a fresh 32-byte HS256 secret. Tokens signed with
// it are invalidated when the process restarts.
func NewRandomSecret() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

func (s *Signer) Sign(username string) (string, error) {
	now := time.Now()
	exp := now.Add(time.Duration(s.ExpMin) * time.Minute)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil })
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
