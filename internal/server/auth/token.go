package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minseok/enigma/internal/common"
)

// Identity is the subject a verified token asserts.
type Identity struct {
	UserID   string
	UserName string
}

// TokenCodec issues and verifies bearer tokens. Verification is stateless:
// a token stays valid for its full window regardless of later account
// changes, and there is no revocation list.
type TokenCodec interface {
	Issue(userID, userName string) (string, error)
	Verify(token string) (*Identity, error)
}

// Claims includes the registered claims plus the subject's id and name.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	UserName string `json:"uname"`
}

// JWTCodec signs HS256 tokens with a shared secret and fixed validity window.
type JWTCodec struct {
	secret   []byte
	validity time.Duration
}

func NewJWTCodec(secret []byte, validity time.Duration) *JWTCodec {
	return &JWTCodec{secret: secret, validity: validity}
}

func (c *JWTCodec) Issue(userID, userName string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID:   userID,
		UserName: userName,
	})

	return token.SignedString(c.secret)
}

// Verify checks signature and expiry. Every failure mode collapses into
// common.ErrInvalidToken so the boundary leaks nothing about the cause.
func (c *JWTCodec) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.UserID, UserName: claims.UserName}, nil
}
