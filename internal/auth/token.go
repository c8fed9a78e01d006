/* Session token issuing and validation (HS256 JWT) */

package auth

import (
	"fmt"
	"time"

	"ShaadiBiodata/internal/apperr"

	"github.com/golang-jwt/jwt/v4"
)

const tokenIssuer = "shaadibiodata-api"

// Any verification failure maps to this single error.
var ErrInvalidToken = apperr.New(apperr.KindInvalidToken, "Invalid or expired token")

// Identity claims carried by a session token. They are trusted as-is for the
// token's lifetime, so later account changes show up only after re-login.
type Claims struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		// expiry is checked against our own clock in Validate
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// WithClock replaces the time source used for issuing and validating.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

func (i *TokenIssuer) Generate(userID int, name, email string) (string, error) {
	issuedAt := i.now()
	claims := &Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("Generate(): failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Validate checks signature, algorithm and expiry. Bad signatures, expired
// tokens and malformed payloads are not distinguished.
func (i *TokenIssuer) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := i.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return nil, apperr.Wrap(ErrInvalidToken, err)
	}
	if !token.Valid || !claims.VerifyExpiresAt(i.now(), true) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
