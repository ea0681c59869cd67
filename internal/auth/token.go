package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/golang-jwt/jwt"
)

const issuer = "news-digest"

type Claims struct {
	jwt.StandardClaims
}

// Tokens issues and verifies HS256 session tokens whose subject is the username.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(cfg Config) *Tokens {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *Tokens) Issue(username string) (string, error) {
	now := t.now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			Issuer:    issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse returns the token subject. Any invalid, foreign or expired token is a
// *apperr.AuthenticationError.
func (t *Tokens) Parse(raw string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", apperr.NewAuthenticationWrap("token expired", err)
		}
		return "", apperr.NewAuthenticationWrap("could not validate credentials", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", apperr.NewAuthentication("could not validate credentials")
	}
	return claims.Subject, nil
}
