package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/usergate/internal/common"
)

// CSRFField is the form field every POST must carry.
const CSRFField = "csrf_token"

const csrfSubject = "csrf"

var ErrInvalidCSRF = errors.New("invalid csrf token")

// CSRF issues and verifies short-lived HS256 tokens embedded in forms.
type CSRF struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCSRF returns a token manager. An empty secret is replaced by a random
// one, so tokens do not survive a restart.
func NewCSRF(secret string, ttl time.Duration) (*CSRF, error) {
	if secret == "" {
		s, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate csrf secret: %w", err)
		}
		secret = s
	}
	return &CSRF{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (c *CSRF) Issue() (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   csrfSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})
	return token.SignedString(c.secret)
}

func (c *CSRF) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidCSRF
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(csrfSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCSRF, err)
	}
	if !token.Valid {
		return ErrInvalidCSRF
	}
	return nil
}

// Protect rejects POSTs without a valid token with 403.
func (c *CSRF) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if err := c.Verify(r.PostFormValue(CSRFField)); err != nil {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
