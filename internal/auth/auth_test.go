package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/in_mem"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() *Service {
	tokens := NewTokens(Config{Secret: "test-secret", TokenTTL: 30 * time.Minute})
	return NewService(in_mem.NewUserStore(), tokens, WithBcryptCost(bcrypt.MinCost))
}

func isAuthError(err error) bool {
	var ae *apperr.AuthenticationError
	return errors.As(err, &ae)
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := t.Context()

	user, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	token, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	me, err := svc.Authenticate(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)
}

func TestService_Register_Validation(t *testing.T) {
	svc := newTestService()

	for _, tc := range [][2]string{{"", "pw"}, {"  ", "pw"}, {"bob", ""}} {
		_, err := svc.Register(t.Context(), tc[0], tc[1])
		var ve *apperr.ValidationError
		assert.True(t, errors.As(err, &ve), tc)
	}
}

func TestService_Register_Taken(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(t.Context(), "alice", "pw")
	require.NoError(t, err)

	_, err = svc.Register(t.Context(), "alice", "other")
	var ce *apperr.ConflictError
	assert.True(t, errors.As(err, &ce))
}

func TestService_Login_WrongCredentials(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(t.Context(), "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login(t.Context(), "alice", "wrong")
	assert.True(t, isAuthError(err))

	_, err = svc.Login(t.Context(), "nobody", "s3cret")
	assert.True(t, isAuthError(err))
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret", TokenTTL: 30 * time.Minute})
	tokens.now = func() time.Time { return time.Now().Add(-time.Hour) }

	raw, err := tokens.Issue("alice")
	require.NoError(t, err)

	_, err = tokens.Parse(raw)
	require.True(t, isAuthError(err))
	assert.Contains(t, err.Error(), "expired")
}

func TestTokens_Rejects(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret"})

	other, err := NewTokens(Config{Secret: "other-secret"}).Issue("alice")
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.StandardClaims{Subject: "alice"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": other,
		"alg none":     none,
	} {
		_, err := tokens.Parse(raw)
		assert.True(t, isAuthError(err), name)
	}

	raw, err := tokens.Issue("alice")
	require.NoError(t, err)
	subject, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestRequireUser(t *testing.T) {
	svc := newTestService()
	_, err := svc.Register(t.Context(), "alice", "pw")
	require.NoError(t, err)
	token, err := svc.Login(t.Context(), "alice", "pw")
	require.NoError(t, err)

	e := echo.New()
	handler := RequireUser(svc)(func(c echo.Context) error {
		user, ok := UserFrom(c)
		require.True(t, ok)
		return c.String(http.StatusOK, user.Username)
	})

	cases := map[string]struct {
		header string
		ok     bool
	}{
		"valid":       {"Bearer " + token.AccessToken, true},
		"lowercase":   {"bearer " + token.AccessToken, true},
		"missing":     {"", false},
		"basic":       {"Basic abc", false},
		"bad token":   {"Bearer nope", false},
		"empty token": {"Bearer ", false},
	}

	for name, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set(echo.HeaderAuthorization, tc.header)
		}
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))
		if tc.ok {
			require.NoError(t, err, name)
			assert.Equal(t, "alice", rec.Body.String(), name)
		} else {
			assert.True(t, isAuthError(err), name)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "x")
	t.Setenv("TOKEN_TTL", "")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
}
