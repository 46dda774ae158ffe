package auth

import (
	"testing"
	"time"

	"accounts/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-which-is-long-enough"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	svc, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{Secret: testSecret, TTL: ttl},
	})
	require.NoError(t, err)

	return svc.(*jwtService)
}

// signTestToken builds a token with arbitrary claims, bypassing Generate,
// so malformed and hostile shapes can be exercised.
func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, 0)

	assert.Equal(t, 24*time.Hour, svc.TTL())
}

func TestJWTService_GenerateAndParse_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Generate("alice", 42)
	require.NoError(t, err)

	claims, err := svc.Parse(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Subject)
	require.NotNil(t, claims.UserID)
	assert.Equal(t, int64(42), *claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
	assert.False(t, claims.Expired(time.Now()))
}

func TestJWTService_Parse_WrongKey(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	forged := signTestToken(t, "another-secret-entirely", jwt.MapClaims{
		"sub":    "alice",
		"userId": 42,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Parse(forged)

	assert.Error(t, err)
}

func TestJWTService_Parse_Expired(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	expired := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":    "alice",
		"userId": 42,
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.Parse(expired)

	assert.Error(t, err)
}

func TestJWTService_Parse_ExpiryBoundary(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	now := time.Now()

	justValid := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":    "alice",
		"userId": 42,
		"exp":    now.Add(2 * time.Second).Unix(),
	})
	claims, err := svc.Parse(justValid)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	justExpired := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":    "alice",
		"userId": 42,
		"exp":    now.Add(-2 * time.Second).Unix(),
	})
	_, err = svc.Parse(justExpired)
	assert.Error(t, err)
}

func TestJWTService_Parse_MissingExpiry(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	noExp := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":    "alice",
		"userId": 42,
	})

	_, err := svc.Parse(noExp)

	assert.Error(t, err)
}

func TestJWTService_Parse_Garbage(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	_, err := svc.Parse("not.a.token")

	assert.Error(t, err)
}

func TestJWTService_Parse_UserIDClaimShapes(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	tests := []struct {
		name   string
		userID any
		want   *int64
	}{
		{name: "numeric", userID: 42, want: int64Ptr(42)},
		{name: "fractional widens down", userID: 42.0, want: int64Ptr(42)},
		{name: "string is not a user id", userID: "42", want: nil},
		{name: "boolean is not a user id", userID: true, want: nil},
		{name: "absent", userID: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := jwt.MapClaims{
				"sub": "alice",
				"exp": time.Now().Add(time.Hour).Unix(),
			}
			if tt.userID != nil {
				claims["userId"] = tt.userID
			}

			parsed, err := svc.Parse(signTestToken(t, testSecret, claims))
			require.NoError(t, err)

			if tt.want == nil {
				assert.Nil(t, parsed.UserID)
			} else {
				require.NotNil(t, parsed.UserID)
				assert.Equal(t, *tt.want, *parsed.UserID)
			}
		})
	}
}

func TestJWTService_Validate(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)

	token, err := svc.Generate("alice", 42)
	require.NoError(t, err)

	assert.True(t, svc.Validate(token, "alice"))
	assert.False(t, svc.Validate(token, "bob"))
	assert.False(t, svc.Validate("garbage", "alice"))
}

func int64Ptr(v int64) *int64 {
	return &v
}
