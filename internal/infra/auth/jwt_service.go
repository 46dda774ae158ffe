package auth

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"accounts/config"
	"accounts/internal/domain/service"
)

const userIDClaim = "userId"

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. The signing secret and TTL are fixed at
// construction and never change afterwards.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
	}, nil
}

// Generate creates a signed token embedding the subject, the user ID, the
// issue instant and an expiry of now + TTL.
func (s *jwtService) Generate(subject string, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       subject,
		userIDClaim: userID,
		"iat":       now.Unix(),
		"exp":       now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Parse verifies signature and expiry and decodes the claims. Any failure
// collapses to an error; callers treat every error as "invalid token".
func (s *jwtService) Parse(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims format")
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject claim")
	}

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, errors.New("missing expiry claim")
	}

	claims := &service.TokenClaims{
		Subject:   subject,
		UserID:    decodeUserID(mapClaims[userIDClaim]),
		ExpiresAt: exp.Time,
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	return claims, nil
}

// Validate reports whether the token is well signed, unexpired and carries
// exactly the expected subject.
func (s *jwtService) Validate(tokenString, expectedSubject string) bool {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return false
	}

	return claims.Subject == expectedSubject && !claims.Expired(time.Now())
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

// decodeUserID accepts the numeric encodings a JSON round-trip can produce
// for the user ID claim. Anything else reads as "claim absent".
func decodeUserID(raw any) *int64 {
	switch v := raw.(type) {
	case float64:
		id := int64(v)

		return &id
	case int64:
		return &v
	case int:
		id := int64(v)

		return &id
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return nil
		}

		return &id
	default:
		return nil
	}
}
