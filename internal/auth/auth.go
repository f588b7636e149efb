package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/blogql/backend/internal/apperrors"
)

// Identity is the authenticated caller derived from a bearer credential.
type Identity struct {
	UserID string
}

// Claims are the custom JWT claims extending the registered set.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Service signs and verifies credentials and hashes passwords.
type Service struct {
	secret []byte
	ttl    time.Duration
	cost   int
}

// NewService creates an auth service. A non-positive bcrypt cost falls back
// to the library default, which keeps test setups fast without weakening the
// production configuration.
func NewService(secret string, ttl time.Duration, bcryptCost int) *Service {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{secret: []byte(secret), ttl: ttl, cost: bcryptCost}
}

// IssueToken produces a signed, time-bound credential embedding the user id.
func (s *Service) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Identify extracts the caller identity from a raw Authorization value. The
// "Bearer " scheme prefix is stripped when present. Any missing, malformed,
// or expired credential yields nil: anonymous, never an error.
func (s *Service) Identify(raw string) *Identity {
	tokenString := strings.TrimSpace(raw)
	if tokenString == "" {
		return nil
	}
	if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
		tokenString = strings.TrimSpace(tokenString[7:])
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil
	}
	return &Identity{UserID: claims.UserID}
}

// HashPassword hashes a password with bcrypt.
func (s *Service) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a password against its stored hash.
func (s *Service) CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

type identityKey struct{}

// WithIdentity stores the caller identity in the request context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller identity, or nil for anonymous
// requests.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}

// RequireIdentity returns the caller identity or an authentication failure.
// Mutations acting on behalf of a user call this before validation or store
// access.
func RequireIdentity(ctx context.Context) (*Identity, error) {
	id := IdentityFromContext(ctx)
	if id == nil {
		return nil, apperrors.AuthenticationRequired("You must be logged in to perform this action")
	}
	return id, nil
}
