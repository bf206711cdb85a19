package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed or its signature
// does not verify.
var ErrInvalidToken = errors.New("invalid token")

// Claims binds a user ID into the signed token. No expiry is set: tokens
// stay valid until the signing secret rotates.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"user_id"`
}

// Service issues and verifies signed access tokens with an HS256 secret
// fixed at construction time.
type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue signs a token carrying the given user ID.
func (s *Service) Issue(userID uint64) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
	})
	return t.SignedString(s.secret)
}

// Verify checks the signature and returns the embedded user ID. It does not
// check that the user still exists.
func (s *Service) Verify(tokenString string) (uint64, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, ErrInvalidToken
	}
	if !t.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
