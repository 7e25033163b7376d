package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and validates HS256-signed bearer tokens. It is
// stateless; the signing secret and TTL are fixed at construction and
// rotating the secret invalidates all previously issued tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue builds a signed token with the username as subject, the role set as
// a claim, and exp = now + ttl.
func (s *TokenService) Issue(username string, roles []string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   username,
		"roles": roles,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate parses and verifies a token, returning the principal it carries.
// It fails closed: signature mismatch, wrong algorithm, parse failure or
// expiry all yield domain.ErrInvalidToken.
func (s *TokenService) Validate(token string) (domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	return domain.Principal{Username: sub, Roles: claimRoles(claims)}, nil
}

// ValidateFor checks the token and requires its subject to exactly match the
// expected username.
func (s *TokenService) ValidateFor(token, username string) error {
	p, err := s.Validate(token)
	if err != nil {
		return err
	}
	if p.Username != username {
		return domain.ErrInvalidToken
	}
	return nil
}

// claimRoles extracts the roles claim, which decodes as []interface{} after
// a JSON round trip.
func claimRoles(claims jwt.MapClaims) []string {
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}
