package auth

import (
	"errors"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims mirrors the App Bridge session token payload.
type sessionClaims struct {
	Dest string `json:"dest"`
	jwt.RegisteredClaims
}

// ShopifySessionStrategy verifies embedded-app session tokens signed with the app secret.
type ShopifySessionStrategy struct {
	secret []byte
	apiKey string
	ttl    time.Duration
}

// NewShopifySessionStrategy returns nil when no app secret is configured.
func NewShopifySessionStrategy(secret, apiKey string, opts Options) *ShopifySessionStrategy {
	if secret == "" {
		return nil
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ShopifySessionStrategy{secret: []byte(secret), apiKey: apiKey, ttl: ttl}
}

// IssueToken signs a session token shaped like the ones App Bridge sends.
func (s *ShopifySessionStrategy) IssueToken(shop string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Dest: "https://" + shop,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://" + shop + "/admin",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	if s.apiKey != "" {
		claims.Audience = jwt.ClaimStrings{s.apiKey}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates signature, exp and nbf, then returns the shop from dest.
func (s *ShopifySessionStrategy) ParseToken(token string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.apiKey != "" {
		opts = append(opts, jwt.WithAudience(s.apiKey))
	}
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}
	dest, err := url.Parse(claims.Dest)
	if err != nil || dest.Host == "" || claims.Issuer != "https://"+dest.Host+"/admin" {
		return "", ErrInvalidToken
	}
	return dest.Host, nil
}

func (s *ShopifySessionStrategy) Name() string {
	return "shopify-session"
}
