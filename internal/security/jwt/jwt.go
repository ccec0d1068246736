package jwtutil

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Config struct {
	Secret    []byte
	ClockSkew time.Duration
}

func LoadConfig() Config {
	leeway := time.Duration(envInt("AUTH_CLOCK_SKEW_SEC", 60)) * time.Second
	return Config{
		Secret:    []byte(os.Getenv("AUTH_JWT_SECRET")),
		ClockSkew: leeway,
	}
}

var cfg = LoadConfig()

type AccessClaims struct {
	jwt.RegisteredClaims
}

// SignAccess returns (tokenString, jti) for the given subject.
func SignAccess(subject string, ttl time.Duration) (string, string, error) {
	jti, err := randJTI()
	if err != nil {
		return "", "", err
	}
	now := time.Now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(cfg.Secret)
	return s, jti, err
}

// ParseAccess verifies HS256 signature and leeway, returning claims.
func ParseAccess(tokenStr string) (*AccessClaims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(cfg.ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// DefaultAccessTTL reads AUTH_ACCESS_TTL (e.g. "15m"), defaulting to 15m.
func DefaultAccessTTL() time.Duration {
	if v := os.Getenv("AUTH_ACCESS_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 15 * time.Minute
}

func randJTI() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

func envInt(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
