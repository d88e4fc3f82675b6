package jwtmanager

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// AccessClaims identifies a patient or staff member by email.
type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager signs HS256 access tokens with InternalConfig.JWT.Secret.
// Tokens live for InternalConfig.JWT.ExpTimeInHour hours.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (contracts.JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, errors.New("JWT_SECRET is empty")
	}

	hours := cfg.JWT.ExpTimeInHour
	if hours <= 0 {
		hours = 1
	}

	return &jwtManager{
		log:    log,
		secret: []byte(secret),
		ttl:    time.Duration(hours) * time.Hour,
		now:    time.Now,
	}, nil
}

func (j *jwtManager) GenerateToken(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", errors.New("email is required")
	}

	now := j.now().UTC()
	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		j.log.Error("jwtManager.GenerateToken error signing token", zap.Error(err))
		return "", err
	}
	return signed, nil
}

// ParseToken validates signature and expiry and returns the email claim.
func (j *jwtManager) ParseToken(tokenString string) (string, error) {
	if strings.TrimSpace(tokenString) == "" {
		return "", errors.New("token is required")
	}

	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		j.log.Debug("jwtManager.ParseToken rejected token", zap.Error(err))
		return "", err
	}
	if !token.Valid || claims.Email == "" {
		return "", errors.New("token carries no email")
	}
	return claims.Email, nil
}
