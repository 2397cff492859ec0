package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

// ServiceTokenTTL bounds how long a service credential sent to the remote
// authority stays valid.
const ServiceTokenTTL = time.Minute

// ServiceClaims identify this deployment to the remote authority.
type ServiceClaims struct {
	jwt.RegisteredClaims
}

// GenerateServiceToken signs an HS256 token with iss set to projectID.
func GenerateServiceToken(projectID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    projectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseServiceToken validates tokenString and returns its issuer. It is what
// an authority sharing the secret would run.
func ParseServiceToken(tokenString string, secretKey []byte) (string, error) {
	claims := &ServiceClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: expired", common.ErrInvalidToken)
		}
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Issuer, nil
}
