package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// AdminCookieName is the cookie carrying the signed admin session token.
const AdminCookieName = "admin_token"

// AdminTokenTTL bounds how long an admin login stays valid.
const AdminTokenTTL = 12 * time.Hour

// GenerateAdminToken mints a signed session token for the administrator
func GenerateAdminToken(secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(AdminTokenTTL).Unix(),
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseAdminToken verifies a session token and its admin claim.
func ParseAdminToken(secret []byte, tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return fmt.Errorf("parse admin token: %w", err)
	}
	if !token.Valid {
		return errors.New("invalid admin token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid token claims")
	}
	if admin, _ := claims["admin"].(bool); !admin {
		return errors.New("token lacks admin claim")
	}

	return nil
}
