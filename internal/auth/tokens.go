package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenPair is the response body of a successful credential exchange.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenIssuer mints and validates HS256-signed access and refresh tokens.
type TokenIssuer struct {
	SigningKey []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (i TokenIssuer) Issue(userID int64) (TokenPair, error) {
	access, err := i.IssueToken(userID, TokenTypeAccess)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.IssueToken(userID, TokenTypeRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

func (i TokenIssuer) IssueToken(userID int64, tokenType string) (string, error) {
	ttl := i.AccessTTL
	if tokenType == TokenTypeRefresh {
		ttl = i.RefreshTTL
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"token_type": tokenType,
		"jti":        uuid.NewString(),
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(i.SigningKey)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", tokenType, err)
	}

	return signed, nil
}

// Parse validates a token of the given type and returns the user ID it was
// issued for.
func (i TokenIssuer) Parse(tokenString, wantType string) (int64, error) {
	token, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (any, error) { return i.SigningKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	if tokenType, _ := claims["token_type"].(string); tokenType != wantType {
		return 0, fmt.Errorf("token is not of type %q", wantType)
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("token has no user_id claim")
	}

	return int64(userID), nil
}
