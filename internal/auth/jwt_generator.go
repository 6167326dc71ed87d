package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the payload of an issued access token
type accessClaims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	Scope  string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// JWTAccessGenerate signs access tokens on behalf of the user owning the requesting client
type JWTAccessGenerate struct {
	key    []byte
	method jwt.SigningMethod
	users  services.UserService
}

func NewJWTAccessGenerate(key []byte, method jwt.SigningMethod, users services.UserService) *JWTAccessGenerate {
	return &JWTAccessGenerate{key: key, method: method, users: users}
}

// Token implements oauth2.AccessGenerate. Client credentials never carry refresh tokens.
func (g *JWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	if isGenRefresh {
		return "", "", errors.New("refresh tokens are not issued")
	}

	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	role, err := g.roleOf(userID)
	if err != nil {
		return "", "", err
	}

	issuedAt := data.TokenInfo.GetAccessCreateAt()
	claims := accessClaims{
		UserID: userID,
		Role:   role,
		Scope:  data.TokenInfo.GetScope(),
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{data.Client.GetID()},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(data.TokenInfo.GetAccessExpiresIn())),
		},
	}

	access, err := jwt.NewWithClaims(g.method, claims).SignedString(g.key)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return access, "", nil
}

// roleOf is read on every issue so a role change applies to the next token
func (g *JWTAccessGenerate) roleOf(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("client has no owning user")
	}
	id, err := strconv.ParseUint(userID, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid user ID %q: %w", userID, err)
	}

	user, err := g.users.GetUserByID(uint(id))
	if err != nil {
		return "", fmt.Errorf("failed to fetch role of user %d: %w", id, err)
	}
	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}
