package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by OAuth2Auth
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClientID = "clientID"
	ContextScopes   = "scopes"
)

var allowedRoles = map[string]bool{
	models.RoleAdmin: true,
	models.RoleUser:  true,
}

// OAuth2Auth validates the Bearer JWT issued by the token endpoint (RFC 6750)
// and stores the caller's id, role, client and scopes in the gin context.
func OAuth2Auth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, models.ErrInvalidRequest,
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			respondWithOAuth2Error(c, models.ErrInvalidRequest,
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}
		if tokenString == "" {
			respondWithOAuth2Error(c, models.ErrInvalidToken, "Bearer token is empty")
			return
		}

		claims, err := parseJWT(tokenString, jwtSecret)
		if err != nil {
			respondWithOAuth2Error(c, models.ErrInvalidToken, err.Error())
			return
		}

		if err := setClaims(c, claims); err != nil {
			respondWithOAuth2Error(c, models.ErrInvalidToken, err.Error())
			return
		}

		c.Next()
	}
}

func respondWithOAuth2Error(c *gin.Context, errorCode, description string) {
	c.Header("WWW-Authenticate", fmt.Sprintf(`Bearer error=%q`, errorCode))
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewOAuth2Error(errorCode, description))
}

// parseJWT checks the signature, exp, nbf and iat of an HMAC signed token
func parseJWT(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		},
		// Only HMAC, see https://auth0.com/blog/critical-vulnerabilities-in-json-web-token-libraries/
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	return claims, nil
}

func setClaims(c *gin.Context, claims jwt.MapClaims) error {
	userID, err := userIDFromClaims(claims)
	if err != nil {
		return err
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return errors.New("token missing required 'role' claim")
	}
	if !allowedRoles[role] {
		return fmt.Errorf("invalid role '%s'. Allowed roles: admin, user", role)
	}

	c.Set(ContextUserID, userID)
	c.Set(ContextUserRole, role)

	if aud, err := claims.GetAudience(); err == nil && len(aud) > 0 && aud[0] != "" {
		c.Set(ContextClientID, aud[0])
	}
	if scope, ok := claims["scope"].(string); ok && scope != "" {
		c.Set(ContextScopes, scope)
	}
	return nil
}

// userIDFromClaims reads "uid" as a numeric string or a JSON number
func userIDFromClaims(claims jwt.MapClaims) (uint, error) {
	var id uint64
	switch uid := claims["uid"].(type) {
	case string:
		parsed, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid uid claim format: must be a numeric string, got: %s", uid)
		}
		id = parsed
	case float64:
		if uid < 0 {
			return 0, fmt.Errorf("invalid uid claim: must be positive, got: %f", uid)
		}
		id = uint64(uid)
	default:
		return 0, errors.New("token missing required 'uid' claim")
	}

	if id == 0 {
		return 0, errors.New("invalid user identifier: cannot be zero")
	}
	return uint(id), nil
}
