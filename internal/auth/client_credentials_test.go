package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenRouter(t *testing.T) (*gin.Engine, *OAuthService) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret)
	createClient(t, db, "test_client_id", "test_secret", models.RoleAdmin)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)
	return router, oauthService
}

func postTokenRequest(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientCredentialsFlow(t *testing.T) {
	router, _ := setupTokenRouter(t)

	w := postTokenRequest(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"test_client_id"},
		"client_secret": {"test_secret"},
		"scope":         {"read"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])
	assert.Equal(t, "read", response["scope"])
	assert.Equal(t, AccessTokenLifetime.Seconds(), response["expires_in"])

	accessToken := response["access_token"].(string)
	assert.Equal(t, 2, strings.Count(accessToken, ".")) // JWT format
}

func TestClientCredentialsErrors(t *testing.T) {
	router, _ := setupTokenRouter(t)

	testCases := []struct {
		name         string
		form         url.Values
		expectedCode int
		expectedErr  string
	}{
		{
			name: "wrong secret",
			form: url.Values{
				"grant_type": {"client_credentials"}, "client_id": {"test_client_id"}, "client_secret": {"wrong_secret"},
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidClient,
		},
		{
			name: "unknown client",
			form: url.Values{
				"grant_type": {"client_credentials"}, "client_id": {"nobody"}, "client_secret": {"test_secret"},
			},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  models.ErrInvalidClient,
		},
		{
			name:         "missing credentials",
			form:         url.Values{"grant_type": {"client_credentials"}},
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrInvalidRequest,
		},
		{
			name: "unsupported grant",
			form: url.Values{
				"grant_type": {"password"}, "client_id": {"test_client_id"}, "client_secret": {"test_secret"},
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  models.ErrUnsupportedGrantType,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := postTokenRequest(router, tt.form)

			assert.Equal(t, tt.expectedCode, w.Code)
			var response models.OAuth2Error
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedErr, response.Error)
		})
	}
}
