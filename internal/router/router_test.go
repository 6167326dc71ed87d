package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testJWTSecret = "router-test-jwt-secret-32-characters"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedIfEmpty(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := New(Dependencies{
		Config: &config.Config{JWTSecret: testJWTSecret, CORSOrigins: []string{"*"}},
		DB:     db,
		Logger: logger,
	})
	return &testServer{router: router, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// tokenFor stores a user with role, a client it owns, and exchanges the client credentials for a token
func (s *testServer) tokenFor(t *testing.T, role string) string {
	t.Helper()
	user := &models.User{Email: role + "@example.com", Name: role, Role: role}
	require.NoError(t, s.db.Create(user).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-"+role), bcrypt.MinCost)
	require.NoError(t, err)
	client := &models.OAuthClient{
		ID:         "client-" + role,
		Secret:     string(hash),
		Name:       role + " client",
		UserID:     user.ID,
		Scopes:     "read write",
		GrantTypes: "client_credentials",
	}
	require.NoError(t, s.db.Create(client).Error)

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {client.ID},
		"client_secret": {"secret-" + role},
	}
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestListRestaurants(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/restaurants", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	restaurants := decode[[]map[string]any](t, w)
	require.Len(t, restaurants, 3)
	assert.Equal(t, "Karen's Pizza Shack", restaurants[0]["name"])
	assert.Equal(t, "address1", restaurants[0]["address"])
	for _, r := range restaurants {
		assert.NotContains(t, r, "restaurant_pizzas")
		assert.Len(t, r, 3)
	}
}

func TestListPizzas(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/pizzas", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	pizzas := decode[[]models.PizzaSummary](t, w)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Emma", pizzas[0].Name)
	assert.Equal(t, "Dough, Tomato Sauce, Cheese", pizzas[0].Ingredients)
}

func TestGetRestaurant(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/restaurants/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	restaurant := decode[models.RestaurantDetail](t, w)
	assert.Equal(t, uint(1), restaurant.ID)
	assert.Equal(t, "Karen's Pizza Shack", restaurant.Name)
	require.Len(t, restaurant.RestaurantPizzas, 1)
	assert.Equal(t, models.MinPrice, restaurant.RestaurantPizzas[0].Price)
	assert.Equal(t, "Emma", restaurant.RestaurantPizzas[0].Pizza.Name)
}

func TestGetRestaurantNotFound(t *testing.T) {
	s := setupTestServer(t)

	for _, path := range []string{"/restaurants/999", "/restaurants/abc", "/restaurants/-1"} {
		t.Run(path, func(t *testing.T) {
			w := s.do(t, http.MethodGet, path, nil, "")
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())
		})
	}
}

func TestDeleteRestaurant(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodDelete, "/restaurants/1", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(t, http.MethodGet, "/restaurants/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var remaining int64
	require.NoError(t, s.db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", 1).Count(&remaining).Error)
	assert.Zero(t, remaining)

	w = s.do(t, http.MethodDelete, "/restaurants/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())
}

func TestCreateRestaurantPizza(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodPost, "/restaurant_pizzas", map[string]any{
		"price":         5,
		"restaurant_id": 3,
		"pizza_id":      2,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[models.RestaurantPizzaDetail](t, w)
	assert.Equal(t, 5, created.Price)
	assert.Equal(t, uint(3), created.RestaurantID)
	assert.Equal(t, uint(2), created.PizzaID)
	assert.Equal(t, created.RestaurantID, created.Restaurant.ID)
	assert.Equal(t, "Kiki's Pizza", created.Restaurant.Name)
	assert.Equal(t, created.PizzaID, created.Pizza.ID)
	assert.Equal(t, "Geri", created.Pizza.Name)

	w = s.do(t, http.MethodGet, "/restaurants/3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	restaurant := decode[models.RestaurantDetail](t, w)
	require.Len(t, restaurant.RestaurantPizzas, 2)
	last := restaurant.RestaurantPizzas[1]
	assert.Equal(t, created.ID, last.ID)
	assert.Equal(t, 5, last.Price)
	assert.Equal(t, "Geri", last.Pizza.Name)
}

func TestCreateRestaurantPizzaPriceBounds(t *testing.T) {
	testCases := []struct {
		price    int
		expected int
	}{
		{price: 0, expected: http.StatusBadRequest},
		{price: -4, expected: http.StatusBadRequest},
		{price: 1, expected: http.StatusCreated},
		{price: 30, expected: http.StatusCreated},
		{price: 31, expected: http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(fmt.Sprintf("price %d", tt.price), func(t *testing.T) {
			s := setupTestServer(t)

			w := s.do(t, http.MethodPost, "/restaurant_pizzas", map[string]any{
				"price":         tt.price,
				"restaurant_id": 1,
				"pizza_id":      3,
			}, "")
			assert.Equal(t, tt.expected, w.Code, w.Body.String())

			var stored int64
			require.NoError(t, s.db.Model(&models.RestaurantPizza{}).Count(&stored).Error)
			if tt.expected == http.StatusCreated {
				assert.Equal(t, int64(4), stored)
			} else {
				assert.JSONEq(t, `{"errors":["validation errors"]}`, w.Body.String())
				assert.Equal(t, int64(3), stored)
			}
		})
	}
}

func TestCreateRestaurantPizzaInvalidBody(t *testing.T) {
	s := setupTestServer(t)

	bodies := map[string]any{
		"malformed json":     `{"price": 5,`,
		"missing price":      map[string]any{"restaurant_id": 1, "pizza_id": 1},
		"missing restaurant": map[string]any{"price": 5, "pizza_id": 1},
		"price not a number": map[string]any{"price": "five", "restaurant_id": 1, "pizza_id": 1},
		"empty object":       `{}`,
		"zero restaurant id": map[string]any{"price": 5, "restaurant_id": 0, "pizza_id": 1},
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/restaurant_pizzas", body, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"errors":["validation errors"]}`, w.Body.String())
		})
	}
}

func TestCreateRestaurantPizzaMissingParent(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodPost, "/restaurant_pizzas", map[string]any{
		"price": 5, "restaurant_id": 99, "pizza_id": 1,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/restaurant_pizzas", map[string]any{
		"price": 5, "restaurant_id": 1, "pizza_id": 99,
	}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Pizza not found"}`, w.Body.String())
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/admin/restaurants", map[string]any{"name": "X"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")

	w = s.do(t, http.MethodPost, "/api/v1/admin/restaurants", map[string]any{"name": "X"}, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	userToken := s.tokenFor(t, models.RoleUser)
	w = s.do(t, http.MethodPost, "/api/v1/admin/restaurants", map[string]any{"name": "X"}, userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCreatesRestaurantAndPizza(t *testing.T) {
	s := setupTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/v1/admin/restaurants", map[string]any{
		"name": "Luigi's", "address": "12 Main St",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restaurant := decode[models.RestaurantSummary](t, w)
	assert.Equal(t, "Luigi's", restaurant.Name)
	assert.Equal(t, "12 Main St", restaurant.Address)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/restaurants/%d", restaurant.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[models.RestaurantDetail](t, w)
	assert.Equal(t, "Luigi's", detail.Name)
	assert.Equal(t, "12 Main St", detail.Address)
	assert.NotNil(t, detail.RestaurantPizzas)
	assert.Empty(t, detail.RestaurantPizzas)

	w = s.do(t, http.MethodPost, "/api/v1/admin/pizzas", map[string]any{
		"name": "Quattro", "ingredients": "Dough, Four cheeses",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	pizza := decode[models.PizzaSummary](t, w)
	assert.Equal(t, "Quattro", pizza.Name)

	w = s.do(t, http.MethodPost, "/api/v1/admin/restaurants", `{"address":"nameless"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, w.Body.String())
}

func TestAdminDeletesPizzaWithPrices(t *testing.T) {
	s := setupTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)

	w := s.do(t, http.MethodDelete, "/api/v1/admin/pizzas/1", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/restaurants/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[models.RestaurantDetail](t, w).RestaurantPizzas)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/pizzas/1", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Pizza not found"}`, w.Body.String())
}

func TestAdminManagesClients(t *testing.T) {
	s := setupTestServer(t)
	token := s.tokenFor(t, models.RoleAdmin)

	w := s.do(t, http.MethodPost, "/api/v1/admin/clients", map[string]any{"name": "reporting"}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	clientID, _ := created["client_id"].(string)
	require.NotEmpty(t, clientID)
	assert.NotEmpty(t, created["client_secret"])

	w = s.do(t, http.MethodGet, "/api/v1/admin/clients", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	clients := decode[[]map[string]any](t, w)
	assert.Len(t, clients, 2)
	for _, c := range clients {
		assert.NotContains(t, c, "secret")
	}

	w = s.do(t, http.MethodDelete, "/api/v1/admin/clients/"+clientID, nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/clients/"+clientID, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "up", body["database"])

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = s.do(t, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "down", decode[map[string]any](t, w)["database"])
}

func TestSystemRoutes(t *testing.T) {
	s := setupTestServer(t)

	s.do(t, http.MethodGet, "/pizzas", nil, "")
	w := s.do(t, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w = s.do(t, http.MethodGet, "/no/such/route", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/pizzas", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"http://localhost:3000"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowOrigins)
}
