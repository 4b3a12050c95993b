package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthverse/models"
	"healthverse/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	account *models.User
}

func (s *stubUserRepo) Create(u *models.User) error { return nil }
func (s *stubUserRepo) GetByUID(uid string) (*models.User, error) {
	if s.account == nil || s.account.UID != uid {
		return nil, fmt.Errorf("user %s not found", uid)
	}
	return s.account, nil
}
func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	return nil, fmt.Errorf("user with email %s not found", email)
}
func (s *stubUserRepo) GetAll() ([]models.User, error)     { return nil, nil }
func (s *stubUserRepo) Update(u *models.User) error        { return nil }
func (s *stubUserRepo) SetStatus(uid, status string) error { return nil }
func (s *stubUserRepo) RecordLogin(uid string) error       { return nil }

func TestJWTAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	prev := utils.AuthCacheClient
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { utils.AuthCacheClient = prev })

	repo := &stubUserRepo{account: &models.User{
		UID:         "pat-1",
		DisplayName: "Jane Wanjiru",
		Role:        models.RolePatient,
		Status:      models.UserStatusActive,
	}}

	r := gin.New()
	r.GET("/x", JWTAuthMiddleware(repo), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, err := utils.GenerateToken("pat-1", "pat@clinic.example", models.RolePatient, time.Hour)
	require.NoError(t, err)

	call := func() int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call())

	// Blacklist the token the way a logout would.
	key := utils.RevokedTokenPrefix + utils.HashToken(token)
	require.NoError(t, utils.AuthCacheClient.Set(context.Background(), key, "1", time.Hour).Err())

	assert.Equal(t, http.StatusUnauthorized, call())
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		role    string
		allowed []string
		want    int
	}{
		{"exact match", "admin", []string{"admin"}, http.StatusOK},
		{"one of several", "receptionist", []string{"admin", "receptionist"}, http.StatusOK},
		{"wrong role", "patient", []string{"admin"}, http.StatusForbidden},
		{"no role set", "", []string{"admin"}, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) {
				if tc.role != "" {
					c.Set("userRole", tc.role)
				}
			}, RequireRole(tc.allowed...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"x-forwarded-for single", "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "203.0.113.7"}, "203.0.113.7"},
		{"x-forwarded-for list", "10.0.0.1:1234", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "203.0.113.7"},
		{"x-real-ip", "10.0.0.1:1234", map[string]string{"X-Real-IP": "198.51.100.3"}, "198.51.100.3"},
		{"remote addr with port", "192.0.2.9:5555", nil, "192.0.2.9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, GetClientIP(c))
		})
	}
}
