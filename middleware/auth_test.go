package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optiroute/auth"
	"optiroute/types"
)

type stubUserLoader struct {
	users map[string]*types.User
}

func (s *stubUserLoader) GetUser(ctx context.Context, uid string) (*types.User, error) {
	user, ok := s.users[uid]
	if !ok {
		return nil, fmt.Errorf("user %s not found", uid)
	}
	return user, nil
}

func setupRouter(t *testing.T, user *types.User, allowed ...types.Role) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", time.Minute, time.Hour)
	loader := &stubUserLoader{users: map[string]*types.User{user.UID: user}}

	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/guarded",
		Authenticate(jwtManager, loader),
		RequireRole(allowed...),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) },
	)
	return r, token
}

func TestAuthenticate(t *testing.T) {
	user := &types.User{UID: "u1", Email: "u1@example.com", Role: types.RoleNormalUser}

	t.Run("missing header is unauthorized", func(t *testing.T) {
		r, _ := setupRouter(t, user)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		r, _ := setupRouter(t, user)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("denial names the caller's actual role", func(t *testing.T) {
		user := &types.User{UID: "u1", Role: types.RoleNormalUser}
		r, token := setupRouter(t, user, types.RoleDoctor)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "normal_user")
	})

	t.Run("empty allowed set admits any authenticated role", func(t *testing.T) {
		user := &types.User{UID: "u2", Role: types.RoleNormalUser}
		r, token := setupRouter(t, user)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("matching role passes", func(t *testing.T) {
		user := &types.User{UID: "u3", Role: types.RoleDoctor}
		r, token := setupRouter(t, user, types.RoleDoctor, types.RoleAdmin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
