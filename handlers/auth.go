package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"optiroute/auth"
	"optiroute/db"
	"optiroute/middleware"
	"optiroute/types"
)

// Signup creates the user document and issues tokens. First sign-ins
// without an explicit role default to normal_user.
func Signup(c *gin.Context, store *db.Store, jwtManager *auth.JWTManager) {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("Signup email lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	role := req.Role
	if role == "" {
		role = types.RoleNormalUser
	}

	user := types.User{
		UID:          uuid.NewString(),
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         role,
		RoleName:     string(role),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		LastLogin:    time.Now().UTC(),
	}
	if err := store.CreateUser(c.Request.Context(), user); err != nil {
		log.Printf("Signup create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	respondWithTokens(c, jwtManager, &user)
}

// Login verifies the password and issues tokens.
func Login(c *gin.Context, store *db.Store, jwtManager *auth.JWTManager) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("Login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	user.LastLogin = time.Now().UTC()
	if err := store.MergeUserFields(c.Request.Context(), user.UID, map[string]interface{}{"lastLogin": user.LastLogin}); err != nil {
		log.Printf("Failed to record last login for %s: %v", user.UID, err)
	}

	respondWithTokens(c, jwtManager, user)
}

// Refresh rotates the access token given a valid refresh token.
func Refresh(c *gin.Context, store *db.Store, jwtManager *auth.JWTManager) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	user, err := store.GetUser(c.Request.Context(), claims.UID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	respondWithTokens(c, jwtManager, user)
}

// Me returns the session user.
func Me(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateRoleProfile merges role-specific profile fields (farmer,
// warehouse, logistics) into the caller's user document.
func UpdateRoleProfile(c *gin.Context, store *db.Store) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req types.RoleProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{
		"role":     req.Role,
		"roleName": string(req.Role),
	}
	if len(req.Fields) > 0 {
		fields["profile"] = req.Fields
	}

	if err := store.MergeUserFields(c.Request.Context(), user.UID, fields); err != nil {
		log.Printf("Role profile merge failed for %s: %v", user.UID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func respondWithTokens(c *gin.Context, jwtManager *auth.JWTManager, user *types.User) {
	token, err := jwtManager.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	refreshToken, err := jwtManager.GenerateRefreshToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, types.AuthResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
	})
}
