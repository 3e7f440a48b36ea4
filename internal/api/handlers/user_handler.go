// internal/api/handlers/user_handler.go
package handlers

import (
	"errors"
	"net/http"

	"fasttrack-logistics-api-server/config"
	"fasttrack-logistics-api-server/internal/auth"
	"fasttrack-logistics-api-server/internal/models"
	"fasttrack-logistics-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users store.UserStore
	Cfg   config.JWTConfig
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		respondStoreError(c, err)
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT([]byte(h.Cfg.Secret), user.Email, user.Role, user.ID, user.PersonnelID, h.Cfg.ExpirationDuration())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"name":        user.Name,
			"role":        user.Role,
			"personnelID": user.PersonnelID,
		},
	})
}

type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Name        string `json:"name" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required,oneof=admin dispatcher driver"`
	PersonnelID string `json:"personnelID"`
}

// CreateUser chỉ dành cho admin (route đã gắn middleware Authorize).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Email:       req.Email,
		Name:        req.Name,
		Password:    hashed,
		Role:        req.Role,
		PersonnelID: req.PersonnelID,
		Status:      "active",
	}
	id, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		respondStoreError(c, err)
		return
	}
	user.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	// Không trả về hash mật khẩu.
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":          u.ID,
			"email":       u.Email,
			"name":        u.Name,
			"role":        u.Role,
			"personnelID": u.PersonnelID,
			"status":      u.Status,
		})
	}
	c.JSON(http.StatusOK, out)
}
