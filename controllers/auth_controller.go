package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ankit/temple-ledger-go/config"
	"github.com/ankit/temple-ledger-go/identity"
	"github.com/ankit/temple-ledger-go/models"
	"github.com/ankit/temple-ledger-go/utils"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ---------------- REGISTER ----------------
func Register(cfg *config.Config, users identity.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input credentials
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
			return
		}

		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			config.LogError("controllers", "Register", "hash password", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		_, err = users.Insert(ctx, models.User{
			Username:     input.Username,
			PasswordHash: hash,
			Role:         models.RoleUser,
			CreatedAt:    time.Now(),
		})
		if errors.Is(err, identity.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
			return
		}
		if err != nil {
			config.LogError("controllers", "Register", "insert user", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

// ---------------- LOGIN ----------------
func Login(cfg *config.Config, users identity.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input credentials
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username and password are required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByUsername(ctx, input.Username)
		if errors.Is(err, identity.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot find user"})
			return
		}
		if err != nil {
			config.LogError("controllers", "Login", "find user", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
			return
		}

		if !utils.CheckPassword(user.PasswordHash, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
			return
		}

		token, err := utils.GenerateToken(cfg.JWTSecret, user.Username, user.Role, cfg.TokenTTL)
		if err != nil {
			config.LogError("controllers", "Login", "sign token", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during login"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"accessToken": token})
	}
}
