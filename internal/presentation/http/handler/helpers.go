package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserLogin extracts the user login from the Gin context
func GetUserLogin(c *gin.Context) string {
	login, exists := c.Get("user_login")
	if !exists {
		return ""
	}
	return login.(string)
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// IsAdmin checks if the user has the admin role
func IsAdmin(c *gin.Context) bool {
	return GetUserRole(c) == "admin"
}
