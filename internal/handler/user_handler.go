package handler

import (
	"errors"
	"net/http"

	"TranscriptSummarizer_Backend/internal/auth"
	"TranscriptSummarizer_Backend/internal/models"
	"TranscriptSummarizer_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// CreateUser registers a new account. The password is hashed before it
// touches the store; the response never carries the hash.
func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_, emailIssue := firstValidationMessage(err)
		if emailIssue {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format."})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data."})
		}
		return
	}

	if _, err := h.store.GetByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		h.internalError(c, "create user: check email", err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.internalError(c, "create user: hash password", err)
		return
	}

	user, err := h.store.Create(req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		h.internalError(c, "create user: insert", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

// GetAllUsers lists id, email and name for every account.
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.store.List()
	if err != nil {
		h.internalError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUserByID(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	user, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, "get user", err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

// UpdateUser applies a partial update: absent fields keep their stored
// values, and the password is re-hashed only when one is supplied.
func (h *Handler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg, _ := firstValidationMessage(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	id, ok := userID(c)
	if !ok {
		return
	}

	if req.Email != "" {
		existing, err := h.store.GetByEmail(req.Email)
		if err == nil && existing.ID != id {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use by another user"})
			return
		}
		if err != nil && !errors.Is(err, storage.ErrUserNotFound) {
			h.internalError(c, "update user: check email", err)
			return
		}
	}

	var hash string
	if req.Password != "" {
		var err error
		if hash, err = auth.HashPassword(req.Password); err != nil {
			h.internalError(c, "update user: hash password", err)
			return
		}
	}

	user, err := h.store.Update(id, req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use by another user"})
			return
		}
		// Covers an unknown id as well; kept as a generic failure.
		h.internalError(c, "update user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user.Public(),
	})
}

// DeleteUser removes the account. Deleting an unknown id answers with the
// generic 500 rather than a 404.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(id); err != nil {
		h.internalError(c, "delete user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
