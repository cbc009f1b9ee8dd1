package handler

import (
	"errors"
	"net/http"

	"TranscriptSummarizer_Backend/internal/auth"
	"TranscriptSummarizer_Backend/internal/models"
	"TranscriptSummarizer_Backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Login checks the credentials and issues a one-hour bearer token. Unknown
// email and wrong password answer with the same body so the endpoint cannot
// be used to enumerate accounts.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data."})
		return
	}

	user, err := h.store.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.internalError(c, "login: fetch user", err)
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		h.internalError(c, "login: generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
