package handler

import (
	"TranscriptSummarizer_Backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router wires every endpoint. Only /api/v1/summarize sits behind the token
// gate; the user CRUD surface is open, as in the original API.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLog(h.log), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/login", h.Login)

		v1.POST("/user", h.CreateUser)
		v1.GET("/user", h.GetAllUsers)
		v1.GET("/user/:id", h.GetUserByID)
		v1.PATCH("/user/:id", h.UpdateUser)
		v1.PUT("/user/:id", h.UpdateUser)
		v1.DELETE("/user/:id", h.DeleteUser)

		v1.POST("/summarize", middleware.Auth(h.tokens), h.Summarize)
	}

	return router
}
