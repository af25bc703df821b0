package router

import (
	"github.com/trumanharry/record-nexus-connect/internal/handlers"
	"github.com/trumanharry/record-nexus-connect/internal/middleware"
	"github.com/trumanharry/record-nexus-connect/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	recordHandler := handlers.NewRecordHandler()
	commentHandler := handlers.NewCommentHandler()
	userHandler := handlers.NewUserHandler()
	ratingHandler := handlers.NewRatingHandler()
	notificationHandler := handlers.NewNotificationHandler()

	// Public Routes
	r.POST("/api/signup", authHandler.Register)
	r.POST("/api/login", authHandler.Login)
	r.POST("/api/logout", authHandler.Logout)
	r.GET("/api/leaderboard", userHandler.Leaderboard)
	r.GET("/api/users/:uid", userHandler.Profile)

	// Protected Routes
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me", authHandler.Me)
		authorized.GET("/points", userHandler.Points)

		authorized.GET("/records/:type", recordHandler.List)
		authorized.POST("/records/:type", recordHandler.Create)
		authorized.GET("/records/:type/:uid", recordHandler.Get)
		authorized.PUT("/records/:type/:uid", recordHandler.Update)

		authorized.GET("/records/:type/:uid/comments", commentHandler.List)
		authorized.POST("/records/:type/:uid/comments", commentHandler.Create)
		authorized.POST("/comments/:uid/vote", commentHandler.Vote)

		authorized.POST("/records/:type/:uid/follow", userHandler.Follow)
		authorized.POST("/records/:type/:uid/rating", ratingHandler.Rate)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)
	}

	// Admin Routes
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RequireRole(models.RoleAdministrator))
	{
		admin.DELETE("/records/:type/:uid", recordHandler.Delete)
	}
}
