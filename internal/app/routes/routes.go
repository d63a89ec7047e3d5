package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campusflow/backend/internal/app/controllers"
	"github.com/campusflow/backend/internal/app/models"
	"github.com/campusflow/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	termController *controllers.TermController,
	selectionController *controllers.SelectionController,
	departmentController *controllers.DepartmentController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	users := v1.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	terms := v1.Group("/terms")
	{
		terms.GET("", termController.ListTerms)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.ListDepartments)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		me := authenticated.Group("/users/me")
		{
			me.GET("", userController.GetProfile)
			me.PATCH("", userController.UpdateProfile)
		}

		// Term management is restricted to admins
		termsAdminProtected := authenticated.Group("/terms")
		termsAdminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			termsAdminProtected.POST("", termController.CreateTerm)
			termsAdminProtected.PUT("/:id", termController.UpdateTerm)
			termsAdminProtected.DELETE("/:id", termController.DeleteTerm)
		}

		// Term selection is a student-only surface
		studentsMe := authenticated.Group("/students/me")
		studentsMe.Use(authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentsMe.GET("/term", selectionController.GetCurrentTerm)
			studentsMe.PATCH("/term", selectionController.SelectTerm)
		}

		messages := authenticated.Group("/messages")
		{
			messages.POST("", messageController.SendMessage)
			messages.GET("", messageController.ListMessages)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
