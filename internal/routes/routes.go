package routes

import (
	"fyp-app-server/internal/chat"
	"fyp-app-server/internal/config"
	"fyp-app-server/internal/handlers"
	"fyp-app-server/internal/middleware"
	"fyp-app-server/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	documentHandler := handlers.NewDocumentHandler(db)
	taskHandler := handlers.NewTaskHandler(db)

	resolver := chat.NewGormResolver(db)
	chatService := chat.NewService(
		chat.NewGormStore(db),
		resolver,
		resolver,
		resolver,
		cfg.Chat.DefaultPageSize,
		cfg.Chat.MaxPageSize,
	)
	chatHandler := handlers.NewChatHandler(chatService)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// User management routes (typically admin-only)
		userRoutes := private.Group("/users")
		{
			// Accessible by all authenticated users, students use it to pick a supervisor
			userRoutes.GET("/supervisors", userHandler.GetSupervisors)

			// Supervisors see their own students, admins see all
			userRoutes.GET("/supervised-students", userHandler.GetSupervisedStudents)

			adminRoutes := userRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", userHandler.CreateUser)
				adminRoutes.GET("", userHandler.GetUsers)
				adminRoutes.GET("/:id", userHandler.GetUserByID)
				adminRoutes.PUT("/:id", userHandler.UpdateUser)
				adminRoutes.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		// Project routes
		projectRoutes := private.Group("/projects")
		{
			// Students propose projects
			projectRoutes.POST("", middleware.RoleAuthMiddleware(models.RoleStudent), projectHandler.ProposeProject)

			// Listing is role-scoped inside the handler
			projectRoutes.GET("", projectHandler.GetProjectsForUser)
			projectRoutes.GET("/:id", projectHandler.GetProjectByID)
			projectRoutes.PUT("/:id", projectHandler.UpdateProject)

			// Supervisors drive the approval workflow
			projectRoutes.PATCH("/:id/status", middleware.RoleAuthMiddleware(models.RoleSupervisor, models.RoleAdmin), projectHandler.UpdateProjectStatus)

			// Documents scoped to a project
			projectRoutes.POST("/:id/documents", documentHandler.UploadDocument)
			projectRoutes.GET("/:id/documents", documentHandler.GetDocumentsForProject)

			// Tasks and milestones scoped to a project
			projectRoutes.POST("/:id/tasks", taskHandler.CreateTask)
			projectRoutes.GET("/:id/tasks", taskHandler.GetTasksForProject)
			projectRoutes.POST("/:id/milestones", middleware.RoleAuthMiddleware(models.RoleSupervisor, models.RoleAdmin), taskHandler.CreateMilestone)
			projectRoutes.GET("/:id/milestones", taskHandler.GetMilestonesForProject)
		}

		// Document routes addressed by document id
		documentRoutes := private.Group("/documents")
		{
			documentRoutes.GET("/:id/file", documentHandler.DownloadDocument)
			documentRoutes.PATCH("/:id/status", documentHandler.UpdateDocumentStatus)
			documentRoutes.DELETE("/:id", documentHandler.DeleteDocument)
		}

		// Task and milestone routes addressed by their own ids
		taskRoutes := private.Group("/tasks")
		{
			taskRoutes.PUT("/:taskId", taskHandler.UpdateTask)
			taskRoutes.DELETE("/:taskId", taskHandler.DeleteTask)
		}
		milestoneRoutes := private.Group("/milestones")
		{
			milestoneRoutes.PATCH("/:milestoneId/status", taskHandler.UpdateMilestoneStatus)
		}

		// Conversation routes: the student/supervisor messaging channel
		conversationRoutes := private.Group("/conversations")
		{
			conversationRoutes.GET("/taggable-items", chatHandler.GetTaggableItems)
			conversationRoutes.GET("/with/:counterpartId", chatHandler.GetOrCreateConversation)
			conversationRoutes.GET("/:id/messages", chatHandler.GetMessages)
			conversationRoutes.GET("/:id/messages/new", chatHandler.GetNewMessages)
			conversationRoutes.POST("/:id/messages", chatHandler.SendMessage)
			conversationRoutes.PUT("/:id/messages/read", chatHandler.MarkMessagesAsRead)
			conversationRoutes.GET("/:id/search", chatHandler.SearchMessages)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
