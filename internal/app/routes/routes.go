package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/controllers"
	"github.com/selorm/scholarbase/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	profileController *controllers.ProfileController,
	projectController *controllers.ProjectController,
	figureController *controllers.FigureController,
	dashboardController *controllers.DashboardController,
	publicController *controllers.PublicController,
	referenceController *controllers.ReferenceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Crawler endpoints live at the site root, not under the API prefix.
	router.GET("/sitemap.xml", publicController.GetSitemap)
	router.GET("/robots.txt", publicController.GetRobots)

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	public := v1.Group("/public")
	{
		public.GET("/projects", publicController.ListProjects)
		public.GET("/featured", publicController.GetFeaturedProjects)
		public.GET("/stats", publicController.GetStats)
		public.GET("/projects/:slug", publicController.GetProject)
		public.GET("/projects/:slug/document", publicController.DownloadDocument)
		public.GET("/projects/:slug/document/view", publicController.ViewDocument)
		public.GET("/supervisors/:slug", publicController.GetSupervisorProfile)
		public.GET("/supervisors/:slug/picture", publicController.GetSupervisorPicture)
	}

	reference := v1.Group("/reference")
	{
		reference.GET("/constants", referenceController.GetConstants)
		reference.GET("/supervisors", referenceController.GetSupervisors)
	}

	// Figure images are public so the published site can embed them directly.
	v1.GET("/figures/:figureId/image", figureController.GetImage)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/refresh", authController.RefreshToken)
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.POST("/auth/change-password", authController.ChangePassword)

		profile := authenticated.Group("/profile")
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
			profile.GET("/picture", profileController.GetProfilePicture)
			profile.DELETE("/picture", profileController.DeleteProfilePicture)
		}

		projects := authenticated.Group("/projects")
		{
			projects.GET("", projectController.ListProjects)
			projects.POST("", projectController.CreateProject)
			projects.GET("/:id", projectController.GetProject)
			projects.PUT("/:id", projectController.UpdateProject)
			projects.DELETE("/:id", projectController.DeleteProject)
			projects.POST("/:id/toggle-publish", projectController.TogglePublish)
			projects.GET("/:id/document", projectController.DownloadDocument)
			projects.GET("/:id/document/view", projectController.ViewDocument)
			projects.DELETE("/:id/document", projectController.DeleteDocument)

			projects.GET("/:id/figures", figureController.ListFigures)
			projects.POST("/:id/figures", figureController.UploadFigure)
		}

		figures := authenticated.Group("/figures")
		{
			figures.PUT("/:figureId", figureController.UpdateFigure)
			figures.DELETE("/:figureId", figureController.DeleteFigure)
		}

		authenticated.GET("/dashboard/stats", dashboardController.GetStats)
		authenticated.GET("/dashboard/activity", dashboardController.GetActivity)

		// Account administration is restricted to coordinators.
		users := authenticated.Group("/users")
		users.Use(authMiddleware.CoordinatorRequired())
		{
			users.GET("", userController.ListUsers)
			users.POST("", userController.CreateUser)
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)
			users.DELETE("/:id", userController.DeleteUser)
			users.PATCH("/:id/toggle-status", userController.ToggleUserStatus)
		}
	}
}
