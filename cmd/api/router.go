package main

import (
	"github.com/gin-gonic/gin"

	blogModel "portfolio-backend/internal/domains/blog/model"
	certificateModel "portfolio-backend/internal/domains/certificate/model"
	educationModel "portfolio-backend/internal/domains/education/model"
	experienceModel "portfolio-backend/internal/domains/experience/model"
	projectModel "portfolio-backend/internal/domains/project/model"
	skillModel "portfolio-backend/internal/domains/skill/model"
	uploadHandler "portfolio-backend/internal/domains/upload/handler"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins...),
	)
	router.MaxMultipartMemory = int64(c.Config.Upload.MaxSizeMB) << 20

	router.GET("/uploads/*filepath", c.UploadHandler.Serve)

	api := router.Group("/api")
	{
		api.GET("/health", c.HealthHandler.Check)

		setupAuthRoutes(api, c)
		setupUploadRoutes(api, c)

		setupEntityRoutes(api, c, "skills", skillModel.AssetCategory, c.SkillHandler)
		setupEntityRoutes(api, c, "projects", projectModel.AssetCategory, c.ProjectHandler)
		setupEntityRoutes(api, c, "education", educationModel.AssetCategory, c.EducationHandler)
		setupEntityRoutes(api, c, "experience", experienceModel.AssetCategory, c.ExperienceHandler)
		setupEntityRoutes(api, c, "certificates", certificateModel.AssetCategory, c.CertificateHandler)
		setupEntityRoutes(api, c, "blog", blogModel.AssetCategory, c.BlogHandler)

		setupCertificateRoutes(api, c)
		setupBlogRoutes(api, c)
		setupMessageRoutes(api, c)
		setupSettingsRoutes(api, c)

		api.GET("/public/portfolio", c.PortfolioHandler.Summary)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	rl := c.Config.RateLimit
	api.POST("/login",
		middleware.RateLimit(c.Counter, "login", rl.LoginAttempts, rl.LoginWindow),
		c.UserHandler.Login,
	)
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload", c.Auth.Admin(), c.UploadHandler.Upload(uploadHandler.GeneralCategory))
}

// ========================================
// ENTITY ROUTES (shared CRUD shape)
// ========================================

// entityHandler is the route surface every collection handler exposes.
type entityHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ListPublic(c *gin.Context)
	GetPublic(c *gin.Context)
}

func setupEntityRoutes(api *gin.RouterGroup, c *container.Container, name, assetCategory string, h entityHandler) {
	admin := api.Group("/"+name, c.Auth.Admin())
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.POST("/upload", c.UploadHandler.Upload(assetCategory))
		admin.GET("/:id", h.Get)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}

	public := api.Group("/public/" + name)
	{
		public.GET("", h.ListPublic)
		public.GET("/:id", h.GetPublic)
	}
}

// ========================================
// CERTIFICATE ROUTES
// ========================================
func setupCertificateRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/certificates/stats", c.Auth.Admin(), c.CertificateHandler.Stats)
}

// ========================================
// BLOG ROUTES
// ========================================
func setupBlogRoutes(api *gin.RouterGroup, c *container.Container) {
	public := api.Group("/public/blog")
	{
		public.GET("/slug/:slug", c.BlogHandler.GetPublicBySlug)
		public.GET("/categories", c.BlogHandler.Categories)
		public.POST("/:id/like", c.BlogHandler.Like)
	}
}

// ========================================
// MESSAGE ROUTES
// ========================================
func setupMessageRoutes(api *gin.RouterGroup, c *container.Container) {
	rl := c.Config.RateLimit
	messages := api.Group("/messages")
	{
		messages.POST("",
			middleware.RateLimit(c.Counter, "contact", rl.ContactAttempts, rl.ContactWindow),
			c.MessageHandler.Submit,
		)
		messages.GET("", c.Auth.Admin(), c.MessageHandler.List)
		messages.GET("/:id", c.Auth.Admin(), c.MessageHandler.Get)
		messages.PUT("/:id/read", c.Auth.Admin(), c.MessageHandler.MarkRead)
		messages.DELETE("/:id", c.Auth.Admin(), c.MessageHandler.Delete)
	}
}

// ========================================
// SETTINGS ROUTES
// ========================================
func setupSettingsRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/settings", c.SettingsHandler.Get)
	api.PUT("/settings", c.Auth.Admin(), c.SettingsHandler.Update)
	api.PUT("/social", c.Auth.Admin(), c.SettingsHandler.UpdateSocial)
	api.GET("/public/contact-info", c.SettingsHandler.ContactInfo)
}
