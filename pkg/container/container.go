package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	blogHandler "portfolio-backend/internal/domains/blog/handler"
	blogRepo "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"
	certificateHandler "portfolio-backend/internal/domains/certificate/handler"
	certificateRepo "portfolio-backend/internal/domains/certificate/repository"
	certificateService "portfolio-backend/internal/domains/certificate/service"
	educationHandler "portfolio-backend/internal/domains/education/handler"
	educationRepo "portfolio-backend/internal/domains/education/repository"
	educationService "portfolio-backend/internal/domains/education/service"
	experienceHandler "portfolio-backend/internal/domains/experience/handler"
	experienceRepo "portfolio-backend/internal/domains/experience/repository"
	experienceService "portfolio-backend/internal/domains/experience/service"
	healthHandler "portfolio-backend/internal/domains/health/handler"
	messageHandler "portfolio-backend/internal/domains/message/handler"
	messageRepo "portfolio-backend/internal/domains/message/repository"
	messageService "portfolio-backend/internal/domains/message/service"
	portfolioHandler "portfolio-backend/internal/domains/portfolio/handler"
	portfolioService "portfolio-backend/internal/domains/portfolio/service"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	settingsHandler "portfolio-backend/internal/domains/settings/handler"
	settingsRepo "portfolio-backend/internal/domains/settings/repository"
	settingsService "portfolio-backend/internal/domains/settings/service"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"
	uploadHandler "portfolio-backend/internal/domains/upload/handler"
	userHandler "portfolio-backend/internal/domains/user/handler"
	userRepo "portfolio-backend/internal/domains/user/repository"
	userService "portfolio-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every field is a process-wide singleton.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *cache.RedisClient // nil when REDIS_ENABLED=false
	Counter    cache.Counter
	Assets     *storage.AssetStore
	Notifier   *email.ContactNotifier
	JWTManager *jwt.Manager
	Auth       *middleware.Authenticator

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService        userService.Service
	SettingsService    settingsService.Service
	SkillService       skillService.ServiceInterface
	ProjectService     projectService.ServiceInterface
	EducationService   educationService.ServiceInterface
	ExperienceService  experienceService.ServiceInterface
	CertificateService certificateService.ServiceInterface
	BlogService        blogService.ServiceInterface
	MessageService     messageService.ServiceInterface
	PortfolioService   portfolioService.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	HealthHandler      *healthHandler.HealthHandler
	UserHandler        *userHandler.UserHandler
	UploadHandler      *uploadHandler.UploadHandler
	SettingsHandler    *settingsHandler.SettingsHandler
	SkillHandler       *skillHandler.SkillHandler
	ProjectHandler     *projectHandler.ProjectHandler
	EducationHandler   *educationHandler.EducationHandler
	ExperienceHandler  *experienceHandler.ExperienceHandler
	CertificateHandler *certificateHandler.CertificateHandler
	BlogHandler        *blogHandler.BlogHandler
	MessageHandler     *messageHandler.MessageHandler
	PortfolioHandler   *portfolioHandler.PortfolioHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer wires the graph in dependency order:
// infrastructure, then services, then handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("[CONTAINER] initializing", map[string]interface{}{"env": cfg.App.Environment})

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.DBConfig())

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 2: RATE LIMIT COUNTER
	// ========================================
	// Redis is optional; without it counters live in process memory.
	c.Counter = cache.NewMemoryCounter()
	if cfg.Redis.Enabled {
		rc := cache.NewRedisClient(cfg.Redis)
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("[REDIS] unavailable, using in-memory rate limiting", err, nil)
			_ = rc.Close()
		} else {
			c.Redis = rc
			c.Counter = rc.Counter("portfolio:ratelimit:")
		}
	}

	// ========================================
	// STEP 3: ASSET STORE
	// ========================================
	assets, err := newAssetStore(ctx, cfg)
	if err != nil {
		c.Cleanup()
		return nil, err
	}
	c.Assets = assets

	// ========================================
	// STEP 4: EMAIL + TOKENS
	// ========================================
	sender, err := email.NewSender(cfg.Email)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init email sender: %w", err)
	}
	c.Notifier = email.NewContactNotifier(sender, cfg.Email.NotifyTo)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWTTTL())

	// ========================================
	// STEP 5: SERVICES + HANDLERS
	// ========================================
	c.initServices()
	c.initHandlers()

	logger.Info("[CONTAINER] initialized", map[string]interface{}{
		"upload_backend": cfg.Upload.Backend,
		"email_provider": cfg.Email.Provider,
		"redis":          c.Redis != nil,
	})
	return c, nil
}

func newAssetStore(ctx context.Context, cfg *config.Config) (*storage.AssetStore, error) {
	var backend storage.Backend

	switch cfg.Upload.Backend {
	case "minio":
		mb, err := storage.NewMinIOBackend(ctx, cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to init minio storage: %w", err)
		}
		backend = mb
	default:
		lb, err := storage.NewLocalBackend(cfg.Upload.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to init local storage: %w", err)
		}
		backend = lb
	}

	maxSize := int64(cfg.Upload.MaxSizeMB) << 20
	return storage.NewAssetStore(backend, cfg.Upload.AllowedExtensions, maxSize, cfg.App.PublicBaseURL), nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initServices() {
	pool := c.DB.Pool

	c.UserService = userService.NewUserService(userRepo.NewPostgresRepository(pool), c.JWTManager)
	c.Auth = middleware.NewAuthenticator(c.JWTManager, c.UserService)

	c.SettingsService = settingsService.NewSettingsService(settingsRepo.NewPostgresRepository(pool))

	c.SkillService = skillService.NewSkillService(skillRepo.NewPostgresSkillRepository(pool), c.Assets)
	c.ProjectService = projectService.NewProjectService(projectRepo.NewPostgresProjectRepository(pool), c.Assets)
	c.EducationService = educationService.NewEducationService(educationRepo.NewPostgresEducationRepository(pool), c.Assets)
	c.ExperienceService = experienceService.NewExperienceService(experienceRepo.NewPostgresExperienceRepository(pool), c.Assets)
	c.CertificateService = certificateService.NewCertificateService(certificateRepo.NewPostgresCertificateRepository(pool), c.Assets)
	c.BlogService = blogService.NewBlogService(blogRepo.NewPostgresBlogRepository(pool), c.Assets)

	c.MessageService = messageService.NewMessageService(messageRepo.NewPostgresMessageRepository(pool), c.Notifier)

	c.PortfolioService = portfolioService.NewPortfolioService(portfolioService.Sources{
		Skills:       c.SkillService,
		Projects:     c.ProjectService,
		Education:    c.EducationService,
		Experience:   c.ExperienceService,
		Certificates: c.CertificateService,
		Blog:         c.BlogService,
	})
}

func (c *Container) initHandlers() {
	checks := []healthHandler.Check{
		{Name: "database", Critical: true, Ping: c.DB.Ping},
	}
	if c.Redis != nil {
		checks = append(checks, healthHandler.Check{Name: "redis", Ping: c.Redis.Ping})
	}
	c.HealthHandler = healthHandler.NewHealthHandler(c.Config.App.Version, checks...)

	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.Assets)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)

	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.EducationHandler = educationHandler.NewEducationHandler(c.EducationService)
	c.ExperienceHandler = experienceHandler.NewExperienceHandler(c.ExperienceService)
	c.CertificateHandler = certificateHandler.NewCertificateHandler(c.CertificateService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.MessageHandler = messageHandler.NewMessageHandler(c.MessageService)
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService)
}

// ========================================
// LIFECYCLE
// ========================================

// Cleanup waits for queued notifications, then closes connections. Safe on a partial container.
func (c *Container) Cleanup() {
	logger.Info("[CONTAINER] cleaning up", nil)

	c.Notifier.Wait()

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Warn("[REDIS] close failed", err, nil)
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}
}
