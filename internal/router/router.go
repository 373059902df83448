package router

import (
	"fmt"

	"life-go/internal/config"
	"life-go/internal/handler"
	"life-go/internal/middleware"
	"life-go/internal/models"
	"life-go/internal/repository"
	"life-go/internal/service"
	"life-go/internal/utils"
	"life-go/pkg/redis_limiter"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
// limiter may be nil to disable throttling.
func SetupRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	logger *logrus.Logger,
	db *gorm.DB,
	limiter *redis_limiter.RedisLimiter,
) (*gin.Engine, error) {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.InitValidator()

	r := gin.New()
	r.RedirectTrailingSlash = true

	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	profileRepo := repository.NewProfileRepository(db)
	level1Repo := repository.NewLevel1Repository(db)
	activityRepo := repository.NewActivityRepository(db)

	profileService := service.NewProfileService(profileRepo, cfg, logger)
	level1Service := service.NewLevel1Service(profileRepo, level1Repo, logger)
	activityService := service.NewActivityService(profileRepo, activityRepo, logger)
	summaryService := service.NewSummaryService(profileRepo, level1Repo, activityRepo)
	adminService, err := service.NewAdminService(jwtManager, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init admin service: %w", err)
	}

	profileHandler := handler.NewProfileHandler(profileService)
	level1Handler := handler.NewLevel1Handler(level1Service)
	maintenanceHandler := handler.NewActivityHandler(activityService, models.KindMaintenance)
	leakageHandler := handler.NewActivityHandler(activityService, models.KindLeakage)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	presetHandler := handler.NewPresetHandler(activityService)
	adminHandler := handler.NewAdminHandler(adminService, profileService)
	healthHandler := handler.NewHealthHandler(db)

	r.GET("/health", healthHandler.Check)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(limiter, logger))
	{
		api.GET("/user-profile", profileHandler.Describe)
		api.POST("/user-profile", profileHandler.Create)
		api.GET("/user-profile/:user_id", profileHandler.Get)

		api.POST("/level1/:user_id", level1Handler.Submit)
		api.GET("/level1/:user_id", level1Handler.Get)

		api.GET("/category2/:user_id", maintenanceHandler.List)
		api.POST("/category2/:user_id", maintenanceHandler.Create)
		api.PATCH("/category2/:user_id/:activity_id", maintenanceHandler.Patch)

		api.GET("/category3/:user_id", leakageHandler.List)
		api.POST("/category3/:user_id", leakageHandler.Create)
		api.PATCH("/category3/:user_id/:activity_id", leakageHandler.Patch)

		api.GET("/life-summary/:user_id", summaryHandler.Get)
		api.GET("/life-summary/:user_id/export", summaryHandler.Export)
		api.GET("/presets", presetHandler.List)

		api.POST("/admin/login", adminHandler.Login)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middleware.AuthMiddleware(jwtManager), middleware.AdminMiddleware())
		{
			adminGroup.GET("/profiles", adminHandler.ListProfiles)
			adminGroup.DELETE("/profiles/:user_id", adminHandler.DeleteProfile)
		}
	}

	return r, nil
}
