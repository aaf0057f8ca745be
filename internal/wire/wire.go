package wire

import (
	"Orion/internal/api"
	"Orion/internal/api/config"
	"Orion/internal/api/handler"
	"Orion/internal/job"
	"Orion/internal/pkg/cron"
	"Orion/internal/realtime"
	"Orion/internal/repository"
	"Orion/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	postActionRepo := repository.NewPostActionRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	needRepo := repository.NewNeedRepo(db)
	notifRepo := repository.NewNotificationRepo(db)
	resourceRepo := repository.NewResourceRepo(db)
	studentProfileRepo := repository.NewStudentProfileRepo(db)
	startupProfileRepo := repository.NewStartupProfileRepo(db)

	registry := realtime.NewRegistry()

	notificationService := service.NewNotificationService(notifRepo)
	deliveryService := service.NewDeliveryService(registry, notifRepo, userRepo)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo, notificationService, deliveryService)
	postActionService := service.NewPostActionService(postActionRepo, postRepo, userRepo, notificationService, deliveryService)
	sessionService := service.NewSessionService(sessionRepo, userRepo, notificationService, deliveryService)
	needService := service.NewNeedService(needRepo, userRepo, notificationService, deliveryService)
	resourceService := service.NewResourceService(resourceRepo)
	studentProfileService := service.NewStudentProfileService(studentProfileRepo)
	startupProfileService := service.NewStartupProfileService(startupProfileRepo)
	exploreService := service.NewExploreService(startupProfileRepo)
	userActivityService := service.NewUserActivityService(postRepo, postActionRepo, sessionRepo, needRepo)

	handlers := &api.HandlersGroup{
		UserHandler:           handler.NewUserHandler(userService),
		PostHandler:           handler.NewPostHandler(postService),
		PostActionHandler:     handler.NewPostActionHandler(postActionService),
		SessionHandler:        handler.NewSessionHandler(sessionService),
		NeedHandler:           handler.NewNeedHandler(needService),
		NotificationHandler:   handler.NewNotificationHandler(notificationService),
		ResourceHandler:       handler.NewResourceHandler(resourceService),
		StudentProfileHandler: handler.NewStudentProfileHandler(studentProfileService),
		StartupProfileHandler: handler.NewStartupProfileHandler(startupProfileService),
		ExploreHandler:        handler.NewExploreHandler(exploreService),
		UserActivityHandler:   handler.NewUserActivityHandler(userActivityService),
		WSHandler:             handler.NewWsHandler(registry, notificationService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewTrendingPostJob(postActionRepo))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
