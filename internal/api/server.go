package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/mmqops/booking-api/docs"
	v1 "github.com/mmqops/booking-api/internal/api/handler/v1"
	"github.com/mmqops/booking-api/internal/api/middleware"
	"github.com/mmqops/booking-api/internal/cache"
	"github.com/mmqops/booking-api/internal/config"
	"github.com/mmqops/booking-api/internal/notifier"
	"github.com/mmqops/booking-api/internal/repository"
	"github.com/mmqops/booking-api/internal/repository/dao"
	"github.com/mmqops/booking-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
	cache  *cache.Cache
}

func NewServer(conf *config.AppConfig, db *gorm.DB, c *cache.Cache, notif notifier.Notifier) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
		cache:  c,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	scheduleHandler := s.initScheduleHandler(db)
	reservationHandler := s.initReservationHandler(db)
	scenarioHandler := s.initScenarioHandler(db)
	staffHandler := s.initStaffHandler(db)
	inventoryHandler := s.initInventoryHandler(db, notif)
	s.MountHandlers(authHandler, scheduleHandler, reservationHandler, scenarioHandler, staffHandler, inventoryHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initScheduleHandler(db *gorm.DB) *v1.ScheduleHandler {
	eventDAO := dao.NewScheduleEventDAO(db)
	repo := repository.NewScheduleEventRepository(eventDAO)
	svc := service.NewScheduleService(repo)
	handler := v1.NewScheduleHandler(svc, s.cache)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	repo := repository.NewReservationRepository(dao.NewReservationDAO(db))
	eventRepo := repository.NewScheduleEventRepository(dao.NewScheduleEventDAO(db))
	svc := service.NewReservationService(repo, eventRepo)
	handler := v1.NewReservationHandler(svc)

	return handler
}

func (s *Server) initScenarioHandler(db *gorm.DB) *v1.ScenarioHandler {
	repo := repository.NewScenarioRepository(dao.NewScenarioDAO(db))
	eventRepo := repository.NewScheduleEventRepository(dao.NewScheduleEventDAO(db))
	svc := service.NewScenarioService(repo, eventRepo)
	handler := v1.NewScenarioHandler(svc)

	return handler
}

func (s *Server) initStaffHandler(db *gorm.DB) *v1.StaffHandler {
	repo := repository.NewStaffRepository(dao.NewStaffDAO(db))
	svc := service.NewStaffService(repo)
	handler := v1.NewStaffHandler(svc)

	return handler
}

func (s *Server) initInventoryHandler(db *gorm.DB, notif notifier.Notifier) *v1.InventoryHandler {
	eventRepo := repository.NewScheduleEventRepository(dao.NewScheduleEventDAO(db))
	reservationRepo := repository.NewReservationRepository(dao.NewReservationDAO(db))
	svc := service.NewInventoryService(eventRepo, reservationRepo, notif)
	userSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewInventoryHandler(s.Config.API, svc, userSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	scheduleHandler *v1.ScheduleHandler,
	reservationHandler *v1.ReservationHandler,
	scenarioHandler *v1.ScenarioHandler,
	staffHandler *v1.StaffHandler,
	inventoryHandler *v1.InventoryHandler,
) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)
	verifyJWT := authenticator.VerifyJWT()

	schedule := s.Router.Group(basePath, verifyJWT, middleware.CacheResponse(s.cache))
	{
		schedule.GET("/schedule", scheduleHandler.HandleListMonth)
		schedule.GET("/schedule/counts", scheduleHandler.HandleCounts)
		schedule.GET("/schedule/slot", scheduleHandler.HandleEventsForSlot)
		schedule.POST("/schedule", scheduleHandler.HandleCreateEvent)
		schedule.PUT("/schedule/:eventID", scheduleHandler.HandleUpdateEvent)
		schedule.POST("/schedule/:eventID/cancel", scheduleHandler.HandleCancelEvent)
		schedule.POST("/schedule/:eventID/uncancel", scheduleHandler.HandleUncancelEvent)
		schedule.DELETE("/schedule/:eventID", scheduleHandler.HandleDeleteEvent)
	}

	reservations := s.Router.Group(basePath, verifyJWT)
	{
		reservations.GET("/reservations", reservationHandler.HandleListReservationsByEvent)
		reservations.POST("/reservations", reservationHandler.HandleCreateReservation)
		reservations.PUT("/reservations/:reservationID/status", reservationHandler.HandleUpdateReservationStatus)
		reservations.POST("/reservations/:reservationID/link", reservationHandler.HandleLinkReservation)
	}

	scenarios := s.Router.Group(basePath, verifyJWT)
	{
		scenarios.GET("/scenarios", scenarioHandler.HandleListScenarios)
		scenarios.GET("/scenarios/:scenarioID", scenarioHandler.HandleGetScenario)
		scenarios.POST("/scenarios", scenarioHandler.HandleCreateScenario)
		scenarios.POST("/scenarios/reconcile", scenarioHandler.HandleReconcileScenarios)
	}

	staff := s.Router.Group(basePath, verifyJWT)
	{
		staff.GET("/staff", staffHandler.HandleListStaff)
		staff.GET("/staff/:staffID", staffHandler.HandleGetStaff)
		staff.POST("/staff", staffHandler.HandleCreateStaff)
		staff.PUT("/staff/:staffID", staffHandler.HandleUpdateStaff)
	}

	inventory := s.Router.Group(basePath, authenticator.VerifyJWTOrServiceKey(s.Config.API.ServiceKey))
	{
		inventory.POST("/inventory/check", inventoryHandler.HandleRunCheck)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Booking API"
	docs.SwaggerInfo.Description = "Schedule, reservation and inventory API for murder mystery venues."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
