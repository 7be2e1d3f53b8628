package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mmqops/booking-api/internal/api"
	"github.com/mmqops/booking-api/internal/cache"
	"github.com/mmqops/booking-api/internal/config"
	"github.com/mmqops/booking-api/internal/db"
	"github.com/mmqops/booking-api/internal/logger"
	"github.com/mmqops/booking-api/internal/notifier"
	"github.com/mmqops/booking-api/internal/repository"
	"github.com/mmqops/booking-api/internal/repository/dao"
	"github.com/mmqops/booking-api/internal/scheduler"
	"github.com/mmqops/booking-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	// Redis is optional. When it is unreachable the month-view cache is
	// simply disabled and every request hits Postgres.
	redisCache := cache.New(cache.NewRedisClient(conf.Redis), conf.Redis.CachePrefix, conf.Redis.CacheTTL)

	notif := notifier.NewFromConfig(conf.Notifier)

	s := api.NewServer(conf, postgresDB, redisCache, notif)

	if conf.Scheduler.Enabled {
		inventorySvc := service.NewInventoryService(
			repository.NewScheduleEventRepository(dao.NewScheduleEventDAO(postgresDB)),
			repository.NewReservationRepository(dao.NewReservationDAO(postgresDB)),
			notif,
		)
		sched := scheduler.New()
		if err = sched.AddInventoryCheck(conf.Scheduler.InventoryCheckCron, inventorySvc); err != nil {
			return fmt.Errorf("failed to schedule inventory check -> %w", err)
		}
		sched.Start()
		defer sched.Stop()
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
