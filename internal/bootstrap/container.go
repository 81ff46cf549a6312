package bootstrap

import (
	"context"
	"log"
	"os"
	"time"

	"archetype-quiz-be/internal/config"
	"archetype-quiz-be/internal/controller"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/pkg/mailer"
	"archetype-quiz-be/internal/repository/contract"
	"archetype-quiz-be/internal/repository/implementation"
	"archetype-quiz-be/internal/repository/memory"
	"archetype-quiz-be/internal/repository/redisstore"
	"archetype-quiz-be/internal/service"
	"archetype-quiz-be/internal/websocket"
	"archetype-quiz-be/pkg/quiz/catalog"
	"archetype-quiz-be/pkg/quiz/engine"

	pktNats "archetype-quiz-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QuizController  controller.IQuizController
	PodController   controller.IPodController
	AdminController controller.IAdminController

	// Background Services (Exposed for main.go to run)
	TelemetryService service.ITelemetryService

	// WebSockets
	WsHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stats_feed.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Classification Core
	cat := catalog.Default()
	cat.Thresholds = catalog.Thresholds{
		ClearTopScore:      cfg.Quiz.Thresholds.ClearTopScore,
		ClearGap:           cfg.Quiz.Thresholds.ClearGap,
		PairGap:            cfg.Quiz.Thresholds.PairGap,
		PairFloor:          cfg.Quiz.Thresholds.PairFloor,
		BlendFraction:      cfg.Quiz.Thresholds.BlendFraction,
		StrongConfidence:   cfg.Quiz.Thresholds.StrongConfidence,
		ModerateConfidence: cfg.Quiz.Thresholds.ModerateConfidence,
		MaxForkRounds:      cfg.Quiz.Thresholds.MaxForkRounds,
		MaxCorrections:     cfg.Quiz.Thresholds.MaxCorrections,
	}
	if err := cat.Validate(); err != nil {
		log.Fatalf("[FATAL] Question catalog is inconsistent: %v", err)
	}
	eng := engine.New(cat, log.New(os.Stdout, "", log.LstdFlags))

	// Session storage: process-local by default, redis when instances
	// share sessions.
	sessionTTL := time.Duration(cfg.Quiz.SessionTTLMinutes) * time.Minute
	var sessionRepo contract.SessionRepository
	if cfg.Quiz.SessionStore == "redis" {
		sessionRepo = redisstore.NewSessionRepository(rdb, sessionTTL)
		log.Printf("[INFO] Using Session Store: REDIS (ttl %s)", sessionTTL)
	} else {
		sessionRepo = memory.NewSessionRepository(sessionTTL)
		log.Printf("[INFO] Using Session Store: MEMORY (ttl %s)", sessionTTL)
	}

	// 4. Repositories
	resultRepo := implementation.NewQuizResultRepository(db)
	podRepo := implementation.NewPodSignupRepository(db)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Quiz.ResultTopic, pubSub)
	telemetryService := service.NewTelemetryService(
		pubSub,
		cfg.Quiz.ResultTopic,
		resultRepo,
		natsPub,
		wsHub,
	)

	quizService := service.NewQuizService(sessionRepo, eng, cat, publisherService, sysLogger)
	podService := service.NewPodService(podRepo, resultRepo, cat, emailService, natsPub, sysLogger)
	adminService := service.NewAdminService(cfg, resultRepo, podRepo, sysLogger)

	// 6. Controllers
	return &Container{
		QuizController:  controller.NewQuizController(quizService, telemetryService),
		PodController:   controller.NewPodController(podService),
		AdminController: controller.NewAdminController(adminService),

		TelemetryService: telemetryService,

		WsHub: wsHub,
	}
}
