package bootstrap

import (
	"context"
	"log"
	"time"

	"bizhub-be/internal/config"
	"bizhub-be/internal/controller"
	"bizhub-be/internal/handler"
	"bizhub-be/internal/pkg/logger"
	"bizhub-be/internal/pkg/mailer"
	"bizhub-be/internal/repository/memory"
	"bizhub-be/internal/repository/unitofwork"
	"bizhub-be/internal/service"
	"bizhub-be/internal/websocket"
	"bizhub-be/pkg/batch"
	"bizhub-be/pkg/extraction"
	"bizhub-be/pkg/gemini"

	pktNats "bizhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	OAuthController        controller.IOAuthController
	DocumentController     controller.IDocumentController
	StrategyNoteController controller.IStrategyNoteController
	ChatController         controller.IChatController
	NewsController         controller.INewsController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	NewsService     service.INewsService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	geminiClient := gemini.NewClient(cfg.Keys.GoogleGemini)
	pipeline := extraction.NewPipeline(geminiClient)

	sessionRepo := memory.NewSessionRepository()

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.ParseDocTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ParseDocTopic,
		uowFactory,
		pipeline,
		cfg.Keys.MaxExtractChars,
		natsPub,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	oauthService := service.NewOAuthService(uowFactory)

	documentService := service.NewDocumentService(
		uowFactory,
		publisherService,
		natsPub,
		cfg.App.StorageDir,
		sysLogger,
	)
	strategyNoteService := service.NewStrategyNoteService(uowFactory)
	chatService := service.NewChatService(uowFactory, geminiClient, sessionRepo, sysLogger)

	newsOrchestrator := batch.NewOrchestrator(batch.UTCClock{}, 4, 90*time.Second)
	newsService := service.NewNewsService(
		uowFactory,
		geminiClient,
		newsOrchestrator,
		natsPub,
		emailService,
		cfg.News.SummaryEmail,
		sysLogger,
	)

	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 3.5 Notification System
	notifService := service.NewNotificationService(uowFactory, natsSub, wsHub, wsLogger)
	go notifService.Start()

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler:    notifHandler,
		WebSocketHub:           wsHub,
		AuthController:         controller.NewAuthController(authService),
		OAuthController:        controller.NewOAuthController(oauthService),
		DocumentController:     controller.NewDocumentController(documentService),
		StrategyNoteController: controller.NewStrategyNoteController(strategyNoteService),
		ChatController:         controller.NewChatController(chatService),
		NewsController:         controller.NewNewsController(newsService),
		AdminController:        controller.NewAdminController(adminService, newsService),

		ConsumerService: consumerService,
		NewsService:     newsService,
	}
}
