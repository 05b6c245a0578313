package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"brand-dashboard-be/internal/config"
	"brand-dashboard-be/internal/controller"
	encoreclient "brand-dashboard-be/internal/encore"
	"brand-dashboard-be/internal/handler"
	"brand-dashboard-be/internal/pkg/kyc"
	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/mailer"
	"brand-dashboard-be/internal/pkg/payment"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/internal/pkg/storage"
	"brand-dashboard-be/internal/repository/encore"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/internal/repository/unitofwork"
	"brand-dashboard-be/internal/scheduler"
	"brand-dashboard-be/internal/service"
	"brand-dashboard-be/internal/websocket"
	"brand-dashboard-be/pkg/database"
	"brand-dashboard-be/pkg/eventbus"
	"brand-dashboard-be/pkg/events"
	pktNats "brand-dashboard-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/redis/go-redis/v9"
)

const kycCacheTTL = 10 * time.Minute

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	CampaignController     controller.ICampaignController
	EnrollmentController   controller.IEnrollmentController
	WalletController       controller.IWalletController
	InvoiceController      controller.IInvoiceController
	PaymentController      controller.IPaymentController
	TeamController         controller.ITeamController
	OrganizationController controller.IOrganizationController
	UploadController       controller.IUploadController
	DashboardController    controller.IDashboardController

	// Authenticate backs the JWT middleware.
	Authenticate serverutils.PrincipalResolver

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Background work, started by Start
	NotificationService *service.NotificationService
	Scheduler           *scheduler.Scheduler

	Logger     *logger.ZapLogger
	DataSource string
	UploadDir  string
	// MockLatency is only non-zero for the seeded in-memory data source.
	MockLatency time.Duration

	publisher  events.Publisher
	subscriber events.Subscriber
	closers    []func()
}

func NewContainer(cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger, UploadDir: cfg.Uploads.Dir}

	uowFactory, source, err := openDataSource(cfg, sysLogger)
	if err != nil {
		return nil, err
	}
	c.DataSource = source
	if source == config.DataSourceMemory {
		c.MockLatency = cfg.App.MockLatency
	}

	// 2. Event Bus
	var closeBus func()
	c.publisher, c.subscriber, closeBus = openEventBus(cfg.App.NatsURL)
	c.closers = append(c.closers, closeBus)

	// 3. Infrastructure
	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Email, cfg.SMTP.Password,
			fmt.Sprintf("%s <%s>", cfg.SMTP.SenderName, cfg.SMTP.Email), sysLogger)
	} else {
		log.Println("[INFO] SMTP_HOST not set, invitation emails are logged only")
		emailService = mailer.NewLogMailer(sysLogger)
	}

	gateway := payment.NewMidtransGateway(cfg.Payments.MidtransServerKey, cfg.Payments.Production, cfg.Payments.FinishURL)
	verifier := kyc.NewVerifier(kyc.NewStaticRegistry(), kycCacheTTL)
	presigner := storage.NewPresigner(cfg.App.BaseURL, cfg.Uploads.Dir, cfg.Uploads.TicketTTL)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.NotificationLog)
	c.WebSocketHub = websocket.NewHub(openRedis(cfg.App.RedisURL), wsLogger)

	// 4. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, sysLogger)
	campaignService := service.NewCampaignService(uowFactory, c.publisher, sysLogger)
	enrollmentService := service.NewEnrollmentService(uowFactory, c.publisher, sysLogger)
	walletService := service.NewWalletService(uowFactory, gateway, c.publisher, sysLogger)
	invoiceService := service.NewInvoiceService(uowFactory, gateway, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, gateway, c.publisher, sysLogger)
	teamService := service.NewTeamService(uowFactory, emailService, c.publisher, sysLogger, cfg.App.ClientURL)
	organizationService := service.NewOrganizationService(uowFactory, verifier, c.publisher, sysLogger)
	uploadService := service.NewUploadService(presigner, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory)

	// Hub implements NotificationDelivery
	c.NotificationService = service.NewNotificationService(uowFactory, c.WebSocketHub, wsLogger)
	c.Authenticate = authService.Authenticate
	c.NotificationHandler = handler.NewNotificationHandler(c.NotificationService, c.publisher, c.WebSocketHub, cfg.Auth.JWTSecret, c.Authenticate, wsLogger)

	if cfg.Scheduler.Enabled {
		c.Scheduler, err = scheduler.New(cfg.Scheduler.Spec, cfg.Scheduler.Timeout, sysLogger,
			scheduler.Jobs(campaignService, enrollmentService, invoiceService))
		if err != nil {
			return nil, err
		}
	}

	// 5. Controllers
	c.AuthController = controller.NewAuthController(authService)
	c.CampaignController = controller.NewCampaignController(campaignService)
	c.EnrollmentController = controller.NewEnrollmentController(enrollmentService)
	c.WalletController = controller.NewWalletController(walletService)
	c.InvoiceController = controller.NewInvoiceController(invoiceService)
	c.PaymentController = controller.NewPaymentController(paymentService, sysLogger)
	c.TeamController = controller.NewTeamController(teamService)
	c.OrganizationController = controller.NewOrganizationController(organizationService)
	c.UploadController = controller.NewUploadController(uploadService)
	c.DashboardController = controller.NewDashboardController(dashboardService)

	return c, nil
}

// Start runs the hub, the notification worker and the scheduler until ctx ends.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if err := c.NotificationService.Start(c.subscriber); err != nil {
		return err
	}
	if c.Scheduler != nil {
		c.Scheduler.Start()
	}
	return nil
}

// Close stops background work and releases connections.
func (c *Container) Close(ctx context.Context) {
	if c.Scheduler != nil {
		c.Scheduler.Stop(ctx)
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.Logger.Sync()
}

// openDataSource picks the repository backend. An unreachable Encore backend
// falls back to the seeded in-memory store.
func openDataSource(cfg *config.Config, log logger.ILogger) (unitofwork.RepositoryFactory, string, error) {
	switch cfg.App.DataSource {
	case config.DataSourcePostgres:
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, !cfg.IsProduction())
		if err != nil {
			return nil, "", fmt.Errorf("unable to connect to GORM DB: %w", err)
		}
		log.Info("Bootstrap", "Using PostgreSQL data source", nil)
		return unitofwork.NewRepositoryFactory(db), config.DataSourcePostgres, nil

	case config.DataSourceEncore:
		client := encoreclient.NewClient(encoreclient.Config{
			BaseURL:       cfg.Encore.BaseURL,
			APIKey:        cfg.Encore.APIKey,
			Timeout:       cfg.Encore.Timeout,
			RatePerSecond: cfg.Encore.RatePerSecond,
			Burst:         cfg.Encore.Burst,
		})
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Encore.Timeout)
		defer cancel()
		if err := client.Health(ctx); err != nil {
			log.Warn("Bootstrap", "Encore backend unreachable, falling back to mock data", map[string]interface{}{
				"url":   cfg.Encore.BaseURL,
				"error": err.Error(),
			})
			break
		}
		log.Info("Bootstrap", "Using Encore data source", map[string]interface{}{"url": cfg.Encore.BaseURL})
		return encore.NewRepositoryFactory(client, seededStore()), config.DataSourceEncore, nil
	}

	log.Info("Bootstrap", "Using in-memory data source with demo fixtures", nil)
	return memory.NewRepositoryFactory(seededStore()), config.DataSourceMemory, nil
}

func seededStore() *memory.Store {
	return memory.NewSeededStore(memory.DemoFixtures(time.Now().UTC()))
}

// openEventBus prefers NATS JetStream and falls back to the in-process bus.
func openEventBus(natsURL string) (events.Publisher, events.Subscriber, func()) {
	if natsURL != "" {
		pub, err := pktNats.NewPublisher(natsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
		sub, subErr := pktNats.NewSubscriber(natsURL)
		if subErr != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", subErr)
		}
		if err == nil && subErr == nil {
			return pub, sub, func() {
				sub.Close()
				pub.Close()
			}
		}
		if pub != nil {
			pub.Close()
		}
		if sub != nil {
			sub.Close()
		}
	}

	log.Println("[INFO] Using in-process event bus")
	bus := eventbus.New(watermill.NewStdLogger(false, false))
	return bus, bus, bus.Close
}

// openRedis returns nil when no URL is set or the server does not answer, which
// keeps the hub local to this instance.
func openRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb.Close()
		return nil
	}
	return rdb
}
