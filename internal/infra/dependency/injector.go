// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finanzas-personales/backend/config"
	"github.com/finanzas-personales/backend/internal/application/adapter"
	"github.com/finanzas-personales/backend/internal/application/usecase/auth"
	"github.com/finanzas-personales/backend/internal/application/usecase/creditcard"
	"github.com/finanzas-personales/backend/internal/application/usecase/dashboard"
	"github.com/finanzas-personales/backend/internal/application/usecase/goal"
	"github.com/finanzas-personales/backend/internal/application/usecase/payment"
	"github.com/finanzas-personales/backend/internal/application/usecase/reminder"
	"github.com/finanzas-personales/backend/internal/application/usecase/snapshot"
	"github.com/finanzas-personales/backend/internal/application/usecase/timeless"
	"github.com/finanzas-personales/backend/internal/application/usecase/wishlist"
	"github.com/finanzas-personales/backend/internal/infra/server/router"
	"github.com/finanzas-personales/backend/internal/integration/adapters"
	"github.com/finanzas-personales/backend/internal/integration/email"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/controller"
	"github.com/finanzas-personales/backend/internal/integration/entrypoint/middleware"
	"github.com/finanzas-personales/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// Background engine use cases, driven by the ticker in main.
	RunCutOffCycle   *creditcard.RunCutOffCycleUseCase
	SendDueReminders *reminder.SendDueRemindersUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *Injector {
	// Create repositories
	goalRepo := persistence.NewSavingsGoalRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	timelessRepo := persistence.NewTimelessPaymentRepository(db)
	wishlistRepo := persistence.NewWishlistRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	clock := adapters.NewSystemClock()
	pinService := adapters.NewPINService()
	tokenService := adapters.NewSessionTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionExpiry)

	// Reminder markers live in Redis when available so restarts don't
	// re-notify; otherwise an in-memory tracker suffices.
	var tracker adapter.ReminderTracker
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		tracker = adapters.NewRedisReminderTracker(redisClient)
	} else {
		tracker = adapters.NewMemoryReminderTracker()
	}

	// Notifications go out by email when Resend is configured, to the log
	// otherwise.
	var notifier adapter.Notifier
	if cfg.Email.ResendAPIKey != "" && cfg.Email.ToEmail != "" {
		notifier = email.NewNotifier(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail, cfg.Email.ToEmail, logger)
	} else {
		notifier = adapters.NewSlogNotifier(logger)
	}

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	contributeToGoalUseCase := goal.NewContributeToGoalUseCase(goalRepo, clock)
	setProjectionUseCase := goal.NewSetProjectionUseCase(goalRepo)

	// Create payment use cases
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo, clock)
	createPaymentUseCase := payment.NewCreatePaymentUseCase(paymentRepo)
	updatePaymentUseCase := payment.NewUpdatePaymentUseCase(paymentRepo)
	deletePaymentUseCase := payment.NewDeletePaymentUseCase(paymentRepo)
	contributeToPaymentUseCase := payment.NewContributeToPaymentUseCase(paymentRepo, cardRepo, notifier)

	// Create credit card use cases
	listCardsUseCase := creditcard.NewListCardsUseCase(cardRepo, clock)
	createCardUseCase := creditcard.NewCreateCardUseCase(cardRepo)
	updateCardUseCase := creditcard.NewUpdateCardUseCase(cardRepo)
	updateBalanceUseCase := creditcard.NewUpdateBalanceUseCase(cardRepo)
	deleteCardUseCase := creditcard.NewDeleteCardUseCase(cardRepo)
	runCutOffCycleUseCase := creditcard.NewRunCutOffCycleUseCase(cardRepo, paymentRepo, notifier, clock)

	// Create timeless payment use cases
	listTimelessUseCase := timeless.NewListTimelessUseCase(timelessRepo)
	createTimelessUseCase := timeless.NewCreateTimelessUseCase(timelessRepo)
	updateTimelessUseCase := timeless.NewUpdateTimelessUseCase(timelessRepo)
	deleteTimelessUseCase := timeless.NewDeleteTimelessUseCase(timelessRepo)
	contributeTimelessUseCase := timeless.NewContributeUseCase(timelessRepo, clock)

	// Create wishlist use cases
	listItemsUseCase := wishlist.NewListItemsUseCase(wishlistRepo)
	createItemUseCase := wishlist.NewCreateItemUseCase(wishlistRepo)
	updateItemUseCase := wishlist.NewUpdateItemUseCase(wishlistRepo)
	deleteItemUseCase := wishlist.NewDeleteItemUseCase(wishlistRepo)
	promoteToGoalUseCase := wishlist.NewPromoteToGoalUseCase(wishlistRepo, goalRepo)

	// Create dashboard, snapshot and reminder use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(goalRepo, paymentRepo, cardRepo, clock)
	importSnapshotUseCase := snapshot.NewImportUseCase(goalRepo, paymentRepo, cardRepo, timelessRepo, wishlistRepo, settingsRepo, clock, logger)
	exportSnapshotUseCase := snapshot.NewExportUseCase(goalRepo, paymentRepo, cardRepo, timelessRepo, wishlistRepo, settingsRepo)
	sendDueRemindersUseCase := reminder.NewSendDueRemindersUseCase(paymentRepo, tracker, notifier, clock)

	// Create auth use cases
	setupPINUseCase := auth.NewSetupPINUseCase(settingsRepo, pinService)
	unlockUseCase := auth.NewUnlockUseCase(settingsRepo, pinService, tokenService, tracker)
	changePINUseCase := auth.NewChangePINUseCase(settingsRepo, pinService)

	// Create controllers
	healthController := controller.NewHealthController()

	authController := controller.NewAuthController(
		setupPINUseCase,
		unlockUseCase,
		changePINUseCase,
		settingsRepo,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		contributeToGoalUseCase,
		setProjectionUseCase,
	)

	paymentController := controller.NewPaymentController(
		listPaymentsUseCase,
		createPaymentUseCase,
		updatePaymentUseCase,
		deletePaymentUseCase,
		contributeToPaymentUseCase,
	)

	creditCardController := controller.NewCreditCardController(
		listCardsUseCase,
		createCardUseCase,
		updateCardUseCase,
		updateBalanceUseCase,
		deleteCardUseCase,
		runCutOffCycleUseCase,
	)

	timelessController := controller.NewTimelessController(
		listTimelessUseCase,
		createTimelessUseCase,
		updateTimelessUseCase,
		deleteTimelessUseCase,
		contributeTimelessUseCase,
	)

	wishlistController := controller.NewWishlistController(
		listItemsUseCase,
		createItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
		promoteToGoalUseCase,
	)

	dashboardController := controller.NewDashboardController(getSummaryUseCase)
	snapshotController := controller.NewSnapshotController(importSnapshotUseCase, exportSnapshotUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var unlockRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		unlockRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		unlockRateLimiter = middleware.NewRateLimiter()
	}
	lockMiddleware := middleware.NewLockMiddleware(settingsRepo, tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		goalController,
		paymentController,
		creditCardController,
		timelessController,
		wishlistController,
		dashboardController,
		snapshotController,
		unlockRateLimiter,
		lockMiddleware,
	)

	return &Injector{
		Config:           cfg,
		DB:               db,
		Router:           r,
		RunCutOffCycle:   runCutOffCycleUseCase,
		SendDueReminders: sendDueRemindersUseCase,
	}
}
