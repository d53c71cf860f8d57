//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"delivery/internal/entities"
	emailGateway "delivery/internal/gateway/http/email"
	googleGateway "delivery/internal/gateway/http/googleauth"
	pushGateway "delivery/internal/gateway/http/push"
	storageGateway "delivery/internal/gateway/http/storage"
	"delivery/internal/handlers/rest/client_orders_get"
	"delivery/internal/handlers/rest/clients_get"
	"delivery/internal/handlers/rest/contact_post"
	"delivery/internal/handlers/rest/courier_approve_post"
	"delivery/internal/handlers/rest/courier_apply_post"
	"delivery/internal/handlers/rest/courier_delete"
	"delivery/internal/handlers/rest/courier_feedback_get"
	"delivery/internal/handlers/rest/courier_get"
	"delivery/internal/handlers/rest/courier_put"
	"delivery/internal/handlers/rest/couriers_available_get"
	"delivery/internal/handlers/rest/couriers_get"
	"delivery/internal/handlers/rest/email_verified_get"
	"delivery/internal/handlers/rest/feedback_post"
	"delivery/internal/handlers/rest/newsletter_post"
	"delivery/internal/handlers/rest/notification_send_post"
	"delivery/internal/handlers/rest/notification_token_post"
	"delivery/internal/handlers/rest/notifications_get"
	"delivery/internal/handlers/rest/notifications_read_post"
	"delivery/internal/handlers/rest/order_create_post"
	"delivery/internal/handlers/rest/order_delete"
	"delivery/internal/handlers/rest/order_get"
	"delivery/internal/handlers/rest/order_status_patch"
	"delivery/internal/handlers/rest/orders_get"
	"delivery/internal/handlers/rest/orders_user_get"
	"delivery/internal/handlers/rest/settings_get"
	"delivery/internal/handlers/rest/settings_patch"
	"delivery/internal/handlers/rest/signin_google_post"
	"delivery/internal/handlers/rest/signin_post"
	"delivery/internal/handlers/rest/signup_post"
	"delivery/internal/handlers/rest/upload_post"
	"delivery/internal/handlers/tasks/notification_cleanup"
	"delivery/internal/pkg/config"
	"delivery/internal/pkg/jwt"

	courierRepo "delivery/internal/repository/courier"
	feedbackRepo "delivery/internal/repository/feedback"
	marketingRepo "delivery/internal/repository/marketing"
	notificationRepo "delivery/internal/repository/notification"
	orderRepo "delivery/internal/repository/order"
	settingsRepo "delivery/internal/repository/settings"
	userRepo "delivery/internal/repository/user"

	authService "delivery/internal/service/auth"
	courierService "delivery/internal/service/courier"
	feedbackService "delivery/internal/service/feedback"
	marketingService "delivery/internal/service/marketing"
	notificationService "delivery/internal/service/notification"
	orderService "delivery/internal/service/order"
	settingsService "delivery/internal/service/settings"

	"delivery/pkg/background"
	"delivery/pkg/logger"
	"delivery/pkg/querier"
	"delivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceOrder        ServiceOrder
	ServiceCourier      ServiceCourier
	ServiceFeedback     ServiceFeedback
	ServiceNotification ServiceNotification
	ServiceAuth         ServiceAuth
	ServiceSettings     ServiceSettings
	ServiceMarketing    ServiceMarketing
	Tokens              *jwt.Service
	BackgroundWorkers   *background.Worker
}

type ServiceOrder interface {
	order_create_post.Service
	order_get.Service
	orders_user_get.Service
	orders_get.Service
	order_status_patch.Service
	order_delete.Service
	client_orders_get.Service
}

type ServiceCourier interface {
	courier_apply_post.Service
	couriers_available_get.Service
	couriers_get.Service
	courier_get.Service
	courier_put.Service
	courier_delete.Service
	courier_approve_post.Service
	upload_post.Service
}

type ServiceFeedback interface {
	feedback_post.Service
	courier_feedback_get.Service
}

type ServiceNotification interface {
	notification_send_post.Service
	notification_token_post.Service
	notifications_get.Service
	notifications_read_post.Service
}

type ServiceAuth interface {
	signup_post.Service
	signin_post.Service
	signin_google_post.Service
	email_verified_get.Service
	clients_get.Service
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type ServiceSettings interface {
	settings_get.Service
	settings_patch.Service
}

type ServiceMarketing interface {
	newsletter_post.Service
	contact_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideHTTPClient,
		provideJWTService,

		providePushGateway,
		provideStorageGateway,
		provideEmailGateway,
		provideGoogleGateway,

		provideOrderRepository,
		provideCourierRepository,
		provideFeedbackRepository,
		provideNotificationRepository,
		provideUserRepository,
		provideSettingsRepository,
		provideMarketingRepository,

		provideServiceAuth,
		provideServiceNotification,
		provideServiceCourier,
		provideServiceOrder,
		provideServiceFeedback,
		provideServiceSettings,
		provideServiceMarketing,

		provideNotificationCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceFeedback), new(*feedbackService.Feedback)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceSettings), new(*settingsService.Settings)),
		wire.Bind(new(ServiceMarketing), new(*marketingService.Marketing)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(orderService.Notifier), new(*notificationService.Notification)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.Storage), new(*storageGateway.Gateway)),
		wire.Bind(new(courierService.Broadcaster), new(*notificationService.Notification)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(feedbackService.Repository), new(*feedbackRepo.Repository)),
		wire.Bind(new(feedbackService.OrderService), new(*orderService.Order)),
		wire.Bind(new(feedbackService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(feedbackService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.UserService), new(*authService.Auth)),
		wire.Bind(new(notificationService.PushGateway), new(*pushGateway.Gateway)),

		wire.Bind(new(authService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*jwt.Service)),
		wire.Bind(new(authService.GoogleVerifier), new(*googleGateway.Gateway)),
		wire.Bind(new(authService.Mailer), new(*emailGateway.Gateway)),

		wire.Bind(new(settingsService.Repository), new(*settingsRepo.Repository)),

		wire.Bind(new(marketingService.Repository), new(*marketingRepo.Repository)),
		wire.Bind(new(marketingService.Mailer), new(*emailGateway.Gateway)),

		wire.Bind(new(notification_cleanup.Service), new(*notificationService.Notification)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServiceOrder *orderService.Order
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideHTTPClient,
		provideJWTService,

		providePushGateway,
		provideStorageGateway,
		provideEmailGateway,
		provideGoogleGateway,

		provideOrderRepository,
		provideCourierRepository,
		provideNotificationRepository,
		provideUserRepository,

		provideServiceAuth,
		provideServiceNotification,
		provideServiceCourier,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(orderService.Notifier), new(*notificationService.Notification)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.Storage), new(*storageGateway.Gateway)),
		wire.Bind(new(courierService.Broadcaster), new(*notificationService.Notification)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.UserService), new(*authService.Auth)),
		wire.Bind(new(notificationService.PushGateway), new(*pushGateway.Gateway)),

		wire.Bind(new(authService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*jwt.Service)),
		wire.Bind(new(authService.GoogleVerifier), new(*googleGateway.Gateway)),
		wire.Bind(new(authService.Mailer), new(*emailGateway.Gateway)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

func provideJWTService(cfg *config.Config) *jwt.Service {
	return jwt.New(cfg.JWT.Secret, cfg.JWT.TTL)
}

func providePushGateway(client *http.Client, cfg *config.Config) *pushGateway.Gateway {
	return pushGateway.New(client, cfg.Push.BaseURL, cfg.Push.APIKey)
}

func provideStorageGateway(client *http.Client, cfg *config.Config) *storageGateway.Gateway {
	return storageGateway.New(client, cfg.Storage.BaseURL, cfg.Storage.APIKey)
}

func provideEmailGateway(client *http.Client, cfg *config.Config) *emailGateway.Gateway {
	return emailGateway.New(client, cfg.Email.BaseURL, cfg.Email.APIKey, cfg.Email.From)
}

func provideGoogleGateway(client *http.Client, cfg *config.Config) *googleGateway.Gateway {
	return googleGateway.New(client, cfg.Google.ClientID)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideFeedbackRepository(querier *querier.Querier) *feedbackRepo.Repository {
	return feedbackRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideSettingsRepository(querier *querier.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func provideMarketingRepository(querier *querier.Querier) *marketingRepo.Repository {
	return marketingRepo.New(querier)
}

func provideServiceAuth(
	repository authService.Repository,
	tokens authService.TokenIssuer,
	google authService.GoogleVerifier,
	mailer authService.Mailer,
	log logger.Logger,
) *authService.Auth {
	return authService.New(repository, tokens, google, mailer, log)
}

func provideServiceNotification(
	repository notificationService.Repository,
	userService notificationService.UserService,
	push notificationService.PushGateway,
	log logger.Logger,
) *notificationService.Notification {
	return notificationService.New(repository, userService, push, log)
}

func provideServiceCourier(
	repository courierService.Repository,
	storage courierService.Storage,
	broadcaster courierService.Broadcaster,
	txManager courierService.TxManager,
	log logger.Logger,
) *courierService.Courier {
	return courierService.New(repository, storage, broadcaster, txManager, log)
}

func provideServiceOrder(
	repository orderService.Repository,
	courierSvc orderService.CourierService,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Order {
	return orderService.New(repository, courierSvc, notifier, txManager, log)
}

func provideServiceFeedback(
	repository feedbackService.Repository,
	orderSvc feedbackService.OrderService,
	courierSvc feedbackService.CourierService,
	txManager feedbackService.TxManager,
) *feedbackService.Feedback {
	return feedbackService.New(repository, orderSvc, courierSvc, txManager)
}

func provideServiceSettings(repository settingsService.Repository) *settingsService.Settings {
	return settingsService.New(repository)
}

func provideServiceMarketing(
	repository marketingService.Repository,
	mailer marketingService.Mailer,
	cfg *config.Config,
	log logger.Logger,
) *marketingService.Marketing {
	return marketingService.New(repository, mailer, cfg.Email.CompanyInbox, log)
}

func provideNotificationCleanupTask(
	log logger.Logger,
	notificationSvc notification_cleanup.Service,
	cfg *config.Config,
) *notification_cleanup.NotificationCleanup {
	return notification_cleanup.NewNotificationCleanup(
		log,
		notificationSvc,
		cfg.Tasks.NotificationCleanupInterval,
		int64(cfg.Tasks.NotificationRetentionDays),
	)
}

func provideTaskList(
	notificationCleanupTask *notification_cleanup.NotificationCleanup,
) []background.Task {
	return []background.Task{
		notificationCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
