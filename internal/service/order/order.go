package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type Order struct {
	repository     Repository
	courierService CourierService
	notifier       Notifier
	txManager      TxManager
	log            logger.Logger
}

func New(
	repository Repository,
	courierService CourierService,
	notifier Notifier,
	txManager TxManager,
	log logger.Logger,
) *Order {
	return &Order{
		repository:     repository,
		courierService: courierService,
		notifier:       notifier,
		txManager:      txManager,
		log:            log.With(logger.NewField("service", "order")),
	}
}

// CreateOrder валидирует заявку, проверяет доступность курьера и в одной
// транзакции создает заказ и инкрементирует счетчик доставок курьера.
// Уведомления рассылаются после коммита и не влияют на результат.
func (s *Order) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	courier, err := s.courierService.GetActiveCourier(ctx, draft.CourierID)
	if err != nil {
		return nil, ErrCourierNotFound
	}
	if !courier.Available {
		return nil, ErrCourierUnavailable
	}

	orderEntity := entities.Order{
		ID:                  uuid.NewString(),
		ClientID:            draft.ClientID,
		Pickup:              draft.Pickup,
		Dropoff:             draft.Dropoff,
		PackageSize:         draft.PackageSize,
		Weight:              draft.Weight,
		Urgency:             draft.Urgency,
		ScheduledDate:       draft.ScheduledDate,
		SpecialInstructions: draft.SpecialInstructions,
		Insurance:           draft.Insurance,
		Amount:              draft.Amount,
		Distance:            draft.Distance,
		EstimatedTime:       draft.EstimatedTime,
		CourierID:           courier.ID,
		Status:              entities.OrderPending,
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		err = s.courierService.IncrementDeliveryCount(ctx, courier.ID)
		if err != nil {
			return fmt.Errorf("increment courier delivery count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, created, courier)

	return created, nil
}

// UpdateStatus перезаписывает статус заказа. Матрица переходов намеренно
// не проверяется: допустим любой статус из закрытого множества.
func (s *Order) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(status.String()) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repository.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	s.notifyStatusChanged(ctx, updated)

	return updated, nil
}

func (s *Order) DeleteOrder(ctx context.Context, orderID string) error {
	if !isValidOrderID(orderID) {
		return ErrInvalidOrderID
	}

	err := s.repository.Delete(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (s *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Order) ListClientOrders(ctx context.Context, clientID int64) ([]entities.Order, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClientID
	}

	orders, err := s.repository.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client orders: %w", err)
	}
	return orders, nil
}

func (s *Order) ListOrders(ctx context.Context, page, limit int64) (*entities.OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	result, err := s.repository.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return result, nil
}

// notifyCreated рассылает уведомления клиенту, курьеру и всем админам
// параллельно, не блокируя HTTP-ответ. Ошибки только логируются.
func (s *Order) notifyCreated(ctx context.Context, orderEntity *entities.Order, courier *entities.Courier) {
	notifyCtx := context.WithoutCancel(ctx)
	payload := map[string]string{
		"order_id": orderEntity.ID,
		"status":   orderEntity.Status.String(),
	}

	notifyLog := s.log.With(logger.NewField("order", orderEntity.ID))

	go func() {
		var g errgroup.Group

		g.Go(func() error {
			result, err := s.notifier.Send(notifyCtx, orderEntity.ClientID,
				"Order created",
				"Your delivery order has been created and is pending pickup.",
				entities.NotificationOrder, payload)
			logDelivery(notifyLog, "client", result, err)
			return nil
		})

		g.Go(func() error {
			if courier.UserID == nil {
				notifyLog.Warn("courier has no linked account, skipping notification",
					logger.NewField("courier", courier.ID),
				)
				return nil
			}
			result, err := s.notifier.Send(notifyCtx, *courier.UserID,
				"New delivery assigned",
				"A new order has been assigned to you.",
				entities.NotificationNewOrder, payload)
			logDelivery(notifyLog, "courier", result, err)
			return nil
		})

		g.Go(func() error {
			delivered, err := s.notifier.BroadcastToAdmins(notifyCtx,
				"New order",
				fmt.Sprintf("Order %s created.", orderEntity.ID),
				entities.NotificationNewOrder, payload)
			if err != nil {
				notifyLog.Warn("admin broadcast failed",
					logger.NewField("error", err),
				)
				return nil
			}
			notifyLog.Info("admin broadcast done",
				logger.NewField("delivered", delivered),
			)
			return nil
		})

		_ = g.Wait()
	}()
}

func (s *Order) notifyStatusChanged(ctx context.Context, orderEntity *entities.Order) {
	notifyCtx := context.WithoutCancel(ctx)
	payload := map[string]string{
		"order_id": orderEntity.ID,
		"status":   orderEntity.Status.String(),
	}

	notifyLog := s.log.With(logger.NewField("order", orderEntity.ID))

	go func() {
		result, err := s.notifier.Send(notifyCtx, orderEntity.ClientID,
			"Order update",
			fmt.Sprintf("Your order is now %s.", orderEntity.Status.String()),
			entities.NotificationOrderUpdate, payload)
		logDelivery(notifyLog, "client", result, err)
	}()
}

func logDelivery(log logger.Logger, target string, result *entities.NotificationDelivery, err error) {
	switch {
	case err != nil:
		log.Warn("notification failed",
			logger.NewField("target", target),
			logger.NewField("error", err),
		)
	case !result.Delivered:
		log.Warn("notification not delivered",
			logger.NewField("target", target),
			logger.NewField("reason", result.Reason),
		)
	default:
		log.Info("notification delivered",
			logger.NewField("target", target),
		)
	}
}
