package feedback

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"delivery/internal/entities"
	orderservice "delivery/internal/service/order"
)

type Feedback struct {
	repository     Repository
	orderService   OrderService
	courierService CourierService
	txManager      TxManager
}

func New(
	repository Repository,
	orderService OrderService,
	courierService CourierService,
	txManager TxManager,
) *Feedback {
	return &Feedback{
		repository:     repository,
		orderService:   orderService,
		courierService: courierService,
		txManager:      txManager,
	}
}

// Submit принимает отзыв по доставленному заказу. Вставка отзыва и
// инкремент счетчиков рейтинга курьера выполняются в одной транзакции,
// поэтому средний рейтинг нельзя потерять при конкурентных отправках.
func (s *Feedback) Submit(ctx context.Context, draft entities.FeedbackDraft) (*entities.Feedback, error) {
	if strings.TrimSpace(draft.OrderID) == "" {
		return nil, ErrInvalidOrderID
	}
	if draft.CourierID <= 0 {
		return nil, ErrInvalidCourierID
	}
	if draft.Rating < 1 || draft.Rating > 5 {
		return nil, ErrInvalidRating
	}

	orderEntity, err := s.orderService.GetOrder(ctx, draft.OrderID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if orderEntity.Status != entities.OrderDelivered {
		return nil, ErrOrderNotDelivered
	}
	if orderEntity.ClientID != draft.ClientID {
		return nil, ErrNotOrderClient
	}

	if _, err := s.courierService.GetActiveCourier(ctx, draft.CourierID); err != nil {
		return nil, ErrCourierNotFound
	}

	exists, err := s.repository.ExistsForOrderAndClient(ctx, draft.OrderID, draft.ClientID)
	if err != nil {
		return nil, fmt.Errorf("check existing feedback: %w", err)
	}
	if exists {
		return nil, ErrDuplicateFeedback
	}

	var created *entities.Feedback
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("create feedback: %w", err)
		}

		err = s.courierService.AddRating(ctx, draft.CourierID, draft.Rating)
		if err != nil {
			return fmt.Errorf("update courier rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Feedback) ListCourierFeedback(ctx context.Context, courierID int64) ([]entities.Feedback, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	feedbacks, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list courier feedback: %w", err)
	}
	return feedbacks, nil
}
