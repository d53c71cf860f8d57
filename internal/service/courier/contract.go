//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"delivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, collection entities.CourierCollection, courierEntity entities.Courier) (int64, error)
	GetByID(ctx context.Context, collection entities.CourierCollection, id int64) (*entities.Courier, error)
	GetAll(ctx context.Context, collection entities.CourierCollection) ([]entities.Courier, error)
	Update(ctx context.Context, collection entities.CourierCollection, courierModify entities.CourierModify) (*entities.Courier, error)
	Delete(ctx context.Context, collection entities.CourierCollection, id int64) error

	ListAvailable(ctx context.Context) ([]entities.CourierPublic, error)
	IncrementDeliveryCount(ctx context.Context, id int64) error
	AddRating(ctx context.Context, id int64, rating int64) error
}

type Storage interface {
	Upload(ctx context.Context, file entities.FileUpload) (*entities.FileRef, error)
	Delete(ctx context.Context, storageID string) error
}

type Broadcaster interface {
	BroadcastToAdmins(ctx context.Context, title, message string, ntype entities.NotificationType, payload map[string]string) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
