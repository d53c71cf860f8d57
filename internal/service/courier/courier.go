package courier

import (
	"context"
	"fmt"
	"strconv"

	"delivery/internal/entities"
	"delivery/pkg/logger"
)

type Courier struct {
	repository  Repository
	storage     Storage
	broadcaster Broadcaster
	txManager   TxManager
	log         logger.Logger
}

func New(
	repository Repository,
	storage Storage,
	broadcaster Broadcaster,
	txManager TxManager,
	log logger.Logger,
) *Courier {
	return &Courier{
		repository:  repository,
		storage:     storage,
		broadcaster: broadcaster,
		txManager:   txManager,
		log:         log.With(logger.NewField("service", "courier")),
	}
}

// SubmitApplication загружает документы во внешнее хранилище и создает
// запись заявки. Админы уведомляются после вставки, сбой рассылки не
// отменяет заявку.
func (s *Courier) SubmitApplication(ctx context.Context, courierModify entities.CourierModify, files entities.ApplicationFiles) (int64, error) {
	if courierModify.FullName == nil ||
		courierModify.Email == nil ||
		courierModify.Phone == nil ||
		courierModify.Address == nil ||
		courierModify.Transport == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.FullName) {
		return 0, ErrInvalidName
	}
	if !isValidEmail(*courierModify.Email) {
		return 0, ErrInvalidEmail
	}
	if !isValidPhone(*courierModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidTransport(courierModify.Transport.String()) {
		return 0, ErrInvalidTransport
	}
	if len(files.IDDocument.Data) == 0 ||
		len(files.DrivingLicense.Data) == 0 ||
		len(files.ProfilePicture.Data) == 0 {
		return 0, ErrMissingDocuments
	}

	idDocument, err := s.storage.Upload(ctx, files.IDDocument)
	if err != nil {
		return 0, fmt.Errorf("upload id document: %w", err)
	}
	drivingLicense, err := s.storage.Upload(ctx, files.DrivingLicense)
	if err != nil {
		return 0, fmt.Errorf("upload driving license: %w", err)
	}
	profilePicture, err := s.storage.Upload(ctx, files.ProfilePicture)
	if err != nil {
		return 0, fmt.Errorf("upload profile picture: %w", err)
	}

	applicant := entities.Courier{
		FullName:       *courierModify.FullName,
		Email:          *courierModify.Email,
		Phone:          *courierModify.Phone,
		Address:        *courierModify.Address,
		Transport:      *courierModify.Transport,
		IDDocument:     *idDocument,
		DrivingLicense: *drivingLicense,
		ProfilePicture: *profilePicture,
	}
	if courierModify.Experience != nil {
		applicant.Experience = *courierModify.Experience
	}
	if courierModify.Motivation != nil {
		applicant.Motivation = *courierModify.Motivation
	}
	if courierModify.Available != nil {
		applicant.Available = *courierModify.Available
	}

	id, err := s.repository.Create(ctx, entities.CollectionApplicants, applicant)
	if err != nil {
		return 0, fmt.Errorf("create courier application: %w", err)
	}

	s.broadcastAsync(ctx,
		"New courier application",
		fmt.Sprintf("%s applied as a courier.", applicant.FullName),
		entities.NotificationCourierApplication,
		map[string]string{"applicant_id": strconv.FormatInt(id, 10)},
	)

	return id, nil
}

// Approve переносит заявку в коллекцию действующих курьеров: счетчик
// доставок обнуляется, статус становится ACTIVE. Перенос атомарный.
func (s *Courier) Approve(ctx context.Context, applicantID int64) (*entities.Courier, error) {
	if applicantID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var approved *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		applicant, err := s.repository.GetByID(ctx, entities.CollectionApplicants, applicantID)
		if err != nil {
			return fmt.Errorf("get applicant: %w", err)
		}

		activeCourier := *applicant
		activeCourier.ID = 0
		activeCourier.Status = entities.CourierActive
		activeCourier.DeliveryCount = 0
		activeCourier.RatingSum = 0
		activeCourier.RatingCount = 0
		activeCourier.Available = true

		id, err := s.repository.Create(ctx, entities.CollectionActive, activeCourier)
		if err != nil {
			return fmt.Errorf("create active courier: %w", err)
		}

		err = s.repository.Delete(ctx, entities.CollectionApplicants, applicantID)
		if err != nil {
			return fmt.Errorf("delete applicant: %w", err)
		}

		activeCourier.ID = id
		approved = &activeCourier
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcastAsync(ctx,
		"Courier approved",
		fmt.Sprintf("%s joined the courier fleet.", approved.FullName),
		entities.NotificationNewCourier,
		map[string]string{"courier_id": strconv.FormatInt(approved.ID, 10)},
	)

	return approved, nil
}

func (s *Courier) GetCourier(ctx context.Context, collection entities.CourierCollection, id int64) (*entities.Courier, error) {
	if !isValidCollection(collection) {
		return nil, ErrInvalidCollection
	}
	if id <= 0 {
		return nil, ErrInvalidCourierID
	}

	courierEntity, err := s.repository.GetByID(ctx, collection, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	return courierEntity, nil
}

func (s *Courier) GetCouriers(ctx context.Context, collection entities.CourierCollection) ([]entities.Courier, error) {
	if !isValidCollection(collection) {
		return nil, ErrInvalidCollection
	}

	couriers, err := s.repository.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("get couriers: %w", err)
	}
	return couriers, nil
}

func (s *Courier) UpdateCourier(ctx context.Context, collection entities.CourierCollection, courierModify entities.CourierModify) (*entities.Courier, error) {
	if !isValidCollection(collection) {
		return nil, ErrInvalidCollection
	}
	if courierModify.ID == nil || *courierModify.ID <= 0 {
		return nil, ErrInvalidCourierID
	}

	if courierModify.FullName != nil && !isValidName(*courierModify.FullName) {
		return nil, ErrInvalidName
	}
	if courierModify.Email != nil && !isValidEmail(*courierModify.Email) {
		return nil, ErrInvalidEmail
	}
	if courierModify.Phone != nil && !isValidPhone(*courierModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if courierModify.Transport != nil && !isValidTransport(courierModify.Transport.String()) {
		return nil, ErrInvalidTransport
	}

	courierEntity, err := s.repository.Update(ctx, collection, courierModify)
	if err != nil {
		return nil, fmt.Errorf("update courier: %w", err)
	}
	return courierEntity, nil
}

// DeleteCourier удаляет запись и затем, по возможности, связанные файлы
// во внешнем хранилище. Сбой очистки файлов не откатывает удаление.
func (s *Courier) DeleteCourier(ctx context.Context, collection entities.CourierCollection, id int64) error {
	if !isValidCollection(collection) {
		return ErrInvalidCollection
	}
	if id <= 0 {
		return ErrInvalidCourierID
	}

	courierEntity, err := s.repository.GetByID(ctx, collection, id)
	if err != nil {
		return fmt.Errorf("get courier: %w", err)
	}

	err = s.repository.Delete(ctx, collection, id)
	if err != nil {
		return fmt.Errorf("delete courier: %w", err)
	}

	for _, ref := range []entities.FileRef{
		courierEntity.IDDocument,
		courierEntity.DrivingLicense,
		courierEntity.ProfilePicture,
	} {
		if ref.StorageID == "" {
			continue
		}
		if err := s.storage.Delete(ctx, ref.StorageID); err != nil {
			s.log.Warn("failed to delete stored file",
				logger.NewField("storage_id", ref.StorageID),
				logger.NewField("error", err),
			)
		}
	}

	return nil
}

// UploadFile кладет произвольный пользовательский файл во внешнее хранилище.
func (s *Courier) UploadFile(ctx context.Context, file entities.FileUpload) (*entities.FileRef, error) {
	if file.Name == "" || len(file.Data) == 0 {
		return nil, ErrEmptyFile
	}

	ref, err := s.storage.Upload(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	return ref, nil
}

func (s *Courier) ListAvailable(ctx context.Context) ([]entities.CourierPublic, error) {
	couriers, err := s.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}
	return couriers, nil
}

// GetActiveCourier используется сервисом заказов при назначении.
func (s *Courier) GetActiveCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	return s.GetCourier(ctx, entities.CollectionActive, id)
}

func (s *Courier) IncrementDeliveryCount(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCourierID
	}
	return s.repository.IncrementDeliveryCount(ctx, id)
}

// AddRating инкрементирует счетчики рейтинга, вызывается сервисом отзывов
// внутри его транзакции.
func (s *Courier) AddRating(ctx context.Context, id int64, rating int64) error {
	if id <= 0 {
		return ErrInvalidCourierID
	}
	return s.repository.AddRating(ctx, id, rating)
}

func (s *Courier) broadcastAsync(ctx context.Context, title, message string, ntype entities.NotificationType, payload map[string]string) {
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		delivered, err := s.broadcaster.BroadcastToAdmins(notifyCtx, title, message, ntype, payload)
		if err != nil {
			s.log.Warn("admin broadcast failed",
				logger.NewField("type", ntype.String()),
				logger.NewField("error", err),
			)
			return
		}
		s.log.Info("admin broadcast done",
			logger.NewField("type", ntype.String()),
			logger.NewField("delivered", delivered),
		)
	}()
}
