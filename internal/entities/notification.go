package entities

import "time"

type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	Type      NotificationType
	Payload   map[string]string
	Read      bool
	CreatedAt time.Time
}

type NotificationType string

const (
	NotificationNewCourier         NotificationType = "NEW_COURIER"
	NotificationOrder              NotificationType = "ORDER"
	NotificationOrderUpdate        NotificationType = "ORDER_UPDATE"
	NotificationNewOrder           NotificationType = "NEW_ORDER"
	NotificationAdminMessage       NotificationType = "ADMIN_MESSAGE"
	NotificationLogin              NotificationType = "LOGIN"
	NotificationCourierApplication NotificationType = "COURIER_APPLICATION"
	NotificationGeneral            NotificationType = "GENERAL"
)

func (t NotificationType) String() string {
	return string(t)
}

type PushStatusType string

const (
	// PushOK - провайдер принял сообщение.
	PushOK PushStatusType = "ok"
	// PushInvalidToken - токен устройства навсегда невалиден, его надо сбросить.
	PushInvalidToken PushStatusType = "invalid_token"
	// PushFailed - прочие ошибки провайдера.
	PushFailed PushStatusType = "failed"
)

// PushResult - ответ push-провайдера на одну отправку.
type PushResult struct {
	Status  PushStatusType
	Message string
}

// NotificationDelivery - результат диспетчеризации одного push-уведомления.
// Delivered=false с заполненным Reason это бизнес-исход, а не ошибка.
type NotificationDelivery struct {
	Delivered bool
	Reason    string
}
