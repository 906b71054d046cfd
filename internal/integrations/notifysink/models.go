package notifysink

import (
	"fmt"
	"time"
)

// NotificationType тип уведомления
type NotificationType string

const (
	TypeNewBookingRequest        NotificationType = "new_booking_request"
	TypeBookingConfirmed         NotificationType = "booking_confirmed"
	TypeBookingRejected          NotificationType = "booking_rejected"
	TypeBookingCancelledByOwner  NotificationType = "booking_cancelled_by_owner"
	TypeBookingCancelledByRenter NotificationType = "booking_cancelled_by_renter"
)

// Notification событие для подсистемы уведомлений
// Сервис уведомлений (внешний) читает топик и доставляет сообщение пользователю
type Notification struct {
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	ItemID    int64            `json:"item_id"`
	BookingID int64            `json:"booking_id"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewBookingRequest уведомление владельцу о новом запросе на бронирование
func NewBookingRequest(ownerID, bookingID, itemID int64, itemTitle string) *Notification {
	return &Notification{
		UserID:    ownerID,
		Type:      TypeNewBookingRequest,
		Title:     "Новое бронирование",
		Message:   fmt.Sprintf("Поступил новый запрос на бронирование вашего объявления %q.", itemTitle),
		ItemID:    itemID,
		BookingID: bookingID,
		CreatedAt: time.Now().UTC(),
	}
}

// BookingConfirmed уведомление арендатору о подтверждении бронирования
func BookingConfirmed(renterID, bookingID, itemID int64, itemTitle string) *Notification {
	return &Notification{
		UserID:    renterID,
		Type:      TypeBookingConfirmed,
		Title:     "Бронирование подтверждено",
		Message:   fmt.Sprintf("Ваше бронирование объявления %q было подтверждено.", itemTitle),
		ItemID:    itemID,
		BookingID: bookingID,
		CreatedAt: time.Now().UTC(),
	}
}

// BookingRejected уведомление арендатору об отклонении бронирования
func BookingRejected(renterID, bookingID, itemID int64, itemTitle string) *Notification {
	return &Notification{
		UserID:    renterID,
		Type:      TypeBookingRejected,
		Title:     "Бронирование отклонено",
		Message:   fmt.Sprintf("Ваше бронирование объявления %q было отклонено владельцем.", itemTitle),
		ItemID:    itemID,
		BookingID: bookingID,
		CreatedAt: time.Now().UTC(),
	}
}

// BookingCancelledByOwner уведомление арендатору об отмене владельцем
func BookingCancelledByOwner(renterID, bookingID, itemID int64, itemTitle string) *Notification {
	return &Notification{
		UserID:    renterID,
		Type:      TypeBookingCancelledByOwner,
		Title:     "Бронирование отменено",
		Message:   fmt.Sprintf("Владелец отменил ваше бронирование объявления %q.", itemTitle),
		ItemID:    itemID,
		BookingID: bookingID,
		CreatedAt: time.Now().UTC(),
	}
}

// BookingCancelledByRenter уведомление владельцу об отмене арендатором
func BookingCancelledByRenter(ownerID, bookingID, itemID int64, itemTitle string) *Notification {
	return &Notification{
		UserID:    ownerID,
		Type:      TypeBookingCancelledByRenter,
		Title:     "Бронирование отменено",
		Message:   fmt.Sprintf("Арендатор отменил бронирование вашего объявления %q.", itemTitle),
		ItemID:    itemID,
		BookingID: bookingID,
		CreatedAt: time.Now().UTC(),
	}
}
