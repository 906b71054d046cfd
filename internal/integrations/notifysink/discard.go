package notifysink

import "context"

// Discard заглушка вместо Kafka producer, когда брокер выключен в конфиге
type Discard struct{}

// NewDiscard создает заглушку отправки уведомлений
func NewDiscard() *Discard {
	return &Discard{}
}

// Send молча отбрасывает уведомление
func (d *Discard) Send(_ context.Context, _ *Notification) error {
	return nil
}

// Close ничего не делает
func (d *Discard) Close() error {
	return nil
}
