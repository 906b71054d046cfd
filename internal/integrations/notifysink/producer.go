package notifysink

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer публикует уведомления в Kafka топик подсистемы уведомлений
//
// Отправка для сервиса бронирований fire-and-forget: вызывающая сторона
// логирует ошибку и не прерывает основную операцию
type Producer struct {
	writer *kafka.Writer
}

// NewProducer создает producer для указанного топика
func NewProducer(brokers []string, topic string, writeTimeout time.Duration) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: writeTimeout,
		},
	}
}

// Send публикует уведомление
// Ключ сообщения - ID получателя, чтобы уведомления одного пользователя
// попадали в одну партицию и сохраняли порядок
func (p *Producer) Send(ctx context.Context, n *Notification) error {
	value, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("notifysink: marshal notification: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(n.UserID, 10)),
		Value: value,
		Time:  n.CreatedAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("notifysink: write message: %w", err)
	}

	return nil
}

// Close закрывает producer, дописав буферизованные сообщения
func (p *Producer) Close() error {
	return p.writer.Close()
}
