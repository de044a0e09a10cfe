package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Виды уведомлений. Routing key в брокере совпадает со значением Kind,
// консьюмер (email-воркер) подписывается на нужные ключи.
const (
	KindBookingConfirmed   = "booking.confirmed"
	KindBookingCancelled   = "booking.cancelled"
	KindBookingRescheduled = "booking.rescheduled"
	KindBookingReminder    = "booking.reminder"
	KindNoShowCharged      = "booking.noshow_charged"
	KindOwnerNewBooking    = "owner.new_booking"
	KindOwnerCancelled     = "owner.cancelled"
	KindOwnerRescheduled   = "owner.rescheduled"
	KindOwnerNoShowCharged = "owner.noshow_charged"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Message сообщение для отправки в брокер
type Message struct {
	Kind      string                 `json:"kind"`
	Recipient string                 `json:"recipient"`
	Payload   map[string]interface{} `json:"payload"`
	SentAt    time.Time              `json:"sent_at"`
}

// Notifier публикует уведомления в RabbitMQ.
// Доставка писем лежит на консьюмере очереди.
type Notifier struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      Logger
}

// New создает подключение к брокеру и объявляет exchange
func New(url, exchange string, log Logger) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notifier: failed to connect to broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("notifier: failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("notifier: failed to declare exchange: %w", err)
	}

	return &Notifier{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      log,
	}, nil
}

// Send публикует уведомление. Ошибки публикации логируются и не
// возвращаются: уведомления не должны откатывать бизнес-операцию.
func (n *Notifier) Send(ctx context.Context, kind, recipient string, payload map[string]interface{}) {
	msg := Message{
		Kind:      kind,
		Recipient: recipient,
		Payload:   payload,
		SentAt:    time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		n.log.Error("Notifier.Send: failed to marshal message kind=%s: %v", kind, err)
		return
	}

	err = n.channel.PublishWithContext(ctx,
		n.exchange,
		kind, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.SentAt,
			Body:         body,
		},
	)
	if err != nil {
		n.log.Error("Notifier.Send: failed to publish kind=%s recipient=%s: %v", kind, recipient, err)
		return
	}

	n.log.Info("Notifier.Send: published kind=%s recipient=%s", kind, recipient)
}

// Close закрывает канал и подключение к брокеру
func (n *Notifier) Close() error {
	if err := n.channel.Close(); err != nil {
		n.conn.Close()
		return fmt.Errorf("notifier: failed to close channel: %w", err)
	}
	if err := n.conn.Close(); err != nil {
		return fmt.Errorf("notifier: failed to close connection: %w", err)
	}
	return nil
}
