package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	driver "dermref-service/internal/app/drivers/mailer"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type MailWorker struct {
	Channel *amqp091.Channel
	Client  *driver.SMTPClient
	Queue   string
	Log     *zap.Logger
	Limiter *rate.Limiter
	cancel  context.CancelFunc
}

// NewMailWorker consumes the mail queue and delivers over SMTP. The limiter
// keeps the send rate below what most relay providers throttle at.
func NewMailWorker(rabbitMQConnection *amqp091.Connection, client *driver.SMTPClient, queue string, log *zap.Logger) (*MailWorker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &MailWorker{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     log,
		Limiter: rate.NewLimiter(rate.Limit(1), 3),
	}, nil
}

func (w *MailWorker) Start() error {
	deliveries, err := w.Channel.Consume(w.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(ctx, delivery)
			}
		}
	}()

	return nil
}

func (w *MailWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.Channel.Close()
}

func (w *MailWorker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.Log.Error("mailWorker.handleDelivery cannot decode payload", zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	if err := w.Limiter.Wait(ctx); err != nil {
		delivery.Nack(false, true)
		return
	}

	if err := w.send(&payload); err != nil {
		w.Log.Error("mailWorker.handleDelivery cannot send email",
			zap.String(constvars.LoggingEmailKey, payload.To),
			zap.Error(err),
		)
		delivery.Nack(false, !delivery.Redelivered)
		return
	}

	delivery.Ack(false)
}

func (w *MailWorker) send(payload *requests.EmailPayload) error {
	from := w.Client.Sender
	msg := []byte(fmt.Sprintf(constvars.EmailHTMLMessageFormat, payload.To, payload.Subject, payload.HTMLBody))
	addr := fmt.Sprintf("%s:%d", w.Client.Host, w.Client.Port)
	return smtp.SendMail(addr, w.Client.Auth, from, []string{payload.To}, msg)
}
