package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"dermref-service/internal/app/contracts"
	driver "dermref-service/internal/app/drivers/mailer"
	"dermref-service/internal/pkg/constvars"
	"dermref-service/internal/pkg/dto/requests"
	"dermref-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *driver.SMTPClient
	Queue   string
}

// NewMailerService publishes mail to the queue when a broker connection is
// given. Without one, SendEmail falls back to a synchronous SMTP send.
func NewMailerService(client *driver.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	svc := &mailerService{
		Client: client,
		Queue:  queue,
	}

	if rabbitMQConnection != nil {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			return nil, err
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return nil, err
		}
		svc.Channel = channel
	}

	return svc, nil
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	if s.Channel == nil {
		return s.sendHTMLEmail(request.To, request.Subject, request.HTMLBody)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}

func (s *mailerService) sendHTMLEmail(to, subject, htmlBody string) error {
	from := s.Client.Sender
	msg := []byte(fmt.Sprintf(constvars.EmailHTMLMessageFormat, to, subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}
