package mailer

import (
	"context"
	"fmt"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/drivers/messaging"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type mailerService struct {
	Channel  *amqp091.Channel
	Queue    string
	Log      *zap.Logger
	confirms chan amqp091.Confirmation
	mu       sync.Mutex
}

// NewMailerService opens a confirm-mode channel and declares the mail queue
// and its dead-letter queue.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	for _, name := range []string{queue, DeadLetterQueueName(queue)} {
		if _, err := messaging.DeclareQueue(channel, name); err != nil {
			return nil, exceptions.ErrRabbitMQOpenChannel(err)
		}
	}

	if err := channel.Confirm(false); err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &mailerService{
		Channel:  channel,
		Queue:    queue,
		Log:      logger,
		confirms: channel.NotifyPublish(make(chan amqp091.Confirmation, 1)),
	}, nil
}

func DeadLetterQueueName(queue string) string {
	return queue + ".dlq"
}

func (s *mailerService) Publish(ctx context.Context, job *requests.MailJob) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingJobKey, job.Type),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)

	body, err := json.Marshal(job)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	return publish(ctx, s.Channel, &s.mu, s.confirms, s.Queue, body)
}

func publish(ctx context.Context, channel *amqp091.Channel, mu *sync.Mutex, confirms chan amqp091.Confirmation, queue string, body []byte) error {
	mu.Lock()
	defer mu.Unlock()

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type": "JSON",
		},
	}

	if err := channel.PublishWithContext(ctx, "", queue, false, false, message); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
