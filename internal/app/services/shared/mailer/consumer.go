package mailer

import (
	"context"
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

// Consumer drains the mail queue. Jobs that fail to decode or send are moved
// to the dead-letter queue and acknowledged.
type Consumer struct {
	channel  *amqp091.Channel
	queue    string
	sender   contracts.MailSender
	log      *zap.Logger
	confirms chan amqp091.Confirmation
	mu       sync.Mutex
}

func NewConsumer(rabbitMQConnection *amqp091.Connection, queue string, prefetch int, sender contracts.MailSender, logger *zap.Logger) (*Consumer, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	for _, name := range []string{queue, DeadLetterQueueName(queue)} {
		if _, err := messaging.DeclareQueue(channel, name); err != nil {
			return nil, exceptions.ErrRabbitMQOpenChannel(err)
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := channel.Qos(prefetch, 0, false); err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	if err := channel.Confirm(false); err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return &Consumer{
		channel:  channel,
		queue:    queue,
		sender:   sender,
		log:      logger,
		confirms: channel.NotifyPublish(make(chan amqp091.Confirmation, 1)),
	}, nil
}

// Run blocks until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQOpenChannel(err)
	}

	c.log.Info("Consumer.Run started", zap.String(constvars.LoggingQueueKey, c.queue))
	for {
		select {
		case <-ctx.Done():
			c.log.Info("Consumer.Run stopped", zap.String(constvars.LoggingQueueKey, c.queue))
			return c.channel.Close()
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := Handle(ctx, c.sender, delivery.Body); err != nil {
				c.log.Error("Consumer.Run moving job to dead-letter queue",
					zap.String(constvars.LoggingQueueKey, c.queue),
					zap.Error(err),
				)
				if dlqErr := publish(ctx, c.channel, &c.mu, c.confirms, DeadLetterQueueName(c.queue), delivery.Body); dlqErr != nil {
					c.log.Error("Consumer.Run error publishing to dead-letter queue", zap.Error(dlqErr))
					delivery.Nack(false, true)
					continue
				}
			}
			delivery.Ack(false)
		}
	}
}

// Handle decodes one queued job and sends it.
func Handle(ctx context.Context, sender contracts.MailSender, body []byte) error {
	var job requests.MailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return sender.Send(ctx, &job)
}
