package eventqueue

import (
	"context"
	"fmt"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publishConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type publishChannel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (publishConfirmation, error)
}

// amqpChannel ties each publish to the confirmation of its own delivery tag.
type amqpChannel struct {
	ch *amqp.Channel
}

func (c amqpChannel) PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (publishConfirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil || confirmation == nil {
		return nil, err
	}
	return confirmation, nil
}

// Service publishes patient change events to a durable RabbitMQ queue.
type Service struct {
	ch        publishChannel
	log       *zap.Logger
	queueName string
}

// NewService declares the queue and enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newService(amqpChannel{ch: ch}, log, queueName), nil
}

func newService(ch publishChannel, log *zap.Logger, queueName string) *Service {
	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}
}

// Publish sends the event with persistent delivery and waits for the broker
// confirm when confirms are enabled.
func (s *Service) Publish(ctx context.Context, event *models.PatientEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("PatientEventQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingPatientIDKey, event.PatientID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
	}

	confirmation, err := s.ch.PublishWithDeferredConfirmWithContext(ctx, "", s.queueName, false, false, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	if confirmation != nil {
		acked, err := confirmation.WaitContext(ctx)
		if err != nil {
			return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
		}
		if !acked {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	}

	s.log.Info("PatientEventQueue.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.queueName),
	)
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher is used when RabbitMQ is disabled.
func NewNoopPublisher() contracts.PatientEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event *models.PatientEvent) error {
	return nil
}
