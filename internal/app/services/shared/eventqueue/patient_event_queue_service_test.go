package eventqueue

import (
	"context"
	"errors"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConfirmation struct {
	done chan struct{}
	ack  bool
}

func newFakeConfirmation() *fakeConfirmation {
	return &fakeConfirmation{done: make(chan struct{})}
}

func (c *fakeConfirmation) resolve(ack bool) {
	c.ack = ack
	close(c.done)
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-c.done:
		return c.ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeChannel struct {
	exchange      string
	key           string
	published     []amqp.Publishing
	confirmations []*fakeConfirmation
	err           error
}

func (f *fakeChannel) PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (publishConfirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.exchange = exchange
	f.key = key
	f.published = append(f.published, msg)
	if len(f.confirmations) < len(f.published) {
		return nil, nil
	}
	return f.confirmations[len(f.published)-1], nil
}

func testEvent() *models.PatientEvent {
	return &models.PatientEvent{
		Event:      "patient.created",
		PatientID:  "P001",
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		RequestID:  "PTNT_SVC_test",
	}
}

func TestService_Publish(t *testing.T) {
	ch := &fakeChannel{}
	service := newService(ch, zap.NewNop(), "patient_events")

	err := service.Publish(context.Background(), testEvent())
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	assert.Equal(t, "", ch.exchange)
	assert.Equal(t, "patient_events", ch.key)

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "patient.created", msg.Type)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "patient.created", body["event"])
	assert.Equal(t, "P001", body["patient_id"])
	assert.Equal(t, "PTNT_SVC_test", body["request_id"])
	assert.Equal(t, "2024-05-01T10:00:00Z", body["occurred_at"])
}

func TestService_PublishConfirms(t *testing.T) {
	t.Run("Ack", func(t *testing.T) {
		confirmation := newFakeConfirmation()
		confirmation.resolve(true)
		service := newService(&fakeChannel{confirmations: []*fakeConfirmation{confirmation}}, zap.NewNop(), "patient_events")

		assert.NoError(t, service.Publish(context.Background(), testEvent()))
	})

	t.Run("Nack", func(t *testing.T) {
		confirmation := newFakeConfirmation()
		confirmation.resolve(false)
		service := newService(&fakeChannel{confirmations: []*fakeConfirmation{confirmation}}, zap.NewNop(), "patient_events")

		err := service.Publish(context.Background(), testEvent())
		require.Error(t, err)
		assert.True(t, errors.Is(err, exceptions.ErrInternal))
	})

	t.Run("Context ends before confirm", func(t *testing.T) {
		service := newService(&fakeChannel{confirmations: []*fakeConfirmation{newFakeConfirmation()}}, zap.NewNop(), "patient_events")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := service.Publish(ctx, testEvent())
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestService_PublishLateNackStaysWithItsMessage(t *testing.T) {
	first := newFakeConfirmation()
	second := newFakeConfirmation()
	ch := &fakeChannel{confirmations: []*fakeConfirmation{first, second}}
	service := newService(ch, zap.NewNop(), "patient_events")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := service.Publish(ctx, testEvent())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	first.resolve(false)
	second.resolve(true)

	assert.NoError(t, service.Publish(context.Background(), testEvent()))
	assert.Len(t, ch.published, 2)
}

func TestService_PublishChannelError(t *testing.T) {
	service := newService(&fakeChannel{err: amqp.ErrClosed}, zap.NewNop(), "patient_events")

	err := service.Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.True(t, errors.Is(err, amqp.ErrClosed))
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), testEvent()))
}
