package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
	"github.com/vivek-dahikar/AutoRegisterAgent/internal/mq"
	"github.com/vivek-dahikar/AutoRegisterAgent/types"
)

const (
	publishTimeout = 5 * time.Second
	maxInFlight    = 64
)

// EventPublisher emits AuthEvents on a message channel in the background.
// A nil *EventPublisher is valid and publishes nothing.
type EventPublisher struct {
	queue   *mq.MQ
	channel string
	logger  logging.Logger
	now     func() time.Time

	wg    sync.WaitGroup
	slots chan struct{}
}

// NewEventPublisher returns nil when queue is nil.
func NewEventPublisher(queue *mq.MQ, channel string, logger logging.Logger) *EventPublisher {
	if queue == nil {
		return nil
	}
	return &EventPublisher{
		queue:   queue,
		channel: channel,
		logger:  logger,
		now:     time.Now,
		slots:   make(chan struct{}, maxInFlight),
	}
}

// Publish hands the event to a background sender and returns immediately.
// Events are dropped, with a warning, when maxInFlight sends are pending.
// Failures are logged and never returned.
func (p *EventPublisher) Publish(ctx context.Context, eventType types.AuthEventType, username string, accepted bool) {
	if p == nil {
		return
	}

	event := types.AuthEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		Username:   username,
		Accepted:   accepted,
		OccurredAt: p.now().UTC(),
	}
	attrs := map[string]string{
		"event_type": string(eventType),
		"accepted":   strconv.FormatBool(accepted),
	}

	select {
	case p.slots <- struct{}{}:
	default:
		p.logger.Warn(ctx, "dropping auth event, too many pending publishes", "event_type", eventType, "username", username)
		return
	}

	// The send outlives the request.
	ctx = context.WithoutCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.slots
			p.wg.Done()
		}()

		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		if _, err := p.queue.PublishJSON(ctx, p.channel, event, attrs); err != nil {
			p.logger.Warn(ctx, "failed to publish auth event", "event_type", eventType, "username", username, "error", err)
		}
	}()
}

// Wait blocks until pending publishes finish or ctx is done.
func (p *EventPublisher) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
