package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kboat10/babs10/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	Exchange       = "ledger.events"
	confirmTimeout = 5 * time.Second
	confirmBuffer  = 64
)

var ErrNack = errors.New("publish NACK from broker")

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	GetNextPublishSeqNo() uint64
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends ledger events to a durable topic exchange and waits
// for the broker to confirm each one. Publish calls are serialized.
// Confirmations are matched to publishes by delivery tag, so a late
// confirmation for a publish that already timed out is discarded.
type AMQPPublisher struct {
	conn *amqp.Connection
	ch   channel

	mu sync.Mutex

	waitMu  sync.Mutex
	waiting map[uint64]chan bool
	done    chan struct{}
}

func DialAMQP(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	acks := ch.NotifyPublish(make(chan amqp.Confirmation, confirmBuffer))

	p, err := newPublisher(ch, acks)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, acks <-chan amqp.Confirmation) (*AMQPPublisher, error) {
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}
	p := &AMQPPublisher{
		ch:      ch,
		waiting: make(map[uint64]chan bool),
		done:    make(chan struct{}),
	}
	go p.dispatch(acks)
	return p, nil
}

// dispatch drains acks until the channel closes. It must not block:
// amqp091 stalls the connection while a NotifyPublish receiver is full.
func (p *AMQPPublisher) dispatch(acks <-chan amqp.Confirmation) {
	defer close(p.done)
	for conf := range acks {
		p.waitMu.Lock()
		w, ok := p.waiting[conf.DeliveryTag]
		delete(p.waiting, conf.DeliveryTag)
		p.waitMu.Unlock()

		if !ok {
			zap.L().Warn("discarding confirmation with no waiting publish",
				zap.Uint64("delivery_tag", conf.DeliveryTag), zap.Bool("ack", conf.Ack))
			continue
		}
		w <- conf.Ack
	}
}

func (p *AMQPPublisher) expect(tag uint64) chan bool {
	w := make(chan bool, 1)
	p.waitMu.Lock()
	p.waiting[tag] = w
	p.waitMu.Unlock()
	return w
}

func (p *AMQPPublisher) forget(tag uint64) {
	p.waitMu.Lock()
	delete(p.waiting, tag)
	p.waitMu.Unlock()
}

func RoutingKey(t domain.EventType) string {
	return "ledger." + string(t)
}

func (p *AMQPPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	tag := p.ch.GetNextPublishSeqNo()
	wait := p.expect(tag)
	defer p.forget(tag)

	err = p.ch.PublishWithContext(ctx, Exchange, RoutingKey(event.Type), false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	select {
	case ack := <-wait:
		if !ack {
			return fmt.Errorf("%s tag %d: %w", event.Type, tag, ErrNack)
		}
		zap.L().Debug("ledger event published",
			zap.String("type", string(event.Type)), zap.Uint64("delivery_tag", tag))
		return nil
	case <-p.done:
		return errors.New("confirmation channel closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *AMQPPublisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

// NopPublisher drops events. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	zap.L().Debug("ledger event dropped, no broker configured", zap.String("type", string(event.Type)))
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
