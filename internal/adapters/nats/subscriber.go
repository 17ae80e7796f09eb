package natsadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// Subscriber implements ports.EventSubscriber using NATS JetStream.
type Subscriber struct {
	conn *nats.Conn
	js   nats.JetStreamContext
	subs []*nats.Subscription
}

// NewSubscriber creates a subscriber with its own NATS connection.
func NewSubscriber(url string) (*Subscriber, error) {
	conn, err := RawConn(url)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	return &Subscriber{conn: conn, js: js}, nil
}

// SubscribeDatasetLoaded delivers the latest stored version first, then every
// new one. Messages the handler rejects are redelivered up to three times.
func (s *Subscriber) SubscribeDatasetLoaded(ctx context.Context, handler func(ctx context.Context, summary domain.DatasetSummary) error) error {
	sub, err := s.js.Subscribe(SubjectDatasetLoaded, func(msg *nats.Msg) {
		var summary domain.DatasetSummary
		if err := json.Unmarshal(msg.Data, &summary); err != nil {
			_ = msg.Term()
			return
		}
		if err := handler(ctx, summary); err != nil {
			_ = msg.Nak()
			return
		}
		_ = msg.Ack()
	},
		nats.DeliverLastPerSubject(),
		nats.ManualAck(),
		nats.MaxDeliver(3),
	)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

// Close unsubscribes and drains.
func (s *Subscriber) Close() {
	for _, sub := range s.subs {
		_ = sub.Unsubscribe()
	}
	_ = s.conn.Drain()
}
