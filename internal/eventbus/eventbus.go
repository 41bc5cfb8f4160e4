// Package eventbus provides publish/subscribe over NATS JetStream for the
// scorecard modules. The bus satisfies watermill's Publisher and Subscriber
// interfaces so it plugs straight into a watermill router.
package eventbus

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventBus is the messaging surface the modules depend on.
type EventBus interface {
	Publish(topic string, messages ...*message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}
