package subscriber

import (
	"context"
	"errors"
	"log"

	"github.com/segmentio/kafka-go"
)

// KafkaConsumer reads one topic under a consumer-group identity. Per-message
// handling is best effort: the handler's outcome never blocks or stops the
// loop and messages are not redelivered.
type KafkaConsumer struct {
	Reader *kafka.Reader
}

func NewConsumer(brokers []string, topic, groupID string) *KafkaConsumer {
	return &KafkaConsumer{
		Reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
	}
}

// Listen consumes messages until the context is cancelled, invoking the
// handler for each payload. Read errors are logged and the loop continues.
func (c *KafkaConsumer) Listen(ctx context.Context, handler func(value []byte)) {
	go func() {
		for {
			msg, err := c.Reader.ReadMessage(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				log.Println("Kafka error:", err)
				continue
			}
			handler(msg.Value)
		}
	}()
}

func (c *KafkaConsumer) Close() error {
	return c.Reader.Close()
}
