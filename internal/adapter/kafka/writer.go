package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/launch-score-service/internal/config"
	"github.com/couchcryptid/launch-score-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// batchTimeout bounds how long a single score event waits for a batch to
// fill. kafka-go defaults to one second, which would hold every score request.
const batchTimeout = 10 * time.Millisecond

// Writer publishes score events to a Kafka topic.
// It implements service.ScorePublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured score topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaScoreTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishScore writes one score event keyed by location, so every score for
// a site lands on the same partition in order.
func (w *Writer) PublishScore(ctx context.Context, event domain.ScoreEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := w.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write score event: %w", err)
	}
	w.logger.Debug("score event published",
		"location", event.Location,
		"score", event.Breakdown.CompositeScore,
		"is_sample", event.IsSample,
	)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a ScoreEvent into a Kafka message.
func serializeToMessage(event domain.ScoreEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize score event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.Location),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "location", Value: []byte(event.Location)},
			{Key: "is_sample", Value: []byte(strconv.FormatBool(event.IsSample))},
			{Key: "computed_at", Value: []byte(event.ComputedAt.Format(time.RFC3339))},
		},
	}, nil
}
