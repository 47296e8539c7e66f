package kafka

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"

	"shipment-photo-dashboard/internal/domain"
	"shipment-photo-dashboard/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes photo events to a single topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
}

// NewProducer connects a synchronous producer. It returns nil, nil when
// brokers or topic are not configured; a nil *Producer publishes nothing.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	// без настроек кафки просто не публикуем
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 0

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka: new producer: %w", err)
	}
	return &Producer{producer: p, topic: topic, logger: logger}, nil
}

// PublishPhotoAttached sends e keyed by row id, so events for one row keep
// their order.
func (p *Producer) PublishPhotoAttached(ctx context.Context, e domain.PhotoAttached) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(toPhotoAttachedDTO(e))
	if err != nil {
		return fmt.Errorf("kafka: encode event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(e.RowID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventTypePhotoAttached)},
		},
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("kafka: send %s: %w", EventTypePhotoAttached, err)
	}
	p.logger.Debug("photo event published",
		logx.String("topic", p.topic),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
