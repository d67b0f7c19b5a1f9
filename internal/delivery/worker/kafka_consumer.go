package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/worker/handler"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const (
	maxProcessAttempts = 5
	retryBackoff       = time.Second
)

// messageReader is the part of *kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaConsumer struct {
	reader    messageReader
	processor *handler.OrderEventProcessor
	logger    *slog.Logger
	backoff   time.Duration
	stopCh    chan struct{}
}

// KafkaConsumerParams holds dependencies for the Kafka consumer
type KafkaConsumerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Processor *handler.OrderEventProcessor
}

// NewKafkaConsumer consumes order events from the configured topic with a consumer group.
// It serves nothing unless the kafka provider is configured.
func NewKafkaConsumer(params KafkaConsumerParams) delivery.Delivery {
	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return disabled{name: "Kafka consumer", logger: params.Logger}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:           cfg.Brokers,
		GroupID:           cfg.GroupID,
		Topic:             cfg.Topic,
		MinBytes:          1,
		MaxBytes:          10e6,
		HeartbeatInterval: 3 * time.Second,
		SessionTimeout:    30 * time.Second,
	})

	consumer := newKafkaConsumer(reader, params.Processor, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: consumer.stop,
	})

	return consumer
}

func newKafkaConsumer(reader messageReader, processor *handler.OrderEventProcessor, logger *slog.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader:    reader,
		processor: processor,
		logger:    logger,
		backoff:   retryBackoff,
		stopCh:    make(chan struct{}),
	}
}

// Serve fetches, processes and commits messages until stopped.
func (k *kafkaConsumer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-k.stopCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	k.logger.Info("Starting Kafka consumer")
	for {
		msg, err := k.reader.FetchMessage(ctx)
		if err != nil {
			if k.stopping(ctx) {
				return nil
			}

			return errors.Wrap(err, "failed to fetch message")
		}

		k.handle(ctx, msg)

		if err := k.reader.CommitMessages(ctx, msg); err != nil {
			if k.stopping(ctx) {
				return nil
			}
			k.logger.Error("[Kafka] Failed to commit message",
				slog.Int("partition", msg.Partition),
				slog.Int64("offset", msg.Offset),
				slog.Any("error", err),
			)
		}
	}
}

// handle processes one message, retrying retryable failures in place.
// Messages that still fail are logged and committed so the partition keeps moving.
func (k *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) {
	var event service.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		k.logger.Error("[Kafka] Failed to parse order event",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return
	}

	requestID := headerValue(msg.Headers, "request_id")
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	reqLogger := k.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	for attempt := 1; attempt <= maxProcessAttempts; attempt++ {
		err := k.processor.Process(ctx, &event)
		if err == nil {
			return
		}

		if !handler.IsRetryableError(err) || attempt == maxProcessAttempts {
			reqLogger.Error("[Kafka] Giving up on order event",
				slog.Uint64("order_id", uint64(event.OrderID)),
				slog.Int("attempts", attempt),
				slog.Any("error", err),
			)

			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(k.backoff * time.Duration(attempt)):
		}
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, header := range headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func (k *kafkaConsumer) stopping(ctx context.Context) bool {
	select {
	case <-k.stopCh:
		return true
	default:
		return ctx.Err() != nil
	}
}

// stop unblocks FetchMessage by closing the reader.
func (k *kafkaConsumer) stop(context.Context) error {
	k.logger.Info("Stopping Kafka consumer")
	close(k.stopCh)

	return errors.WithStack(k.reader.Close())
}

// disabled is served in place of an optional component that is not configured.
type disabled struct {
	name   string
	logger *slog.Logger
}

func (d disabled) Serve(context.Context) error {
	d.logger.Info(d.name + " disabled")

	return nil
}
