package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"payrollCalc/internal/domain"
	"payrollCalc/internal/ports"

	"github.com/segmentio/kafka-go"
)

// Consumer — обёртка над kafka.Reader: декодирует записи расчётов и передаёт их use case.
type Consumer struct {
	r   *kafka.Reader
	uc  ports.IPayrollUseCase
	log *slog.Logger
}

// NewConsumer создаёт консьюмера по конфигу, use case и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, uc ports.IPayrollUseCase, log *slog.Logger) *Consumer {
	c := New(cfg).Consumer()
	c.uc = uc
	c.log = log
	return c
}

// Message — сообщение из Kafka (ключ, тело, топик, партиция, offset).
type Message = kafka.Message

// Run в цикле читает сообщения, декодирует JSON в domain.HistoryRecord,
// вызывает uc.HandleCalculationEvent и коммитит при успехе.
// Битое сообщение коммитится и пропускается; ошибка обработки — redelivery.
// Выход по отмене ctx или при ошибке чтения.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped", "error", err)
			return err
		}

		var rec domain.HistoryRecord
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			c.log.Warn("kafka unmarshal error, skip", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			_ = c.CommitMessage(ctx, msg)
			continue
		}

		if err := c.uc.HandleCalculationEvent(ctx, rec); err != nil {
			c.log.Warn("kafka handle error, will redeliver", "error", err, "topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
			continue
		}

		if err := c.CommitMessage(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Error("kafka consumer stopped (commit)", "error", err)
			return err
		}
	}
}

// FetchMessage блокируется до следующего сообщения; оно не коммитится в consumer group до вызова CommitMessage.
func (c *Consumer) FetchMessage(ctx context.Context) (kafka.Message, error) {
	return c.r.FetchMessage(ctx)
}

// CommitMessage помечает сообщение как обработанное (для consumer group).
func (c *Consumer) CommitMessage(ctx context.Context, msg kafka.Message) error {
	return c.r.CommitMessages(ctx, msg)
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
