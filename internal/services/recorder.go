package services

//go:generate mockgen -source=recorder.go -destination=recorder_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrInvalidTransfer is returned when a transfer carries a negative field.
var ErrInvalidTransfer = errors.New("invalid transfer")

// TransactionWriter persists ledger rows atomically.
type TransactionWriter interface {
	InsertBatch(ctx context.Context, txs []models.Transaction) error // Stores all rows or none
}

// BalanceInvalidator drops cached balances of users whose ledger changed.
type BalanceInvalidator interface {
	Invalidate(ctx context.Context, users ...int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// AfterCommitFunc schedules fn to run once the rows written under ctx are
// durable. It must drop fn if they never become durable.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context))

func runNow(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) }

// RecorderService records transfers as double-entry pairs.
type RecorderService struct {
	writer      TransactionWriter
	cache       BalanceInvalidator
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
	now         func() time.Time
}

// NewRecorderService creates a RecorderService. cache and kafkaWriter may be nil.
// A nil afterCommit treats every successful InsertBatch as durable.
func NewRecorderService(writer TransactionWriter, cache BalanceInvalidator, kafkaWriter KafkaWriter, afterCommit AfterCommitFunc) *RecorderService {
	if afterCommit == nil {
		afterCommit = runNow
	}
	return &RecorderService{
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
		now:         time.Now,
	}
}

// RecordTransfer stores (sender, receiver, +amount, timestamp) and
// (receiver, sender, -amount, timestamp) in a single batch. Cache invalidation
// and the TransferRecorded event run through afterCommit.
func (s *RecorderService) RecordTransfer(ctx context.Context, sender, receiver, amount, timestamp int64) error {
	if sender < 0 || receiver < 0 || amount < 0 || timestamp < 0 {
		logger.Log.Warnw("rejected transfer with negative field",
			"sender", sender, "receiver", receiver, "amount", amount, "timestamp", timestamp)
		return ErrInvalidTransfer
	}

	if err := s.writer.InsertBatch(ctx, models.TransferPair(sender, receiver, amount, timestamp)); err != nil {
		logger.Log.Errorw("failed to record transfer",
			"sender", sender, "receiver", receiver, "amount", amount, "timestamp", timestamp, "error", err)
		return err
	}

	event := models.TransferRecorded{
		EventID:    uuid.NewString(),
		Sender:     sender,
		Receiver:   receiver,
		Amount:     amount,
		Timestamp:  timestamp,
		RecordedAt: s.now().Unix(),
	}

	// Cached balances and subscribers only learn about committed rows.
	s.afterCommit(ctx, func(ctx context.Context) {
		if s.cache != nil {
			if err := s.cache.Invalidate(ctx, sender, receiver); err != nil {
				logger.Log.Errorw("failed to invalidate cached balances", "sender", sender, "receiver", receiver, "error", err)
			}
		}
		s.publishTransfer(ctx, event)
	})

	return nil
}

// publishTransfer publishes a recorded transfer to Kafka.
func (s *RecorderService) publishTransfer(ctx context.Context, event models.TransferRecorded) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transfer event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.Sender, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transfer event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Transfer event published", "event_id", event.EventID, "amount", event.Amount)
	}
}
