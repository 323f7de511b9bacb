// internal/history/history.go
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultQueueName is the Redis list (queue) name for game action logs.
const DefaultQueueName = "daregame_actions"

// Record is one committed game transition as pushed onto the queue. A
// downstream consumer drains the list and persists or analyzes the stream.
type Record struct {
	ChatID    int64                  `json:"chat_id"`
	SessionID string                 `json:"session_id"`
	Action    string                 `json:"action"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp int64                  `json:"timestamp"` // epoch millis
}

// Publisher pushes action records to a Redis list. It satisfies the game
// engine's ActionLog; publishes run on their own goroutine so a slow or
// unreachable Redis never stalls a turn.
type Publisher struct {
	rdb   *redis.Client
	queue string
	log   *logrus.Logger
}

// Connect builds a publisher and verifies the Redis connection with a ping.
func Connect(addr string, db int, queue string, logger *logrus.Logger) (*Publisher, error) {
	if queue == "" {
		queue = DefaultQueueName
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Publisher{rdb: rdb, queue: queue, log: logger}, nil
}

// Record serializes the action and pushes it onto the queue asynchronously.
func (p *Publisher) Record(chatID int64, sessionID string, action string, payload map[string]interface{}) {
	rec := Record{
		ChatID:    chatID,
		SessionID: sessionID,
		Action:    action,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
	go func() {
		if err := p.publish(rec); err != nil {
			p.log.WithError(err).Warn("failed to publish action record")
		}
	}()
}

func (p *Publisher) publish(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal action record: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.rdb.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.queue, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (p *Publisher) Close() error {
	return p.rdb.Close()
}
