package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"pushrelay/internal/domain/service"
	"pushrelay/internal/errors"

	"github.com/redis/go-redis/v9"
)

// redisPublisher fans dispatch events out on a Redis channel.
type redisPublisher struct {
	client  redis.UniversalClient
	channel string
	logger  *slog.Logger
}

// NewRedisPublisher connects to Redis and verifies the connection with a ping.
func NewRedisPublisher(ctx context.Context, addr, password, channel string, logger *slog.Logger) (service.EventPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to connect to redis at %s", addr)
	}

	return newRedisPublisher(client, channel, logger), nil
}

func newRedisPublisher(client redis.UniversalClient, channel string, logger *slog.Logger) *redisPublisher {
	return &redisPublisher{client: client, channel: channel, logger: logger}
}

// redisEnvelope carries the event with its routing attributes.
type redisEnvelope struct {
	Attributes map[string]string      `json:"attributes"`
	Event      *service.DispatchEvent `json:"event"`
}

func (p *redisPublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	data, err := json.Marshal(redisEnvelope{Attributes: eventAttributes(event), Event: event})
	if err != nil {
		return errors.WithStack(err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, data).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to publish to channel %s", p.channel)
	}

	p.logger.Debug("[RedisEvents] Dispatch event published",
		slog.Int64("notification_id", event.NotificationID),
		slog.Int64("receivers", receivers),
	)

	return nil
}

func (p *redisPublisher) Close() error {
	return errors.WithStack(p.client.Close())
}
