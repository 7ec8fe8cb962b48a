package store

import (
	"context"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const notifyChannelPrefix = "fitcoach-store||"

var _ Notifier = (*RedisNotifier)(nil)

// RedisNotifier fans collection changes out over redis pub/sub,
// so live queries see writes made by any service instance.
type RedisNotifier struct {
	redisClient *redis.Client
}

func NewRedisNotifier(redisClient *redis.Client) *RedisNotifier {
	return &RedisNotifier{
		redisClient: redisClient,
	}
}

func NotifyChannel(collection string) string {
	return notifyChannelPrefix + collection
}

func (n *RedisNotifier) Notify(ctx context.Context, collection string) error {
	return n.redisClient.Publish(ctx, NotifyChannel(collection), "changed").Err()
}

func (n *RedisNotifier) Listen(ctx context.Context, collection string) (<-chan struct{}, func() error, error) {
	pubsub := n.redisClient.Subscribe(ctx, NotifyChannel(collection))
	// wait for the subscription confirmation, so no change is missed after Listen returns
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	changes := make(chan struct{}, 1)
	msgs := pubsub.Channel()
	go func() {
		defer close(changes)
		for range msgs {
			select {
			case changes <- struct{}{}:
			default:
				// a refresh is already pending
			}
		}
		log.Tracef("store notifier: %s channel closed", collection)
	}()

	return changes, pubsub.Close, nil
}
