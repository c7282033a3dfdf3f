package listener

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PubSub interface {
		Channel() <-chan *redis.Message
		Close() error
	}
	Subscriber interface {
		Subscribe(ctx context.Context, channels ...string) PubSub
	}
	PackageSaver interface {
		Save(ctx context.Context, packages []model.DataPackage) error
	}
	RegistryClient interface {
		State(ctx context.Context) (registry.State, error)
	}
	SignatureRecoverer interface {
		RecoverPackageSigner(pkg model.ReceivedDataPackage) (string, error)
	}
	ListenerMetrics interface {
		ObserveMessage(err error, started time.Time)
	}
)

// RedisSubscriber adapts a redis client to the Subscriber interface.
type RedisSubscriber struct {
	Client *redis.Client
}

func (s RedisSubscriber) Subscribe(ctx context.Context, channels ...string) PubSub {
	return redisPubSub{s.Client.Subscribe(ctx, channels...)}
}

// redisPubSub adapts *redis.PubSub, whose Channel method is variadic, to the
// PubSub interface.
type redisPubSub struct {
	*redis.PubSub
}

func (p redisPubSub) Channel() <-chan *redis.Message {
	return p.PubSub.Channel()
}
