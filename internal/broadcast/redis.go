// Package broadcast implements the best effort destinations packages are
// fanned out to after the mandatory store write.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/packages/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// RedisPublisher is the subset of the redis client used for broadcasting.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisBroadcaster publishes accepted packages to one pub/sub channel per
// signer so downstream listeners can subscribe selectively.
type RedisBroadcaster struct {
	logger        *zap.Logger
	client        RedisPublisher
	channelPrefix string
}

// NewRedisBroadcaster constructs a RedisBroadcaster.
func NewRedisBroadcaster(logger *zap.Logger, client RedisPublisher, channelPrefix string) *RedisBroadcaster {
	return &RedisBroadcaster{
		logger:        logger,
		client:        client,
		channelPrefix: channelPrefix,
	}
}

// Name identifies the destination in logs and metrics.
func (b *RedisBroadcaster) Name() string {
	return "redis"
}

// Broadcast publishes the packages grouped per signer. Channel names are
// lowercase so subscribers do not depend on address casing.
func (b *RedisBroadcaster) Broadcast(ctx context.Context, packages []model.DataPackage) error {
	bySigner := make(map[string][]model.DataPackage)
	for _, pkg := range packages {
		signer := strings.ToLower(pkg.SignerAddress)
		bySigner[signer] = append(bySigner[signer], pkg)
	}

	for signer, group := range bySigner {
		payload, err := json.Marshal(model.ToBroadcastPayloads(group))
		if err != nil {
			return fmt.Errorf("marshal broadcast payload: %w", err)
		}

		channel := b.channelPrefix + ":" + signer
		if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
			return fmt.Errorf("publish to %s: %w", channel, err)
		}
		b.logger.Debug("packages published",
			zap.String("channel", channel),
			zap.Int("package_count", len(group)),
		)
	}

	return nil
}
