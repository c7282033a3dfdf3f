// Package listener ingests data packages published by oracle nodes over
// redis pub/sub, as an alternative intake to direct HTTP posting.
package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/oraclestream/pricecache-backend/internal/clock"
	"github.com/oraclestream/pricecache-backend/internal/packages/model"
	"github.com/oraclestream/pricecache-backend/internal/registry"
)

const reconnectBackoff = 5 * time.Second

// Service subscribes to the per-node broadcast channels and saves verified
// packages through the fanout path. The redis destination is excluded from
// that fanout so listened packages are not re-published.
type Service struct {
	logger        *zap.Logger
	subscriber    Subscriber
	saver         PackageSaver
	registry      RegistryClient
	recoverer     SignatureRecoverer
	metrics       ListenerMetrics
	channelPrefix string
	sleep         func(context.Context, time.Duration) error
	backoff       time.Duration
}

// NewService constructs a listener Service.
func NewService(
	logger *zap.Logger,
	subscriber Subscriber,
	saver PackageSaver,
	registryClient RegistryClient,
	recoverer SignatureRecoverer,
	metrics ListenerMetrics,
	channelPrefix string,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("listener metrics is required")
	}

	return &Service{
		logger:        logger,
		subscriber:    subscriber,
		saver:         saver,
		registry:      registryClient,
		recoverer:     recoverer,
		metrics:       metrics,
		channelPrefix: channelPrefix,
		sleep:         clock.SleepWithContext,
		backoff:       reconnectBackoff,
	}, nil
}

// Run subscribes and processes messages until the context is canceled.
// Subscription failures trigger a resubscribe after a backoff, with the
// registry re-read so node churn is picked up.
func (s *Service) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.listen(ctx); err != nil {
			s.logger.Warn("listen iteration failed, backing off",
				zap.Error(err),
				zap.Duration("sleep", s.backoff),
			)
			if sleepErr := s.sleep(ctx, s.backoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) listen(ctx context.Context) error {
	state, err := s.registry.State(ctx)
	if err != nil {
		return fmt.Errorf("fetch registry state: %w", err)
	}

	nodesByChannel := make(map[string]registry.Node, len(state.Nodes))
	channels := make([]string, 0, len(state.Nodes))
	for _, node := range state.Nodes {
		channel := s.channelPrefix + ":" + strings.ToLower(node.EvmAddress)
		nodesByChannel[channel] = node
		channels = append(channels, channel)
	}
	if len(channels) == 0 {
		return errors.New("no registry nodes to listen to")
	}

	sub := s.subscriber.Subscribe(ctx, channels...)
	defer func() {
		if err := sub.Close(); err != nil {
			s.logger.Warn("subscription close failed", zap.Error(err))
		}
	}()

	s.logger.Info("listening for node broadcasts", zap.Int("channel_count", len(channels)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-sub.Channel():
			if !ok {
				return errors.New("subscription channel closed")
			}
			started := time.Now()
			err := s.processMessage(ctx, nodesByChannel[msg.Channel], msg.Payload)
			s.metrics.ObserveMessage(err, started)
			if err != nil {
				s.logger.Warn("message not processed",
					zap.String("channel", msg.Channel),
					zap.Error(err),
				)
			}
		}
	}
}

func (s *Service) processMessage(ctx context.Context, node registry.Node, payload string) error {
	if node.EvmAddress == "" {
		return errors.New("message from unmapped channel")
	}

	var payloads []model.BroadcastPayload
	if err := json.Unmarshal([]byte(payload), &payloads); err != nil {
		return fmt.Errorf("unmarshal broadcast payload: %w", err)
	}
	if len(payloads) == 0 {
		return errors.New("empty broadcast payload")
	}

	packages := make([]model.DataPackage, 0, len(payloads))
	for _, p := range payloads {
		received := model.ReceivedDataPackage{
			TimestampMilliseconds: p.TimestampMilliseconds,
			Signature:             p.Signature,
			DataPoints:            p.DataPoints,
		}
		packageID := received.DerivePackageID()
		packages = append(packages, model.DataPackage{
			TimestampMilliseconds: p.TimestampMilliseconds,
			Signature:             p.Signature,
			IsSignatureValid:      s.verify(received, node.EvmAddress),
			DataPoints:            p.DataPoints,
			DataServiceID:         node.DataServiceID,
			SignerAddress:         node.EvmAddress,
			DataFeedID:            packageID,
			DataPackageID:         packageID,
		})
	}

	return s.saver.Save(ctx, packages)
}

func (s *Service) verify(received model.ReceivedDataPackage, nodeAddress string) bool {
	recovered, err := s.recoverer.RecoverPackageSigner(received)
	if err != nil {
		s.logger.Debug("package signature recovery failed", zap.Error(err))
		return false
	}
	return strings.EqualFold(recovered, nodeAddress)
}
