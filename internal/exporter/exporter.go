// Package exporter polls a Bitcoin node on a fixed interval and maps the
// responses onto the exporter's gauges.
package exporter

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/bitcoin-exporter/internal/bitcoin"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/clock"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/metrics"
	"github.com/goodnatureofminers/bitcoin-exporter/pkg/workerpool"
)

// DefaultInterval is the pause between two poll cycles.
const DefaultInterval = 60 * time.Second

// Service runs poll cycles against a node and keeps the gauges current.
type Service struct {
	logger      *zap.Logger
	client      NodeClient
	gauges      Gauges
	clock       clock.Clock
	interval    time.Duration
	concurrency int

	fetchCount int64
	pending    []CallFailure
}

type call struct {
	fetch func(context.Context) bitcoin.Envelope
	apply func(bitcoin.Envelope) error
}

// NewService builds a Service. A concurrency of one issues the calls of a
// cycle sequentially.
func NewService(
	client NodeClient,
	gauges Gauges,
	interval time.Duration,
	concurrency int,
	logger *zap.Logger,
) (*Service, error) {
	if client == nil {
		return nil, errors.New("node client is required")
	}
	if gauges == nil {
		return nil, errors.New("gauges are required")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		logger:      logger,
		client:      client,
		gauges:      gauges,
		clock:       clock.Real{},
		interval:    interval,
		concurrency: concurrency,
	}, nil
}

// Run polls the node until ctx is canceled. Cancellation is observed between
// cycles; a cycle in progress always completes.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("exporter started",
		zap.Duration("interval", s.interval),
		zap.Int("gauges", len(metrics.Keys())),
		zap.Int("concurrency", s.concurrency),
	)
	for ctx.Err() == nil {
		s.UpdateMetrics(context.WithoutCancel(ctx))
		if err := s.clock.Sleep(ctx, s.interval); err != nil {
			break
		}
	}
	s.logger.Info("exporter stopped", zap.Int64("fetches", s.fetchCount))
	return nil
}

// UpdateMetrics runs one poll cycle. Every monitored call is issued even when
// earlier ones fail; a failed call leaves its gauges untouched. The failures
// of the cycle are logged and returned in call order.
func (s *Service) UpdateMetrics(ctx context.Context) []CallFailure {
	s.fetchCount++
	logger := s.logger.With(zap.Int64("fetch", s.fetchCount))
	logger.Info("starting bitcoin rpc fetch")

	calls := s.calls()
	envelopes := make([]bitcoin.Envelope, len(calls))
	indices := make([]int, len(calls))
	for i := range calls {
		indices[i] = i
	}

	started := s.clock.Now()
	_ = workerpool.Run(ctx, s.concurrency, indices, func(ctx context.Context, i int) error {
		envelopes[i] = calls[i].fetch(ctx)
		s.publishCounters()
		return nil
	})
	// concurrent workers may publish out of order
	s.publishCounters()
	elapsed := s.clock.Now().Sub(started)
	s.gauges.Set(metrics.ExporterFetchDurationSeconds, elapsed.Seconds())
	logger.Info("bitcoin rpc fetch done", zap.Duration("elapsed", elapsed))

	for i, c := range calls {
		env := envelopes[i]
		if env.Error != nil {
			s.enqueue(CallFailure{
				ID:      env.ID,
				Method:  env.Method,
				Code:    int(env.Error.Code),
				Message: env.Error.Message,
			})
			continue
		}
		if err := c.apply(env); err != nil {
			s.enqueue(CallFailure{
				ID:      env.ID,
				Method:  env.Method,
				Code:    int(bitcoin.ErrCodeInvalidResponse),
				Message: err.Error(),
			})
		}
	}

	return s.drain(logger)
}

func (s *Service) calls() []call {
	return []call{
		{fetch: s.client.Uptime, apply: s.applyUptime},
		{fetch: s.client.GetBlockchainInfo, apply: s.applyBlockchainInfo},
		{fetch: s.client.GetNetworkInfo, apply: s.applyNetworkInfo},
		{fetch: s.client.GetNetTotals, apply: s.applyNetTotals},
		{fetch: s.client.GetMemoryInfo, apply: s.applyMemoryInfo},
		{fetch: s.client.GetMempoolInfo, apply: s.applyMempoolInfo},
	}
}

func (s *Service) publishCounters() {
	s.gauges.Set(metrics.ExporterRPCTotal, float64(s.client.TotalCount()))
	s.gauges.Set(metrics.ExporterRPCSuccess, float64(s.client.SuccessCount()))
	s.gauges.Set(metrics.ExporterRPCError, float64(s.client.ErrorCount()))
}

func (s *Service) enqueue(f CallFailure) {
	s.pending = append(s.pending, f)
}

func (s *Service) drain(logger *zap.Logger) []CallFailure {
	drained := s.pending
	s.pending = nil

	for _, f := range drained {
		logger.Error("got error from rpc",
			zap.Int64("id", f.ID),
			zap.String("method", f.Method),
			zap.Int("code", f.Code),
			zap.String("message", f.Message),
		)
	}
	return drained
}
