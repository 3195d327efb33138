package exporter

import (
	"context"

	"github.com/goodnatureofminers/bitcoin-exporter/internal/bitcoin"
	"github.com/goodnatureofminers/bitcoin-exporter/internal/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		Uptime(ctx context.Context) bitcoin.Envelope
		GetBlockchainInfo(ctx context.Context) bitcoin.Envelope
		GetNetworkInfo(ctx context.Context) bitcoin.Envelope
		GetNetTotals(ctx context.Context) bitcoin.Envelope
		GetMemoryInfo(ctx context.Context) bitcoin.Envelope
		GetMempoolInfo(ctx context.Context) bitcoin.Envelope
		TotalCount() int64
		SuccessCount() int64
		ErrorCount() int64
	}
	Gauges interface {
		Set(key metrics.Key, value float64)
	}
)

// CallFailure is a failed call queued during a poll cycle.
type CallFailure struct {
	ID      int64
	Method  string
	Code    int
	Message string
}
