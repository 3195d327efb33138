// Package bitcoin implements a JSON-RPC client for a Bitcoin full node that
// reports every call outcome as an Envelope instead of an error.
package bitcoin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	rpcVersion = "1.0"

	// DefaultHost is the node address used when none is configured.
	DefaultHost = "127.0.0.1"
	// DefaultPort is the mainnet RPC port of Bitcoin Core.
	DefaultPort = 8332
	// DefaultTimeout bounds a single HTTP exchange with the node.
	DefaultTimeout = 30 * time.Second
)

// ErrEmptyCredentials is returned by NewRPCClient when the user or password is empty.
var ErrEmptyCredentials = errors.New("empty rpc credentials")

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config holds connection settings for the node.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration
	// RPS caps outgoing requests per second; zero disables the cap.
	RPS int
}

// RPCClient issues authenticated JSON-RPC requests and keeps cumulative call counters.
type RPCClient struct {
	logger     *zap.Logger
	httpClient *http.Client
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
	url        string
	user       string
	password   string

	nextID       atomic.Int64
	successCount atomic.Int64
	errorCount   atomic.Int64
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	Result json.RawMessage   `json:"result"`
	Error  *btcjson.RPCError `json:"error"`
}

// NewRPCClient constructs a client. It fails before any network activity when
// credentials are missing.
func NewRPCClient(cfg Config, rpcMetrics RPCMetrics, logger *zap.Logger) (*RPCClient, error) {
	if cfg.User == "" || cfg.Password == "" {
		return nil, ErrEmptyCredentials
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &RPCClient{
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
		url:        "http://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)) + "/",
		user:       cfg.User,
		password:   cfg.Password,
	}, nil
}

// Uptime returns the total uptime of the node in seconds.
func (c *RPCClient) Uptime(ctx context.Context) Envelope {
	return c.call(ctx, "uptime")
}

// GetBlockchainInfo returns state info regarding blockchain processing.
func (c *RPCClient) GetBlockchainInfo(ctx context.Context) Envelope {
	return c.call(ctx, "getblockchaininfo")
}

// GetNetworkInfo returns state info regarding P2P networking.
func (c *RPCClient) GetNetworkInfo(ctx context.Context) Envelope {
	return c.call(ctx, "getnetworkinfo")
}

// GetNetTotals returns information about network traffic.
func (c *RPCClient) GetNetTotals(ctx context.Context) Envelope {
	return c.call(ctx, "getnettotals")
}

// GetMemoryInfo returns information about memory usage.
func (c *RPCClient) GetMemoryInfo(ctx context.Context) Envelope {
	return c.call(ctx, "getmemoryinfo")
}

// GetMempoolInfo returns details on the active state of the mempool.
func (c *RPCClient) GetMempoolInfo(ctx context.Context) Envelope {
	return c.call(ctx, "getmempoolinfo")
}

// GetBlockCount returns the height of the most-work fully-validated chain.
func (c *RPCClient) GetBlockCount(ctx context.Context) Envelope {
	return c.call(ctx, "getblockcount")
}

// GetConnectionCount returns the number of connections to other nodes.
func (c *RPCClient) GetConnectionCount(ctx context.Context) Envelope {
	return c.call(ctx, "getconnectioncount")
}

// GetNodeAddresses returns up to count known peer addresses. Negative counts are treated as zero.
func (c *RPCClient) GetNodeAddresses(ctx context.Context, count int) Envelope {
	if count < 0 {
		count = 0
	}
	return c.call(ctx, "getnodeaddresses", count)
}

// TotalCount returns the number of calls issued so far.
func (c *RPCClient) TotalCount() int64 {
	return c.nextID.Load()
}

// SuccessCount returns the number of calls that completed successfully.
func (c *RPCClient) SuccessCount() int64 {
	return c.successCount.Load()
}

// ErrorCount returns the number of calls that failed.
func (c *RPCClient) ErrorCount() int64 {
	return c.errorCount.Load()
}

func (c *RPCClient) call(ctx context.Context, method string, params ...any) (env Envelope) {
	env = Envelope{
		ID:     c.nextID.Add(1),
		Method: method,
	}
	logger := c.logger.With(zap.Int64("id", env.ID), zap.String("method", method))
	logger.Debug("rpc call start")

	started := time.Now()
	defer func() {
		if env.Error != nil {
			c.errorCount.Add(1)
			logger.Error("rpc call error",
				zap.Int("code", int(env.Error.Code)),
				zap.String("message", env.Error.Message),
			)
		} else {
			c.successCount.Add(1)
			logger.Debug("rpc call success", zap.Duration("elapsed", time.Since(started)))
		}
		c.rpcMetrics.Observe(method, env.Err(), started)
	}()

	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{
		JSONRPC: rpcVersion,
		ID:      env.ID,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return env.fail(ErrCodeInvalidRequest, "failed to encode request: "+err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return env.fail(ErrCodeInvalidRequest, "failed to build request: "+err.Error())
	}
	req.Header.Set("Content-Type", "text/plain")
	req.SetBasicAuth(c.user, c.password)

	c.limiter.Take()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("rpc transport failure", zap.Error(err))
		return env.fail(ErrCodeConnection, "failed to establish connection")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Debug("rpc read failure", zap.Error(err))
		return env.fail(ErrCodeConnection, "failed to establish connection")
	}

	if resp.StatusCode == http.StatusUnauthorized && len(bytes.TrimSpace(payload)) == 0 {
		return env.fail(ErrCodeBadCredentials,
			"got empty payload and bad status code (possible wrong RPC credentials)")
	}

	var decoded response
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return env.fail(ErrCodeInvalidResponse,
			fmt.Sprintf("failed to decode response (status %d): %v", resp.StatusCode, err))
	}

	success := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if success && decoded.Error == nil {
		if isEmptyResult(decoded.Result) {
			return env.fail(ErrCodeInvalidResponse, "got empty result with no error")
		}
		env.Result = decoded.Result
		return env
	}

	if decoded.Error == nil {
		return env.fail(ErrCodeInvalidResponse, fmt.Sprintf("unexpected status code %d", resp.StatusCode))
	}
	message := decoded.Error.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return env.fail(decoded.Error.Code, message)
}
