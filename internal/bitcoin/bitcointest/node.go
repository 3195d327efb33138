// Package bitcointest provides a fake Bitcoin Core JSON-RPC endpoint for tests.
package bitcointest

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/btcsuite/btcd/btcjson"
)

// Request is a JSON-RPC request as received by the fake node.
type Request struct {
	JSONRPC     string            `json:"jsonrpc"`
	ID          int64             `json:"id"`
	Method      string            `json:"method"`
	Params      []json.RawMessage `json:"params"`
	ContentType string            `json:"-"`
}

// Node serves canned results for RPC methods behind HTTP basic auth.
type Node struct {
	server   *httptest.Server
	user     string
	password string

	mu       sync.Mutex
	results  map[string]any
	disabled map[string]bool
	requests []Request
}

// NewNode starts a fake node accepting the given credentials and preloaded
// with DefaultResults. Call Close when done.
func NewNode(user, password string) *Node {
	n := &Node{
		user:     user,
		password: password,
		results:  DefaultResults(),
		disabled: make(map[string]bool),
	}
	n.server = httptest.NewServer(http.HandlerFunc(n.serveHTTP))
	return n
}

// DefaultResults returns results shaped like a mainnet Bitcoin Core node.
func DefaultResults() map[string]any {
	return map[string]any{
		"uptime": 1102822,
		"getblockchaininfo": map[string]any{
			"chain":                "main",
			"blocks":               854367,
			"headers":              854368,
			"bestblockhash":        "00000000000000000001d6f1b6a1b4b0c1c3d1c5b1f0a7e1a4b4f7e1c4b1a2b3",
			"difficulty":           82047728459932.75,
			"time":                 1722190090,
			"mediantime":           1722188318,
			"verificationprogress": 0.9999982735347266,
			"initialblockdownload": false,
			"size_on_disk":         2120712243,
			"pruned":               true,
		},
		"getnetworkinfo": map[string]any{
			"version":         270100,
			"subversion":      "/Satoshi:27.1.0/",
			"protocolversion": 70016,
			"networkactive":   true,
			"connections":     118,
			"connections_in":  108,
			"connections_out": 10,
		},
		"getnettotals": map[string]any{
			"totalbytesrecv": 18846626913,
			"totalbytessent": 35230942351,
			"timemillis":     1722190111234,
		},
		"getmemoryinfo": map[string]any{
			"locked": map[string]any{
				"used":        3408,
				"free":        258736,
				"total":       262144,
				"locked":      262144,
				"chunks_used": 100,
				"chunks_free": 4,
			},
		},
		"getmempoolinfo": map[string]any{
			"loaded":        true,
			"size":          72075,
			"bytes":         41820037,
			"usage":         207623152,
			"total_fee":     1.53401122,
			"maxmempool":    300000000,
			"mempoolminfee": 0.00001,
			"minrelaytxfee": 0.00001,
		},
		"getblockcount":      854367,
		"getconnectioncount": 118,
		"getnodeaddresses": []map[string]any{
			{"time": 1722180000, "services": 1033, "address": "203.0.113.7", "port": 8333, "network": "ipv4"},
		},
	}
}

// Host returns the host part of the node address.
func (n *Node) Host() string {
	host, _, _ := net.SplitHostPort(n.server.Listener.Addr().String())
	return host
}

// Port returns the port the node listens on.
func (n *Node) Port() int {
	_, port, _ := net.SplitHostPort(n.server.Listener.Addr().String())
	p, _ := strconv.Atoi(port)
	return p
}

// Close shuts the node down.
func (n *Node) Close() {
	n.server.Close()
}

// SetResult replaces the result served for method.
func (n *Node) SetResult(method string, result any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.results[method] = result
}

// Disable makes the node answer method with a "Method not found" error.
func (n *Node) Disable(method string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.disabled[method] = true
}

// Enable reverts Disable.
func (n *Node) Enable(method string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.disabled, method)
}

// Requests returns the authenticated requests received so far.
func (n *Node) Requests() []Request {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Request, len(n.requests))
	copy(out, n.requests)
	return out
}

func (n *Node) serveHTTP(w http.ResponseWriter, r *http.Request) {
	user, password, ok := r.BasicAuth()
	if !ok || user != n.user || password != n.password {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"result": nil,
			"error":  btcjson.ErrRPCParse,
			"id":     nil,
		})
		return
	}
	req.ContentType = r.Header.Get("Content-Type")

	n.mu.Lock()
	n.requests = append(n.requests, req)
	result, known := n.results[req.Method]
	disabled := n.disabled[req.Method]
	n.mu.Unlock()

	if !known || disabled {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"result": nil,
			"error":  btcjson.ErrRPCMethodNotFound,
			"id":     req.ID,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"error":  nil,
		"id":     req.ID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
