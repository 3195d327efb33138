package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestRegistryStartsAtZero(t *testing.T) {
	r := NewRegistry()

	for _, key := range Keys() {
		if got := testutil.ToFloat64(r.Gauge(key)); got != 0 {
			t.Fatalf("gauge %s initial value = %v, want 0", key, got)
		}
	}
}

func TestRegistrySet(t *testing.T) {
	r := NewRegistry()
	values := map[Key][]float64{
		Uptime:                             {1102822, 1102882, 1102942},
		BlockchainInfoDifficulty:           {82047728459932.75},
		BlockchainInfoVerificationProgress: {0.9999982735347266, 1},
		NetTotalsTotalBytesSent:            {35230942351, 35234321239},
		MemoryInfoChunksFree:               {4},
	}

	for key, series := range values {
		for _, v := range series {
			r.Set(key, v)
			if got := testutil.ToFloat64(r.Gauge(key)); got != v {
				t.Fatalf("gauge %s = %v, want %v", key, got, v)
			}
		}
	}
}

func TestRegistryUnknownKeyPanics(t *testing.T) {
	r := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown key")
		}
	}()
	r.Set(Key("no_such_gauge"), 1)
}

func TestRegistryHandlerExposesEveryGauge(t *testing.T) {
	r := NewRegistry()
	r.Set(NetworkInfoConnectionsIn, 108)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	text := string(body)
	for _, key := range Keys() {
		if !strings.Contains(text, "\nbitcoin_"+string(key)+" ") {
			t.Fatalf("exposition missing bitcoin_%s", key)
		}
	}
	if !strings.Contains(text, "bitcoin_network_info_connections_in 108") {
		t.Fatalf("exposition missing updated value:\n%s", text)
	}
	if !strings.Contains(text, "# HELP bitcoin_uptime Total uptime of the node") {
		t.Fatalf("exposition missing help string")
	}
}

func TestRPCClientRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRPCClient(reg)
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, m.operations.WithLabelValues("uptime", "success"), func() {
		m.Observe("uptime", nil, start)
	}); inc != 1 {
		t.Fatalf("expected rpc success counter increment, got %v", inc)
	}

	if inc := delta(t, m.operations.WithLabelValues("getnettotals", "error"), func() {
		m.Observe("getnettotals", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected rpc error counter increment, got %v", inc)
	}

	if got := testutil.CollectAndCount(m.duration); got != 2 {
		t.Fatalf("expected 2 duration series, got %d", got)
	}
}
