// Command benchmark load tests the registry HTTP API in-process with vegeta.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	"github.com/nulzo/prism-registry/internal/config"
	"github.com/nulzo/prism-registry/internal/i18n"
	"github.com/nulzo/prism-registry/internal/registry"
	"github.com/nulzo/prism-registry/internal/server"
	vegeta "github.com/tsenart/vegeta/v12/lib"
	"go.uber.org/zap"
)

type target struct {
	method string
	path   string
	body   string
}

// mix is the request blend a settings screen and a session controller produce.
var mix = []target{
	{http.MethodGet, "/v1/capabilities?model=gpt-4o&role=user&media_type=image/png", ""},
	{http.MethodGet, "/v1/capabilities?model=claude-3-5-sonnet-20241022&role=user&media_type=application/pdf", ""},
	{http.MethodGet, "/v1/capabilities?model=some-unlisted-model&role=tool", ""},
	{http.MethodPost, "/v1/providers/openai/settings", `{"apiKey":"sk-bench-0000000000"}`},
	{http.MethodPost, "/v1/providers/azure/settings", `{"apiKey":"k","baseURL":"nope"}`},
	{http.MethodGet, "/v1/providers", ""},
	{http.MethodGet, "/v1/models?provider=google", ""},
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 500, "Requests per second")
	locale := flag.String("locale", i18n.DefaultLocale, "Registry locale")
	flag.Parse()

	loc, err := i18n.New(*locale)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	reg, err := registry.New(loc)
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	cfg := &config.Config{
		Server:    config.ServerConfig{Env: "production"},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1e6, Burst: 1e6},
	}
	srv, err := server.New(cfg, zap.NewNop(), reg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	fmt.Printf("Running benchmark against %s: %s duration, %d req/s\n", ts.URL, *duration, *rate)

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics
	for res := range attacker.Attack(roundRobin(ts.URL, mix), vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "Registry") {
		metrics.Add(res)
	}
	metrics.Close()

	report(&metrics)
}

// roundRobin cycles through targets; it is safe for concurrent use by the attacker.
func roundRobin(base string, targets []target) vegeta.Targeter {
	var n atomic.Uint64
	return func(t *vegeta.Target) error {
		if t == nil {
			return vegeta.ErrNilTarget
		}
		tg := targets[(n.Add(1)-1)%uint64(len(targets))]
		t.Method = tg.method
		t.URL = base + tg.path
		t.Body = nil
		t.Header = http.Header{}
		if tg.body != "" {
			t.Body = []byte(tg.body)
			t.Header.Set("Content-Type", "application/json")
		}
		return nil
	}
}

func report(m *vegeta.Metrics) {
	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", m.Latencies.P99)
	fmt.Println("Mean:            ", m.Latencies.Mean)
	fmt.Println("Max:             ", m.Latencies.Max)
	fmt.Printf("Requests:        %d\n", m.Requests)
	fmt.Printf("Throughput:      %.2f req/s\n", m.Throughput)
	fmt.Println("Status codes:    ", m.StatusCodes)
	fmt.Println("--------------------------------------------------")

	if len(m.Errors) > 0 {
		fmt.Println("Error Set (first 5 unique):")
		seen := make(map[string]bool)
		for _, msg := range m.Errors {
			if len(seen) == 5 {
				break
			}
			if !seen[msg] {
				fmt.Println(msg)
				seen[msg] = true
			}
		}
	}
}
