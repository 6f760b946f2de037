package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

var (
	baseURL      string
	numWorkers   int
	testDuration time.Duration
)

var plates = []string{"ABC-1234", "XYZ-9876", "abc 1234", "DEF-5678", "QRS-0001", "LMN-4242"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	pflag.StringVar(&baseURL, "url", "http://127.0.0.1:5000", "hubdash base URL")
	pflag.IntVar(&numWorkers, "workers", 50, "concurrent workers")
	pflag.DurationVar(&testDuration, "duration", 10*time.Second, "duration of each phase")
	pflag.Parse()

	fmt.Println("=== HubDash Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Duration: %s\n\n", baseURL, numWorkers, testDuration)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			drain(resp)
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Dashboard reads (hubs, cameras, events) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		switch r := rng.Float64(); {
		case r < 0.30:
			return doGet("GET /api/hubs", "/api/hubs")
		case r < 0.60:
			return doGet("GET /api/cameras", fmt.Sprintf("/api/cameras?hubId=%d", rng.Intn(3)+1))
		default:
			return doGet("GET /api/events", "/api/events?limit=10")
		}
	})

	fmt.Println("\n--- Phase 2: Mixed load (events, plate checks, heartbeats) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		switch r := rng.Float64(); {
		case r < 0.30:
			return doCreateEvent(rng)
		case r < 0.55:
			return doCheckPlate(rng)
		case r < 0.65:
			return doPost("POST /api/hubs/{id}/heartbeat", fmt.Sprintf("/api/hubs/%d/heartbeat", rng.Intn(3)+1), nil, http.StatusOK)
		case r < 0.85:
			return doGet("GET /api/events", "/api/events?limit=10")
		default:
			return doGet("GET /api/hubs", "/api/hubs")
		}
	})

	fmt.Println("\n--- Phase 3: Watch-list heavy (90% checks) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.10 {
			return doGet("GET /api/watchlist", "/api/watchlist")
		}
		return doCheckPlate(rng)
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := lo.Keys(allResults)
	sort.Strings(endpoints)

	fmt.Printf("\n  %-32s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 98))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		fmt.Printf("  %-32s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors,
			fmtDur(avgDuration(s.latencies)),
			fmtDur(percentile(s.latencies, 0.50)),
			fmtDur(percentile(s.latencies, 0.95)),
			fmtDur(percentile(s.latencies, 0.99)))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 98))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(max(totalOps, 1))*100, rps)
}

func doCreateEvent(rng *rand.Rand) result {
	body := map[string]interface{}{
		"hubId":    rng.Intn(3) + 1,
		"type":     "license_plate",
		"severity": lo.Sample([]string{"low", "medium", "high"}),
		"title":    "License Plate Detected",
	}
	if rng.Float64() < 0.5 {
		body["licensePlate"] = plates[rng.Intn(len(plates))]
	}
	return doPost("POST /api/events", "/api/events", body, http.StatusCreated)
}

func doCheckPlate(rng *rand.Rand) result {
	body := map[string]string{"licensePlate": plates[rng.Intn(len(plates))]}
	return doPost("POST /api/watchlist/check", "/api/watchlist/check", body, http.StatusOK)
}

func doGet(endpoint, path string) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	drain(resp)
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

func doPost(endpoint, path string, body any, want int) result {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	start := time.Now()
	resp, err := httpClient.Post(baseURL+path, "application/json", reader)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	drain(resp)
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != want}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
