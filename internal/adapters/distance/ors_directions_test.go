package distance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"route-weather-service/internal/domain"
	"sync/atomic"
	"testing"
	"time"
)

var (
	saoPaulo = domain.Coordinates{Lat: -23.55, Lon: -46.63}
	rio      = domain.Coordinates{Lat: -22.90, Lon: -43.17}
)

func TestORSRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v2/directions/foot-walking" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "key" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}

		var body directionsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if len(body.Coordinates) != 2 || body.Coordinates[0][0] != saoPaulo.Lon || body.Coordinates[1][1] != rio.Lat {
			t.Errorf("coordinates = %v, want [lon,lat] pairs", body.Coordinates)
		}

		w.Write([]byte(`{"routes":[{"summary":{"distance":431245.4,"duration":18600.6}},{"summary":{"distance":1,"duration":1}}]}`))
	}))
	defer srv.Close()

	p, err := NewORSRouteProvider("key", srv.URL, time.Second)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	got, err := p.Route(context.Background(), saoPaulo, rio, domain.ModeWalking)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceMeters != 431245 || got.DurationSeconds != 18601 {
		t.Fatalf("got %+v", got)
	}
}

func TestORSRouteRetriesTransientFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"routes":[{"summary":{"distance":1000,"duration":60}}]}`))
	}))
	defer srv.Close()

	p, _ := NewORSRouteProvider("key", srv.URL, time.Second)
	p.WithRetry(2, time.Millisecond)

	got, err := p.Route(context.Background(), saoPaulo, rio, domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceMeters != 1000 || hits.Load() != 2 {
		t.Fatalf("got %+v after %d calls", got, hits.Load())
	}
}

func TestORSRouteDoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p, _ := NewORSRouteProvider("key", srv.URL, time.Second)
	p.WithRetry(4, time.Millisecond)

	if _, err := p.Route(context.Background(), saoPaulo, rio, domain.ModeDriving); err == nil {
		t.Fatalf("expected error")
	}
	if hits.Load() != 1 {
		t.Fatalf("calls = %d, want 1", hits.Load())
	}
}

func TestORSRouteMalformed(t *testing.T) {
	cases := map[string]string{
		"no routes":       `{"routes":[]}`,
		"missing summary": `{"routes":[{"summary":{}}]}`,
		"not json":        `nope`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			p, _ := NewORSRouteProvider("key", srv.URL, time.Second)
			if _, err := p.Route(context.Background(), saoPaulo, rio, domain.ModeDriving); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestORSRouteRespectsDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	p, _ := NewORSRouteProvider("key", srv.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	if _, err := p.Route(ctx, saoPaulo, rio, domain.ModeDriving); err == nil {
		t.Fatalf("expected timeout error")
	}
	if time.Since(start) > time.Second {
		t.Fatalf("deadline not honoured: took %s", time.Since(start))
	}
}

func TestProfile(t *testing.T) {
	cases := map[domain.TravelMode]string{
		domain.ModeDriving:   "driving-car",
		domain.ModeWalking:   "foot-walking",
		domain.ModeBicycling: "cycling-regular",
		domain.ModeTransit:   "driving-car",
	}
	for mode, want := range cases {
		if got := Profile(mode); got != want {
			t.Errorf("Profile(%s) = %q, want %q", mode, got, want)
		}
	}
}

func TestNewORSRouteProviderRequiresKey(t *testing.T) {
	if _, err := NewORSRouteProvider("", "http://unused", time.Second); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestORSRouteHungAttemptLeavesBudgetForRetry(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(3 * time.Second):
			}
			return
		}
		w.Write([]byte(`{"routes":[{"summary":{"distance":2500,"duration":300}}]}`))
	}))
	defer srv.Close()

	// The session timeout alone would let the first attempt eat the whole budget.
	p, _ := NewORSRouteProvider("key", srv.URL, 5*time.Second)
	p.WithRetry(2, time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := p.Route(ctx, saoPaulo, rio, domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DistanceMeters != 2500 || hits.Load() != 2 {
		t.Fatalf("got %+v after %d calls", got, hits.Load())
	}
}

func TestAttemptContextSplitsRemainingDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 4*time.Second)
	defer cancel()

	ctx, cancelAttempt := attemptContext(parent, 4)
	defer cancelAttempt()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("attempt context has no deadline")
	}
	if share := time.Until(deadline); share > time.Second || share < 900*time.Millisecond {
		t.Fatalf("attempt share = %s, want about 1s", share)
	}

	last, cancelLast := attemptContext(parent, 1)
	defer cancelLast()
	if d, _ := last.Deadline(); !d.Equal(mustDeadline(t, parent)) {
		t.Fatalf("last attempt should inherit the parent deadline")
	}
}

func mustDeadline(t *testing.T, ctx context.Context) time.Time {
	t.Helper()
	d, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("context has no deadline")
	}
	return d
}
