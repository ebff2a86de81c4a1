package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := New(fixedProvider("ok"), Config{ShutdownTimeout: time.Second}, WithLogger(newTestLogger()))

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		cancel()
		t.Fatalf("GET /healthz: %v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, want nil after shutdown", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenAndServeBadAddr(t *testing.T) {
	s := New(fixedProvider("ok"), Config{Addr: "256.0.0.1:bad"})
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Error("expected a listen error")
	}
}

func TestNew_Defaults(t *testing.T) {
	s := New(fixedProvider("ok"), Config{})
	if s.config.FactTimeout != 10*time.Second {
		t.Errorf("FactTimeout = %v, want 10s", s.config.FactTimeout)
	}
	if s.config.ShutdownTimeout != defaultShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v", s.config.ShutdownTimeout)
	}
	if !s.config.Security.EnableCORS {
		t.Error("default security config should be applied")
	}
	if s.metrics == nil || s.logger == nil {
		t.Error("metrics and logger should default")
	}

	shared := NewMetrics()
	if got := New(fixedProvider("ok"), Config{}, WithMetrics(shared)); got.metrics != shared {
		t.Error("WithMetrics should share the registry")
	}
}
