package main

import (
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/showroom/internal/config"
	"github.com/JaimeStill/showroom/pkg/lifecycle"
	"github.com/JaimeStill/showroom/pkg/logging"
)

func testServerConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
}

func TestHTTPServer_StartServesOnBoundPort(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})

	lc := lifecycle.New()
	srv := newHTTPServer(testServerConfig(0), handler, logging.Discard())
	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	defer lc.Shutdown(5 * time.Second)

	if srv.Addr() == "" || srv.Addr() == "127.0.0.1:0" {
		t.Fatalf("Addr() = %q, want the bound port", srv.Addr())
	}

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "pong" {
		t.Errorf("response = %d %q, want 200 pong", resp.StatusCode, body)
	}
}

func TestHTTPServer_StartFailsOnHeldPort(t *testing.T) {
	held, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen failed: %v", err)
	}
	defer held.Close()

	port := held.Addr().(*net.TCPAddr).Port
	lc := lifecycle.New()
	srv := newHTTPServer(testServerConfig(port), http.NotFoundHandler(), logging.Discard())

	if err := srv.Start(lc); err == nil {
		t.Fatal("Start() on a held port returned nil")
	}
	if srv.Addr() != "" {
		t.Errorf("Addr() = %q after failed Start", srv.Addr())
	}
	if err := lc.Shutdown(time.Second); err != nil {
		t.Errorf("Shutdown() after failed Start: %v", err)
	}
}

func TestHTTPServer_CleanupWaitsForInFlightRequests(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.Write([]byte("done"))
	})

	lc := lifecycle.New()
	var cleaned atomic.Bool
	lc.OnCleanup(func() { cleaned.Store(true) })

	srv := newHTTPServer(testServerConfig(0), handler, logging.Discard())
	if err := srv.Start(lc); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	type result struct {
		status int
		err    error
	}
	responses := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + srv.Addr() + "/slow")
		if err != nil {
			responses <- result{err: err}
			return
		}
		resp.Body.Close()
		responses <- result{status: resp.StatusCode}
	}()

	<-started
	shutdown := make(chan error, 1)
	go func() { shutdown <- lc.Shutdown(5 * time.Second) }()

	time.Sleep(100 * time.Millisecond)
	if cleaned.Load() {
		t.Error("cleanup ran while a request was still in flight")
	}

	close(release)

	if r := <-responses; r.err != nil || r.status != http.StatusOK {
		t.Errorf("in-flight request = %d %v, want 200", r.status, r.err)
	}
	if err := <-shutdown; err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
	if !cleaned.Load() {
		t.Error("cleanup did not run after shutdown")
	}
}
