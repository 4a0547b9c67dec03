package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guitarshop/checkout/internal/config"
	"github.com/guitarshop/checkout/internal/messaging/rabbit"
	testhelpers "github.com/guitarshop/checkout/internal/test"
	"github.com/guitarshop/checkout/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestDispatcher() *worker.PublishDispatcher {
	return worker.NewPublishDispatcher(&testhelpers.PublisherRecorder{}, 1, 1, discardLogger())
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewPublishDispatcherUsesConfig(t *testing.T) {
	dispatcher := newPublishDispatcher(dispatcherParams{
		Publisher: &rabbit.Publisher{},
		Config:    &config.Config{PublishBuffer: 8, PublishWorkers: 3},
		Logger:    discardLogger(),
	})
	if dispatcher == nil {
		t.Fatal("expected dispatcher instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}

	registerLifecycle(lifecycleParams{
		Ctx:        context.Background(),
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: newTestDispatcher(),
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected a single lifecycle hook, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	// give ListenAndServe a moment to bind before shutting down
	time.Sleep(50 * time.Millisecond)
	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
}

func TestRegisterLifecycleShutdownOnServeError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	// an address that cannot be bound forces ListenAndServe to fail
	server := &http.Server{Addr: "256.256.256.256:0", Handler: http.NewServeMux()}

	registerLifecycle(lifecycleParams{
		Ctx:        context.Background(),
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Dispatcher: newTestDispatcher(),
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be requested after serve failure")
	}

	if err := hook.OnStop(context.Background()); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
}
