package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-exam-drafts/internal/config"
	"github.com/MKhiriev/go-exam-drafts/internal/handler"
	myGRPC "github.com/MKhiriev/go-exam-drafts/internal/handler/grpc"
	"github.com/MKhiriev/go-exam-drafts/internal/logger"
)

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:bad"}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	srv := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	srv.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, readHeaderTimeout, srv.server.ReadHeaderTimeout)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}
	s, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.(*server).run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
