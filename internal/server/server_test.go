package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	handlerhttp "github.com/MKhiriev/go-note-keeper/internal/handler/http"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{
		HTTP: handlerhttp.NewHandler(nil, config.ServerApp{}, logger.Nop()),
	}
}

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(nil, config.ServerHTTP{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNothingToServe)

	_, err = NewServer(testHandlers(), config.ServerHTTP{}, logger.Nop())
	assert.ErrorIs(t, err, errNothingToServe)
}

func TestServer_RunUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(testHandlers(), config.ServerHTTP{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr))
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv, err := NewServer(testHandlers(), config.ServerHTTP{HTTPAddress: l.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.Error(t, err)
}
