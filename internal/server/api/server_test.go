package api

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServeStopsOnCancel(t *testing.T) {
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	s := NewServer(listen.Addr().String(), mux, logging.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, listen) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listen.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	s := NewServer("bad-address", http.NewServeMux(), logging.Discard())
	require.Error(t, s.Run(context.Background()))
}

func TestServer_ServeFailureReleasesShutdown(t *testing.T) {
	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, listen.Close())

	var buf bytes.Buffer
	s := NewServer(listen.Addr().String(), http.NewServeMux(), logging.NewText(&buf, "info"))

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(context.Background(), listen) }()

	select {
	case err := <-errCh:
		require.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return")
	}
	assert.Contains(t, buf.String(), "Stopping HTTP server")
}
