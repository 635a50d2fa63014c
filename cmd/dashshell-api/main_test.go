package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/dashshell/internal/httpserver"
	"github.com/tinytelemetry/dashshell/internal/mockapi"
)

func TestServeUntilDone_StopsOnCancel(t *testing.T) {
	srv := httpserver.NewServer("127.0.0.1:0", mockapi.New(mockapi.Config{}), nil)
	require.NoError(t, srv.Start())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveUntilDone(ctx, srv) }()

	resp, err := http.Get("http://" + srv.Addr() + "/hello")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serveUntilDone did not return after cancel")
	}

	_, err = http.Get("http://" + srv.Addr() + "/hello")
	assert.Error(t, err, "server still accepting after shutdown")
}

func TestServeUntilDone_ReportsServeFailure(t *testing.T) {
	// Never started: the accept loop fails at once and the error surfaces.
	srv := httpserver.NewServer("127.0.0.1:0", mockapi.New(mockapi.Config{}), nil)

	done := make(chan error, 1)
	go func() { done <- serveUntilDone(context.Background(), srv) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve failure did not end serveUntilDone")
	}
}
