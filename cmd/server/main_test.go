package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ReturnsListenError(t *testing.T) {
	// занимаем порт, чтобы ListenAndServe упал сразу
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	srv := &http.Server{Addr: ln.Addr().String(), Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(log, srv, stop) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve kept blocking after ListenAndServe failed")
	}
}

func TestServe_StopsOnSignal(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	stop := make(chan os.Signal, 1)
	stop <- syscall.SIGTERM

	done := make(chan error, 1)
	go func() { done <- serve(log, srv, stop) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after the stop signal")
	}
}
