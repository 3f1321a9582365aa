package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

type HTTP struct {
	addr string
	srv  *http.Server
}

func NewHTTP(addr string, h http.Handler) *HTTP {
	return &HTTP{
		addr: addr,
		srv:  &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second},
	}
}

func (h *HTTP) Addr() string { return h.addr }

// Start blocks until the server stops. A clean Stop returns nil.
func (h *HTTP) Start() error {
	return h.serve(h.srv.ListenAndServe())
}

// Serve is Start on an existing listener.
func (h *HTTP) Serve(ln net.Listener) error {
	return h.serve(h.srv.Serve(ln))
}

func (h *HTTP) serve(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *HTTP) Stop(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
