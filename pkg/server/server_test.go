package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/philipparndt/polychain/pkg/chain"
	"github.com/philipparndt/polychain/pkg/config"
	"github.com/philipparndt/polychain/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(length int) http.Handler {
	cfg := config.Default().Server
	cfg.ChainLength = length
	svc := NewService(cfg, nil)
	svc.Seed = func() uint64 { return 42 }
	return NewRouter(svc, false)
}

func TestGetChainIsDoubleEncoded(t *testing.T) {
	r := newTestRouter(8)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data_helper", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), `"`), "body must be a JSON string")

	_, err := uuid.Parse(w.Header().Get(ChainIDHeader))
	assert.NoError(t, err)

	c, err := chain.DecodePayload(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, c, 9)
	assert.Equal(t, geometry.Origin, c[0])
	assert.Equal(t, geometry.Origin, c[len(c)-1])
	assert.True(t, c.IsLoop())

	// every link is one lattice step
	for _, l := range c.Links() {
		assert.InDelta(t, chain.LinkLength, l.Start.Distance(l.End), 1e-9)
	}
	// interior is self-avoiding
	assert.False(t, chain.IsSelfIntersecting(c[:len(c)-1]))
}

func TestGetChainFeedsRemoteSource(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(10))
	defer srv.Close()

	c, err := chain.NewRemoteSource(srv.URL + "/data_helper").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, c, 11)
}

func TestGetChainGenerationFailure(t *testing.T) {
	cfg := config.Default().Server
	cfg.ChainLength = 3
	r := NewRouter(NewService(cfg, nil), false)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data_helper", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestPostChainAcknowledges(t *testing.T) {
	r := newTestRouter(4)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/data_helper", strings.NewReader(`{"vertices": [[1,1,1]]}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(4).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := config.Default().Server
	cfg.Addr = addr
	s := New(cfg, nil, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
