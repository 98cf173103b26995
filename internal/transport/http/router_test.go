package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nexus-dashboard/internal/api"
	"github.com/nexus-dashboard/internal/config"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/nexus-dashboard/internal/infrastructure/mockdata"
	"github.com/nexus-dashboard/internal/store"
	"github.com/nexus-dashboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ds, err := mockdata.LoadFile("../../../mock-data.json")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		AllowedOrigins: []string{"*"},
		DefaultUserID:  "1",
		OrderRateLimit: 0.01,
		OrderRateBurst: 2,
	}
	deps := &Deps{
		NotificationRepo: mockdata.NewNotificationRepo(ds.Notifications),
		OrderRepo:        mockdata.NewOrderRepo(ds.Orders),
		MarketRepo:       mockdata.NewMarketRepo(ds),
	}
	srv := httptest.NewServer(NewRouter(ctx, cfg, deps))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_PatchNotification(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/notifications/1", bytes.NewBufferString(`{"isRead":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var n domain.Notification
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&n))
	assert.True(t, n.IsRead)

	req, _ = http.NewRequest(http.MethodPatch, srv.URL+"/notifications/nope", bytes.NewBufferString(`{"isRead":true}`))
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestRouter_OrderRateLimit(t *testing.T) {
	srv := newTestServer(t)
	body := `{"symbol":"TCS","type":"buy","quantity":1,"price":3600}`

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Post(srv.URL+"/orders", "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRouter_PreflightAllowsPatch(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/notifications/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestRouter_ClientAndStoreEndToEnd(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := api.NewClient(srv.URL, api.WithLogger(logger))

	s := store.New(c, store.WithLogger(logger))
	require.NoError(t, s.Load(ctx))
	assert.False(t, s.UsingFallback())
	assert.Equal(t, 3, s.UnreadCount())

	op := s.MarkAllRead(ctx)
	assert.Equal(t, store.OpCommitted, op.State)
	assert.Equal(t, 0, s.UnreadCount())

	// the backend kept the writes
	fresh := store.New(c, store.WithLogger(logger))
	require.NoError(t, fresh.Load(ctx))
	assert.Equal(t, 0, fresh.UnreadCount())

	o, err := c.CreateOrder(ctx, domain.CreateOrderRequest{Symbol: "sbin", Type: domain.OrderSell, Quantity: 5, Price: 812.3})
	require.NoError(t, err)
	assert.Equal(t, "SBIN", o.Symbol)
	assert.True(t, view.CanCancel(*o))

	portfolio, err := c.GetPortfolio(ctx)
	require.NoError(t, err)
	market, err := c.GetMarketData(ctx)
	require.NoError(t, err)
	orders, err := c.GetOrders(ctx)
	require.NoError(t, err)

	sum := view.Dashboard(portfolio, market, orders)
	assert.Equal(t, len(orders), sum.TotalOrders)
	assert.Equal(t, 2, sum.PendingOrders)
	assert.Equal(t, "ITC", sum.TopGainers[0].Symbol)
	assert.Equal(t, "HDFCBANK", sum.TopLosers[0].Symbol)
}
