package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nexus-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockNotificationSvc struct{ mock.Mock }

func (m *mockNotificationSvc) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	ns, _ := args.Get(0).([]domain.Notification)
	return ns, args.Error(1)
}

func (m *mockNotificationSvc) SetRead(ctx context.Context, notificationID, userID string, isRead bool) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, userID, isRead)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderSvc struct{ mock.Mock }

func (m *mockOrderSvc) List(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	os, _ := args.Get(0).([]domain.Order)
	return os, args.Error(1)
}

func (m *mockOrderSvc) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, req)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMarketSvc struct{ mock.Mock }

func (m *mockMarketSvc) Portfolio(ctx context.Context, userID string) ([]domain.PortfolioItem, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]domain.PortfolioItem)
	return p, args.Error(1)
}

func (m *mockMarketSvc) MarketData(ctx context.Context) ([]domain.MarketData, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]domain.MarketData)
	return d, args.Error(1)
}

func (m *mockMarketSvc) Executions(ctx context.Context) ([]domain.Execution, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]domain.Execution)
	return e, args.Error(1)
}

// --- helpers ---

// withChiID injects a chi URL param "id" into the request context.
func withChiID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env.Error
}

// --- error mapping ---

func TestHTTPError(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("notification 9: %w", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("bad: %w", domain.ErrValidation), http.StatusUnprocessableEntity},
		{domain.ErrBadRequest, http.StatusBadRequest},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		httpError(rr, tt.err)
		assert.Equal(t, tt.code, rr.Code, tt.err.Error())
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	}

	rr := httptest.NewRecorder()
	httpError(rr, errors.New("secret detail"))
	assert.Equal(t, "internal server error", decodeError(t, rr))
}

// --- notifications ---

func TestNotificationList(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("List", mock.Anything, "1").Return([]domain.Notification{{ID: "1", Type: domain.NotificationSystem}}, nil)
	h := NewNotificationHandler(svc, "1")

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	var got []domain.Notification
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "1", got[0].ID)
	svc.AssertExpectations(t)
}

func TestNotificationUpdate_InvalidBody(t *testing.T) {
	h := NewNotificationHandler(&mockNotificationSvc{}, "1")
	r := withChiID(httptest.NewRequest(http.MethodPatch, "/notifications/1", bytes.NewBufferString("nope")), "1")
	rr := httptest.NewRecorder()
	h.Update(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestNotificationUpdate_MissingIsRead(t *testing.T) {
	h := NewNotificationHandler(&mockNotificationSvc{}, "1")
	r := withChiID(httptest.NewRequest(http.MethodPatch, "/notifications/1", bytes.NewBufferString(`{"read":true}`)), "1")
	rr := httptest.NewRecorder()
	h.Update(rr, r)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, decodeError(t, rr), "isRead")
}

func TestNotificationUpdate_FalseIsAccepted(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("SetRead", mock.Anything, "2", "1", false).Return(&domain.Notification{ID: "2", UserID: "1"}, nil)
	h := NewNotificationHandler(svc, "1")

	r := withChiID(httptest.NewRequest(http.MethodPatch, "/notifications/2", bytes.NewBufferString(`{"isRead":false}`)), "2")
	rr := httptest.NewRecorder()
	h.Update(rr, r)
	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestNotificationUpdate_NotFound(t *testing.T) {
	svc := &mockNotificationSvc{}
	svc.On("SetRead", mock.Anything, "99", "1", true).Return(nil, fmt.Errorf("notification not found: %w", domain.ErrNotFound))
	h := NewNotificationHandler(svc, "1")

	r := withChiID(httptest.NewRequest(http.MethodPatch, "/notifications/99", bytes.NewBufferString(`{"isRead":true}`)), "99")
	rr := httptest.NewRecorder()
	h.Update(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// --- orders ---

func TestOrderCreate_HappyPath(t *testing.T) {
	svc := &mockOrderSvc{}
	req := domain.CreateOrderRequest{Symbol: "TCS", Type: domain.OrderBuy, Quantity: 2, Price: 3550}
	svc.On("Create", mock.Anything, "1", req).Return(&domain.Order{ID: "01J", UserID: "1", Symbol: "TCS", Status: domain.OrderPending}, nil)
	h := NewOrderHandler(svc, "1")

	body, _ := json.Marshal(req)
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rr.Code)

	var got domain.Order
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "01J", got.ID)
	svc.AssertExpectations(t)
}

func TestOrderCreate_InvalidBody(t *testing.T) {
	h := NewOrderHandler(&mockOrderSvc{}, "1")
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"quantity":"two"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderCreate_ValidationFailure(t *testing.T) {
	svc := &mockOrderSvc{}
	svc.On("Create", mock.Anything, "1", mock.Anything).Return(nil, fmt.Errorf("field 'quantity' failed 'required': %w", domain.ErrValidation))
	h := NewOrderHandler(svc, "1")

	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{"symbol":"TCS"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, decodeError(t, rr), "quantity")
}

func TestOrderList_ServiceError(t *testing.T) {
	svc := &mockOrderSvc{}
	svc.On("List", mock.Anything, "1").Return(nil, domain.ErrUnavailable)
	h := NewOrderHandler(svc, "1")

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

// --- market ---

func TestMarketEndpoints(t *testing.T) {
	svc := &mockMarketSvc{}
	svc.On("Portfolio", mock.Anything, "1").Return([]domain.PortfolioItem{{Symbol: "TCS"}}, nil)
	svc.On("MarketData", mock.Anything).Return([]domain.MarketData{{Symbol: "INFY"}}, nil)
	svc.On("Executions", mock.Anything).Return([]domain.Execution{}, nil)
	h := NewMarketHandler(svc, "1")

	for path, fn := range map[string]http.HandlerFunc{
		"/portfolio":  h.Portfolio,
		"/marketdata": h.MarketData,
		"/executions": h.Executions,
	} {
		rr := httptest.NewRecorder()
		fn(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
	svc.AssertExpectations(t)
}

// --- health ---

func TestPing(t *testing.T) {
	h := NewHealthHandler()

	rr := httptest.NewRecorder()
	h.Ping(rr, withActionParam(httptest.NewRequest(http.MethodGet, "/health-check/ping", nil), "ping"))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.Ping(rr, withActionParam(httptest.NewRequest(http.MethodGet, "/health-check/other", nil), "other"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func withActionParam(r *http.Request, action string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("action", action)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
