package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockReconcileUsecase) {
	reconcileUC := mockUsecase.NewMockReconcileUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:    cfg,
		Logger:    discardLogger(),
		Processor: NewOrderEventProcessor(reconcileUC, discardLogger()),
	})

	return h, reconcileUC
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.OrderEvent{Type: constants.EventOrderPaid, OrderID: 42, UserID: 7, OccurredAt: time.Now()}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(uc *mockUsecase.MockReconcileUsecase)
		wantStatus int
	}{
		{
			name: "reconciles the referenced order",
			body: func(t *testing.T) string { return pushBody(t, event, map[string]string{"request_id": "req-9"}) },
			setup: func(uc *mockUsecase.MockReconcileUsecase) {
				uc.EXPECT().ReconcileOrder(mock.Anything, uint(42)).
					RunAndReturn(func(ctx context.Context, _ uint) (*usecase.ReconcileReport, error) {
						assert.Equal(t, "req-9", deliverycontext.GetRequestIDFromContext(ctx))

						return &usecase.ReconcileReport{OrdersChecked: 1}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "findings are acknowledged",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setup: func(uc *mockUsecase.MockReconcileUsecase) {
				uc.EXPECT().ReconcileOrder(mock.Anything, uint(42)).
					Return(&usecase.ReconcileReport{OrdersChecked: 1, RepairedLineOrders: []uint{42}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "store failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setup: func(uc *mockUsecase.MockReconcileUsecase) {
				uc.EXPECT().ReconcileOrder(mock.Anything, uint(42)).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "unknown order is dropped",
			body: func(t *testing.T) string { return pushBody(t, event, nil) },
			setup: func(uc *mockUsecase.MockReconcileUsecase) {
				uc.EXPECT().ReconcileOrder(mock.Anything, uint(42)).Return(nil, domainerrors.ErrOrderNotFound)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "event without order id is dropped",
			body:       func(t *testing.T) string { return pushBody(t, &service.OrderEvent{Type: constants.EventOrderPaid}, nil) },
			setup:      func(*mockUsecase.MockReconcileUsecase) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "data that is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			setup:      func(*mockUsecase.MockReconcileUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "data that is not an event",
			body: func(*testing.T) string {
				return `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`
			},
			setup:      func(*mockUsecase.MockReconcileUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newPushHandler(t, &config.Config{})
			tt.setup(uc)

			rec := servePush(h, tt.body(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newPushHandler(t, cfg)
	require.NotNil(t, h.verify)

	// No Authorization header: rejected before the body is read.
	rec := servePush(h, pushBody(t, &service.OrderEvent{OrderID: 1}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_SkipsVerificationLocally(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newPushHandler(t, cfg)

	assert.Nil(t, h.verify)
}

func TestExtractRequestID(t *testing.T) {
	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")

	assert.Equal(t, "attr", extractRequestID(ctx, map[string]string{"request_id": "attr"}, &service.OrderEvent{RequestID: "event"}))
	assert.Equal(t, "event", extractRequestID(ctx, nil, &service.OrderEvent{RequestID: "event"}))
	assert.Equal(t, "from-ctx", extractRequestID(ctx, nil, &service.OrderEvent{}))
	assert.NotEmpty(t, extractRequestID(context.Background(), nil, &service.OrderEvent{}))
}
