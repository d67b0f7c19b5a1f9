package stripe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return newClient(server.URL, "sk_test", time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Charge_Token(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/charges", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "idem-1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "2600", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "tok_visa", r.PostForm.Get("source"))
		assert.Empty(t, r.PostForm.Get("customer"))

		_, _ = io.WriteString(w, `{"id":"ch_1","amount":2600,"status":"succeeded"}`)
	})

	charge, err := client.Charge(context.Background(), service.ChargeRequest{
		AmountCents:    2600,
		Currency:       "usd",
		Token:          "tok_visa",
		IdempotencyKey: "idem-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_1", charge.ID)
	assert.Equal(t, int64(2600), charge.AmountCents)
}

func TestClient_Charge_CustomerWinsOverToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cus_1", r.PostForm.Get("customer"))
		assert.Empty(t, r.PostForm.Get("source"))

		_, _ = io.WriteString(w, `{"id":"ch_2","amount":100}`)
	})

	_, err := client.Charge(context.Background(), service.ChargeRequest{
		AmountCents: 100,
		Currency:    "usd",
		CustomerRef: "cus_1",
		Token:       "tok_visa",
	})
	require.NoError(t, err)
}

func TestClient_CreateCustomerAndAttach(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.URL.Path {
		case "/v1/customers":
			assert.Equal(t, "a@example.com", r.PostForm.Get("email"))
			assert.Equal(t, "tok_visa", r.PostForm.Get("source"))
			_, _ = io.WriteString(w, `{"id":"cus_9"}`)
		case "/v1/customers/cus_9/sources":
			assert.Equal(t, "tok_mc", r.PostForm.Get("source"))
			_, _ = io.WriteString(w, `{"id":"card_1"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	ctx := context.Background()

	ref, err := client.CreateCustomer(ctx, "a@example.com", "tok_visa")
	require.NoError(t, err)
	assert.Equal(t, "cus_9", ref)

	require.NoError(t, client.AttachSource(ctx, ref, "tok_mc"))
}

func TestClient_RefundCharge(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/refunds", r.URL.Path)
		assert.Equal(t, "refund-ch_1", r.Header.Get("Idempotency-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ch_1", r.PostForm.Get("charge"))
		_, _ = io.WriteString(w, `{"id":"re_1"}`)
	})

	require.NoError(t, client.RefundCharge(context.Background(), "ch_1"))
}
