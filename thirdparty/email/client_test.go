package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/thirdparty/email"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *email.Client {
	return email.NewClient(config.EmailConfig{
		APIBaseURL: url,
		APIKey:     "re_test",
		From:       "shop@example.com",
		Timeout:    2 * time.Second,
	})
}

func TestClient_Send(t *testing.T) {
	var gotKey, gotAuth string
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"id":"em_1"}`))
	}))
	defer srv.Close()

	err := newClient(srv.URL).Send(context.Background(), email.Message{
		To:             "amina@example.com",
		Subject:        "Order received",
		HTML:           "<p>hi</p>",
		IdempotencyKey: "order-created:ORD-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "order-created:ORD-1", gotKey)
	assert.Equal(t, "Bearer re_test", gotAuth)
	assert.Equal(t, "shop@example.com", body["from"])
	assert.Equal(t, []any{"amina@example.com"}, body["to"])
}

func TestClient_SendConflictIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	assert.NoError(t, newClient(srv.URL).Send(context.Background(), email.Message{To: "a@b.c"}))
}

func TestClient_SendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := newClient(srv.URL).Send(context.Background(), email.Message{To: "a@b.c"})
	assert.True(t, cerr.Is(err, constant.ErrUpstream))
	assert.Equal(t, email.ServiceName, cerr.Classify(err).Service())
}

func TestClient_Enabled(t *testing.T) {
	assert.True(t, newClient("http://x").Enabled())
	assert.False(t, email.NewClient(config.EmailConfig{APIKey: "k"}).Enabled())

	var nilClient *email.Client
	assert.False(t, nilClient.Enabled())
}
