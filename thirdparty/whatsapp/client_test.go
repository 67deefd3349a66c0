package whatsapp_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/thirdparty/whatsapp"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(url string) *whatsapp.Client {
	return whatsapp.NewClient(config.WhatsAppConfig{
		APIBaseURL:    url + "/",
		AccessToken:   "wa_token",
		PhoneNumberID: "1098",
		Language:      "en",
		Timeout:       2 * time.Second,
	})
}

func TestClient_SendTemplate(t *testing.T) {
	var body struct {
		MessagingProduct string `json:"messaging_product"`
		To               string `json:"to"`
		Template         struct {
			Name     string `json:"name"`
			Language struct {
				Code string `json:"code"`
			} `json:"language"`
			Components []struct {
				Type       string `json:"type"`
				Parameters []struct {
					Text string `json:"text"`
				} `json:"parameters"`
			} `json:"components"`
		} `json:"template"`
	}
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1098/messages", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	err := newClient(srv.URL).SendTemplate(context.Background(), whatsapp.TemplateMessage{
		To:       "8801711111111",
		Template: "order_created",
		Params:   []string{"Amina", "ORD-1", "৳500"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer wa_token", gotAuth)
	assert.Equal(t, "whatsapp", body.MessagingProduct)
	assert.Equal(t, "8801711111111", body.To)
	assert.Equal(t, "order_created", body.Template.Name)
	assert.Equal(t, "en", body.Template.Language.Code)
	require.Len(t, body.Template.Components, 1)
	require.Len(t, body.Template.Components[0].Parameters, 3)
	assert.Equal(t, "ORD-1", body.Template.Components[0].Parameters[1].Text)
}

func TestClient_SendTemplateErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newClient(srv.URL).SendTemplate(context.Background(), whatsapp.TemplateMessage{To: "8801711111111", Template: "x"})
	assert.True(t, cerr.Is(err, constant.ErrUpstream))

	closed := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := closed.URL
	closed.Close()

	err = newClient(url).SendTemplate(context.Background(), whatsapp.TemplateMessage{To: "8801711111111", Template: "x"})
	assert.True(t, cerr.Is(err, constant.ErrUpstreamUnreachable))
}

func TestClient_Enabled(t *testing.T) {
	assert.True(t, newClient("http://localhost").Enabled())
	assert.False(t, whatsapp.NewClient(config.WhatsAppConfig{AccessToken: "t"}).Enabled())

	var nilClient *whatsapp.Client
	assert.False(t, nilClient.Enabled())
}
