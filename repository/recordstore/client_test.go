package recordstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	cerr "github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(config.RecordStoreConfig{
		BaseURL:         srv.URL + "/",
		APIToken:        "token",
		ProductsTable:   "products",
		OrdersTable:     "orders",
		OrderItemsTable: "order_items",
		Timeout:         2 * time.Second,
	})
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_NotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.RecordStoreConfig
	}{
		{name: "empty", cfg: config.RecordStoreConfig{}},
		{name: "missing token", cfg: config.RecordStoreConfig{BaseURL: "http://x", ProductsTable: "p", OrdersTable: "o", OrderItemsTable: "i"}},
		{name: "missing table", cfg: config.RecordStoreConfig{BaseURL: "http://x", APIToken: "t", ProductsTable: "p", OrdersTable: "o"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewHTTPClient(tt.cfg)
			assert.Nil(t, c)
			assert.True(t, cerr.Is(err, constant.ErrNotConfigured))
			assert.Equal(t, http.StatusServiceUnavailable, cerr.Classify(err).ErrorHTTPCode())
		})
	}
}

func TestHTTPClient_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v2/tables/orders/records", r.URL.Path)
		assert.Equal(t, "token", r.Header.Get("xc-token"))
		assert.Equal(t, "(order_id,eq,ORD-1)", r.URL.Query().Get("where"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"list":[{"Id":7,"order_id":"ORD-1","total_amount":500}],"pageInfo":{"totalRows":1,"isLastPage":true}}`))
	})

	rows, page, err := c.List(context.Background(), "orders", ListParams{Where: "(order_id,eq,ORD-1)", Limit: 1})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "7", RowID(rows[0]))
	assert.Equal(t, json.Number("500"), rows[0]["total_amount"])
	assert.Equal(t, int64(1), page.TotalRows)
	assert.True(t, page.IsLastPage)
}

func TestHTTPClient_UpdateSendsRowID(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		b, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(b, &body))
		_, _ = w.Write([]byte(`{"Id":7}`))
	})

	err := c.Update(context.Background(), "orders", "7", Row{"order_status": "shipped"})
	require.NoError(t, err)
	assert.Equal(t, float64(7), body["Id"])
	assert.Equal(t, "shipped", body["order_status"])
}

func TestHTTPClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantType constant.ErrorType
		wantHTTP int
	}{
		{name: "not found", status: http.StatusNotFound, wantType: constant.ErrNotFound, wantHTTP: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantType: constant.ErrUpstream, wantHTTP: http.StatusBadGateway},
		{name: "unauthorized token", status: http.StatusUnauthorized, wantType: constant.ErrUpstream, wantHTTP: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			_, err := c.Get(context.Background(), "products", "1")
			ce := cerr.Classify(err)
			assert.Equal(t, tt.wantType, ce.Type())
			assert.Equal(t, tt.wantHTTP, ce.ErrorHTTPCode())
			if tt.wantType == constant.ErrUpstream {
				assert.Equal(t, ServiceName, ce.Service())
				assert.Equal(t, tt.status, ce.UpstreamStatus())
			}
		})
	}
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c, err := NewHTTPClient(config.RecordStoreConfig{
		BaseURL: srv.URL, APIToken: "t", ProductsTable: "p", OrdersTable: "o", OrderItemsTable: "i",
	})
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "p", "1")
	ce := cerr.Classify(err)
	assert.Equal(t, constant.ErrUpstreamUnreachable, ce.Type())
	assert.Equal(t, http.StatusBadGateway, ce.ErrorHTTPCode())
	assert.Equal(t, 0, ce.UpstreamStatus())
}

func TestFindOne(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/tables/products/records/4":
			_, _ = w.Write([]byte(`{"Id":4,"name":"Frock"}`))
		default:
			_, _ = w.Write([]byte(`{"list":[],"pageInfo":{"totalRows":0}}`))
		}
	})

	row, err := FindOne(context.Background(), c, "products", Lookup{RowID: "4"})
	require.NoError(t, err)
	assert.Equal(t, "Frock", row["name"])

	_, err = FindOne(context.Background(), c, "orders", Lookup{Where: "(order_id,eq,ORD-404)"})
	assert.True(t, cerr.Is(err, constant.ErrNotFound))

	_, err = FindOne(context.Background(), c, "orders", Lookup{})
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
}

func TestUnavailable(t *testing.T) {
	cfgErr := cerr.SetNotConfiguredError(ServiceName)
	c := Unavailable(cfgErr)

	_, _, err := c.List(context.Background(), "p", ListParams{})
	assert.True(t, cerr.Is(err, constant.ErrNotConfigured))
	assert.True(t, cerr.Is(c.Update(context.Background(), "p", "1", Row{}), constant.ErrNotConfigured))
}
