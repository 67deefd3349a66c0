// Package recordstore talks to the NocoDB table store that holds the catalog
// and orders, and maps its rows onto domain types through a SchemaProfile.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/muhammadheryan/kidswear/cmd/config"
	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/utils/errors"
)

const ServiceName = "nocodb"

// Row is one record as returned by the store.
type Row map[string]any

type ListParams struct {
	Where  string
	Sort   string
	Limit  int
	Offset int
}

type PageInfo struct {
	TotalRows  int64 `json:"totalRows"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	IsLastPage bool  `json:"isLastPage"`
}

// TableClient is the raw table API the repositories are built on.
type TableClient interface {
	List(ctx context.Context, table string, params ListParams) ([]Row, *PageInfo, error)
	Get(ctx context.Context, table, rowID string) (Row, error)
	Create(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, table, rowID string, row Row) error
}

// Tables holds the store table ids of each entity.
type Tables struct {
	Products   string
	Orders     string
	OrderItems string
}

func TablesFromConfig(cfg config.RecordStoreConfig) Tables {
	return Tables{
		Products:   cfg.ProductsTable,
		Orders:     cfg.OrdersTable,
		OrderItems: cfg.OrderItemsTable,
	}
}

type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPClient fails with ErrNotConfigured when any connection parameter or
// table id is missing.
func NewHTTPClient(cfg config.RecordStoreConfig) (*HTTPClient, error) {
	if cfg.BaseURL == "" || cfg.APIToken == "" ||
		cfg.ProductsTable == "" || cfg.OrdersTable == "" || cfg.OrderItemsTable == "" {
		return nil, errors.SetNotConfiguredError(ServiceName)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *HTTPClient) List(ctx context.Context, table string, params ListParams) ([]Row, *PageInfo, error) {
	q := url.Values{}
	if params.Where != "" {
		q.Set("where", params.Where)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	var res struct {
		List     []Row    `json:"list"`
		PageInfo PageInfo `json:"pageInfo"`
	}
	if err := c.do(ctx, http.MethodGet, c.recordsURL(table)+"?"+q.Encode(), nil, &res); err != nil {
		return nil, nil, err
	}
	if res.List == nil {
		res.List = []Row{}
	}
	return res.List, &res.PageInfo, nil
}

func (c *HTTPClient) Get(ctx context.Context, table, rowID string) (Row, error) {
	var row Row
	if err := c.do(ctx, http.MethodGet, c.recordsURL(table)+"/"+url.PathEscape(rowID), nil, &row); err != nil {
		return nil, err
	}
	return row, nil
}

func (c *HTTPClient) Create(ctx context.Context, table string, row Row) (Row, error) {
	var created Row
	if err := c.do(ctx, http.MethodPost, c.recordsURL(table), row, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPClient) Update(ctx context.Context, table, rowID string, row Row) error {
	body := make(Row, len(row)+1)
	for k, v := range row {
		body[k] = v
	}
	if n, err := strconv.ParseInt(rowID, 10, 64); err == nil {
		body[rowIDField] = n
	} else {
		body[rowIDField] = rowID
	}
	return c.do(ctx, http.MethodPatch, c.recordsURL(table), body, nil)
}

func (c *HTTPClient) recordsURL(table string) string {
	return fmt.Sprintf("%s/api/v2/tables/%s/records", c.baseURL, url.PathEscape(table))
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s body: %w", ServiceName, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", ServiceName, err)
	}
	req.Header.Set("xc-token", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.SetUpstreamError(ServiceName, 0)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return errors.SetUpstreamError(ServiceName, resp.StatusCode)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return errors.SetUpstreamError(ServiceName, resp.StatusCode)
	}
	return nil
}

// FindOne resolves a lookup to exactly one row. A lookup that matches nothing
// is ErrNotFound.
func FindOne(ctx context.Context, client TableClient, table string, lookup Lookup) (Row, error) {
	switch {
	case lookup.RowID != "":
		return client.Get(ctx, table, lookup.RowID)
	case lookup.Where != "":
		rows, _, err := client.List(ctx, table, ListParams{Where: lookup.Where, Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		return rows[0], nil
	default:
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
}
