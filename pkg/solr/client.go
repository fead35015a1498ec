package solr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

func coreBaseURL(cfg Config) string {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Port > 0 {
		base = fmt.Sprintf("%s:%d", base, cfg.Port)
	}
	return base + "/solr"
}

func (c *implClient) Cores() []string {
	out := make([]string, 0, len(c.cores))
	for core := range c.cores {
		out = append(out, core)
	}
	return out
}

func (c *implClient) HasCore(core string) bool {
	_, ok := c.cores[core]
	return ok
}

func (c *implClient) selectURL(core string, params SelectParams) (string, error) {
	if !c.HasCore(core) {
		return "", fmt.Errorf("%w: %s", ErrCoreNotRegistered, core)
	}

	values := url.Values{}
	values.Set("wt", "json")
	if params.Query != "" {
		values.Set("q", DecodeQuery(params.Query))
	}
	if params.QueryOp != "" {
		values.Set("q.op", params.QueryOp)
	}
	if len(params.Fields) > 0 {
		values.Set("fl", strings.Join(params.Fields, ","))
	}
	if params.Sort != "" {
		values.Set("sort", params.Sort)
	}
	values.Set("rows", strconv.Itoa(params.Rows))
	if params.Start > 0 {
		values.Set("start", strconv.Itoa(params.Start))
	}
	if params.Group {
		values.Set("group", "true")
		values.Set("group.field", params.GroupField)
		values.Set("group.limit", strconv.Itoa(params.GroupLimit))
		if params.GroupSort != "" {
			values.Set("group.sort", params.GroupSort)
		}
	}
	return fmt.Sprintf("%s/%s/select?%s", c.baseURL, core, values.Encode()), nil
}

func (c *implClient) Select(ctx context.Context, core string, params SelectParams) (*SelectResult, error) {
	reqURL, err := c.selectURL(core, params)
	if err != nil {
		return nil, err
	}

	body, status, err := c.httpClient.Get(ctx, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	var envelope selectEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return &envelope.Response, nil
}

func (c *implClient) FacetSelect(ctx context.Context, core string, req FacetRequest, params SelectParams) (*FacetResponse, error) {
	reqURL, err := c.selectURL(core, params)
	if err != nil {
		return nil, err
	}
	req.Query = DecodeQuery(req.Query)

	body, status, err := c.httpClient.Post(ctx, reqURL, req, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err := checkStatus(status, body); err != nil {
		return nil, err
	}

	var resp FacetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return &resp, nil
}

func checkStatus(status int, body []byte) error {
	switch {
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= http.StatusBadRequest:
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, status, truncate(string(body), 200))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
