package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-shop-sync/internal/config"
	ierr "go-shop-sync/internal/errors"
)

// Client talks JSON over HTTP to the shopping backend.
type Client struct {
	baseUrl    *url.URL
	userId     string
	httpClient *http.Client
	timeout    time.Duration
}

var (
	_ BasketService         = (*Client)(nil)
	_ FavoritesService      = (*Client)(nil)
	_ RecommendationService = (*Client)(nil)
	_ InteractionLogger     = (*Client)(nil)
)

func New(cnf config.Api) (*Client, error) {
	base, err := url.Parse(cnf.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("api client: %w, base url: %s", err, cnf.BaseUrl)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	return &Client{
		baseUrl:    base,
		userId:     cnf.UserId,
		httpClient: &http.Client{},
		timeout:    cnf.RequestTimeout,
	}, nil
}

func (c *Client) UserId() string {
	return c.userId
}

// do sends body as JSON (when non-nil) and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ref, err := url.Parse(path)
	if err != nil {
		return err
	}
	target := c.baseUrl.ResolveReference(ref)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set(contentTypeHeader, jsonContentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP %s %s: %w", method, target.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &ierr.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func topK(k int) url.Values {
	return url.Values{topKParam: []string{fmt.Sprint(k)}}
}
