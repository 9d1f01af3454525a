package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Record is one entity as it appears on the wire: an opaque field-name to
// value mapping plus a stable id.
type Record = map[string]any

// Client speaks to the admin resource family. Every call takes a context;
// there is no retry and no timeout beyond the transport default.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{},
	}
}

// APIError carries the status and the error body of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (c *Client) List(ctx context.Context, resource string) ([]Record, error) {
	var out []Record
	err := c.do(ctx, http.MethodGet, c.collectionURL(resource), nil, &out)
	return out, err
}

func (c *Client) Get(ctx context.Context, resource, id string) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodGet, c.itemURL(resource, id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, resource string, payload map[string]any) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodPost, c.collectionURL(resource), payload, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, resource, id string, payload map[string]any) (Record, error) {
	var out Record
	err := c.do(ctx, http.MethodPut, c.itemURL(resource, id), payload, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(resource, id), nil, nil)
}

func (c *Client) collectionURL(resource string) string {
	return c.baseURL + "/api/admin/" + resource
}

func (c *Client) itemURL(resource, id string) string {
	return c.collectionURL(resource) + "/" + id
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return readAPIError(resp)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func readAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && len(envelope.Error) > 0 {
		var msg string
		if json.Unmarshal(envelope.Error, &msg) == nil {
			apiErr.Message = msg
		} else {
			apiErr.Message = string(envelope.Error)
		}
	}
	return apiErr
}
