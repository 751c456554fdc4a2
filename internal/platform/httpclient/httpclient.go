package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBody = 1 << 20 // 1MB
)

// Client envuelve *http.Client con helpers JSON para hablar con la API.
type Client struct {
	HTTP    *http.Client
	BaseURL string // si se define, DoJSON acepta paths relativos
}

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url: unsupported scheme %q", u.Scheme)
	}
	c.BaseURL = strings.TrimRight(u.String(), "/")
	return c, nil
}

// APIError es una respuesta no-2xx. Detail es el campo "detail" del body si
// la API lo mandó (string o lista de errores de validación).
type APIError struct {
	StatusCode int
	Detail     any
	Body       string
}

func (e *APIError) Error() string {
	switch d := e.Detail.(type) {
	case nil:
	case string:
		return fmt.Sprintf("api error: status=%d detail=%s", e.StatusCode, d)
	default:
		b, _ := json.Marshal(d)
		return fmt.Sprintf("api error: status=%d detail=%s", e.StatusCode, string(b))
	}
	if e.Body == "" {
		return fmt.Sprintf("api error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status=%d body=%s", e.StatusCode, e.Body)
}

// IsNotFound indica si err es un 404 de la API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo a BaseURL
// - query: parámetros de query (opcional)
// - in: body a enviar (nil = sin body)
// - out: destino del JSON de respuesta (nil = se ignora)
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	query url.Values,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(fullURL, "?") {
			sep = "&"
		}
		fullURL += sep + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
		var env struct {
			Detail any `json:"detail"`
		}
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Detail = env.Detail
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
