package rpc

import (
	"encoding/json"
	"fmt"
	"time"

	"aleo-broadcaster/models"
	"aleo-broadcaster/util/log"

	"github.com/valyala/fasthttp"
)

const contentTypeJSON = "application/json"

// TransportError is a network or HTTP level failure.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to the JSON-RPC endpoint and the program explorer.
type Client struct {
	rpcURL      string
	explorerURL string
	network     string
	timeout     time.Duration

	http *fasthttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithDial replaces the dialer, e.g., with an in-memory listener in tests.
func WithDial(dial fasthttp.DialFunc) Option {
	return func(c *Client) {
		c.http.Dial = dial
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a client for the given rpc endpoint, explorer base url and network.
func NewClient(rpcURL, explorerURL, network string, opts ...Option) *Client {
	c := &Client{
		rpcURL:      rpcURL,
		explorerURL: explorerURL,
		network:     network,
		timeout:     30 * time.Second,
		http: &fasthttp.Client{
			MaxConnWaitTimeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func generateRequestBody(method string, params interface{}) ([]byte, error) {
	return json.Marshal(models.NewRequest(method, params))
}

// call posts a JSON-RPC request and returns the raw response body.
func (c *Client) call(method string, params interface{}) (string, error) {
	body, err := generateRequestBody(method, params)
	if err != nil {
		return "", err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.rpcURL)
	req.Header.SetMethod("POST")
	req.Header.SetContentType(contentTypeJSON)
	req.SetBody(body)
	// One connection per call, nothing is kept for the next one.
	req.SetConnectionClose()

	log.Debugf("rpc request: method=%s, url=%s, size=%d", method, c.rpcURL, len(body))

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return "", &TransportError{Op: method, URL: c.rpcURL, Err: err}
	}

	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		log.Warnf("rpc %s returned http status %d", method, code)
	}

	return string(resp.Body()), nil
}

// get issues a GET request and returns the response body.
func (c *Client) get(url string) ([]byte, int, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod("GET")
	req.SetConnectionClose()

	if err := c.http.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, 0, &TransportError{Op: "GET", URL: url, Err: err}
	}

	// Body is owned by resp, which goes back to the pool.
	body := append([]byte(nil), resp.Body()...)
	return body, resp.StatusCode(), nil
}
