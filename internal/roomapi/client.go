package roomapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Defaults used to prefill the console when no saved preferences exist.
const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultRoomID  = "V7as_cLh2m8UX2EIrRCjh"
)

// RequestTimeout is the fixed budget for a single API call. Calls that take
// longer fail with a timeout error; nothing is retried.
const RequestTimeout = 5 * time.Second

// Result is the outcome of a successful API call. Body is the raw response
// bytes; callers decide how to present them.
type Result struct {
	StatusCode int
	Body       []byte
}

// Client performs room API calls. It sends Content-Type: application/json
// on every request, including GETs, and enforces the fixed request timeout.
// A Client is safe for sequential reuse across calls; the console issues one
// request at a time.
type Client struct {
	http *resty.Client
}

// NewClient creates a client with the standard timeout and headers.
func NewClient() *Client {
	rc := resty.New().
		SetTimeout(RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: rc}
}

// SetTimeout overrides the request timeout. Mainly useful in tests.
func (c *Client) SetTimeout(d time.Duration) *Client {
	c.http.SetTimeout(d)
	return c
}

// Do executes one prepared request and classifies the outcome.
//
// Methods other than GET and POST are rejected before any network activity.
// Transport failures come back as network-class errors; responses with
// status 400 or above come back as HTTP errors even though a response was
// received. Only statuses below 400 produce a Result.
func (c *Client) Do(ctx context.Context, req *Request) (*Result, error) {
	r := c.http.R().SetContext(ctx)
	if req.Payload != nil {
		r.SetBody(req.Payload)
	}

	var (
		resp *resty.Response
		err  error
	)

	switch strings.ToUpper(req.Method) {
	case "GET":
		resp, err = r.Get(req.URL)
	case "POST":
		resp, err = r.Post(req.URL)
	default:
		return nil, NewInvalidMethodError(req.Method)
	}

	if err != nil {
		apiErr := ClassifyNetworkError(err, req.URL)
		return nil, apiErr
	}

	if resp.StatusCode() >= 400 {
		return nil, NewHTTPError(resp.StatusCode(),
			fmt.Sprintf("server returned %s for %s", resp.Status(), req.URL))
	}

	return &Result{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
