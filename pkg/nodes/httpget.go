package nodes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/wavekit/wave-nodes-http/pkg/httpclient"
	"github.com/wavekit/wave-nodes-http/pkg/wave"
)

// Input and output names exposed by the HTTP GET node.
const (
	InputHost            = "Host"
	InputTimeout         = "Timeout"
	InputFollowRedirects = "Follow redirects"
	InputIgnoreSSL       = "Ignore invalid SSL certificate"

	OutputExecution = "Execution"
	OutputRunTime   = "Run time"
)

// loginPath is the fixed endpoint the node probes on the configured host.
const loginPath = "/api/v1/login"

const defaultTimeoutSeconds = 60

// ErrStatusRejected marks responses whose status falls outside the accepted range.
var ErrStatusRejected = errors.New("status code rejected")

// RequestError wraps failures of the outbound login request.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("GET %s: %v", e.URL, e.Err) }
func (e *RequestError) Unwrap() error { return e.Err }

// ClientFactory builds the HTTP client for a single execution.
type ClientFactory func(opts httpclient.Options) httpclient.Client

// HTTPGetNode performs one GET against the login endpoint of a configured
// host and reports status, headers, body, and wall time back to the workflow.
type HTTPGetNode struct {
	newClient ClientFactory
}

// NewHTTPGetNode builds the node with the default resty-backed client.
func NewHTTPGetNode() *HTTPGetNode {
	return &HTTPGetNode{}
}

// NewHTTPGetNodeWithClient builds the node with a custom client factory.
func NewHTTPGetNodeWithClient(factory ClientFactory) *HTTPGetNode {
	return &HTTPGetNode{newClient: factory}
}

// Spec declares the node's typed inputs and outputs.
func (n *HTTPGetNode) Spec() wave.Spec {
	return wave.Spec{
		SchemaVersion: wave.SchemaVersion,
		Inputs: []wave.Input{
			{
				Name:        InputHost,
				Type:        wave.TypeString,
				Description: "Base URL of the target service",
				Example:     "https://service.example.com",
				Mandatory:   true,
			},
			{
				Name:        InputTimeout,
				Type:        wave.TypeNumber,
				Description: "Request timeout in seconds",
				Example:     30,
				Default:     float64(defaultTimeoutSeconds),
			},
			{
				Name:        InputFollowRedirects,
				Type:        wave.TypeBoolean,
				Description: "Follow 3xx responses instead of reporting them as failures",
				Default:     true,
			},
			{
				Name:        InputIgnoreSSL,
				Type:        wave.TypeBoolean,
				Description: "Skip TLS certificate verification",
				Default:     false,
			},
		},
		Outputs: []wave.Output{
			{
				Name:        OutputExecution,
				Type:        wave.TypeJSON,
				Description: "Status code, headers and body of the login response",
			},
			{
				Name:        OutputRunTime,
				Type:        wave.TypeNumber,
				Description: "Execution wall time in milliseconds",
			},
		},
	}
}

// Execute issues the login request and records the outcome on the wave
// outputs. The run time output is written on every exit path. Request
// failures are wrapped in a RequestError; input failures are returned
// unchanged.
func (n *HTTPGetNode) Execute(ctx context.Context, w *wave.Wave) error {
	start := time.Now()
	defer func() {
		w.Outputs.Set(OutputRunTime, time.Since(start).Milliseconds())
	}()

	host, err := w.Inputs.String(InputHost)
	if err != nil {
		return err
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return fmt.Errorf("input %q is empty", InputHost)
	}

	timeoutSeconds, err := w.Inputs.Number(InputTimeout)
	if err != nil {
		return err
	}
	follow, err := w.Inputs.Bool(InputFollowRedirects)
	if err != nil {
		return err
	}
	skipVerify, err := w.Inputs.Bool(InputIgnoreSSL)
	if err != nil {
		return err
	}

	url := strings.TrimRight(host, "/") + loginPath

	client := n.client(httpclient.Options{
		Timeout:         time.Duration(timeoutSeconds * float64(time.Second)),
		SkipTLSVerify:   skipVerify,
		FollowRedirects: follow,
	})

	resp, err := client.Get(ctx, url, nil)
	if resp != nil {
		w.Outputs.Set(OutputExecution, executionRecord(resp))
	}
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}

	if !accepted(resp.StatusCode(), follow) {
		return &RequestError{URL: url, Err: fmt.Errorf("%w: %d", ErrStatusRejected, resp.StatusCode())}
	}
	return nil
}

// client builds the per-execution HTTP client.
func (n *HTTPGetNode) client(opts httpclient.Options) httpclient.Client {
	if n.newClient != nil {
		return n.newClient(opts)
	}
	return httpclient.NewRestyClient(opts)
}

// accepted reports whether the status settles the request successfully.
// Redirect statuses pass only while redirect following is enabled; with
// following disabled a 3xx is a failure the caller must see.
func accepted(status int, follow bool) bool {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return true
	}
	return follow && status >= http.StatusMultipleChoices && status < http.StatusBadRequest
}

// executionRecord flattens a response into the execution output shape.
func executionRecord(resp httpclient.Response) map[string]any {
	return map[string]any{
		"Status Code": resp.StatusCode(),
		"Headers":     flattenHeaders(resp.Header()),
		"Body":        decodeBody(resp.Header().Get("Content-Type"), resp.Body()),
	}
}

// flattenHeaders joins multi-valued headers into single strings.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = strings.Join(v, ", ")
	}
	return out
}

// decodeBody returns the parsed document when the content type announces JSON
// and the payload decodes cleanly, otherwise the raw body text unchanged.
func decodeBody(contentType string, body []byte) any {
	if strings.Contains(contentType, "application/json") {
		var doc any
		if err := json.Unmarshal(body, &doc); err == nil {
			return doc
		}
	}
	return string(body)
}
