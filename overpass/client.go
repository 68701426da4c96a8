// Package overpass requests street network data from Overpass API
package overpass

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/LdDl/osm2graph"
	"github.com/charmbracelet/log"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

const (
	defaultTimeout = 180 * time.Second
)

// Client sends queries to Overpass interpreter
type Client struct {
	httpClient *http.Client
	logger     *log.Logger
	endpoint   string
	timeout    time.Duration
}

// NewClient returns client for public Overpass instance
func NewClient(options ...func(*Client)) *Client {
	client := &Client{
		httpClient: &http.Client{},
		logger:     log.New(io.Discard),
		endpoint:   osm2graph.DefaultSource,
		timeout:    defaultTimeout,
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithEndpoint sets Overpass interpreter URL
func WithEndpoint(endpoint string) func(*Client) {
	return func(client *Client) {
		client.endpoint = endpoint
	}
}

// WithHTTPClient sets HTTP client
func WithHTTPClient(httpClient *http.Client) func(*Client) {
	return func(client *Client) {
		if httpClient != nil {
			client.httpClient = httpClient
		}
	}
}

// WithTimeout sets both Overpass server-side timeout and request timeout
func WithTimeout(timeout time.Duration) func(*Client) {
	return func(client *Client) {
		if timeout > 0 {
			client.timeout = timeout
		}
	}
}

// WithLogger sets logger
func WithLogger(logger *log.Logger) func(*Client) {
	return func(client *Client) {
		if logger != nil {
			client.logger = logger
		}
	}
}

// BuildQuery returns Overpass QL script requesting ways with given `highway` values inside bbox, and their nodes.
// Empty highways means any `highway` value.
func BuildQuery(bbox BBox, highways []string, timeout time.Duration) string {
	filter := `["highway"]`
	if len(highways) > 0 {
		filter = fmt.Sprintf(`["highway"~"^(%s)$"]`, strings.Join(highways, "|"))
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[out:json][timeout:%d];\n", int(timeout.Seconds())))
	sb.WriteString(fmt.Sprintf("(\n  way%s(%s);\n);\n", filter, bbox))
	sb.WriteString("(._;>;);\n")
	sb.WriteString("out body;\n")
	return sb.String()
}

// Fetch requests ways with given `highway` values inside bbox
func (client *Client) Fetch(ctx context.Context, bbox BBox, highways []string) (*osm.OSM, osm2graph.Metadata, error) {
	if err := bbox.Validate(); err != nil {
		return nil, osm2graph.Metadata{}, err
	}
	query := BuildQuery(bbox, highways, client.timeout)
	client.logger.Debug("Overpass query", "endpoint", client.endpoint, "query", query)

	ctx, cancel := context.WithTimeout(ctx, client.timeout)
	defer cancel()

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, osm2graph.Metadata{}, errors.Wrap(err, "Can't prepare request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	st := time.Now()
	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, osm2graph.Metadata{}, errors.Wrap(err, "Overpass request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, osm2graph.Metadata{}, errors.Errorf("Overpass responded with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, metadata, err := osm2graph.DecodeOverpassJSON(resp.Body)
	if err != nil {
		return nil, osm2graph.Metadata{}, err
	}
	metadata.Source = client.endpoint
	client.logger.Debug("Overpass answer", "nodes", len(data.Nodes), "ways", len(data.Ways), "elapsed", time.Since(st))
	return data, metadata, nil
}
