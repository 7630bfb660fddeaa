// Package vivo is an HTTP client for the VIVO SPARQL query and update
// APIs. It exposes partition fetches as parsed graphs and graph deltas
// as INSERT DATA and DELETE DATA updates against named graphs.
package vivo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/RAP-research-output-impact/rap-etl/internal/rdf"
)

const (
	// DefaultTimeout is the default HTTP request timeout. Full
	// partition fetches can run to hundreds of thousands of statements.
	DefaultTimeout = 5 * time.Minute

	// RateLimit is requests per second against the store. The update
	// endpoint is not built for sustained concurrent writes.
	RateLimit = 2.0

	// subjectChunkSize bounds the VALUES block per subject-scoped
	// query.
	subjectChunkSize = 500
)

// Client is a rate-limited client for a VIVO instance's SPARQL APIs.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	email      string
	password   string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit overrides the request rate limit.
func WithRateLimit(perSecond float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// NewClient creates a client for the VIVO instance at baseURL. The
// query and update endpoint paths are fixed by VIVO.
func NewClient(baseURL, email, password string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    strings.TrimRight(baseURL, "/"),
		email:      email,
		password:   password,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) queryEndpoint() string  { return c.baseURL + "/api/sparqlQuery" }
func (c *Client) updateEndpoint() string { return c.baseURL + "/api/sparqlUpdate" }

// post sends an authenticated form post and returns the response body.
func (c *Client) post(ctx context.Context, endpoint string, form url.Values, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	form.Set("email", c.email)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrAuthError, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		msg := strings.TrimSpace(string(body))
		if len(msg) > 200 {
			msg = msg[:200]
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: msg}
	}
	return body, nil
}

// construct runs a CONSTRUCT query and parses the N-Triples response.
func (c *Client) construct(ctx context.Context, query string) (*rdf.Graph, error) {
	body, err := c.post(ctx, c.queryEndpoint(), url.Values{"query": {query}}, "text/plain")
	if err != nil {
		return nil, err
	}
	g, err := rdf.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}
	return g, nil
}

// update runs a SPARQL update statement.
func (c *Client) update(ctx context.Context, stmt string) error {
	_, err := c.post(ctx, c.updateEndpoint(), url.Values{"update": {stmt}}, "")
	return err
}

// FetchPartition returns every statement in the named graph.
func (c *Client) FetchPartition(ctx context.Context, name string) (*rdf.Graph, error) {
	query := fmt.Sprintf("CONSTRUCT { ?s ?p ?o } WHERE { GRAPH <%s> { ?s ?p ?o } }", name)
	g, err := c.construct(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching graph %s: %w", name, err)
	}
	return g, nil
}

// FetchBySubjects returns the named graph's statements for the given
// subjects only. Subjects are queried in chunks to keep each VALUES
// block bounded.
func (c *Client) FetchBySubjects(ctx context.Context, name string, subjects []rdf.IRI) (*rdf.Graph, error) {
	out := rdf.NewGraph()
	for start := 0; start < len(subjects); start += subjectChunkSize {
		end := start + subjectChunkSize
		if end > len(subjects) {
			end = len(subjects)
		}

		var values strings.Builder
		for _, s := range subjects[start:end] {
			values.WriteString("<")
			values.WriteString(string(s))
			values.WriteString("> ")
		}
		query := fmt.Sprintf(
			"CONSTRUCT { ?s ?p ?o } WHERE { GRAPH <%s> { VALUES ?s { %s} ?s ?p ?o } }",
			name, values.String())

		g, err := c.construct(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("fetching subjects from graph %s: %w", name, err)
		}
		out.Union(g)
	}
	return out, nil
}

// BulkAdd inserts the graph's statements into the named graph.
func (c *Client) BulkAdd(ctx context.Context, name string, g *rdf.Graph) error {
	return c.update(ctx, graphData("INSERT", name, g))
}

// BulkRemove deletes the graph's statements from the named graph.
func (c *Client) BulkRemove(ctx context.Context, name string, g *rdf.Graph) error {
	return c.update(ctx, graphData("DELETE", name, g))
}

func graphData(verb, name string, g *rdf.Graph) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s DATA { GRAPH <%s> {\n", verb, name)
	for _, t := range g.Triples() {
		b.WriteString(t.NTriples())
		b.WriteString("\n")
	}
	b.WriteString("} }")
	return b.String()
}
