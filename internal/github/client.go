package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// APIBaseURL is the base URL for the GitHub API.
	APIBaseURL = "https://api.github.com"

	// DefaultOwner is the default repository owner.
	DefaultOwner = "DCX-dev"

	// DefaultRepo is the default repository name.
	DefaultRepo = "Order-of-the-stone"
)

// Client is a read-only GitHub Actions API client. All calls are
// unauthenticated and best-effort: artifact content download is out of
// scope because it requires a token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	owner      string
	repo       string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithOwnerRepo sets the repository owner and name.
func WithOwnerRepo(owner, repo string) ClientOption {
	return func(c *Client) {
		c.owner = owner
		c.repo = repo
	}
}

// WithBaseURL overrides the API base URL, primarily for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// NewClient creates a new GitHub API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    APIBaseURL,
		owner:      DefaultOwner,
		repo:       DefaultRepo,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RepoURL returns the web URL of the repository's Actions page, used in
// manual-fallback guidance.
func (c *Client) RepoURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/actions", c.owner, c.repo)
}

// LatestRun fetches the most recent successful workflow run.
func (c *Client) LatestRun(ctx context.Context) (*WorkflowRun, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runs?status=success&per_page=1", c.baseURL, c.owner, c.repo)

	var runs runsResponse
	if err := c.getJSON(ctx, url, &runs); err != nil {
		return nil, err
	}
	if len(runs.WorkflowRuns) == 0 {
		return nil, &NoRunsError{}
	}
	return &runs.WorkflowRuns[0], nil
}

// RunArtifacts fetches the artifact listing for a workflow run.
func (c *Client) RunArtifacts(ctx context.Context, runID int64) ([]Artifact, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/actions/runs/%d/artifacts", c.baseURL, c.owner, c.repo, runID)

	var artifacts artifactsResponse
	if err := c.getJSON(ctx, url, &artifacts); err != nil {
		return nil, err
	}
	return artifacts.Artifacts, nil
}

// ResolveLatest locates the newest successful run's artifact whose name
// contains the given platform filter (case-sensitive substring match).
//
// If no successful run exists, the artifact-listing endpoint is never
// called. If the run has artifacts but none matches, the returned error
// lists the available names.
func (c *Client) ResolveLatest(ctx context.Context, filter string) (*Discovery, error) {
	run, err := c.LatestRun(ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := c.RunArtifacts(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	if len(artifacts) == 0 {
		return nil, &NoArtifactsError{Run: *run}
	}

	for _, a := range artifacts {
		if strings.Contains(a.Name, filter) {
			return &Discovery{Run: *run, Artifact: a}, nil
		}
	}

	available := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		available = append(available, a.Name)
	}
	return nil, &NoMatchError{Filter: filter, Available: available}
}

// getJSON performs an unauthenticated GET and decodes the JSON response.
func (c *Client) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to query GitHub: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GitHub API error: %d - %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// NoRunsError indicates no successful workflow run exists yet.
type NoRunsError struct{}

func (e *NoRunsError) Error() string {
	return "no successful workflow runs found"
}

// NoArtifactsError indicates the run completed but stored no artifacts.
type NoArtifactsError struct {
	Run WorkflowRun
}

func (e *NoArtifactsError) Error() string {
	return "no artifacts found"
}

// NoMatchError indicates no artifact name contained the platform filter.
type NoMatchError struct {
	Filter    string
	Available []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s artifact not found (available: %s)", e.Filter, strings.Join(e.Available, ", "))
}
