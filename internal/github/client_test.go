package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockActionsAPI serves canned run and artifact listings and counts the
// requests per endpoint.
type mockActionsAPI struct {
	server        *httptest.Server
	runs          []WorkflowRun
	artifacts     []Artifact
	runCalls      int
	artifactCalls int
}

func newMockActionsAPI(t *testing.T) *mockActionsAPI {
	t.Helper()

	mock := &mockActionsAPI{}
	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/artifacts"):
			mock.artifactCalls++
			json.NewEncoder(w).Encode(map[string]interface{}{"artifacts": mock.artifacts})
		case strings.HasSuffix(r.URL.Path, "/actions/runs"):
			mock.runCalls++
			assert.Equal(t, "success", r.URL.Query().Get("status"))
			assert.Equal(t, "1", r.URL.Query().Get("per_page"))
			json.NewEncoder(w).Encode(map[string]interface{}{"workflow_runs": mock.runs})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(mock.server.Close)

	return mock
}

func (m *mockActionsAPI) client() *Client {
	return NewClient(
		WithBaseURL(m.server.URL),
		WithOwnerRepo("DCX-dev", "Order-of-the-stone"),
	)
}

func sampleRun() WorkflowRun {
	return WorkflowRun{
		ID:      42,
		Name:    "Build Windows Executable",
		HTMLURL: "https://github.com/DCX-dev/Order-of-the-stone/actions/runs/42",
	}
}

func TestResolveLatestFindsWindowsArtifact(t *testing.T) {
	mock := newMockActionsAPI(t)
	mock.runs = []WorkflowRun{sampleRun()}
	mock.artifacts = []Artifact{
		{Name: "Mac-Executable", SizeInBytes: 10 << 20},
		{Name: "Windows-Executable", SizeInBytes: 25 << 20},
	}

	discovery, err := mock.client().ResolveLatest(context.Background(), "Windows")
	require.NoError(t, err)

	assert.Equal(t, int64(42), discovery.Run.ID)
	assert.Equal(t, "Windows-Executable", discovery.Artifact.Name)
	assert.Equal(t, int64(25<<20), discovery.Artifact.SizeInBytes)
}

func TestResolveLatestNoSuccessfulRuns(t *testing.T) {
	mock := newMockActionsAPI(t)
	mock.runs = nil

	_, err := mock.client().ResolveLatest(context.Background(), "Windows")

	var noRuns *NoRunsError
	require.ErrorAs(t, err, &noRuns)

	// The artifact listing must never be queried without a run.
	assert.Equal(t, 1, mock.runCalls)
	assert.Equal(t, 0, mock.artifactCalls)
}

func TestResolveLatestEmptyArtifactList(t *testing.T) {
	mock := newMockActionsAPI(t)
	mock.runs = []WorkflowRun{sampleRun()}
	mock.artifacts = nil

	_, err := mock.client().ResolveLatest(context.Background(), "Windows")

	var noArtifacts *NoArtifactsError
	require.ErrorAs(t, err, &noArtifacts)
	assert.Equal(t, int64(42), noArtifacts.Run.ID)
}

func TestResolveLatestNoMatchListsAvailableNames(t *testing.T) {
	mock := newMockActionsAPI(t)
	mock.runs = []WorkflowRun{sampleRun()}
	mock.artifacts = []Artifact{
		{Name: "Mac-Executable"},
		{Name: "Linux-Executable"},
	}

	_, err := mock.client().ResolveLatest(context.Background(), "Windows")

	var noMatch *NoMatchError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, "Windows", noMatch.Filter)
	assert.Equal(t, []string{"Mac-Executable", "Linux-Executable"}, noMatch.Available)
	assert.Contains(t, err.Error(), "Mac-Executable")
}

func TestResolveLatestFilterIsCaseSensitive(t *testing.T) {
	mock := newMockActionsAPI(t)
	mock.runs = []WorkflowRun{sampleRun()}
	mock.artifacts = []Artifact{{Name: "windows-executable"}}

	_, err := mock.client().ResolveLatest(context.Background(), "Windows")

	var noMatch *NoMatchError
	require.ErrorAs(t, err, &noMatch)
}

func TestResolveLatestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.ResolveLatest(context.Background(), "Windows")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GitHub API error")
}

func TestResolveLatestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.ResolveLatest(context.Background(), "Windows")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestRepoURL(t *testing.T) {
	client := NewClient(WithOwnerRepo("DCX-dev", "Order-of-the-stone"))
	assert.Equal(t, "https://github.com/DCX-dev/Order-of-the-stone/actions", client.RepoURL())
}
