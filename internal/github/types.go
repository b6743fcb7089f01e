package github

import "time"

// WorkflowRun represents one GitHub Actions workflow run.
type WorkflowRun struct {
	ID        int64     `json:"id"`         // Run identifier used by the artifacts endpoint
	Name      string    `json:"name"`       // Workflow name
	CreatedAt time.Time `json:"created_at"` // When the run was created
	HTMLURL   string    `json:"html_url"`   // Link to the run page
}

// Artifact represents one stored build artifact of a workflow run.
type Artifact struct {
	Name        string `json:"name"`
	SizeInBytes int64  `json:"size_in_bytes"`
}

// Discovery pairs the most recent successful run with the artifact that
// matched the platform filter. Downloading the artifact content requires
// credentials this tool does not hold, so a Discovery is the terminal
// result: enough metadata for a human to finish the download.
type Discovery struct {
	Run      WorkflowRun
	Artifact Artifact
}

// runsResponse is the wire shape of the run-listing endpoint.
type runsResponse struct {
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}

// artifactsResponse is the wire shape of the artifact-listing endpoint.
type artifactsResponse struct {
	Artifacts []Artifact `json:"artifacts"`
}
