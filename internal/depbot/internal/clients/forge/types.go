package forge

import (
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
)

// Repository is the forge side view of a registered repository.
type Repository struct {
	// Slug is the "org/repo" path of the repository on the forge
	Slug          string
	DefaultBranch string
	Archived      bool
}

// Manifest is a dependency manifest found in a repository tree.
type Manifest struct {
	// Path of the manifest file relative to the repository root
	Path string
	// Manager owning the manifest, e.g. gomod for go.mod files
	Manager constants.DepManager
}

// PullRequestSpec describes the pull request to open for an update run.
type PullRequestSpec struct {
	Title  string
	Body   string
	Head   string
	Base   string
	Labels []string
}

const (
	PullRequestStateOpen   = "open"
	PullRequestStateClosed = "closed"
)

// PullRequest is the forge side state of an update pull request. Merged pull
// requests report state closed with Merged set.
type PullRequest struct {
	Number int
	URL    string
	State  string
	Merged bool
}

// APIError is returned when the forge answers with a non 2xx status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forge API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether the given error is a forge 404.
func IsNotFound(err error) bool {
	apiError, ok := err.(*APIError)
	return ok && apiError.StatusCode == 404
}

// IsServerError reports whether the given error is a forge 5xx. Provisioning
// keeps retrying on these for a bounded time instead of failing the repository.
func IsServerError(err error) bool {
	apiError, ok := err.(*APIError)
	return ok && apiError.StatusCode >= 500
}
