package forge

import (
	"context"
	"fmt"
	"sync"
)

// mockClient is the deterministic in-memory forge used when forge mocking is
// enabled; development environments run against it instead of a real Git host.
type mockClient struct {
	mu     sync.Mutex
	nextPR int
	pulls  map[int]*PullRequest
}

var _ Client = &mockClient{}

func NewMockClient() Client {
	return &mockClient{
		nextPR: 1,
		pulls:  map[int]*PullRequest{},
	}
}

func (m *mockClient) GetRepository(ctx context.Context, slug string) (*Repository, error) {
	return &Repository{
		Slug:          slug,
		DefaultBranch: "main",
	}, nil
}

func (m *mockClient) ListManifests(ctx context.Context, slug string, ref string) ([]Manifest, error) {
	return []Manifest{
		{Path: "go.mod", Manager: "gomod"},
		{Path: "ui/package.json", Manager: "npm"},
		{Path: "Dockerfile", Manager: "dockerfile"},
	}, nil
}

func (m *mockClient) GetFileContent(ctx context.Context, slug string, ref string, path string) ([]byte, error) {
	switch path {
	case "go.mod":
		return []byte("module example.com/app\n\ngo 1.19\n\nrequire github.com/gorilla/mux v1.7.0\n"), nil
	case "ui/package.json":
		return []byte(`{"dependencies":{"react":"17.0.0"}}`), nil
	case "Dockerfile":
		return []byte("FROM registry.access.redhat.com/ubi8/ubi:8.5\n"), nil
	}
	return nil, &APIError{StatusCode: 404, Message: fmt.Sprintf("no mock content for %s", path)}
}

func (m *mockClient) CreatePullRequest(ctx context.Context, slug string, spec *PullRequestSpec) (*PullRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr := &PullRequest{
		Number: m.nextPR,
		URL:    fmt.Sprintf("https://forge.mock/%s/pulls/%d", slug, m.nextPR),
		State:  PullRequestStateOpen,
	}
	m.pulls[pr.Number] = pr
	m.nextPR++
	return pr, nil
}

func (m *mockClient) GetPullRequest(ctx context.Context, slug string, number int) (*PullRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.pulls[number]
	if !ok {
		return nil, &APIError{StatusCode: 404, Message: fmt.Sprintf("no mock pull request %d", number)}
	}
	copied := *pr
	return &copied, nil
}

func (m *mockClient) MergePullRequest(ctx context.Context, slug string, number int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.pulls[number]
	if !ok {
		return &APIError{StatusCode: 404, Message: fmt.Sprintf("no mock pull request %d", number)}
	}
	pr.State = PullRequestStateClosed
	pr.Merged = true
	return nil
}

func (m *mockClient) ClosePullRequest(ctx context.Context, slug string, number int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pr, ok := m.pulls[number]
	if !ok {
		return &APIError{StatusCode: 404, Message: fmt.Sprintf("no mock pull request %d", number)}
	}
	pr.State = PullRequestStateClosed
	return nil
}
