// Package forge provides a stateful mock of the GitHub REST dialect spoken by
// the forge client. Tests register repositories with manifest trees and the
// mock keeps track of the pull requests opened against them.
package forge

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gorilla/mux"
)

type MockForge interface {
	Start()
	Stop()
	BaseURL() string
	// RegisterRepository makes the repository visible on the forge. Files maps
	// paths relative to the repository root to their content.
	RegisterRepository(slug string, defaultBranch string, files map[string]string)
	// SeedRepository registers a petname repository carrying a go.mod, a
	// package.json and a Dockerfile and returns its slug.
	SeedRepository() string
	ArchiveRepository(slug string)
	// OpenPullRequests returns the numbers of the pull requests currently open
	// against the repository.
	OpenPullRequests(slug string) []int
}

type mockRepository struct {
	defaultBranch string
	archived      bool
	files         map[string]string
}

type mockPullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Head   string `json:"head"`
	Base   string `json:"base"`
	State  string `json:"state"`
	Merged bool   `json:"merged"`
	Labels []string
}

type mockForge struct {
	server *httptest.Server

	mu           sync.Mutex
	repositories map[string]*mockRepository
	pullRequests map[string]map[int]*mockPullRequest
	nextNumber   int
}

var _ MockForge = &mockForge{}

func NewMockForge() MockForge {
	m := &mockForge{
		repositories: map[string]*mockRepository{},
		pullRequests: map[string]map[int]*mockPullRequest{},
		nextNumber:   1,
	}
	m.init()
	return m
}

func (m *mockForge) init() {
	r := mux.NewRouter()
	r.HandleFunc("/repos/{owner}/{repo}", m.getRepositoryHandler).Methods("GET")
	r.HandleFunc("/repos/{owner}/{repo}/git/trees/{ref}", m.getTreeHandler).Methods("GET")
	r.HandleFunc("/repos/{owner}/{repo}/contents/{path:.*}", m.getContentHandler).Methods("GET")
	r.HandleFunc("/repos/{owner}/{repo}/pulls", m.createPullRequestHandler).Methods("POST")
	r.HandleFunc("/repos/{owner}/{repo}/pulls/{number}", m.getPullRequestHandler).Methods("GET")
	r.HandleFunc("/repos/{owner}/{repo}/pulls/{number}", m.updatePullRequestHandler).Methods("PATCH")
	r.HandleFunc("/repos/{owner}/{repo}/pulls/{number}/merge", m.mergePullRequestHandler).Methods("PUT")
	r.HandleFunc("/repos/{owner}/{repo}/issues/{number}/labels", m.addLabelsHandler).Methods("POST")
	m.server = httptest.NewUnstartedServer(r)
}

func (m *mockForge) Start() {
	m.server.Start()
}

func (m *mockForge) Stop() {
	m.server.Close()
}

func (m *mockForge) BaseURL() string {
	return m.server.URL
}

func (m *mockForge) RegisterRepository(slug string, defaultBranch string, files map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repositories[slug] = &mockRepository{
		defaultBranch: defaultBranch,
		files:         files,
	}
}

func (m *mockForge) SeedRepository() string {
	slug := fmt.Sprintf("%s/%s", petname.Adjective(), petname.Generate(2, "-"))
	m.RegisterRepository(slug, "main", map[string]string{
		"go.mod":              "module example.com/sample\n\ngo 1.19\n\nrequire github.com/gorilla/mux v1.7.0\n",
		"ui/package.json":     `{"dependencies":{"react":"17.0.2"}}`,
		"Dockerfile":          "FROM alpine:3.14\n",
		"docs/README.md":      "sample repository",
		"vendor/skipped/go.mod": "module vendored\n",
	})
	return slug
}

func (m *mockForge) ArchiveRepository(slug string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if repository, ok := m.repositories[slug]; ok {
		repository.archived = true
	}
}

func (m *mockForge) OpenPullRequests(slug string) []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	numbers := []int{}
	for number, pullRequest := range m.pullRequests[slug] {
		if pullRequest.State == "open" {
			numbers = append(numbers, number)
		}
	}
	return numbers
}

func repositorySlug(r *http.Request) string {
	vars := mux.Vars(r)
	return fmt.Sprintf("%s/%s", vars["owner"], vars["repo"])
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := json.Marshal(payload)
	_, _ = w.Write(data)
}

func (m *mockForge) getRepositoryHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slug := repositorySlug(r)
	repository, ok := m.repositories[slug]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"full_name":      slug,
		"default_branch": repository.defaultBranch,
		"archived":       repository.archived,
	})
}

func (m *mockForge) getTreeHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	repository, ok := m.repositories[repositorySlug(r)]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	tree := []map[string]string{}
	for path := range repository.files {
		tree = append(tree, map[string]string{"path": path, "type": "blob"})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tree":      tree,
		"truncated": false,
	})
}

func (m *mockForge) getContentHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	repository, ok := m.repositories[repositorySlug(r)]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	content, ok := repository.files[mux.Vars(r)["path"]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"content":  base64.StdEncoding.EncodeToString([]byte(content)),
		"encoding": "base64",
	})
}

func (m *mockForge) createPullRequestHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slug := repositorySlug(r)
	if _, ok := m.repositories[slug]; !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var spec struct {
		Title string `json:"title"`
		Head  string `json:"head"`
		Base  string `json:"base"`
	}
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pullRequest := &mockPullRequest{
		Number: m.nextNumber,
		Title:  spec.Title,
		Head:   spec.Head,
		Base:   spec.Base,
		State:  "open",
	}
	m.nextNumber++
	if m.pullRequests[slug] == nil {
		m.pullRequests[slug] = map[int]*mockPullRequest{}
	}
	m.pullRequests[slug][pullRequest.Number] = pullRequest

	writeJSON(w, http.StatusCreated, m.pullRequestResponse(slug, pullRequest))
}

func (m *mockForge) pullRequestResponse(slug string, pullRequest *mockPullRequest) map[string]interface{} {
	return map[string]interface{}{
		"number":   pullRequest.Number,
		"html_url": fmt.Sprintf("%s/%s/pull/%d", m.server.URL, slug, pullRequest.Number),
		"state":    pullRequest.State,
		"merged":   pullRequest.Merged,
	}
}

func (m *mockForge) lookupPullRequest(r *http.Request) (string, *mockPullRequest) {
	slug := repositorySlug(r)
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		return slug, nil
	}
	return slug, m.pullRequests[slug][number]
}

func (m *mockForge) getPullRequestHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slug, pullRequest := m.lookupPullRequest(r)
	if pullRequest == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, m.pullRequestResponse(slug, pullRequest))
}

func (m *mockForge) updatePullRequestHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slug, pullRequest := m.lookupPullRequest(r)
	if pullRequest == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var update struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if update.State != "" {
		pullRequest.State = update.State
	}
	writeJSON(w, http.StatusOK, m.pullRequestResponse(slug, pullRequest))
}

func (m *mockForge) mergePullRequestHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slug, pullRequest := m.lookupPullRequest(r)
	if pullRequest == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if pullRequest.State != "open" {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"message": "Pull Request is not mergeable"})
		return
	}
	pullRequest.State = "closed"
	pullRequest.Merged = true
	writeJSON(w, http.StatusOK, m.pullRequestResponse(slug, pullRequest))
}

func (m *mockForge) addLabelsHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, pullRequest := m.lookupPullRequest(r)
	if pullRequest == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var payload struct {
		Labels []string `json:"labels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	pullRequest.Labels = append(pullRequest.Labels, payload.Labels...)
	writeJSON(w, http.StatusOK, []map[string]string{})
}
