// Package registry provides a mock serving the goproxy, npm and docker
// registry protocols from canned version data. A single server backs all
// three protocols, each behind its own base URL.
package registry

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

type MockRegistry interface {
	Start()
	Stop()
	// GoProxyURL, NpmURL and DockerURL return the base URLs to point the
	// registry provider at.
	GoProxyURL() string
	NpmURL() string
	DockerURL() string
	// RegisterGoModule registers the released versions of a Go module. Versions
	// carry the v prefix, latest last.
	RegisterGoModule(path string, versions ...string)
	RegisterNpmPackage(name string, versions ...string)
	RegisterDockerImage(name string, tags ...string)
}

type mockRegistry struct {
	server *httptest.Server

	mu           sync.Mutex
	goModules    map[string][]string
	npmPackages  map[string][]string
	dockerImages map[string][]string
}

var _ MockRegistry = &mockRegistry{}

func NewMockRegistry() MockRegistry {
	m := &mockRegistry{
		goModules:    map[string][]string{},
		npmPackages:  map[string][]string{},
		dockerImages: map[string][]string{},
	}
	m.init()
	return m
}

func (m *mockRegistry) init() {
	r := mux.NewRouter()
	r.HandleFunc("/goproxy/{module:.*}/@v/list", m.goListHandler).Methods("GET")
	r.HandleFunc("/goproxy/{module:.*}/@latest", m.goLatestHandler).Methods("GET")
	r.HandleFunc("/docker/v2/{image:.*}/tags/list", m.dockerTagsHandler).Methods("GET")
	r.HandleFunc("/npm/{package:.*}", m.npmPackageHandler).Methods("GET")
	m.server = httptest.NewUnstartedServer(r)
}

func (m *mockRegistry) Start() {
	m.server.Start()
}

func (m *mockRegistry) Stop() {
	m.server.Close()
}

func (m *mockRegistry) GoProxyURL() string {
	return m.server.URL + "/goproxy"
}

func (m *mockRegistry) NpmURL() string {
	return m.server.URL + "/npm"
}

func (m *mockRegistry) DockerURL() string {
	return m.server.URL + "/docker"
}

func (m *mockRegistry) RegisterGoModule(path string, versions ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goModules[path] = versions
}

func (m *mockRegistry) RegisterNpmPackage(name string, versions ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.npmPackages[name] = versions
}

func (m *mockRegistry) RegisterDockerImage(name string, tags ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dockerImages[name] = tags
}

func (m *mockRegistry) goListHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	versions, ok := m.goModules[mux.Vars(r)["module"]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	_, _ = fmt.Fprint(w, strings.Join(versions, "\n")+"\n")
}

func (m *mockRegistry) goLatestHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	versions, ok := m.goModules[mux.Vars(r)["module"]]
	if !ok || len(versions) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	data, _ := json.Marshal(map[string]string{"Version": versions[len(versions)-1]})
	_, _ = w.Write(data)
}

func (m *mockRegistry) npmPackageHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	versions, ok := m.npmPackages[mux.Vars(r)["package"]]
	if !ok || len(versions) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	versionEntries := map[string]interface{}{}
	for _, version := range versions {
		versionEntries[version] = map[string]string{"version": version}
	}
	w.Header().Set("Content-Type", "application/json")
	data, _ := json.Marshal(map[string]interface{}{
		"versions":  versionEntries,
		"dist-tags": map[string]string{"latest": versions[len(versions)-1]},
	})
	_, _ = w.Write(data)
}

func (m *mockRegistry) dockerTagsHandler(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	image := mux.Vars(r)["image"]
	tags, ok := m.dockerImages[image]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	data, _ := json.Marshal(map[string]interface{}{
		"name": image,
		"tags": tags,
	})
	_, _ = w.Write(data)
}
