package forge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/vault"
	"github.com/onsi/gomega"
)

func newGitlabTestClient(t *testing.T, handler http.Handler) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	forgeConfig := config.NewForgeConfig()
	forgeConfig.GitlabAPIBaseURL = server.URL
	forgeConfig.Token = "test-token"

	factory := NewClientFactory(forgeConfig, nil)
	client, err := factory.GetClient(constants.ForgeTypeGitlab.String(), "")
	if err != nil {
		t.Fatal(err)
	}
	return client
}

func Test_GitlabClient_GetRepository(t *testing.T) {
	g := gomega.NewWithT(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the project path arrives URL encoded
		g.Expect(r.URL.EscapedPath()).To(gomega.Equal("/projects/acme%2Fbilling"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"path_with_namespace": "acme/billing",
			"default_branch":      "main",
			"archived":            true,
		})
	})
	client := newGitlabTestClient(t, handler)

	repository, err := client.GetRepository(context.Background(), "acme/billing")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(repository.Slug).To(gomega.Equal("acme/billing"))
	g.Expect(repository.DefaultBranch).To(gomega.Equal("main"))
	g.Expect(repository.Archived).To(gomega.BeTrue())
}

func Test_GitlabClient_ListManifests_Paginates(t *testing.T) {
	g := gomega.NewWithT(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.Expect(r.URL.Query().Get("recursive")).To(gomega.Equal("true"))
		switch r.URL.Query().Get("page") {
		case "1":
			w.Header().Set("X-Next-Page", "2")
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"path": "go.mod", "type": "blob"},
				{"path": "README.md", "type": "blob"},
			})
		default:
			_ = json.NewEncoder(w).Encode([]map[string]interface{}{
				{"path": "Dockerfile", "type": "blob"},
			})
		}
	})
	client := newGitlabTestClient(t, handler)

	manifests, err := client.ListManifests(context.Background(), "acme/billing", "main")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(manifests).To(gomega.Equal([]Manifest{
		{Path: "go.mod", Manager: constants.ManagerGoMod},
		{Path: "Dockerfile", Manager: constants.ManagerDockerfile},
	}))
}

func Test_GitlabClient_GetFileContent(t *testing.T) {
	g := gomega.NewWithT(t)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.Expect(r.URL.EscapedPath()).To(gomega.Equal("/projects/acme%2Fbilling/repository/files/ui%2Fpackage.json/raw"))
		g.Expect(r.URL.Query().Get("ref")).To(gomega.Equal("main"))
		_, _ = w.Write([]byte(`{"dependencies":{}}`))
	})
	client := newGitlabTestClient(t, handler)

	content, err := client.GetFileContent(context.Background(), "acme/billing", "main", "ui/package.json")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(string(content)).To(gomega.Equal(`{"dependencies":{}}`))
}

func Test_GitlabClient_MergeRequestLifecycle(t *testing.T) {
	g := gomega.NewWithT(t)

	state := "opened"
	mergedAt := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			body := map[string]interface{}{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			g.Expect(body["source_branch"]).To(gomega.Equal("dub/npm/react-18.2.0"))
			g.Expect(body["labels"]).To(gomega.Equal("dependencies,dub"))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"iid":     3,
				"web_url": "https://gitlab.example.com/acme/billing/-/merge_requests/3",
				"state":   "opened",
			})
		case r.URL.EscapedPath() == "/projects/acme%2Fbilling/merge_requests/3/merge":
			state = "merged"
			mergedAt = "2025-01-01T00:00:00Z"
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"iid": 3, "state": state, "merged_at": mergedAt})
		default:
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"iid":       3,
				"web_url":   "https://gitlab.example.com/acme/billing/-/merge_requests/3",
				"state":     state,
				"merged_at": mergedAt,
			})
		}
	})
	client := newGitlabTestClient(t, handler)

	pr, err := client.CreatePullRequest(context.Background(), "acme/billing", &PullRequestSpec{
		Title:  "Update react to 18.2.0",
		Head:   "dub/npm/react-18.2.0",
		Base:   "main",
		Labels: []string{"dependencies", "dub"},
	})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(pr.Number).To(gomega.Equal(3))
	g.Expect(pr.State).To(gomega.Equal(PullRequestStateOpen))

	g.Expect(client.MergePullRequest(context.Background(), "acme/billing", 3)).To(gomega.Succeed())

	merged, err := client.GetPullRequest(context.Background(), "acme/billing", 3)
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(merged.State).To(gomega.Equal(PullRequestStateClosed))
	g.Expect(merged.Merged).To(gomega.BeTrue())
}

func Test_ClientFactory_OrgTokenFromVault(t *testing.T) {
	g := gomega.NewWithT(t)

	seen := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"path_with_namespace": "acme/billing"})
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	vaultService, err := vault.NewVaultService(vault.NewConfig())
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(vaultService.SetSecretString(OrgTokenSecretName(constants.ForgeTypeGitlab.String(), "org-7"), "org-token", "")).To(gomega.Succeed())

	forgeConfig := config.NewForgeConfig()
	forgeConfig.GitlabAPIBaseURL = server.URL
	forgeConfig.Token = "fallback-token"

	factory := NewClientFactory(forgeConfig, vaultService)

	client, err := factory.GetClient(constants.ForgeTypeGitlab.String(), "org-7")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	_, err = client.GetRepository(context.Background(), "acme/billing")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(seen).To(gomega.Equal("Bearer org-token"))

	client, err = factory.GetClient(constants.ForgeTypeGitlab.String(), "org-without-token")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	_, err = client.GetRepository(context.Background(), "acme/billing")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(seen).To(gomega.Equal("Bearer fallback-token"))
}
