package config

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/spf13/pflag"
)

// ForgeConfig carries the connection settings for the Git hosts the fleet
// manager talks to. GitHub style REST is the only wire dialect implemented,
// GitLab hosts expose a compatibility surface behind the same client.
type ForgeConfig struct {
	GithubAPIBaseURL string `json:"github_api_base_url"`
	GitlabAPIBaseURL string `json:"gitlab_api_base_url"`

	ClientID         string `json:"client_id"`
	ClientIDFile     string `json:"client_id_file"`
	ClientSecret     string `json:"client_secret"`
	ClientSecretFile string `json:"client_secret_file"`
	TokenURL         string `json:"token_url"`

	// Token is a static fallback used when no oauth client is configured,
	// for example against a local forge mock.
	Token     string `json:"token"`
	TokenFile string `json:"token_file"`

	RequestTimeout time.Duration `json:"request_timeout"`
	EnableMock     bool          `json:"enable_mock"`
}

func NewForgeConfig() *ForgeConfig {
	return &ForgeConfig{
		GithubAPIBaseURL: "https://api.github.com",
		GitlabAPIBaseURL: "https://gitlab.com/api/v4",
		ClientIDFile:     "secrets/forge.clientId",
		ClientSecretFile: "secrets/forge.clientSecret",
		TokenURL:         "https://github.com/login/oauth/access_token",
		TokenFile:        "secrets/forge.token",
		RequestTimeout:   30 * time.Second,
		EnableMock:       false,
	}
}

func (c *ForgeConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.GithubAPIBaseURL, "github-api-base-url", c.GithubAPIBaseURL, "Base URL of the GitHub REST API")
	fs.StringVar(&c.GitlabAPIBaseURL, "gitlab-api-base-url", c.GitlabAPIBaseURL, "Base URL of the GitLab REST API")
	fs.StringVar(&c.ClientIDFile, "forge-client-id-file", c.ClientIDFile, "File containing the forge oauth client id")
	fs.StringVar(&c.ClientSecretFile, "forge-client-secret-file", c.ClientSecretFile, "File containing the forge oauth client secret")
	fs.StringVar(&c.TokenURL, "forge-token-url", c.TokenURL, "URL of the forge oauth token endpoint")
	fs.StringVar(&c.TokenFile, "forge-token-file", c.TokenFile, "File containing a static forge API token")
	fs.DurationVar(&c.RequestTimeout, "forge-request-timeout", c.RequestTimeout, "Timeout applied to individual forge API requests")
	fs.BoolVar(&c.EnableMock, "enable-forge-mock", c.EnableMock, "Enable the in-memory forge client instead of a real Git host")
}

func (c *ForgeConfig) ReadFiles() error {
	err := shared.ReadFileValueString(c.ClientIDFile, &c.ClientID)
	if err != nil {
		return err
	}
	err = shared.ReadFileValueString(c.ClientSecretFile, &c.ClientSecret)
	if err != nil {
		return err
	}
	return shared.ReadFileValueString(c.TokenFile, &c.Token)
}
