package forge

import (
	"context"
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/vault"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Client talks to a Git forge on behalf of the fleet manager. Implementations
// exist for the GitHub and GitLab REST dialects.
//
//go:generate moq -out client_moq.go . Client
type Client interface {
	// GetRepository fetches repository metadata for the given forge slug
	GetRepository(ctx context.Context, slug string) (*Repository, error)
	// ListManifests walks the repository tree at the given ref and returns every
	// dependency manifest owned by a supported package manager
	ListManifests(ctx context.Context, slug string, ref string) ([]Manifest, error)
	// GetFileContent returns the raw content of the file at the given ref
	GetFileContent(ctx context.Context, slug string, ref string, path string) ([]byte, error)
	// CreatePullRequest opens a pull request for an update branch the agent pushed
	CreatePullRequest(ctx context.Context, slug string, spec *PullRequestSpec) (*PullRequest, error)
	GetPullRequest(ctx context.Context, slug string, number int) (*PullRequest, error)
	MergePullRequest(ctx context.Context, slug string, number int) error
	ClosePullRequest(ctx context.Context, slug string, number int) error
}

// ClientFactory resolves the forge client to use for a given forge type and
// organisation, organisations may bring their own token via the vault.
//
//go:generate moq -out clientfactory_moq.go . ClientFactory
type ClientFactory interface {
	GetClient(forgeType string, orgID string) (Client, error)
}

// OrgTokenSecretName is the vault secret holding an organisation scoped forge
// token. The agent bundle renders the same secret into the data plane.
func OrgTokenSecretName(forgeType string, orgID string) string {
	return fmt.Sprintf("forge-token-%s-%s", forgeType, orgID)
}

type defaultClientFactory struct {
	forgeConfig  *config.ForgeConfig
	vaultService vault.VaultService
	tokenSource  oauth2.TokenSource
}

var _ ClientFactory = &defaultClientFactory{}

func NewClientFactory(forgeConfig *config.ForgeConfig, vaultService vault.VaultService) ClientFactory {
	factory := &defaultClientFactory{
		forgeConfig:  forgeConfig,
		vaultService: vaultService,
	}
	if forgeConfig.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     forgeConfig.ClientID,
			ClientSecret: forgeConfig.ClientSecret,
			TokenURL:     forgeConfig.TokenURL,
		}
		factory.tokenSource = cc.TokenSource(context.Background())
	}
	return factory
}

func (f *defaultClientFactory) GetClient(forgeType string, orgID string) (Client, error) {
	if f.forgeConfig.EnableMock {
		return NewMockClient(), nil
	}

	restyClient := f.newRestyClient(forgeType, orgID)

	switch constants.ForgeType(forgeType) {
	case constants.ForgeTypeGithub:
		return &githubClient{client: restyClient.SetBaseURL(f.forgeConfig.GithubAPIBaseURL)}, nil
	case constants.ForgeTypeGitlab:
		return &gitlabClient{client: restyClient.SetBaseURL(f.forgeConfig.GitlabAPIBaseURL)}, nil
	default:
		return nil, fmt.Errorf("unsupported forge type: %s", forgeType)
	}
}

// newRestyClient builds a resty client authenticated for the organisation: an
// organisation token from the vault wins, then the oauth client credentials
// grant, then the static token from configuration.
func (f *defaultClientFactory) newRestyClient(forgeType string, orgID string) *resty.Client {
	restyClient := resty.New().
		SetTimeout(f.forgeConfig.RequestTimeout).
		SetHeader("Accept", "application/json")

	if orgID != "" && f.vaultService != nil {
		if token, err := f.vaultService.GetSecretString(OrgTokenSecretName(forgeType, orgID)); err == nil && token != "" {
			return restyClient.SetAuthToken(token)
		}
	}

	if f.tokenSource != nil {
		tokenSource := f.tokenSource
		restyClient.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
			token, err := tokenSource.Token()
			if err != nil {
				return err
			}
			r.SetAuthToken(token.AccessToken)
			return nil
		})
		return restyClient
	}

	return restyClient.SetAuthToken(f.forgeConfig.Token)
}
