package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
)

// Client resolves dependency versions against a package registry.
//
//go:generate moq -out client_moq.go . Client
type Client interface {
	// Versions returns every version the registry knows for the dependency,
	// unsorted and unfiltered
	Versions(ctx context.Context, depName string) ([]string, error)
	// LatestVersion returns the version the registry flags as latest
	LatestVersion(ctx context.Context, depName string) (string, error)
}

// Provider hands out the registry client for a package manager. Custom
// registry URLs from the resolved bot configuration take precedence over the
// configured defaults.
//
//go:generate moq -out provider_moq.go . Provider
type Provider interface {
	ForManager(manager constants.DepManager, registryUrls []string) (Client, error)
}

type defaultProvider struct {
	registryConfig *config.RegistryConfig
	responseCache  *cache.Cache
}

var _ Provider = &defaultProvider{}

func NewProvider(registryConfig *config.RegistryConfig) Provider {
	return &defaultProvider{
		registryConfig: registryConfig,
		responseCache:  cache.New(registryConfig.CacheTTL, 2*registryConfig.CacheTTL),
	}
}

func (p *defaultProvider) ForManager(manager constants.DepManager, registryUrls []string) (Client, error) {
	baseURL := ""
	if len(registryUrls) > 0 {
		baseURL = strings.TrimSuffix(registryUrls[0], "/")
	}

	switch manager {
	case constants.ManagerGoMod:
		if baseURL == "" {
			baseURL = p.registryConfig.GoProxyBaseURL
		}
		return &goProxyClient{client: p.newRestyClient(baseURL), cache: p.responseCache}, nil
	case constants.ManagerNpm:
		if baseURL == "" {
			baseURL = p.registryConfig.NpmRegistryBaseURL
		}
		return &npmClient{client: p.newRestyClient(baseURL), cache: p.responseCache}, nil
	case constants.ManagerDockerfile:
		if baseURL == "" {
			baseURL = p.registryConfig.DockerRegistryBaseURL
		}
		return &dockerClient{client: p.newRestyClient(baseURL), cache: p.responseCache}, nil
	default:
		return nil, fmt.Errorf("no registry client for manager: %s", manager)
	}
}

func (p *defaultProvider) newRestyClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(p.registryConfig.RequestTimeout)
}

func registryError(resp *resty.Response) error {
	return fmt.Errorf("registry request %s failed: status %d", resp.Request.URL, resp.StatusCode())
}

func cacheKey(kind string, baseURL string, depName string, op string) string {
	return fmt.Sprintf("%s|%s|%s|%s", kind, baseURL, depName, op)
}
