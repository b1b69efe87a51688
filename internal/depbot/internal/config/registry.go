package config

import (
	"time"

	"github.com/spf13/pflag"
)

// RegistryConfig holds the package registry endpoints the scanner resolves
// versions against. Per repository registryUrls from the bot configuration
// override these.
type RegistryConfig struct {
	GoProxyBaseURL        string        `json:"go_proxy_base_url"`
	NpmRegistryBaseURL    string        `json:"npm_registry_base_url"`
	DockerRegistryBaseURL string        `json:"docker_registry_base_url"`
	CacheTTL              time.Duration `json:"cache_ttl"`
	RequestTimeout        time.Duration `json:"request_timeout"`
}

func NewRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		GoProxyBaseURL:        "https://proxy.golang.org",
		NpmRegistryBaseURL:    "https://registry.npmjs.org",
		DockerRegistryBaseURL: "https://registry-1.docker.io",
		CacheTTL:              5 * time.Minute,
		RequestTimeout:        10 * time.Second,
	}
}

func (c *RegistryConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.GoProxyBaseURL, "go-proxy-base-url", c.GoProxyBaseURL, "Base URL of the Go module proxy")
	fs.StringVar(&c.NpmRegistryBaseURL, "npm-registry-base-url", c.NpmRegistryBaseURL, "Base URL of the npm registry")
	fs.StringVar(&c.DockerRegistryBaseURL, "docker-registry-base-url", c.DockerRegistryBaseURL, "Base URL of the Docker v2 registry")
	fs.DurationVar(&c.CacheTTL, "registry-cache-ttl", c.CacheTTL, "How long registry responses are served from cache")
	fs.DurationVar(&c.RequestTimeout, "registry-request-timeout", c.RequestTimeout, "Timeout applied to individual registry requests")
}

func (c *RegistryConfig) ReadFiles() error {
	return nil
}
