package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/go-resty/resty/v2"
	"golang.org/x/mod/module"
)

// goProxyClient speaks the GOPROXY protocol, see https://go.dev/ref/mod#goproxy-protocol
type goProxyClient struct {
	client *resty.Client
	cache  *cache.Cache
}

var _ Client = &goProxyClient{}

func (g *goProxyClient) Versions(ctx context.Context, depName string) ([]string, error) {
	key := cacheKey("goproxy", g.client.BaseURL, depName, "versions")
	if cached, ok := g.cache.Get(key); ok {
		return cached.([]string), nil
	}

	escaped, err := module.EscapePath(depName)
	if err != nil {
		return nil, fmt.Errorf("invalid module path %q: %w", depName, err)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/@v/list", escaped))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, registryError(resp)
	}

	var versions []string
	for _, line := range strings.Split(string(resp.Body()), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			versions = append(versions, strings.TrimPrefix(line, "v"))
		}
	}

	g.cache.SetDefault(key, versions)
	return versions, nil
}

func (g *goProxyClient) LatestVersion(ctx context.Context, depName string) (string, error) {
	key := cacheKey("goproxy", g.client.BaseURL, depName, "latest")
	if cached, ok := g.cache.Get(key); ok {
		return cached.(string), nil
	}

	escaped, err := module.EscapePath(depName)
	if err != nil {
		return "", fmt.Errorf("invalid module path %q: %w", depName, err)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/@latest", escaped))
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", registryError(resp)
	}

	var info struct {
		Version string `json:"Version"`
	}
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		return "", fmt.Errorf("failed to decode @latest response for %q: %w", depName, err)
	}

	latest := strings.TrimPrefix(info.Version, "v")
	g.cache.SetDefault(key, latest)
	return latest, nil
}
