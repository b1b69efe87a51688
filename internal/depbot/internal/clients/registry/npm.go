package registry

import (
	"context"
	"fmt"
	"net/url"

	"github.com/patrickmn/go-cache"

	"github.com/go-resty/resty/v2"
	"github.com/spyzhov/ajson"
)

// npmClient reads package documents from an npm compatible registry.
type npmClient struct {
	client *resty.Client
	cache  *cache.Cache
}

var _ Client = &npmClient{}

func (n *npmClient) Versions(ctx context.Context, depName string) ([]string, error) {
	key := cacheKey("npm", n.client.BaseURL, depName, "versions")
	if cached, ok := n.cache.Get(key); ok {
		return cached.([]string), nil
	}

	root, err := n.packageDocument(ctx, depName)
	if err != nil {
		return nil, err
	}

	nodes, err := root.JSONPath("$.versions")
	if err != nil || len(nodes) == 0 {
		return nil, fmt.Errorf("package document for %q has no versions", depName)
	}
	versions := nodes[0].Keys()

	n.cache.SetDefault(key, versions)
	return versions, nil
}

func (n *npmClient) LatestVersion(ctx context.Context, depName string) (string, error) {
	key := cacheKey("npm", n.client.BaseURL, depName, "latest")
	if cached, ok := n.cache.Get(key); ok {
		return cached.(string), nil
	}

	root, err := n.packageDocument(ctx, depName)
	if err != nil {
		return "", err
	}

	nodes, err := root.JSONPath("$['dist-tags'].latest")
	if err != nil || len(nodes) == 0 {
		return "", fmt.Errorf("package document for %q has no latest dist-tag", depName)
	}
	latest, err := nodes[0].GetString()
	if err != nil {
		return "", fmt.Errorf("latest dist-tag for %q is not a string: %w", depName, err)
	}

	n.cache.SetDefault(key, latest)
	return latest, nil
}

func (n *npmClient) packageDocument(ctx context.Context, depName string) (*ajson.Node, error) {
	// scoped packages keep the slash escaped, e.g. @acme%2Futils
	resp, err := n.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s", url.PathEscape(depName)))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, registryError(resp)
	}
	root, err := ajson.Unmarshal(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to decode package document for %q: %w", depName, err)
	}
	return root, nil
}
