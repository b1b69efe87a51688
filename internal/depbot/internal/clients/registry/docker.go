package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/go-resty/resty/v2"
)

// dockerClient lists image tags from a registry speaking the v2 distribution
// API.
type dockerClient struct {
	client *resty.Client
	cache  *cache.Cache
}

var _ Client = &dockerClient{}

func (d *dockerClient) Versions(ctx context.Context, depName string) ([]string, error) {
	key := cacheKey("docker", d.client.BaseURL, depName, "versions")
	if cached, ok := d.cache.Get(key); ok {
		return cached.([]string), nil
	}

	resp, err := d.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/v2/%s/tags/list", officialImageName(depName)))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, registryError(resp)
	}

	var tags struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal(resp.Body(), &tags); err != nil {
		return nil, fmt.Errorf("failed to decode tag list for %q: %w", depName, err)
	}

	d.cache.SetDefault(key, tags.Tags)
	return tags.Tags, nil
}

// LatestVersion picks the highest semver looking tag. Images tagged only with
// non semver names fall back to the floating latest tag.
func (d *dockerClient) LatestVersion(ctx context.Context, depName string) (string, error) {
	tags, err := d.Versions(ctx, depName)
	if err != nil {
		return "", err
	}

	latest := ""
	for _, tag := range tags {
		if !isSemverTag(tag) {
			continue
		}
		if latest == "" {
			latest = tag
			continue
		}
		cmp, err := api.CompareBuildAwareSemanticVersions(latest, tag)
		if err != nil {
			continue
		}
		if cmp < 0 {
			latest = tag
		}
	}
	if latest == "" {
		return "latest", nil
	}
	return latest, nil
}

// officialImageName expands single segment names to the library namespace the
// distribution API expects, e.g. postgres becomes library/postgres.
func officialImageName(depName string) string {
	if strings.Contains(depName, "/") {
		return depName
	}
	return "library/" + depName
}

func isSemverTag(tag string) bool {
	if tag == "" || tag == "latest" {
		return false
	}
	first := strings.TrimPrefix(tag, "v")
	if first == "" || first[0] < '0' || first[0] > '9' {
		return false
	}
	return true
}
