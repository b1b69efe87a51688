package forge

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// githubClient implements Client over the GitHub REST v3 API.
type githubClient struct {
	client *resty.Client
}

var _ Client = &githubClient{}

type githubRepository struct {
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch"`
	Archived      bool   `json:"archived"`
}

type githubTreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

type githubTree struct {
	Tree      []githubTreeEntry `json:"tree"`
	Truncated bool              `json:"truncated"`
}

type githubContent struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type githubPullRequest struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
	State   string `json:"state"`
	Merged  bool   `json:"merged"`
}

func githubError(resp *resty.Response) error {
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    strings.TrimSpace(string(resp.Body())),
	}
}

func (g *githubClient) GetRepository(ctx context.Context, slug string) (*Repository, error) {
	result := githubRepository{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/repos/%s", slug))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, githubError(resp)
	}
	return &Repository{
		Slug:          result.FullName,
		DefaultBranch: result.DefaultBranch,
		Archived:      result.Archived,
	}, nil
}

func (g *githubClient) ListManifests(ctx context.Context, slug string, ref string) ([]Manifest, error) {
	result := githubTree{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetQueryParam("recursive", "1").
		Get(fmt.Sprintf("/repos/%s/git/trees/%s", slug, ref))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, githubError(resp)
	}

	manifests := []Manifest{}
	for _, entry := range result.Tree {
		if entry.Type != "blob" {
			continue
		}
		if manager, ok := manifestManager(entry.Path); ok {
			manifests = append(manifests, Manifest{Path: entry.Path, Manager: manager})
		}
	}
	return manifests, nil
}

func (g *githubClient) GetFileContent(ctx context.Context, slug string, ref string, path string) ([]byte, error) {
	result := githubContent{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetQueryParam("ref", ref).
		Get(fmt.Sprintf("/repos/%s/contents/%s", slug, path))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, githubError(resp)
	}
	if result.Encoding != "base64" {
		return []byte(result.Content), nil
	}
	// the contents API wraps base64 payloads at 60 columns
	return base64.StdEncoding.DecodeString(strings.ReplaceAll(result.Content, "\n", ""))
}

func (g *githubClient) CreatePullRequest(ctx context.Context, slug string, spec *PullRequestSpec) (*PullRequest, error) {
	result := githubPullRequest{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetBody(map[string]interface{}{
			"title": spec.Title,
			"body":  spec.Body,
			"head":  spec.Head,
			"base":  spec.Base,
		}).
		Post(fmt.Sprintf("/repos/%s/pulls", slug))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, githubError(resp)
	}

	if len(spec.Labels) > 0 {
		// labels ride on the issues API and are best effort
		_, _ = g.client.R().
			SetContext(ctx).
			SetBody(map[string]interface{}{"labels": spec.Labels}).
			Post(fmt.Sprintf("/repos/%s/issues/%d/labels", slug, result.Number))
	}

	return &PullRequest{
		Number: result.Number,
		URL:    result.HTMLURL,
		State:  result.State,
		Merged: result.Merged,
	}, nil
}

func (g *githubClient) GetPullRequest(ctx context.Context, slug string, number int) (*PullRequest, error) {
	result := githubPullRequest{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/repos/%s/pulls/%d", slug, number))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, githubError(resp)
	}
	return &PullRequest{
		Number: result.Number,
		URL:    result.HTMLURL,
		State:  result.State,
		Merged: result.Merged,
	}, nil
}

func (g *githubClient) MergePullRequest(ctx context.Context, slug string, number int) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"merge_method": "merge"}).
		Put(fmt.Sprintf("/repos/%s/pulls/%d/merge", slug, number))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return githubError(resp)
	}
	return nil
}

func (g *githubClient) ClosePullRequest(ctx context.Context, slug string, number int) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"state": "closed"}).
		Patch(fmt.Sprintf("/repos/%s/pulls/%d", slug, number))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return githubError(resp)
	}
	return nil
}
