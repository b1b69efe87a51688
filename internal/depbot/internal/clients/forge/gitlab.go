package forge

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// gitlabClient implements Client over the GitLab REST v4 API. Merge requests
// are presented as pull requests, the iid is used as the pull request number.
type gitlabClient struct {
	client *resty.Client
}

var _ Client = &gitlabClient{}

type gitlabProject struct {
	PathWithNamespace string `json:"path_with_namespace"`
	DefaultBranch     string `json:"default_branch"`
	Archived          bool   `json:"archived"`
}

type gitlabTreeEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

type gitlabMergeRequest struct {
	IID      int    `json:"iid"`
	WebURL   string `json:"web_url"`
	State    string `json:"state"`
	MergedAt string `json:"merged_at"`
}

func gitlabError(resp *resty.Response) error {
	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    strings.TrimSpace(string(resp.Body())),
	}
}

// projectID is the URL encoded "org/repo" path GitLab accepts in place of the
// numeric project id.
func projectID(slug string) string {
	return url.PathEscape(slug)
}

func presentMergeRequest(mr *gitlabMergeRequest) *PullRequest {
	pr := &PullRequest{
		Number: mr.IID,
		URL:    mr.WebURL,
		State:  PullRequestStateOpen,
	}
	switch mr.State {
	case "merged":
		pr.State = PullRequestStateClosed
		pr.Merged = true
	case "closed":
		pr.State = PullRequestStateClosed
	}
	return pr
}

func (g *gitlabClient) GetRepository(ctx context.Context, slug string) (*Repository, error) {
	result := gitlabProject{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/projects/%s", projectID(slug)))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gitlabError(resp)
	}
	return &Repository{
		Slug:          result.PathWithNamespace,
		DefaultBranch: result.DefaultBranch,
		Archived:      result.Archived,
	}, nil
}

func (g *gitlabClient) ListManifests(ctx context.Context, slug string, ref string) ([]Manifest, error) {
	manifests := []Manifest{}
	for page := 1; ; page++ {
		result := []gitlabTreeEntry{}
		resp, err := g.client.R().
			SetContext(ctx).
			SetResult(&result).
			SetQueryParams(map[string]string{
				"ref":       ref,
				"recursive": "true",
				"per_page":  "100",
				"page":      fmt.Sprintf("%d", page),
			}).
			Get(fmt.Sprintf("/projects/%s/repository/tree", projectID(slug)))
		if err != nil {
			return nil, err
		}
		if !resp.IsSuccess() {
			return nil, gitlabError(resp)
		}
		for _, entry := range result {
			if entry.Type != "blob" {
				continue
			}
			if manager, ok := manifestManager(entry.Path); ok {
				manifests = append(manifests, Manifest{Path: entry.Path, Manager: manager})
			}
		}
		if resp.Header().Get("X-Next-Page") == "" {
			break
		}
	}
	return manifests, nil
}

func (g *gitlabClient) GetFileContent(ctx context.Context, slug string, ref string, path string) ([]byte, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("ref", ref).
		Get(fmt.Sprintf("/projects/%s/repository/files/%s/raw", projectID(slug), url.PathEscape(path)))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gitlabError(resp)
	}
	return resp.Body(), nil
}

func (g *gitlabClient) CreatePullRequest(ctx context.Context, slug string, spec *PullRequestSpec) (*PullRequest, error) {
	result := gitlabMergeRequest{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetBody(map[string]interface{}{
			"title":         spec.Title,
			"description":   spec.Body,
			"source_branch": spec.Head,
			"target_branch": spec.Base,
			"labels":        strings.Join(spec.Labels, ","),
		}).
		Post(fmt.Sprintf("/projects/%s/merge_requests", projectID(slug)))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gitlabError(resp)
	}
	return presentMergeRequest(&result), nil
}

func (g *gitlabClient) GetPullRequest(ctx context.Context, slug string, number int) (*PullRequest, error) {
	result := gitlabMergeRequest{}
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/projects/%s/merge_requests/%d", projectID(slug), number))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, gitlabError(resp)
	}
	return presentMergeRequest(&result), nil
}

func (g *gitlabClient) MergePullRequest(ctx context.Context, slug string, number int) error {
	resp, err := g.client.R().
		SetContext(ctx).
		Put(fmt.Sprintf("/projects/%s/merge_requests/%d/merge", projectID(slug), number))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return gitlabError(resp)
	}
	return nil
}

func (g *gitlabClient) ClosePullRequest(ctx context.Context, slug string, number int) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"state_event": "close"}).
		Put(fmt.Sprintf("/projects/%s/merge_requests/%d", projectID(slug), number))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return gitlabError(resp)
	}
	return nil
}
