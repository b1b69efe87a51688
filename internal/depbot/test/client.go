package test

import (
	"context"
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/test"
	"github.com/go-resty/resty/v2"
)

// APIClient is a thin REST client for the service API used by the integration
// tests. Authentication comes from the context built with
// Helper.NewAuthenticatedContext.
type APIClient struct {
	client *resty.Client
}

func NewAPIClient(helper *test.Helper) *APIClient {
	return &APIClient{
		client: resty.New().SetBaseURL(helper.RestURL("")),
	}
}

func (c *APIClient) request(ctx context.Context) *resty.Request {
	r := c.client.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if token, ok := ctx.Value(test.ContextAccessToken).(string); ok {
		r.SetAuthToken(token)
	}
	return r
}

func (c *APIClient) CreateRepository(ctx context.Context, async bool, payload compat.RepositoryRequestPayload) (compat.RepositoryRequest, *resty.Response, error) {
	result := compat.RepositoryRequest{}
	resp, err := c.request(ctx).
		SetQueryParam("async", fmt.Sprintf("%t", async)).
		SetBody(payload).
		SetResult(&result).
		Post("/repositories")
	return result, resp, err
}

func (c *APIClient) GetRepository(ctx context.Context, id string) (compat.RepositoryRequest, *resty.Response, error) {
	result := compat.RepositoryRequest{}
	resp, err := c.request(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/repositories/%s", id))
	return result, resp, err
}

func (c *APIClient) ListRepositories(ctx context.Context, params map[string]string) (compat.RepositoryRequestList, *resty.Response, error) {
	result := compat.RepositoryRequestList{}
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/repositories")
	return result, resp, err
}

func (c *APIClient) UpdateRepository(ctx context.Context, id string, payload compat.RepositoryUpdateRequest) (compat.RepositoryRequest, *resty.Response, error) {
	result := compat.RepositoryRequest{}
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&result).
		Patch(fmt.Sprintf("/repositories/%s", id))
	return result, resp, err
}

func (c *APIClient) DeleteRepository(ctx context.Context, id string, async bool) (*resty.Response, error) {
	return c.request(ctx).
		SetQueryParam("async", fmt.Sprintf("%t", async)).
		Delete(fmt.Sprintf("/repositories/%s", id))
}

func (c *APIClient) GetRepositoryConfig(ctx context.Context, id string) (compat.RepositoryBotConfig, *resty.Response, error) {
	result := compat.RepositoryBotConfig{}
	resp, err := c.request(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/repositories/%s/config", id))
	return result, resp, err
}

func (c *APIClient) ListUpdateRuns(ctx context.Context, repositoryID string, params map[string]string) (compat.UpdateRunList, *resty.Response, error) {
	result := compat.UpdateRunList{}
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get(fmt.Sprintf("/repositories/%s/update_runs", repositoryID))
	return result, resp, err
}

func (c *APIClient) ListServiceAccounts(ctx context.Context, params map[string]string) (compat.ServiceAccountList, *resty.Response, error) {
	result := compat.ServiceAccountList{}
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/service_accounts")
	return result, resp, err
}

func (c *APIClient) CreateServiceAccount(ctx context.Context, payload compat.ServiceAccountRequest) (compat.ServiceAccount, *resty.Response, error) {
	result := compat.ServiceAccount{}
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/service_accounts")
	return result, resp, err
}

func (c *APIClient) GetServiceAccount(ctx context.Context, id string) (compat.ServiceAccount, *resty.Response, error) {
	result := compat.ServiceAccount{}
	resp, err := c.request(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/service_accounts/%s", id))
	return result, resp, err
}

func (c *APIClient) DeleteServiceAccount(ctx context.Context, id string) (*resty.Response, error) {
	return c.request(ctx).
		Delete(fmt.Sprintf("/service_accounts/%s", id))
}

func (c *APIClient) ResetServiceAccountCredentials(ctx context.Context, id string) (compat.ServiceAccount, *resty.Response, error) {
	result := compat.ServiceAccount{}
	resp, err := c.request(ctx).
		SetResult(&result).
		Post(fmt.Sprintf("/service_accounts/%s/reset_credentials", id))
	return result, resp, err
}

func (c *APIClient) UpdateAgentClusterStatus(ctx context.Context, clusterID string, payload compat.AgentClusterUpdateStatusRequest) (compat.AgentCluster, *resty.Response, error) {
	result := compat.AgentCluster{}
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&result).
		Put(fmt.Sprintf("/agent_clusters/%s/status", clusterID))
	return result, resp, err
}

func (c *APIClient) GetAgentClusterResources(ctx context.Context, clusterID string) (*resty.Response, error) {
	return c.request(ctx).
		Get(fmt.Sprintf("/agent_clusters/%s/resources", clusterID))
}

func (c *APIClient) AdminListAgentClusters(ctx context.Context, params map[string]string) (compat.AgentClusterList, *resty.Response, error) {
	result := compat.AgentClusterList{}
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/admin/agent_clusters")
	return result, resp, err
}

func (c *APIClient) AdminListRepositories(ctx context.Context, params map[string]string) (compat.RepositoryRequestAdminViewList, *resty.Response, error) {
	result := compat.RepositoryRequestAdminViewList{}
	resp, err := c.request(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get("/admin/repositories")
	return result, resp, err
}

func (c *APIClient) AdminGetRepository(ctx context.Context, id string) (compat.RepositoryRequestAdminView, *resty.Response, error) {
	result := compat.RepositoryRequestAdminView{}
	resp, err := c.request(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/admin/repositories/%s", id))
	return result, resp, err
}

func (c *APIClient) AdminDeleteRepository(ctx context.Context, id string, async bool) (*resty.Response, error) {
	return c.request(ctx).
		SetQueryParam("async", fmt.Sprintf("%t", async)).
		Delete(fmt.Sprintf("/admin/repositories/%s", id))
}
