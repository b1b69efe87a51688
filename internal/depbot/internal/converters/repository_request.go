package converters

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
)

func ConvertRepositoryRequest(request *dbapi.RepositoryRequest) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":               request.ID,
			"name":             request.Name,
			"forge_type":       request.ForgeType,
			"default_branch":   request.DefaultBranch,
			"status":           request.Status,
			"owner":            request.Owner,
			"owner_account_id": request.OwnerAccountId,
			"organisation_id":  request.OrganisationId,
			"subscription_id":  request.SubscriptionId,
			"quota_type":       request.QuotaType,
			"instance_type":    request.InstanceType,
			"failed_reason":    request.FailedReason,
			"bot_config":       request.BotConfig,
			"agent_cluster_id": request.AgentClusterID,
			"created_at":       request.Meta.CreatedAt,
			"updated_at":       request.Meta.UpdatedAt,
			"deleted_at":       request.Meta.DeletedAt.Time,
		},
	}
}

// ConvertRepositoryRequestList converts a RepositoryList to the response type expected by mocket
func ConvertRepositoryRequestList(repositoryList dbapi.RepositoryList) []map[string]interface{} {
	var repositoryRequestList []map[string]interface{}

	for _, repositoryRequest := range repositoryList {
		data := ConvertRepositoryRequest(repositoryRequest)
		repositoryRequestList = append(repositoryRequestList, data...)
	}

	return repositoryRequestList
}
