package converters

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
)

func ConvertAgentCluster(agentCluster *dbapi.AgentCluster) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"id":                  agentCluster.ID,
			"cluster_id":          agentCluster.ClusterID,
			"status":              agentCluster.Status,
			"agent_version":       agentCluster.AgentVersion,
			"status_updated_at":   agentCluster.StatusUpdatedAt,
			"max_repositories":    agentCluster.MaxRepositories,
			"active_repositories": agentCluster.ActiveRepositories,
			"created_at":          agentCluster.Meta.CreatedAt,
			"updated_at":          agentCluster.Meta.UpdatedAt,
			"deleted_at":          agentCluster.Meta.DeletedAt.Time,
		},
	}
}

// ConvertAgentClusterList converts an AgentClusterList to the response type expected by mocket
func ConvertAgentClusterList(agentClusterList dbapi.AgentClusterList) []map[string]interface{} {
	var converted []map[string]interface{}

	for _, agentCluster := range agentClusterList {
		data := ConvertAgentCluster(agentCluster)
		converted = append(converted, data...)
	}

	return converted
}
