package presenters

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/compat"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
)

// PresentAgentCluster - create AgentCluster in compat format
func PresentAgentCluster(agentCluster *dbapi.AgentCluster) compat.AgentCluster {
	reference := PresentReference(agentCluster.ID, agentCluster)
	return compat.AgentCluster{
		Id:                 reference.Id,
		Kind:               reference.Kind,
		Href:               reference.Href,
		ClusterId:          agentCluster.ClusterID,
		Status:             agentCluster.Status,
		AgentVersion:       agentCluster.AgentVersion,
		MaxRepositories:    int32(agentCluster.MaxRepositories),
		ActiveRepositories: int32(agentCluster.ActiveRepositories),
		StatusUpdatedAt:    agentCluster.StatusUpdatedAt,
		CreatedAt:          agentCluster.CreatedAt,
		UpdatedAt:          agentCluster.UpdatedAt,
	}
}

// ConvertAgentClusterStatus from the heartbeat payload to the dbapi status
func ConvertAgentClusterStatus(status compat.AgentClusterUpdateStatusRequest) *dbapi.AgentClusterStatus {
	conds := make([]dbapi.AgentClusterStatusCondition, len(status.Conditions))
	for i, c := range status.Conditions {
		conds[i] = dbapi.AgentClusterStatusCondition{
			Type:    c.Type,
			Reason:  c.Reason,
			Message: c.Message,
			Status:  c.Status,
		}
	}
	return &dbapi.AgentClusterStatus{
		AgentVersion:       status.AgentVersion,
		MaxRepositories:    int(status.MaxRepositories),
		ActiveRepositories: int(status.ActiveRepositories),
		Conditions:         conds,
	}
}
