package constants

// AgentClusterOperation type
type AgentClusterOperation string

// AgentClusterStatus type
type AgentClusterStatus string

const (
	// AgentClusterOperationCreate - agent cluster register operation
	AgentClusterOperationCreate AgentClusterOperation = "create"

	// AgentClusterOperationDelete - agent cluster delete operation
	AgentClusterOperationDelete AgentClusterOperation = "delete"

	// AgentClusterAccepted - agent cluster registered but not yet picked up
	AgentClusterAccepted AgentClusterStatus = "cluster_accepted"
	// AgentClusterProvisioning - agent operator installation is in progress
	AgentClusterProvisioning AgentClusterStatus = "cluster_provisioning"
	// AgentClusterReady - agent reported ready and has spare scan capacity
	AgentClusterReady AgentClusterStatus = "ready"
	// AgentClusterFull - agent reported ready but has no spare scan capacity
	AgentClusterFull AgentClusterStatus = "full"
	// AgentClusterFailed - agent installation or heartbeat failed
	AgentClusterFailed AgentClusterStatus = "failed"
	// AgentClusterDeprovisioning - agent cluster is being torn down
	AgentClusterDeprovisioning AgentClusterStatus = "cluster_deprovisioning"
	// AgentClusterCleanup - external resources for the agent cluster are being removed
	AgentClusterCleanup AgentClusterStatus = "cluster_cleanup"

	// AgentOperatorNamespace is the namespace the update agent bundle is rendered into
	AgentOperatorNamespace = "dub-update-agent"

	// ImagePullSecretName is the name of the secret used to pull agent images
	ImagePullSecretName = "dub-image-pull-secret"
)

func (c AgentClusterOperation) String() string {
	return string(c)
}

func (s AgentClusterStatus) String() string {
	return string(s)
}

// StatusForValidAgentCluster - list of agent cluster statuses an agent may report without
// the cluster being considered broken
var StatusForValidAgentCluster = []string{
	AgentClusterProvisioning.String(),
	AgentClusterReady.String(),
	AgentClusterFull.String(),
}

// AgentClusterDeletionStatuses - statuses of an agent cluster on its way out
var AgentClusterDeletionStatuses = []string{
	AgentClusterCleanup.String(),
	AgentClusterDeprovisioning.String(),
}
