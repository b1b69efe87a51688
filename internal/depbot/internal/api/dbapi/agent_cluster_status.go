package dbapi

// AgentClusterStatus is the digest of an agent heartbeat as reported to
// PUT /agent_clusters/{id}/status.
type AgentClusterStatus struct {
	Conditions         []AgentClusterStatusCondition
	AgentVersion       string
	MaxRepositories    int
	ActiveRepositories int
}

type AgentClusterStatusCondition struct {
	Type    string
	Reason  string
	Status  string
	Message string
}
