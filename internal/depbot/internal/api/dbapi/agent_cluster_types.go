package dbapi

import (
	"time"

	"gorm.io/gorm"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
)

type AgentCluster struct {
	api.Meta
	// ClusterID is the identifier the agent presents when phoning home
	ClusterID string `json:"cluster_id" gorm:"index"`
	Status    string `json:"status" gorm:"index"`
	// AgentVersion is the operator version last reported by the agent
	AgentVersion    string     `json:"agent_version"`
	StatusUpdatedAt *time.Time `json:"status_updated_at"`
	// MaxRepositories is the scan capacity the agent advertised
	MaxRepositories int `json:"max_repositories"`
	// ActiveRepositories is the number of repositories currently assigned to the agent
	ActiveRepositories int `json:"active_repositories"`
}

type AgentClusterList []*AgentCluster
type AgentClusterIndex map[string]*AgentCluster

func (l AgentClusterList) Index() AgentClusterIndex {
	index := AgentClusterIndex{}
	for _, o := range l {
		index[o.ID] = o
	}
	return index
}

func (c *AgentCluster) BeforeCreate(scope *gorm.DB) error {
	id := c.ID
	if id == "" {
		c.ID = api.NewID()
	}
	return nil
}

// HasCapacity reports whether the agent can take on more repositories.
func (c *AgentCluster) HasCapacity() bool {
	return c.Status == constants.AgentClusterReady.String() &&
		(c.MaxRepositories == 0 || c.ActiveRepositories < c.MaxRepositories)
}
