package services

import (
	"context"
	"strconv"
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/sso"
	"github.com/golang/glog"
)

const agentClusterStatusCondReadyName = "Ready"

type AgentClusterStatusCount struct {
	Status constants.AgentClusterStatus
	Count  int
}

//go:generate moq -out agentclusterservice_moq.go . AgentClusterService
type AgentClusterService interface {
	// RegisterAgentCluster persists a new agent cluster in status
	// cluster_accepted for the provisioning worker to pick up.
	RegisterAgentCluster(agentCluster *dbapi.AgentCluster) *errors.ServiceError
	Get(id string) (*dbapi.AgentCluster, *errors.ServiceError)
	// FindByClusterID returns the agent cluster the agent identifies itself
	// with. If the cluster has not been found nil is returned without an error.
	FindByClusterID(clusterID string) (*dbapi.AgentCluster, *errors.ServiceError)
	List(listArgs *services.ListArguments) (dbapi.AgentClusterList, *api.PagingMeta, *errors.ServiceError)
	ListByStatus(status ...constants.AgentClusterStatus) (dbapi.AgentClusterList, *errors.ServiceError)
	Update(agentCluster *dbapi.AgentCluster) *errors.ServiceError
	UpdateStatus(agentCluster *dbapi.AgentCluster, status constants.AgentClusterStatus) *errors.ServiceError
	// UpdateAgentClusterStatus digests an agent heartbeat: capacity, operator
	// version and the Ready condition decide the cluster status.
	UpdateAgentClusterStatus(ctx context.Context, clusterID string, status *dbapi.AgentClusterStatus) (*dbapi.AgentCluster, *errors.ServiceError)
	// FindAvailableCluster picks a schedulable ready cluster with spare scan
	// capacity, oldest first. Returns nil without an error when the fleet is
	// full.
	FindAvailableCluster() (*dbapi.AgentCluster, *errors.ServiceError)
	CountByStatus(status []constants.AgentClusterStatus) ([]AgentClusterStatusCount, *errors.ServiceError)
	// CountAssignedRepositories counts the repositories booked onto the agent
	// cluster, deprovisioning ones included.
	CountAssignedRepositories(agentClusterID string) (int, *errors.ServiceError)
	// Delete soft deletes the agent cluster from the database.
	Delete(agentCluster *dbapi.AgentCluster) *errors.ServiceError
}

var _ AgentClusterService = &agentClusterService{}
var _ auth.AuthAgentService = &agentClusterService{}

type agentClusterService struct {
	connectionFactory  *db.ConnectionFactory
	agentClusterConfig *config.AgentClusterConfig
}

func NewAgentClusterService(connectionFactory *db.ConnectionFactory, agentClusterConfig *config.AgentClusterConfig) *agentClusterService {
	return &agentClusterService{
		connectionFactory:  connectionFactory,
		agentClusterConfig: agentClusterConfig,
	}
}

func (c *agentClusterService) RegisterAgentCluster(agentCluster *dbapi.AgentCluster) *errors.ServiceError {
	dbConn := c.connectionFactory.New()

	if agentCluster.Status == "" {
		agentCluster.Status = constants.AgentClusterAccepted.String()
	}

	if err := dbConn.Save(agentCluster).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to register agent cluster")
	}

	return nil
}

func (c *agentClusterService) Get(id string) (*dbapi.AgentCluster, *errors.ServiceError) {
	if id == "" {
		return nil, errors.Validation("id is undefined")
	}
	dbConn := c.connectionFactory.New()

	var agentCluster dbapi.AgentCluster
	if err := dbConn.Where("id = ?", id).First(&agentCluster).Error; err != nil {
		return nil, services.HandleGetError("AgentCluster", "id", id, err)
	}
	return &agentCluster, nil
}

func (c *agentClusterService) FindByClusterID(clusterID string) (*dbapi.AgentCluster, *errors.ServiceError) {
	if clusterID == "" {
		return nil, errors.Validation("clusterID is undefined")
	}
	dbConn := c.connectionFactory.New()

	var agentCluster dbapi.AgentCluster
	if err := dbConn.Where("cluster_id = ?", clusterID).First(&agentCluster).Error; err != nil {
		if services.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to find agent cluster with cluster id: %s", clusterID)
	}
	return &agentCluster, nil
}

// GetClientID returns the SSO client id the agent on the cluster is expected
// to present. An unknown cluster yields an empty client id, which never
// matches a token claim.
func (c *agentClusterService) GetClientID(clusterID string) (string, error) {
	agentCluster, svcErr := c.FindByClusterID(clusterID)
	if svcErr != nil {
		return "", svcErr
	}
	if agentCluster == nil {
		return "", nil
	}
	return sso.BuildAgentServiceAccountClientID(agentCluster.ClusterID), nil
}

func (c *agentClusterService) List(listArgs *services.ListArguments) (dbapi.AgentClusterList, *api.PagingMeta, *errors.ServiceError) {
	var agentClusterList dbapi.AgentClusterList
	dbConn := c.connectionFactory.New()
	pagingMeta := &api.PagingMeta{
		Page: listArgs.Page,
		Size: listArgs.Size,
	}

	// Set the order by arguments if any
	if len(listArgs.OrderBy) == 0 {
		// default orderBy created_at
		dbConn = dbConn.Order("created_at asc")
	}
	for _, orderByArg := range listArgs.OrderBy {
		dbConn = dbConn.Order(orderByArg)
	}

	total := int64(pagingMeta.Total)
	dbConn.Model(&agentClusterList).Count(&total)
	pagingMeta.Total = int(total)
	if pagingMeta.Size > pagingMeta.Total {
		pagingMeta.Size = pagingMeta.Total
	}
	dbConn = dbConn.Offset((pagingMeta.Page - 1) * pagingMeta.Size).Limit(pagingMeta.Size)

	if err := dbConn.Find(&agentClusterList).Error; err != nil {
		return agentClusterList, pagingMeta, errors.NewWithCause(errors.ErrorGeneral, err, "Unable to list agent clusters")
	}

	return agentClusterList, pagingMeta, nil
}

func (c *agentClusterService) ListByStatus(status ...constants.AgentClusterStatus) (dbapi.AgentClusterList, *errors.ServiceError) {
	if len(status) == 0 {
		return nil, errors.GeneralError("no status provided")
	}
	dbConn := c.connectionFactory.New()

	var agentClusters dbapi.AgentClusterList
	if err := dbConn.Model(&dbapi.AgentCluster{}).Where("status IN (?)", status).Scan(&agentClusters).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list agent clusters by status")
	}

	return agentClusters, nil
}

func (c *agentClusterService) Update(agentCluster *dbapi.AgentCluster) *errors.ServiceError {
	if agentCluster.ID == "" {
		return errors.Validation("id is undefined")
	}

	// by specifying the Model with a non-empty primary key we ensure
	// only the record with that primary key is updated
	dbConn := c.connectionFactory.New().Model(agentCluster)

	if err := dbConn.Updates(agentCluster).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to update agent cluster")
	}

	return nil
}

func (c *agentClusterService) UpdateStatus(agentCluster *dbapi.AgentCluster, status constants.AgentClusterStatus) *errors.ServiceError {
	if status.String() == "" {
		return errors.Validation("status is undefined")
	}
	if agentCluster.ID == "" && agentCluster.ClusterID == "" {
		return errors.Validation("id is undefined")
	}
	dbConn := c.connectionFactory.New()

	var query, arg string
	if agentCluster.ID != "" {
		query, arg = "id = ?", agentCluster.ID
	} else {
		query, arg = "cluster_id = ?", agentCluster.ClusterID
	}

	values := map[string]interface{}{
		"status":            status.String(),
		"status_updated_at": time.Now(),
	}

	if err := dbConn.Model(&dbapi.AgentCluster{}).Where(query, arg).Updates(values).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to update agent cluster status")
	}

	return nil
}

func (c *agentClusterService) UpdateAgentClusterStatus(ctx context.Context, clusterID string, status *dbapi.AgentClusterStatus) (*dbapi.AgentCluster, *errors.ServiceError) {
	agentCluster, svcErr := c.FindByClusterID(clusterID)
	if svcErr != nil {
		return nil, svcErr
	}
	if agentCluster == nil {
		// 404 is used for authenticated requests. So to distinguish the errors, we use 400 here
		return nil, errors.BadRequest("agent cluster with cluster id '%s' not found", clusterID)
	}

	if !c.clusterCanProcessStatusReports(agentCluster) {
		glog.V(10).Infof("Agent cluster with cluster id '%s' is in '%s' state. Ignoring status report...", clusterID, agentCluster.Status)
		return agentCluster, nil
	}

	agentReady, err := c.isAgentOperatorReady(status)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorValidation, err, "invalid status conditions for agent cluster '%s'", clusterID)
	}

	now := time.Now()
	agentCluster.AgentVersion = status.AgentVersion
	agentCluster.MaxRepositories = status.MaxRepositories
	agentCluster.ActiveRepositories = status.ActiveRepositories
	agentCluster.StatusUpdatedAt = &now

	if !agentReady {
		agentCluster.Status = constants.AgentClusterProvisioning.String()
	} else if status.MaxRepositories > 0 && status.ActiveRepositories >= status.MaxRepositories {
		agentCluster.Status = constants.AgentClusterFull.String()
	} else {
		agentCluster.Status = constants.AgentClusterReady.String()
	}

	values := map[string]interface{}{
		"status":              agentCluster.Status,
		"agent_version":       agentCluster.AgentVersion,
		"max_repositories":    agentCluster.MaxRepositories,
		"active_repositories": agentCluster.ActiveRepositories,
		"status_updated_at":   now,
	}

	dbConn := c.connectionFactory.New()
	if err := dbConn.Model(&dbapi.AgentCluster{Meta: api.Meta{ID: agentCluster.ID}}).Updates(values).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to update status for agent cluster '%s'", clusterID)
	}

	return agentCluster, nil
}

func (c *agentClusterService) isAgentOperatorReady(status *dbapi.AgentClusterStatus) (bool, error) {
	for _, cond := range status.Conditions {
		if cond.Type == agentClusterStatusCondReadyName {
			condVal, err := strconv.ParseBool(cond.Status)
			if err != nil {
				return false, err
			}
			return condVal, nil
		}
	}
	return false, nil
}

func (c *agentClusterService) clusterCanProcessStatusReports(agentCluster *dbapi.AgentCluster) bool {
	return agentCluster.Status == constants.AgentClusterReady.String() ||
		agentCluster.Status == constants.AgentClusterFull.String() ||
		agentCluster.Status == constants.AgentClusterAccepted.String() ||
		agentCluster.Status == constants.AgentClusterProvisioning.String()
}

func (c *agentClusterService) FindAvailableCluster() (*dbapi.AgentCluster, *errors.ServiceError) {
	dbConn := c.connectionFactory.New()

	var agentClusters dbapi.AgentClusterList
	// ready clusters cap their load through the heartbeat, full ones are
	// skipped until an agent reports spare capacity again
	if err := dbConn.Where("status = ?", constants.AgentClusterReady.String()).Order("created_at asc").Find(&agentClusters).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to find available agent cluster")
	}

	for _, agentCluster := range agentClusters {
		if !c.agentClusterConfig.ClusterConfig.IsClusterSchedulable(agentCluster.ClusterID) {
			continue
		}
		if !agentCluster.HasCapacity() {
			continue
		}
		return agentCluster, nil
	}

	return nil, nil
}

func (c *agentClusterService) CountByStatus(status []constants.AgentClusterStatus) ([]AgentClusterStatusCount, *errors.ServiceError) {
	dbConn := c.connectionFactory.New()
	var results []AgentClusterStatusCount
	if err := dbConn.Model(&dbapi.AgentCluster{}).Select("status as Status, count(1) as Count").Where("status in (?)", status).Group("status").Scan(&results).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count agent clusters by status")
	}

	// if there is no count returned for a status from the above query because
	// there are no clusters in such a status, we should return the count for
	// these as well to avoid any confusion
	if len(status) > 0 {
		countersMap := map[constants.AgentClusterStatus]int{}
		for _, c := range results {
			countersMap[c.Status] = c.Count
		}
		for _, s := range status {
			if _, ok := countersMap[s]; !ok {
				results = append(results, AgentClusterStatusCount{Status: s, Count: 0})
			}
		}
	}

	return results, nil
}

func (c *agentClusterService) CountAssignedRepositories(agentClusterID string) (int, *errors.ServiceError) {
	if agentClusterID == "" {
		return 0, errors.Validation("agentClusterID is undefined")
	}
	dbConn := c.connectionFactory.New()

	var count int64
	if err := dbConn.Model(&dbapi.RepositoryRequest{}).Where("agent_cluster_id = ?", agentClusterID).Count(&count).Error; err != nil {
		return 0, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count repositories for agent cluster")
	}

	return int(count), nil
}

func (c *agentClusterService) Delete(agentCluster *dbapi.AgentCluster) *errors.ServiceError {
	dbConn := c.connectionFactory.New()

	if err := dbConn.Delete(agentCluster).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "unable to delete agent cluster with id %s", agentCluster.ID)
	}

	return nil
}
