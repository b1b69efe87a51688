package agent_cluster_mgrs

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var agentClusterMetricsStatuses = []constants.AgentClusterStatus{
	constants.AgentClusterAccepted,
	constants.AgentClusterProvisioning,
	constants.AgentClusterReady,
	constants.AgentClusterFull,
	constants.AgentClusterFailed,
	constants.AgentClusterDeprovisioning,
	constants.AgentClusterCleanup,
}

// AgentClusterManager represents an agent cluster manager that periodically reconciles the agent cluster fleet
type AgentClusterManager struct {
	workers.BaseWorker
	agentClusterService services.AgentClusterService
	agentClusterConfig  *config.AgentClusterConfig
}

// NewAgentClusterManager creates a new agent cluster manager to reconcile the fleet
func NewAgentClusterManager(agentClusterService services.AgentClusterService, agentClusterConfig *config.AgentClusterConfig, reconciler workers.Reconciler) *AgentClusterManager {
	return &AgentClusterManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "agent_cluster",
			Reconciler: reconciler,
		},
		agentClusterService: agentClusterService,
		agentClusterConfig:  agentClusterConfig,
	}
}

// Start initializes the agent cluster manager to reconcile the fleet
func (k *AgentClusterManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling agent clusters to stop.
func (k *AgentClusterManager) Stop() {
	k.StopWorker(k)
}

func (k *AgentClusterManager) Reconcile() []error {
	glog.Infoln("reconciling agent clusters")
	var encounteredErrors []error

	statusErrors := k.setAgentClusterStatusCountMetric()
	if len(statusErrors) > 0 {
		encounteredErrors = append(encounteredErrors, statusErrors...)
	}

	if configurationErrors := k.reconcileClusterConfiguration(); len(configurationErrors) > 0 {
		encounteredErrors = append(encounteredErrors, configurationErrors...)
	}

	acceptedClusters, serviceErr := k.agentClusterService.ListByStatus(constants.AgentClusterAccepted)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list accepted agent clusters"))
	} else {
		glog.Infof("accepted agent clusters count = %d", len(acceptedClusters))
		for _, cluster := range acceptedClusters {
			glog.V(10).Infof("accepted agent cluster id = %s", cluster.ID)
			if err := k.agentClusterService.UpdateStatus(cluster, constants.AgentClusterProvisioning); err != nil {
				encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile accepted agent cluster %s", cluster.ID))
				continue
			}
		}
	}

	deprovisioningErrors := k.reconcileDeprovisioningClusters()
	if len(deprovisioningErrors) > 0 {
		encounteredErrors = append(encounteredErrors, deprovisioningErrors...)
	}

	cleanupErrors := k.reconcileCleanupClusters()
	if len(cleanupErrors) > 0 {
		encounteredErrors = append(encounteredErrors, cleanupErrors...)
	}

	return encounteredErrors
}

// reconcileClusterConfiguration registers the agent clusters declared in the
// configuration file and deprovisions the registered clusters the file no longer
// names.
func (k *AgentClusterManager) reconcileClusterConfiguration() []error {
	clusterConfig := k.agentClusterConfig.ClusterConfig
	if len(clusterConfig.GetManualClusters()) == 0 {
		return nil
	}

	var encounteredErrors []error

	registeredClusters, serviceErr := k.agentClusterService.ListByStatus(agentClusterMetricsStatuses...)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list registered agent clusters")}
	}

	clusterMap := map[string]dbapi.AgentCluster{}
	for _, cluster := range registeredClusters {
		clusterMap[cluster.ClusterID] = *cluster
	}

	for _, manualCluster := range clusterConfig.MissingClusters(clusterMap) {
		glog.Infof("registering agent cluster with cluster id %s from the configuration file", manualCluster.ClusterID)
		if err := k.agentClusterService.RegisterAgentCluster(&dbapi.AgentCluster{
			ClusterID:       manualCluster.ClusterID,
			Status:          manualCluster.Status.String(),
			MaxRepositories: manualCluster.RepositoryLimit,
		}); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to register agent cluster with cluster id %s", manualCluster.ClusterID))
		}
	}

	for _, excessClusterID := range clusterConfig.ExcessClusters(clusterMap) {
		cluster := clusterMap[excessClusterID]
		if cluster.Status == constants.AgentClusterDeprovisioning.String() || cluster.Status == constants.AgentClusterCleanup.String() {
			continue
		}
		glog.Infof("agent cluster with cluster id %s is no longer in the configuration file, deprovisioning", excessClusterID)
		if err := k.agentClusterService.UpdateStatus(&cluster, constants.AgentClusterDeprovisioning); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to deprovision agent cluster with cluster id %s", excessClusterID))
		}
	}

	return encounteredErrors
}

// reconcileDeprovisioningClusters moves deprovisioning agent clusters with no
// assigned repositories left on to cleanup. Clusters still carrying repositories
// wait for the accepted repository worker to reassign them.
func (k *AgentClusterManager) reconcileDeprovisioningClusters() []error {
	var encounteredErrors []error

	deprovisioningClusters, serviceErr := k.agentClusterService.ListByStatus(constants.AgentClusterDeprovisioning)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list deprovisioning agent clusters")}
	}

	for _, cluster := range deprovisioningClusters {
		glog.V(10).Infof("deprovisioning agent cluster id = %s", cluster.ID)
		assignedCount, serviceErr := k.agentClusterService.CountAssignedRepositories(cluster.ID)
		if serviceErr != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(serviceErr, "failed to count repositories assigned to agent cluster %s", cluster.ID))
			continue
		}
		if assignedCount > 0 {
			glog.V(10).Infof("agent cluster %s still has %d assigned repositories", cluster.ID, assignedCount)
			continue
		}
		if err := k.agentClusterService.UpdateStatus(cluster, constants.AgentClusterCleanup); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to move agent cluster %s to cleanup state", cluster.ID))
			continue
		}
	}

	return encounteredErrors
}

func (k *AgentClusterManager) reconcileCleanupClusters() []error {
	var encounteredErrors []error

	cleanupClusters, serviceErr := k.agentClusterService.ListByStatus(constants.AgentClusterCleanup)
	if serviceErr != nil {
		return []error{errors.Wrap(serviceErr, "failed to list cleanup agent clusters")}
	}

	for _, cluster := range cleanupClusters {
		glog.V(10).Infof("cleanup agent cluster id = %s", cluster.ID)
		if err := k.agentClusterService.Delete(cluster); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to delete agent cluster %s", cluster.ID))
			continue
		}
		metrics.IncreaseAgentClusterTotalOperationsCountMetric(constants.AgentClusterOperationDelete)
		metrics.IncreaseAgentClusterSuccessOperationsCountMetric(constants.AgentClusterOperationDelete)
	}

	return encounteredErrors
}

func (k *AgentClusterManager) setAgentClusterStatusCountMetric() []error {
	counters, err := k.agentClusterService.CountByStatus(agentClusterMetricsStatuses)
	if err != nil {
		return []error{errors.Wrap(err, "failed to count agent clusters by status")}
	}

	for _, c := range counters {
		metrics.UpdateAgentClustersStatusCountMetric(c.Status, c.Count)
	}

	return nil
}
