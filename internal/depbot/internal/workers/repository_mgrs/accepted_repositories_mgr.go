package repository_mgrs

import (
	"time"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services/phase"
	svcErrors "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/logger"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AcceptedRepositoryManager represents a repository manager that periodically reconciles accepted repository requests
type AcceptedRepositoryManager struct {
	workers.BaseWorker
	repositoryService   services.RepositoryService
	agentClusterService services.AgentClusterService
}

// NewAcceptedRepositoryManager creates a new repository manager to reconcile accepted repositories
func NewAcceptedRepositoryManager(repositoryService services.RepositoryService, agentClusterService services.AgentClusterService, reconciler workers.Reconciler) *AcceptedRepositoryManager {
	return &AcceptedRepositoryManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "accepted_repository",
			Reconciler: reconciler,
		},
		repositoryService:   repositoryService,
		agentClusterService: agentClusterService,
	}
}

// Start initializes the repository manager to reconcile accepted repository requests
func (k *AcceptedRepositoryManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling accepted repository requests to stop.
func (k *AcceptedRepositoryManager) Stop() {
	k.StopWorker(k)
}

func (k *AcceptedRepositoryManager) Reconcile() []error {
	glog.Infoln("reconciling accepted repositories")
	var encounteredErrors []error

	acceptedRepositories, serviceErr := k.repositoryService.ListByStatus(constants.RepositoryRequestStatusAccepted)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list accepted repositories"))
	} else {
		glog.Infof("accepted repositories count = %d", len(acceptedRepositories))
	}

	for _, repository := range acceptedRepositories {
		glog.V(10).Infof("accepted repository id = %s", repository.ID)
		metrics.UpdateRepositoryRequestsStatusSinceCreatedMetric(constants.RepositoryRequestStatusAccepted, repository.ID, time.Since(repository.CreatedAt))
		if err := k.reconcileAcceptedRepository(repository); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile accepted repository %s", repository.ID))
			continue
		}
	}

	return encounteredErrors
}

func (k *AcceptedRepositoryManager) reconcileAcceptedRepository(repository *dbapi.RepositoryRequest) error {
	cluster, err := k.agentClusterService.FindAvailableCluster()
	if err != nil {
		return errors.Wrapf(err, "failed to find agent cluster for repository request %s", repository.ID)
	}

	if cluster == nil {
		logger.Logger.Warningf("No available agent cluster found for repository with id %s", repository.ID)
		return nil
	}

	repository.AgentClusterID = cluster.ID

	glog.Infof("repository with id %s is assigned to agent cluster with id %s", repository.ID, repository.AgentClusterID)
	if _, err := phase.PerformRepositoryOperation(repository, phase.PrepareRepository, func(repository *dbapi.RepositoryRequest) *svcErrors.ServiceError {
		return k.repositoryService.Update(repository)
	}); err != nil {
		return errors.Wrapf(err, "failed to update repository %s with agent cluster details", repository.ID)
	}
	return nil
}
