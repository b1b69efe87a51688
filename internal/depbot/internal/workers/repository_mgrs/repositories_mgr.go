package repository_mgrs

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/acl"
	serviceErr "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// we do not add "deleting" to the list as repositories are soft deleted once the
// deleting worker is done with them, so no need to count them here.
var repositoryMetricsStatuses = []constants.RepositoryStatus{
	constants.RepositoryRequestStatusAccepted,
	constants.RepositoryRequestStatusPreparing,
	constants.RepositoryRequestStatusReady,
	constants.RepositoryRequestStatusPaused,
	constants.RepositoryRequestStatusDeprovision,
	constants.RepositoryRequestStatusFailed,
}

// RepositoryManager represents a repository manager that periodically reconciles repository requests
type RepositoryManager struct {
	workers.BaseWorker
	repositoryService       services.RepositoryService
	accessControlListConfig *acl.AccessControlListConfig
}

// NewRepositoryManager creates a new repository manager to reconcile repositories
func NewRepositoryManager(repositoryService services.RepositoryService, accessControlList *acl.AccessControlListConfig, reconciler workers.Reconciler) *RepositoryManager {
	return &RepositoryManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "general_repository_worker",
			Reconciler: reconciler,
		},
		repositoryService:       repositoryService,
		accessControlListConfig: accessControlList,
	}
}

// Start initializes the repository manager to reconcile repository requests
func (k *RepositoryManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling repository requests to stop.
func (k *RepositoryManager) Stop() {
	k.StopWorker(k)
}

func (k *RepositoryManager) Reconcile() []error {
	glog.Infoln("reconciling repositories")
	var encounteredErrors []error

	// record the metrics at the beginning of the reconcile loop as some of the states
	// like "accepted" will likely be gone after one loop. Recording them at the beginning
	// should give us more accurate metrics
	statusErrors := k.setRepositoryStatusCountMetric()
	if len(statusErrors) > 0 {
		encounteredErrors = append(encounteredErrors, statusErrors...)
	}

	// delete repositories of denied owners
	accessControlListConfig := k.accessControlListConfig
	if accessControlListConfig.EnableDenyList {
		glog.Infoln("reconciling denied repository owners")
		repositoryDeprovisioningForDeniedOwnersErr := k.reconcileDeniedRepositoryOwners(accessControlListConfig.DenyList)
		if repositoryDeprovisioningForDeniedOwnersErr != nil {
			wrappedError := errors.Wrapf(repositoryDeprovisioningForDeniedOwnersErr, "failed to deprovision repositories for denied owners %s", accessControlListConfig.DenyList)
			encounteredErrors = append(encounteredErrors, wrappedError)
		}
	}

	return encounteredErrors
}

func (k *RepositoryManager) reconcileDeniedRepositoryOwners(deniedUsers acl.DeniedUsers) *serviceErr.ServiceError {
	if len(deniedUsers) < 1 {
		return nil
	}

	return k.repositoryService.DeprovisionRepositoriesForUsers(deniedUsers)
}

func (k *RepositoryManager) setRepositoryStatusCountMetric() []error {
	counters, err := k.repositoryService.CountByStatus(repositoryMetricsStatuses)
	if err != nil {
		return []error{errors.Wrap(err, "failed to count repositories by status")}
	}

	for _, c := range counters {
		metrics.UpdateRepositoryRequestsStatusCountMetric(c.Status, c.Count)
	}

	return nil
}
