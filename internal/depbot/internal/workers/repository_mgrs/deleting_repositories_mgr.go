package repository_mgrs

import (
	"context"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/clients/forge"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services/phase"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	svcErrors "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/workers"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DeletingRepositoryManager represents a repository manager that periodically reconciles repository requests on their way out
type DeletingRepositoryManager struct {
	workers.BaseWorker
	repositoryService   services.RepositoryService
	updateRunService    services.UpdateRunService
	quotaServiceFactory services.QuotaServiceFactory
	forgeClientFactory  forge.ClientFactory
}

// NewDeletingRepositoryManager creates a new repository manager to reconcile deleting repositories
func NewDeletingRepositoryManager(repositoryService services.RepositoryService, updateRunService services.UpdateRunService, quotaServiceFactory services.QuotaServiceFactory, forgeClientFactory forge.ClientFactory, reconciler workers.Reconciler) *DeletingRepositoryManager {
	return &DeletingRepositoryManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "deleting_repository",
			Reconciler: reconciler,
		},
		repositoryService:   repositoryService,
		updateRunService:    updateRunService,
		quotaServiceFactory: quotaServiceFactory,
		forgeClientFactory:  forgeClientFactory,
	}
}

// Start initializes the repository manager to reconcile deleting repository requests
func (k *DeletingRepositoryManager) Start() {
	k.StartWorker(k)
}

// Stop causes the process for reconciling deleting repository requests to stop.
func (k *DeletingRepositoryManager) Stop() {
	k.StopWorker(k)
}

func (k *DeletingRepositoryManager) Reconcile() []error {
	glog.Infoln("reconciling deleting repositories")
	var encounteredErrors []error

	// Repositories in a "deprovision" state were asked to be removed through the API.
	// This reconcile phase closes the update pull requests still open on the forge,
	// releases the reserved quota, removes the recorded update runs and soft deletes
	// the repository record from the database.
	deletingRepositories, serviceErr := k.repositoryService.ListByStatus(constants.RepositoryRequestStatusDeleting)
	originalTotalRepositoriesInDeleting := len(deletingRepositories)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list deleting repository requests"))
	} else {
		glog.Infof("%s repositories count = %d", constants.RepositoryRequestStatusDeleting.String(), originalTotalRepositoriesInDeleting)
	}

	deprovisioningRepositories, serviceErr := k.repositoryService.ListByStatus(constants.RepositoryRequestStatusDeprovision)
	if serviceErr != nil {
		encounteredErrors = append(encounteredErrors, errors.Wrap(serviceErr, "failed to list repository deprovisioning requests"))
	} else {
		glog.Infof("%s repositories count = %d", constants.RepositoryRequestStatusDeprovision.String(), len(deprovisioningRepositories))
	}

	deletingRepositories = append(deletingRepositories, deprovisioningRepositories...)

	for _, repository := range deletingRepositories {
		glog.V(10).Infof("deleting repository id = %s", repository.ID)
		if err := k.reconcileDeletingRepository(repository); err != nil {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile deleting repository request %s", repository.ID))
			continue
		}
	}

	return encounteredErrors
}

func (k *DeletingRepositoryManager) reconcileDeletingRepository(repository *dbapi.RepositoryRequest) error {
	if repository.Status == constants.RepositoryRequestStatusDeprovision.String() {
		if _, err := phase.PerformRepositoryOperation(repository, phase.DeleteRepository, func(repository *dbapi.RepositoryRequest) *svcErrors.ServiceError {
			_, updateErr := k.repositoryService.UpdateStatus(repository.ID, constants.RepositoryRequestStatusDeleting)
			return updateErr
		}); err != nil {
			return errors.Wrapf(err, "failed to move repository %s to deleting state", repository.ID)
		}
	}

	if err := k.closeOpenPullRequests(repository); err != nil {
		return err
	}

	quotaService, factoryErr := k.quotaServiceFactory.GetQuotaService(api.QuotaType(repository.QuotaType))
	if factoryErr != nil {
		return factoryErr
	}
	err := quotaService.DeleteQuota(repository.SubscriptionId)
	if err != nil {
		return errors.Wrapf(err, "failed to delete subscription id %s for repository %s", repository.SubscriptionId, repository.ID)
	}

	if err := k.updateRunService.DeleteByRepository(repository.ID); err != nil {
		return errors.Wrapf(err, "failed to delete update runs of repository %s", repository.ID)
	}

	if err := k.repositoryService.Delete(repository); err != nil {
		return errors.Wrapf(err, "failed to delete repository %s", repository.ID)
	}
	return nil
}

// closeOpenPullRequests closes the update pull requests the bot still has open on
// the forge. Pull requests the forge no longer knows are skipped.
func (k *DeletingRepositoryManager) closeOpenPullRequests(repository *dbapi.RepositoryRequest) error {
	updateRuns, serviceErr := k.updateRunService.ListByRepository(repository.ID)
	if serviceErr != nil {
		return errors.Wrapf(serviceErr, "failed to list update runs of repository %s", repository.ID)
	}

	var client forge.Client
	for _, updateRun := range updateRuns {
		if updateRun.Status != constants.UpdateRunStatusOpen.String() || updateRun.PRNumber == 0 {
			continue
		}
		if client == nil {
			var err error
			client, err = k.forgeClientFactory.GetClient(repository.ForgeType, repository.OrganisationId)
			if err != nil {
				return errors.Wrapf(err, "failed to get %s forge client for repository %s", repository.ForgeType, repository.ID)
			}
		}
		if err := client.ClosePullRequest(context.Background(), repository.Name, updateRun.PRNumber); err != nil && !forge.IsNotFound(err) {
			return errors.Wrapf(err, "failed to close pull request %d of repository %s", updateRun.PRNumber, repository.ID)
		}
	}
	return nil
}
