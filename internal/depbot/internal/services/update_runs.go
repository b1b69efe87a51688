package services

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/signalbus"
)

// updateRunFinalStatuses are the statuses a run never leaves
var updateRunFinalStatuses = []string{
	constants.UpdateRunStatusMerged.String(),
	constants.UpdateRunStatusClosed.String(),
	constants.UpdateRunStatusFailed.String(),
}

//go:generate moq -out updaterunservice_moq.go . UpdateRunService
type UpdateRunService interface {
	Create(updateRun *dbapi.UpdateRun) (*dbapi.UpdateRun, *errors.ServiceError)
	GetById(id string) (*dbapi.UpdateRun, *errors.ServiceError)
	// EnsureRun records the update the scanner found, keeping at most one live
	// run per repository, manager, dependency and base branch. A pending run is
	// refreshed in place when the scanner finds a newer version, a run whose
	// pull request is already on the forge is left alone, and finished runs do
	// not block a new one. Returns true when a run was created or refreshed.
	EnsureRun(updateRun *dbapi.UpdateRun) (bool, *errors.ServiceError)
	// List returns the runs of the given repository, paged. An empty
	// repositoryID lists runs across all repositories.
	List(repositoryID string, listArgs *services.ListArguments) (dbapi.UpdateRunList, *api.PagingMeta, *errors.ServiceError)
	ListByRepository(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError)
	ListByStatus(status ...constants.UpdateRunStatus) (dbapi.UpdateRunList, *errors.ServiceError)
	// CountOpenForRepository counts the runs whose pull request is open or being
	// opened, for the per-repository concurrent PR limit.
	CountOpenForRepository(repositoryID string) (int, *errors.ServiceError)
	Update(updateRun *dbapi.UpdateRun) *errors.ServiceError
	Updates(updateRun *dbapi.UpdateRun, values map[string]interface{}) *errors.ServiceError
	UpdateStatus(id string, status constants.UpdateRunStatus) (bool, *errors.ServiceError)
	CountByStatus(status []constants.UpdateRunStatus) ([]UpdateRunStatusCount, error)
	// DeleteByRepository removes all runs of a repository when it is
	// deprovisioned.
	DeleteByRepository(repositoryID string) *errors.ServiceError
}

type updateRunService struct {
	connectionFactory *db.ConnectionFactory
	bus               signalbus.SignalBus
}

var _ UpdateRunService = &updateRunService{}

func NewUpdateRunService(connectionFactory *db.ConnectionFactory, bus signalbus.SignalBus) *updateRunService {
	return &updateRunService{
		connectionFactory: connectionFactory,
		bus:               bus,
	}
}

func (k *updateRunService) Create(updateRun *dbapi.UpdateRun) (*dbapi.UpdateRun, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()

	if updateRun.Status == "" {
		updateRun.Status = constants.UpdateRunStatusPending.String()
	}

	if err := dbConn.Create(updateRun).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to create update run")
	}

	return updateRun, nil
}

func (k *updateRunService) GetById(id string) (*dbapi.UpdateRun, *errors.ServiceError) {
	if id == "" {
		return nil, errors.Validation("id is undefined")
	}

	dbConn := k.connectionFactory.New()
	var updateRun dbapi.UpdateRun
	if err := dbConn.Where("id = ?", id).First(&updateRun).Error; err != nil {
		return nil, services.HandleGetError("UpdateRun", "id", id, err)
	}
	return &updateRun, nil
}

func (k *updateRunService) EnsureRun(updateRun *dbapi.UpdateRun) (bool, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()

	var existing dbapi.UpdateRun
	err := dbConn.
		Where("repository_id = ?", updateRun.RepositoryID).
		Where("manager = ?", updateRun.Manager).
		Where("dep_name = ?", updateRun.DepName).
		Where("base_branch = ?", updateRun.BaseBranch).
		Where("status NOT IN (?)", updateRunFinalStatuses).
		First(&existing).Error
	if err != nil {
		if !services.IsRecordNotFoundError(err) {
			return false, errors.NewWithCause(errors.ErrorGeneral, err, "failed to look up update run for %s %s", updateRun.Manager, updateRun.DepName)
		}
		updateRun.Status = constants.UpdateRunStatusPending.String()
		if err := dbConn.Create(updateRun).Error; err != nil {
			return false, errors.NewWithCause(errors.ErrorGeneral, err, "failed to create update run for %s %s", updateRun.Manager, updateRun.DepName)
		}
		// Wake up the reconcile loop...
		k.bus.Notify("pending_update_run")
		return true, nil
	}

	if existing.NewVersion == updateRun.NewVersion {
		return false, nil
	}

	// the pull request is already on the forge, the next scan after it finishes
	// will pick the newer version up
	if existing.Status != constants.UpdateRunStatusPending.String() {
		return false, nil
	}

	values := map[string]interface{}{
		"current_version": updateRun.CurrentVersion,
		"new_version":     updateRun.NewVersion,
		"update_type":     updateRun.UpdateType,
		"branch_name":     dbapi.UpdateBranchName(updateRun.Manager, updateRun.DepName, updateRun.NewVersion),
	}
	if err := dbConn.Model(&dbapi.UpdateRun{Meta: api.Meta{ID: existing.ID}}).Updates(values).Error; err != nil {
		return false, errors.NewWithCause(errors.ErrorGeneral, err, "failed to refresh update run %s", existing.ID)
	}

	// Wake up the reconcile loop...
	k.bus.Notify("pending_update_run")
	return true, nil
}

func (k *updateRunService) List(repositoryID string, listArgs *services.ListArguments) (dbapi.UpdateRunList, *api.PagingMeta, *errors.ServiceError) {
	var updateRunList dbapi.UpdateRunList
	dbConn := k.connectionFactory.New()
	pagingMeta := &api.PagingMeta{
		Page: listArgs.Page,
		Size: listArgs.Size,
	}

	if repositoryID != "" {
		dbConn = dbConn.Where("repository_id = ?", repositoryID)
	}

	if len(listArgs.OrderBy) == 0 {
		// newest runs first
		dbConn = dbConn.Order("created_at desc")
	}
	for _, orderByArg := range listArgs.OrderBy {
		dbConn = dbConn.Order(orderByArg)
	}

	total := int64(pagingMeta.Total)
	dbConn.Model(&updateRunList).Count(&total)
	pagingMeta.Total = int(total)
	if pagingMeta.Size > pagingMeta.Total {
		pagingMeta.Size = pagingMeta.Total
	}
	dbConn = dbConn.Offset((pagingMeta.Page - 1) * pagingMeta.Size).Limit(pagingMeta.Size)

	if err := dbConn.Find(&updateRunList).Error; err != nil {
		return updateRunList, pagingMeta, errors.NewWithCause(errors.ErrorGeneral, err, "Unable to list update runs")
	}

	return updateRunList, pagingMeta, nil
}

func (k *updateRunService) ListByRepository(repositoryID string) (dbapi.UpdateRunList, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()
	var runs dbapi.UpdateRunList
	if err := dbConn.Where("repository_id = ?", repositoryID).Order("created_at asc").Find(&runs).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list update runs of repository %s", repositoryID)
	}
	return runs, nil
}

func (k *updateRunService) ListByStatus(status ...constants.UpdateRunStatus) (dbapi.UpdateRunList, *errors.ServiceError) {
	if len(status) == 0 {
		return nil, errors.GeneralError("no status provided")
	}
	dbConn := k.connectionFactory.New()

	var updateRuns dbapi.UpdateRunList
	if err := dbConn.Model(&dbapi.UpdateRun{}).Where("status IN (?)", status).Scan(&updateRuns).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list by status")
	}

	return updateRuns, nil
}

func (k *updateRunService) CountOpenForRepository(repositoryID string) (int, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()
	var count int64
	if err := dbConn.Model(&dbapi.UpdateRun{}).
		Where("repository_id = ?", repositoryID).
		Where("status IN (?)", []string{
			constants.UpdateRunStatusOpening.String(),
			constants.UpdateRunStatusOpen.String(),
		}).
		Count(&count).Error; err != nil {
		return 0, errors.NewWithCause(errors.ErrorGeneral, err, "failed to count open update runs of repository %s", repositoryID)
	}
	return int(count), nil
}

func (k *updateRunService) Update(updateRun *dbapi.UpdateRun) *errors.ServiceError {
	dbConn := k.connectionFactory.New().
		Model(updateRun).
		Where("status not IN (?)", updateRunFinalStatuses) // ignore updates of finished runs

	if err := dbConn.Updates(updateRun).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "Failed to update update run")
	}

	return nil
}

func (k *updateRunService) Updates(updateRun *dbapi.UpdateRun, values map[string]interface{}) *errors.ServiceError {
	dbConn := k.connectionFactory.New().
		Model(updateRun).
		Where("status not IN (?)", updateRunFinalStatuses)

	if err := dbConn.Updates(values).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "Failed to update update run")
	}

	return nil
}

func (k *updateRunService) UpdateStatus(id string, status constants.UpdateRunStatus) (bool, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()

	if updateRun, err := k.GetById(id); err != nil {
		return true, errors.NewWithCause(errors.ErrorGeneral, err, "failed to update status")
	} else {
		// finished runs stay finished
		if constants.UpdateRunStatus(updateRun.Status).IsFinal() {
			return false, errors.GeneralError("failed to update status: update run %s is already %s", id, updateRun.Status)
		}

		if updateRun.Status == status.String() {
			// no update needed
			return false, errors.GeneralError("failed to update status: the update run %s is already in %s state", id, status.String())
		}
	}

	if err := dbConn.Model(&dbapi.UpdateRun{Meta: api.Meta{ID: id}}).Update("status", status).Error; err != nil {
		return true, errors.NewWithCause(errors.ErrorGeneral, err, "Failed to update update run status")
	}

	return true, nil
}

type UpdateRunStatusCount struct {
	Status constants.UpdateRunStatus
	Count  int
}

func (k *updateRunService) CountByStatus(status []constants.UpdateRunStatus) ([]UpdateRunStatusCount, error) {
	dbConn := k.connectionFactory.New()
	var results []UpdateRunStatusCount
	if err := dbConn.Model(&dbapi.UpdateRun{}).Select("status as Status, count(1) as Count").Where("status in (?)", status).Group("status").Scan(&results).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "Failed to count update runs")
	}

	// if there is no count returned for a status from the above query because
	// there is no update run in that status, we should return the count for
	// these as well to avoid any confusion
	if len(status) > 0 {
		countersMap := map[constants.UpdateRunStatus]int{}
		for _, c := range results {
			countersMap[c.Status] = c.Count
		}
		for _, s := range status {
			if _, ok := countersMap[s]; !ok {
				results = append(results, UpdateRunStatusCount{Status: s, Count: 0})
			}
		}
	}

	return results, nil
}

func (k *updateRunService) DeleteByRepository(repositoryID string) *errors.ServiceError {
	dbConn := k.connectionFactory.New()
	if err := dbConn.Where("repository_id = ?", repositoryID).Delete(&dbapi.UpdateRun{}).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to delete update runs of repository %s", repositoryID)
	}
	return nil
}
