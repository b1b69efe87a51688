package services

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/botconfig"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/config"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/repositories/types"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/auth"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/metrics"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services"
	coreServices "github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/queryparser"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/services/signalbus"
)

var repositoryDeletionStatuses = []string{
	constants.RepositoryRequestStatusDeleting.String(),
	constants.RepositoryRequestStatusDeprovision.String(),
}

//go:generate moq -out repositoryservice_moq.go . RepositoryService
type RepositoryService interface {
	// RegisterRepositoryJob registers a new repository request. The request is
	// persisted in status accepted for the provisioning worker to pick up.
	RegisterRepositoryJob(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError
	// Get retrieves the repository request the given ctx has access to.
	Get(ctx context.Context, id string) (*dbapi.RepositoryRequest, *errors.ServiceError)
	// GetById retrieves the repository request without any permission check. You
	// should only use this if you are sure a permission check is not required.
	GetById(id string) (*dbapi.RepositoryRequest, *errors.ServiceError)
	List(ctx context.Context, listArgs *services.ListArguments) (dbapi.RepositoryList, *api.PagingMeta, *errors.ServiceError)
	ListByStatus(status ...constants.RepositoryStatus) ([]*dbapi.RepositoryRequest, *errors.ServiceError)
	// ListDueForScan returns ready repositories whose last scan is older than
	// the given interval, never-scanned ones first.
	ListDueForScan(interval time.Duration) (dbapi.RepositoryList, *errors.ServiceError)
	RegisterRepositoryDeprovisionJob(ctx context.Context, id string) *errors.ServiceError
	// DeprovisionRepositoriesForUsers registers all repositories of the given owners for deprovisioning
	DeprovisionRepositoriesForUsers(users []string) *errors.ServiceError
	// Delete hard deletes the repository request from the database.
	Delete(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError
	// UpdateStatus changes the status of the repository request. The returned
	// boolean tells whether an update was attempted: requests already
	// deprovisioning only move to deleting, and same-status updates are skipped.
	UpdateStatus(id string, status constants.RepositoryStatus) (bool, *errors.ServiceError)
	Update(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError
	// Updates changes the given fields of a repository request. This takes in a map so that even zero-fields can be updated.
	Updates(repositoryRequest *dbapi.RepositoryRequest, values map[string]interface{}) *errors.ServiceError
	DetectInstanceType(repositoryRequest *dbapi.RepositoryRequest) (types.RepositoryInstanceType, *errors.ServiceError)
	// VerifyAndUpdateBotConfig persists a replacement bot configuration document.
	// Repositories already deprovisioning or failed cannot be reconfigured.
	VerifyAndUpdateBotConfig(ctx context.Context, id string, doc api.JSON) (*dbapi.RepositoryRequest, *errors.ServiceError)
	// ResolveBotConfig expands the repository's configuration document against
	// the preset catalog.
	ResolveBotConfig(ctx context.Context, repositoryRequest *dbapi.RepositoryRequest) (*botconfig.ResolvedConfig, *errors.ServiceError)
	CountByStatus(status []constants.RepositoryStatus) ([]RepositoryStatusCount, error)
	// AssignAgentCluster books the repository onto the agent cluster.
	AssignAgentCluster(repositoryID string, agentClusterID string) *errors.ServiceError
}

var _ RepositoryService = &repositoryService{}

type repositoryService struct {
	connectionFactory   *db.ConnectionFactory
	repositoryConfig    *config.RepositoryConfig
	quotaServiceFactory QuotaServiceFactory
	presetCatalog       *botconfig.PresetCatalog
	bus                 signalbus.SignalBus
	mu                  sync.Mutex
}

func NewRepositoryService(connectionFactory *db.ConnectionFactory, repositoryConfig *config.RepositoryConfig, quotaServiceFactory QuotaServiceFactory, presetCatalog *botconfig.PresetCatalog, bus signalbus.SignalBus) *repositoryService {
	return &repositoryService{
		connectionFactory:   connectionFactory,
		repositoryConfig:    repositoryConfig,
		quotaServiceFactory: quotaServiceFactory,
		presetCatalog:       presetCatalog,
		bus:                 bus,
	}
}

func (k *repositoryService) DetectInstanceType(repositoryRequest *dbapi.RepositoryRequest) (types.RepositoryInstanceType, *errors.ServiceError) {
	quotaService, factoryErr := k.quotaServiceFactory.GetQuotaService(api.QuotaType(k.repositoryConfig.Quota.Type))
	if factoryErr != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, factoryErr, "unable to check quota")
	}

	hasQuota, err := quotaService.CheckIfQuotaIsDefinedForInstanceType(repositoryRequest, types.STANDARD)
	if err != nil {
		return "", err
	}
	if hasQuota {
		return types.STANDARD, nil
	}

	return types.DEVELOPER, nil
}

// reserveQuota reserves quota for the repository request. Developer instances
// are admitted one per owner when they are enabled at all.
func (k *repositoryService) reserveQuota(repositoryRequest *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (subscriptionId string, err *errors.ServiceError) {
	if instanceType == types.DEVELOPER {
		if !k.repositoryConfig.Quota.AllowDeveloperInstance {
			return "", errors.NewWithCause(errors.ErrorForbidden, err, "developer repository instances are not allowed")
		}

		// Only one developer instance is admitted. Let's check if the user already owns one
		dbConn := k.connectionFactory.New()
		var count int64
		if err := dbConn.Model(&dbapi.RepositoryRequest{}).
			Where("instance_type = ?", types.DEVELOPER).
			Where("owner = ?", repositoryRequest.Owner).
			Where("organisation_id = ?", repositoryRequest.OrganisationId).
			Count(&count).
			Error; err != nil {
			return "", errors.NewWithCause(errors.ErrorGeneral, err, "failed to count developer repository instances")
		}

		if count > 0 {
			return "", errors.MaximumAllowedInstanceReached("only one developer repository instance is allowed")
		}
	}

	quotaService, factoryErr := k.quotaServiceFactory.GetQuotaService(api.QuotaType(k.repositoryConfig.Quota.Type))
	if factoryErr != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, factoryErr, "unable to check quota")
	}
	subscriptionId, err = quotaService.ReserveQuota(repositoryRequest, instanceType)
	return subscriptionId, err
}

// RegisterRepositoryJob registers a new job in the repository requests table
func (k *repositoryService) RegisterRepositoryJob(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
	k.mu.Lock()
	defer k.mu.Unlock()
	// we need to pre-populate the ID to be able to reserve the quota
	repositoryRequest.ID = api.NewID()

	dbConn := k.connectionFactory.New()
	var count int64
	if err := dbConn.Model(&dbapi.RepositoryRequest{}).
		Where("name = ?", repositoryRequest.Name).
		Where("forge_type = ?", repositoryRequest.ForgeType).
		Where("organisation_id = ?", repositoryRequest.OrganisationId).
		Count(&count).
		Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to check repository request")
	}
	if count > 0 {
		return errors.Conflict("repository %s is already registered", repositoryRequest.Name)
	}

	instanceType, err := k.DetectInstanceType(repositoryRequest)
	if err != nil {
		return err
	}

	repositoryRequest.InstanceType = instanceType.String()

	subscriptionId, err := k.reserveQuota(repositoryRequest, instanceType)
	if err != nil {
		return err
	}

	repositoryRequest.Status = constants.RepositoryRequestStatusAccepted.String()
	repositoryRequest.SubscriptionId = subscriptionId

	// Persist the QuotaType to be able to dynamically pick the right quota service
	// implementation even on restarts. A typical usecase is when a repository A is
	// registered while --quota-type is ams and the API is later restarted with
	// quota-management-list: deleting repository A must still release the AMS
	// subscription it reserved.
	repositoryRequest.QuotaType = k.repositoryConfig.Quota.Type
	if err := dbConn.Create(repositoryRequest).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to create repository request") //hide the db error to http caller
	}

	metrics.IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationCreate)
	metrics.UpdateRepositoryRequestsStatusSinceCreatedMetric(constants.RepositoryRequestStatusAccepted, repositoryRequest.ID, time.Since(repositoryRequest.CreatedAt))

	// Wake up the reconcile loop...
	k.bus.Notify("accepted_repository")
	return nil
}

func (k *repositoryService) ListByStatus(status ...constants.RepositoryStatus) ([]*dbapi.RepositoryRequest, *errors.ServiceError) {
	if len(status) == 0 {
		return nil, errors.GeneralError("no status provided")
	}
	dbConn := k.connectionFactory.New()

	var repositories []*dbapi.RepositoryRequest

	if err := dbConn.Model(&dbapi.RepositoryRequest{}).Where("status IN (?)", status).Scan(&repositories).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list by status")
	}

	return repositories, nil
}

func (k *repositoryService) ListDueForScan(interval time.Duration) (dbapi.RepositoryList, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()

	var repositories dbapi.RepositoryList
	due := time.Now().Add(-interval)
	if err := dbConn.
		Where("status = ?", constants.RepositoryRequestStatusReady.String()).
		Where("last_scan_at IS NULL OR last_scan_at <= ?", due).
		Order("last_scan_at asc NULLS FIRST").
		Find(&repositories).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to list repositories due for scanning")
	}

	return repositories, nil
}

func (k *repositoryService) Get(ctx context.Context, id string) (*dbapi.RepositoryRequest, *errors.ServiceError) {
	if id == "" {
		return nil, errors.Validation("id is undefined")
	}

	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorUnauthenticated, err, "user not authenticated")
	}

	dbConn := k.connectionFactory.New().Where("id = ?", id)

	var user string
	if !auth.GetIsAdminFromContext(ctx) {
		user, _ = claims.GetUsername()
		if user == "" {
			return nil, errors.Unauthenticated("user not authenticated")
		}

		orgId, _ := claims.GetOrgId()
		filterByOrganisationId := auth.GetFilterByOrganisationFromContext(ctx)

		// filter by organisationId if a user is part of an organisation and is not allowed as a service account
		if filterByOrganisationId {
			dbConn = dbConn.Where("organisation_id = ?", orgId)
		} else {
			dbConn = dbConn.Where("owner = ?", user)
		}
	}

	var repositoryRequest dbapi.RepositoryRequest
	if err := dbConn.First(&repositoryRequest).Error; err != nil {
		resourceTypeStr := "RepositoryResource"
		if user != "" {
			resourceTypeStr = resourceTypeStr + " for user " + user
		}
		return nil, services.HandleGetError(resourceTypeStr, "id", id, err)
	}
	return &repositoryRequest, nil
}

func (k *repositoryService) GetById(id string) (*dbapi.RepositoryRequest, *errors.ServiceError) {
	if id == "" {
		return nil, errors.Validation("id is undefined")
	}

	dbConn := k.connectionFactory.New()
	var repositoryRequest dbapi.RepositoryRequest
	if err := dbConn.Where("id = ?", id).First(&repositoryRequest).Error; err != nil {
		return nil, services.HandleGetError("RepositoryResource", "id", id, err)
	}
	return &repositoryRequest, nil
}

// RegisterRepositoryDeprovisionJob registers a repository deprovision job in the repository requests table
func (k *repositoryService) RegisterRepositoryDeprovisionJob(ctx context.Context, id string) *errors.ServiceError {
	if id == "" {
		return errors.Validation("id is undefined")
	}

	// filter repository requests by owner to only retrieve requests of the current authenticated user
	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		return errors.NewWithCause(errors.ErrorUnauthenticated, err, "user not authenticated")
	}

	dbConn := k.connectionFactory.New()

	if auth.GetIsAdminFromContext(ctx) {
		dbConn = dbConn.Where("id = ?", id)
	} else if claims.IsOrgAdmin() {
		orgId, _ := claims.GetOrgId()
		dbConn = dbConn.Where("id = ?", id).Where("organisation_id = ?", orgId)
	} else {
		user, _ := claims.GetUsername()
		dbConn = dbConn.Where("id = ?", id).Where("owner = ? ", user)
	}

	var repositoryRequest dbapi.RepositoryRequest
	if err := dbConn.First(&repositoryRequest).Error; err != nil {
		return services.HandleGetError("RepositoryResource", "id", id, err)
	}
	metrics.IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationDeprovision)

	deprovisionStatus := constants.RepositoryRequestStatusDeprovision

	if executed, err := k.UpdateStatus(id, deprovisionStatus); executed {
		if err != nil {
			return services.HandleGetError("RepositoryResource", "id", id, err)
		}
		metrics.IncreaseRepositorySuccessOperationsCountMetric(constants.RepositoryOperationDeprovision)
		metrics.UpdateRepositoryRequestsStatusSinceCreatedMetric(deprovisionStatus, repositoryRequest.ID, time.Since(repositoryRequest.CreatedAt))

		// reconcile deleting repositories
		_ = db.AddPostCommitAction(ctx, func() {
			k.bus.Notify("deleting_repository")
		})
	}

	return nil
}

func (k *repositoryService) DeprovisionRepositoriesForUsers(users []string) *errors.ServiceError {
	dbConn := k.connectionFactory.New().
		Model(&dbapi.RepositoryRequest{}).
		Where("owner IN (?)", users).
		Where("status NOT IN (?)", repositoryDeletionStatuses).
		Update("status", constants.RepositoryRequestStatusDeprovision)

	err := dbConn.Error
	if err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "Unable to deprovision repository requests for users")
	}

	if dbConn.RowsAffected >= 1 {
		glog.Infof("%v repositories are now deprovisioning for users %v", dbConn.RowsAffected, users)
		var counter int64 = 0
		for ; counter < dbConn.RowsAffected; counter++ {
			metrics.IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationDeprovision)
			metrics.IncreaseRepositorySuccessOperationsCountMetric(constants.RepositoryOperationDeprovision)
		}
		// Wake up the reconcile loop...
		k.bus.Notify("deleting_repository")
	}

	return nil
}

func (k *repositoryService) Delete(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
	dbConn := k.connectionFactory.New()

	// soft delete the repository request
	if err := dbConn.Delete(repositoryRequest).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "unable to delete repository request with id %s", repositoryRequest.ID)
	}

	metrics.IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationDelete)
	metrics.IncreaseRepositorySuccessOperationsCountMetric(constants.RepositoryOperationDelete)

	return nil
}

// List returns all repository requests the context's user is allowed to see.
func (k *repositoryService) List(ctx context.Context, listArgs *services.ListArguments) (dbapi.RepositoryList, *api.PagingMeta, *errors.ServiceError) {
	var repositoryRequestList dbapi.RepositoryList
	dbConn := k.connectionFactory.New()
	pagingMeta := &api.PagingMeta{
		Page: listArgs.Page,
		Size: listArgs.Size,
	}

	claims, err := auth.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, nil, errors.NewWithCause(errors.ErrorUnauthenticated, err, "user not authenticated")
	}

	if !auth.GetIsAdminFromContext(ctx) {
		user, _ := claims.GetUsername()
		if user == "" {
			return nil, nil, errors.Unauthenticated("user not authenticated")
		}

		orgId, _ := claims.GetOrgId()
		filterByOrganisationId := auth.GetFilterByOrganisationFromContext(ctx)

		if filterByOrganisationId {
			dbConn = dbConn.Where("organisation_id = ?", orgId)
		} else {
			dbConn = dbConn.Where("owner = ?", user)
		}
	}

	// Apply search query
	if len(listArgs.Search) > 0 {
		searchDbQuery, err := coreServices.NewQueryParser().Parse(listArgs.Search)
		if err != nil {
			return repositoryRequestList, pagingMeta, errors.NewWithCause(errors.ErrorFailedToParseSearch, err, "Unable to list repository requests: %s", err.Error())
		}
		dbConn = dbConn.Where(searchDbQuery.Query, searchDbQuery.Values...)
	}

	if len(listArgs.OrderBy) == 0 {
		// default orderBy name
		dbConn = dbConn.Order("name")
	}

	// Set the order by arguments if any
	for _, orderByArg := range listArgs.OrderBy {
		dbConn = dbConn.Order(orderByArg)
	}

	// set total, limit and paging (based on https://gitlab.cee.redhat.com/service/api-guidelines#user-content-paging)
	total := int64(pagingMeta.Total)
	dbConn.Model(&repositoryRequestList).Count(&total)
	pagingMeta.Total = int(total)
	if pagingMeta.Size > pagingMeta.Total {
		pagingMeta.Size = pagingMeta.Total
	}
	dbConn = dbConn.Offset((pagingMeta.Page - 1) * pagingMeta.Size).Limit(pagingMeta.Size)

	// execute query
	if err := dbConn.Find(&repositoryRequestList).Error; err != nil {
		return repositoryRequestList, pagingMeta, errors.NewWithCause(errors.ErrorGeneral, err, "Unable to list repository requests")
	}

	return repositoryRequestList, pagingMeta, nil
}

func (k *repositoryService) Update(repositoryRequest *dbapi.RepositoryRequest) *errors.ServiceError {
	dbConn := k.connectionFactory.New().
		Model(repositoryRequest).
		Where("status not IN (?)", repositoryDeletionStatuses) // ignore updates of repositories under deletion

	if err := dbConn.Updates(repositoryRequest).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "Failed to update repository")
	}

	return nil
}

func (k *repositoryService) Updates(repositoryRequest *dbapi.RepositoryRequest, fields map[string]interface{}) *errors.ServiceError {
	dbConn := k.connectionFactory.New().
		Model(repositoryRequest).
		Where("status not IN (?)", repositoryDeletionStatuses) // ignore updates of repositories under deletion

	if err := dbConn.Updates(fields).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "Failed to update repository")
	}

	return nil
}

func (k *repositoryService) UpdateStatus(id string, status constants.RepositoryStatus) (bool, *errors.ServiceError) {
	dbConn := k.connectionFactory.New()

	repository, err := k.GetById(id)
	if err != nil {
		return true, errors.NewWithCause(errors.ErrorGeneral, err, "failed to update status")
	}

	// only allow to change the status to "deleting" if the repository is already in "deprovision" status
	if repository.Status == constants.RepositoryRequestStatusDeprovision.String() && status != constants.RepositoryRequestStatusDeleting {
		return false, errors.GeneralError("failed to update status: repository is deprovisioning")
	}

	if repository.Status == status.String() {
		// no update needed
		return false, errors.GeneralError("failed to update status: the repository %s is already in %s state", id, status.String())
	}

	if err := dbConn.Model(&dbapi.RepositoryRequest{Meta: api.Meta{ID: id}}).Update("status", status).Error; err != nil {
		return true, errors.NewWithCause(errors.ErrorGeneral, err, "Failed to update repository status")
	}

	return true, nil
}

func (k *repositoryService) VerifyAndUpdateBotConfig(ctx context.Context, id string, doc api.JSON) (*dbapi.RepositoryRequest, *errors.ServiceError) {
	repository, err := k.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch repository.Status {
	case constants.RepositoryRequestStatusDeprovision.String(),
		constants.RepositoryRequestStatusDeleting.String(),
		constants.RepositoryRequestStatusFailed.String():
		return nil, errors.Conflict("repository %s is in %s state and cannot be reconfigured", id, repository.Status)
	}

	if err := botconfig.Validate(doc); err != nil {
		return nil, err
	}

	// reject documents whose presets cannot be resolved before persisting them
	cfg, parseErr := botconfig.Parse(doc)
	if parseErr != nil {
		return nil, errors.MalformedBotConfig("failed to parse bot configuration: %v", parseErr)
	}
	if _, err := k.presetCatalog.Resolve(ctx, cfg); err != nil {
		return nil, err
	}

	repository.BotConfig = doc
	if err := k.Updates(repository, map[string]interface{}{"bot_config": doc}); err != nil {
		return nil, err
	}
	metrics.IncreaseRepositoryTotalOperationsCountMetric(constants.RepositoryOperationUpdate)
	metrics.IncreaseRepositorySuccessOperationsCountMetric(constants.RepositoryOperationUpdate)

	return repository, nil
}

func (k *repositoryService) ResolveBotConfig(ctx context.Context, repositoryRequest *dbapi.RepositoryRequest) (*botconfig.ResolvedConfig, *errors.ServiceError) {
	cfg, parseErr := botconfig.Parse(repositoryRequest.BotConfig)
	if parseErr != nil {
		return nil, errors.MalformedBotConfig("stored bot configuration of repository %s does not parse: %v", repositoryRequest.ID, parseErr)
	}
	resolved, err := k.presetCatalog.Resolve(ctx, cfg)
	if err != nil {
		return nil, err
	}
	// the scanner falls back to the repository default branch when the
	// configuration does not name base branches
	if len(resolved.BaseBranches) == 0 && repositoryRequest.DefaultBranch != "" {
		resolved.BaseBranches = []string{repositoryRequest.DefaultBranch}
	}
	return resolved, nil
}

func (k *repositoryService) AssignAgentCluster(repositoryID string, agentClusterID string) *errors.ServiceError {
	dbConn := k.connectionFactory.New()
	if err := dbConn.Model(&dbapi.RepositoryRequest{Meta: api.Meta{ID: repositoryID}}).Update("agent_cluster_id", agentClusterID).Error; err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to assign agent cluster to repository %s", repositoryID)
	}
	return nil
}

type RepositoryStatusCount struct {
	Status constants.RepositoryStatus
	Count  int
}

func (k *repositoryService) CountByStatus(status []constants.RepositoryStatus) ([]RepositoryStatusCount, error) {
	dbConn := k.connectionFactory.New()
	var results []RepositoryStatusCount
	if err := dbConn.Model(&dbapi.RepositoryRequest{}).Select("status as Status, count(1) as Count").Where("status in (?)", status).Group("status").Scan(&results).Error; err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "Failed to count repositories")
	}

	// if there is no count returned for a status from the above query because there are no
	// repositories in such a status, we should return the count for these as well to avoid any confusion
	if len(status) > 0 {
		countersMap := map[constants.RepositoryStatus]int{}
		for _, r := range results {
			countersMap[r.Status] = r.Count
		}
		for _, s := range status {
			if _, ok := countersMap[s]; !ok {
				results = append(results, RepositoryStatusCount{Status: s, Count: 0})
			}
		}
	}

	return results, nil
}
