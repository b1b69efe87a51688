package quota

import (
	"fmt"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/quota_management"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/repositories/types"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

// billing model granted quota entries default to when the quota list does not
// spell one out
const standardBillingModelID = "standard"

type QuotaManagementListService struct {
	connectionFactory   *db.ConnectionFactory
	quotaManagementList *quota_management.QuotaManagementListConfig
}

func (q QuotaManagementListService) CheckIfQuotaIsDefinedForInstanceType(repository *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (bool, *errors.ServiceError) {
	username := repository.Owner
	orgId := repository.OrganisationId
	org, orgFound := q.quotaManagementList.QuotaList.Organisations.GetById(orgId)
	userIsRegistered := false
	if orgFound && org.IsUserRegistered(username) {
		userIsRegistered = true
	} else {
		_, userFound := q.quotaManagementList.QuotaList.ServiceAccounts.GetByUsername(username)
		userIsRegistered = userFound
	}

	// allow user defined in quota list to register standard repositories
	if userIsRegistered && instanceType == types.STANDARD {
		return true, nil
	} else if !userIsRegistered && instanceType == types.DEVELOPER { // allow user who are not in quota list to register developer repositories
		return true, nil
	}

	return false, nil
}

func (q QuotaManagementListService) ReserveQuota(repository *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (string, *errors.ServiceError) {
	if !q.quotaManagementList.EnableInstanceLimitControl {
		return "", nil
	}

	username := repository.Owner
	orgId := repository.OrganisationId
	var quotaManagementListItem quota_management.QuotaManagementListItem
	message := fmt.Sprintf("User '%s' has reached a maximum number of %d allowed repositories.", username, quota_management.GetDefaultMaxAllowedInstances())
	org, orgFound := q.quotaManagementList.QuotaList.Organisations.GetById(orgId)
	filterByOrd := false
	if orgFound && org.IsUserRegistered(username) {
		quotaManagementListItem = org
		message = fmt.Sprintf("Organization '%s' has reached a maximum number of %d allowed repositories.", orgId, org.GetMaxAllowedInstances(instanceType.String(), standardBillingModelID))
		filterByOrd = true
	} else {
		user, userFound := q.quotaManagementList.QuotaList.ServiceAccounts.GetByUsername(username)
		if userFound {
			quotaManagementListItem = user
			message = fmt.Sprintf("User '%s' has reached a maximum number of %d allowed repositories.", username, user.GetMaxAllowedInstances(instanceType.String(), standardBillingModelID))
		}
	}

	var count int64
	dbConn := q.connectionFactory.New().
		Model(&dbapi.RepositoryRequest{})

	if instanceType == types.STANDARD && filterByOrd {
		dbConn = dbConn.Where("organisation_id = ?", orgId)
	} else {
		dbConn = dbConn.Where("owner = ?", username)
	}

	if err := dbConn.Count(&count).Error; err != nil {
		return "", errors.GeneralError("count failed from database")
	}

	totalInstanceCount := int(count)
	if quotaManagementListItem != nil && instanceType == types.STANDARD {
		if quotaManagementListItem.IsInstanceCountWithinLimit(instanceType.String(), standardBillingModelID, totalInstanceCount+1) {
			return "", nil
		} else {
			return "", errors.MaximumAllowedInstanceReached(message)
		}
	}

	if instanceType == types.DEVELOPER && quotaManagementListItem == nil {
		if totalInstanceCount >= quota_management.GetDefaultMaxAllowedInstances() {
			return "", errors.MaximumAllowedInstanceReached(message)
		}
		return "", nil
	}

	return "", errors.InsufficientQuotaError("Insufficient Quota")
}

func (q QuotaManagementListService) DeleteQuota(SubscriptionId string) *errors.ServiceError {
	return nil // NOOP
}
