package quota

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/services"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/db"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/quota_management"
)

// DefaultQuotaServiceFactory the default implementation for QuotaServiceFactory
type DefaultQuotaServiceFactory struct {
	quotaServiceContainer map[api.QuotaType]services.QuotaService
}

func NewDefaultQuotaServiceFactory(
	amsClient ocm.AMSClient,
	connectionFactory *db.ConnectionFactory,
	quotaManagementListConfig *quota_management.QuotaManagementListConfig,
) services.QuotaServiceFactory {
	quotaServiceContainer := map[api.QuotaType]services.QuotaService{
		api.AMSQuotaType:                 &amsQuotaService{amsClient: amsClient},
		api.QuotaManagementListQuotaType: &QuotaManagementListService{connectionFactory: connectionFactory, quotaManagementList: quotaManagementListConfig},
	}
	return &DefaultQuotaServiceFactory{quotaServiceContainer: quotaServiceContainer}
}

func (factory *DefaultQuotaServiceFactory) GetQuotaService(quotaType api.QuotaType) (services.QuotaService, *errors.ServiceError) {
	if quotaType == api.UndefinedQuotaType {
		quotaType = api.QuotaManagementListQuotaType
	}

	quotaService, ok := factory.quotaServiceContainer[quotaType]
	if !ok {
		return nil, errors.GeneralError("invalid quota service type: %v", quotaType)
	}

	return quotaService, nil
}
