package services

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/repositories/types"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

//go:generate moq -out quotaservice_moq.go . QuotaService
type QuotaService interface {
	// CheckIfQuotaIsDefinedForInstanceType returns true if quota is defined for the given repository instance type, false otherwise
	CheckIfQuotaIsDefinedForInstanceType(repository *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (bool, *errors.ServiceError)
	// ReserveQuota reserves quota for the repository owner and returns the subscription id or an error in case of failure
	ReserveQuota(repository *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (string, *errors.ServiceError)
	// DeleteQuota deletes a reserved quota
	DeleteQuota(subscriptionId string) *errors.ServiceError
}
