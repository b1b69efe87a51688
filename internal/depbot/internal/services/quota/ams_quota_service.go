package quota

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/api/dbapi"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/internal/repositories/types"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/api"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/client/ocm"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
	amsv1 "github.com/openshift-online/ocm-sdk-go/accountsmgmt/v1"
)

type amsQuotaService struct {
	amsClient ocm.AMSClient
}

func newQuotaResource() amsv1.ReservedResourceBuilder {
	rr := amsv1.ReservedResourceBuilder{}
	rr.ResourceType("cluster.aws")
	rr.BYOC(false)
	rr.ResourceName(ocm.ResourceName)
	rr.BillingModel("standard") // "marketplace" or "standard"
	rr.AvailabilityZoneType("single")
	rr.Count(1)
	return rr
}

func (q amsQuotaService) CheckIfQuotaIsDefinedForInstanceType(repository *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (bool, *errors.ServiceError) {
	orgId, err := q.amsClient.GetOrganisationIdFromExternalId(repository.OrganisationId)
	if err != nil {
		return false, errors.NewWithCause(errors.ErrorGeneral, err, "Error checking quota: failed to get organization with external id %v", repository.OrganisationId)
	}

	quotaType := instanceType.GetQuotaType()
	quotaCosts, err := q.amsClient.GetQuotaCostsForProduct(orgId, quotaType.GetResourceName(), string(quotaType.GetProduct()))
	if err != nil {
		return false, errors.NewWithCause(errors.ErrorGeneral, err, "Error checking quota: failed to get assigned quota of type %v for organization with id %v", quotaType, orgId)
	}

	for _, qc := range quotaCosts {
		if qc.Allowed() > 0 {
			return true, nil
		}
	}

	return false, nil
}

func (q amsQuotaService) ReserveQuota(repository *dbapi.RepositoryRequest, instanceType types.RepositoryInstanceType) (string, *errors.ServiceError) {
	repositoryId := repository.ID
	if repositoryId == "" {
		repositoryId = api.NewID() // use a fake to check if quota is available
	}

	rr := newQuotaResource()

	cb, _ := amsv1.NewClusterAuthorizationRequest().
		AccountUsername(repository.Owner).
		CloudProviderID("aws").
		ProductID(string(instanceType.GetQuotaType().GetProduct())).
		Managed(true).
		ClusterID(repositoryId).
		ExternalClusterID(repositoryId).
		Disconnected(false).
		BYOC(false).
		AvailabilityZone("single").
		Reserve(true).
		Resources(&rr).
		Build()

	resp, err := q.amsClient.ClusterAuthorization(cb)
	if err != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, err, "Error reserving quota")
	}

	if resp.Allowed() {
		return resp.Subscription().ID(), nil
	} else {
		return "", errors.InsufficientQuotaError("Insufficient Quota")
	}
}

func (q amsQuotaService) DeleteQuota(subscriptionId string) *errors.ServiceError {
	if subscriptionId == "" {
		return nil
	}

	_, err := q.amsClient.DeleteSubscription(subscriptionId)
	if err != nil {
		return errors.GeneralError("failed to delete the quota: %v", err)
	}
	return nil
}
