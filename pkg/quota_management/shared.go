package quota_management

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared/utils/arrays"
)

func getBillingModel(grantedQuota QuotaList, instanceTypeId string, billingModelID string) (BillingModel, bool) {
	if idx, instanceType := arrays.FindFirst(grantedQuota, func(x Quota) bool { return shared.StringEqualsIgnoreCase(x.InstanceTypeID, instanceTypeId) }); idx != -1 {
		if idx, bm := arrays.FindFirst(instanceType.GetBillingModels(), func(bm BillingModel) bool { return shared.StringEqualsIgnoreCase(bm.ID, billingModelID) }); idx != -1 {
			return bm, true
		}
	}

	return BillingModel{}, false
}

func hasQuotaConfigurationFor(grantedQuota QuotaList, instanceTypeId string, billingModelID string) bool {
	_, ok := getBillingModel(grantedQuota, instanceTypeId, billingModelID)
	return ok
}
