package quota_management

import (
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared"
	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/shared/utils/arrays"
)

var defaultBillingModels = BillingModelList{
	BillingModel{ID: "standard"},
}

type Quota struct {
	InstanceTypeID string           `yaml:"instance_type_id"`
	BillingModels  BillingModelList `yaml:"billing_models,omitempty"`
}

// GetBillingModels returns the billing models granted for this instance type,
// falling back to the standard billing model when none are configured.
func (quota *Quota) GetBillingModels() BillingModelList {
	if len(quota.BillingModels) == 0 {
		return defaultBillingModels
	}

	return quota.BillingModels
}

func (quota *Quota) GetBillingModelByID(billingModelID string) (BillingModel, bool) {
	idx, bm := arrays.FindFirst(quota.GetBillingModels(), func(bm BillingModel) bool { return shared.StringEqualsIgnoreCase(bm.ID, billingModelID) })
	if idx != -1 {
		return bm, true
	}

	return BillingModel{}, false
}

type QuotaList []Quota
