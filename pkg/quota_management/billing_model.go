package quota_management

type BillingModel struct {
	ID              string          `yaml:"id"`
	ExpirationDate  *ExpirationDate `yaml:"expiration_date,omitempty"`
	GracePeriodDays int             `yaml:"grace_period_days"`
	Allowed         int             `yaml:"allowed"`
}

func (bm *BillingModel) HasExpired() bool {
	return bm.ExpirationDate.HasExpired()
}

type BillingModelList []BillingModel
