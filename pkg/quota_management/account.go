package quota_management

var _ QuotaManagementListItem = &Account{}

type Account struct {
	Username            string    `yaml:"username"`
	MaxAllowedInstances int       `yaml:"max_allowed_instances"`
	GrantedQuota        QuotaList `yaml:"granted_quota,omitempty"`
}

func (account Account) IsInstanceCountWithinLimit(instanceTypeID string, billingModelID string, count int) bool {
	return count <= account.GetMaxAllowedInstances(instanceTypeID, billingModelID)
}

func (account Account) GetMaxAllowedInstances(instanceTypeID string, billingModelID string) int {
	bm, ok := getBillingModel(account.GetGrantedQuota(), instanceTypeID, billingModelID)
	if !ok || bm.HasExpired() {
		return 0
	}

	if bm.Allowed <= 0 {
		if account.MaxAllowedInstances <= 0 {
			return MaxAllowedInstances
		}
		return account.MaxAllowedInstances
	}

	return bm.Allowed
}

func (account Account) GetGrantedQuota() QuotaList {
	if len(account.GrantedQuota) == 0 {
		return defaultInstanceTypes
	}
	return account.GrantedQuota
}

func (account Account) HasQuotaConfigurationFor(instanceTypeId string, billingModelID string) bool {
	return hasQuotaConfigurationFor(account.GetGrantedQuota(), instanceTypeId, billingModelID)
}

type AccountList []Account

func (allowedAccounts AccountList) GetByUsername(username string) (Account, bool) {
	for _, user := range allowedAccounts {
		if username == user.Username {
			return user, true
		}
	}

	return Account{}, false
}
