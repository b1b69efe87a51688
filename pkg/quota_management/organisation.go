package quota_management

var defaultInstanceType = Quota{
	InstanceTypeID: "standard",
	BillingModels:  nil,
}

var defaultInstanceTypes = []Quota{defaultInstanceType}

var _ QuotaManagementListItem = &Organisation{}

type Organisation struct {
	Id                  string      `yaml:"id"`
	AnyUser             bool        `yaml:"any_user"`
	MaxAllowedInstances int         `yaml:"max_allowed_instances"`
	RegisteredUsers     AccountList `yaml:"registered_users"`
	GrantedQuota        QuotaList   `yaml:"granted_quota,omitempty"`
}

func (org Organisation) IsUserRegistered(username string) bool {
	if !org.HasUsersRegistered() {
		return org.AnyUser
	}
	_, found := org.RegisteredUsers.GetByUsername(username)
	return found
}

func (org Organisation) HasUsersRegistered() bool {
	return len(org.RegisteredUsers) > 0
}

func (org Organisation) IsInstanceCountWithinLimit(instanceTypeID string, billingModelID string, count int) bool {
	return count <= org.GetMaxAllowedInstances(instanceTypeID, billingModelID)
}

func (org Organisation) GetMaxAllowedInstances(instanceTypeID string, billingModelID string) int {
	bm, ok := getBillingModel(org.GetGrantedQuota(), instanceTypeID, billingModelID)
	if !ok || bm.HasExpired() {
		return 0
	}

	if bm.Allowed <= 0 {
		if org.MaxAllowedInstances <= 0 {
			return MaxAllowedInstances
		}
		return org.MaxAllowedInstances
	}

	return bm.Allowed
}

func (org Organisation) GetGrantedQuota() QuotaList {
	if len(org.GrantedQuota) == 0 {
		return defaultInstanceTypes
	}
	return org.GrantedQuota
}

func (org Organisation) HasQuotaFor(instanceTypeId string, billingModelID string) bool {
	return hasQuotaConfigurationFor(org.GetGrantedQuota(), instanceTypeId, billingModelID)
}

type OrganisationList []Organisation

func (orgList OrganisationList) GetById(Id string) (Organisation, bool) {
	for _, organisation := range orgList {
		if Id == organisation.Id {
			return organisation, true
		}
	}

	return Organisation{}, false
}
