package quota_management

var MaxAllowedInstances = 1

// GetDefaultMaxAllowedInstances - Returns the default max allowed instances for both internal (users and orgs in quota list config) and external users
func GetDefaultMaxAllowedInstances() int {
	return MaxAllowedInstances
}

type QuotaManagementListItem interface {
	// IsInstanceCountWithinLimit returns true if the given count is within limits
	IsInstanceCountWithinLimit(instanceTypeID string, billingModelID string, count int) bool
	// GetMaxAllowedInstances returns maximum number of allowed instances.
	GetMaxAllowedInstances(instanceTypeID string, billingModelID string) int
}

type RegisteredUsersListConfiguration struct {
	Organisations   OrganisationList `yaml:"registered_users_per_organisation"`
	ServiceAccounts AccountList      `yaml:"registered_service_accounts"`
}
