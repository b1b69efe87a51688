package serviceaccounts

const (
	// FlagName is a flag representing a service account name
	FlagName = "name"
	// FlagDesc is a flag representing a service account description
	FlagDesc = "description"
	// FlagSaID is a flag representing a service account ID
	FlagSaID = "id"
	// FlagOrgID is a flag representing the owning organisation id
	FlagOrgID = "org-id"
	// FlagFirst is a flag representing the index of the first result
	FlagFirst = "first"
	// FlagMax is a flag representing the maximum number of results
	FlagMax = "max"
)
