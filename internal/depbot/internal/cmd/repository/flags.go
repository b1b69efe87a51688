package repository

const (
	// FlagID is a flag representing a repository request ID
	FlagID = "id"
	// FlagName is a flag representing the org/repo slug of a repository
	FlagName = "name"
	// FlagForgeType is a flag representing the forge hosting a repository
	FlagForgeType = "forge-type"
	// FlagOwner is a flag representing a repository owner name
	FlagOwner = "owner"
	// FlagOrgID is a flag representing the owning organisation id
	FlagOrgID = "org-id"
	// FlagPage is a flag representing the page index when listing
	FlagPage = "page"
	// FlagSize is a flag representing the page size when listing
	FlagSize = "size"
)
