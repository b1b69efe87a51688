package constants

// DepManager type - the package ecosystem a dependency belongs to
type DepManager string

// UpdateType type - how far an update moves a dependency
type UpdateType string

const (
	// ManagerGoMod - dependencies declared in go.mod
	ManagerGoMod DepManager = "gomod"
	// ManagerNpm - dependencies declared in package.json
	ManagerNpm DepManager = "npm"
	// ManagerDockerfile - image references in Dockerfiles
	ManagerDockerfile DepManager = "dockerfile"

	// UpdateTypeMajor - major version bump
	UpdateTypeMajor UpdateType = "major"
	// UpdateTypeMinor - minor version bump
	UpdateTypeMinor UpdateType = "minor"
	// UpdateTypePatch - patch version bump
	UpdateTypePatch UpdateType = "patch"
	// UpdateTypeDigest - non-semver artifact moved to a new digest or tag
	UpdateTypeDigest UpdateType = "digest"
)

func (m DepManager) String() string {
	return string(m)
}

func (u UpdateType) String() string {
	return string(u)
}

// Managers - every supported package manager
var Managers = []DepManager{ManagerGoMod, ManagerNpm, ManagerDockerfile}

// ManifestFileName returns the manifest file the manager owns.
func (m DepManager) ManifestFileName() string {
	switch m {
	case ManagerGoMod:
		return "go.mod"
	case ManagerNpm:
		return "package.json"
	case ManagerDockerfile:
		return "Dockerfile"
	default:
		return ""
	}
}
