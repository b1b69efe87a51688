package forge

import (
	"strings"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
)

// path segments never scanned for manifests
var ignoredTreeSegments = []string{"node_modules", "vendor"}

func isIgnoredPath(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		for _, ignored := range ignoredTreeSegments {
			if segment == ignored {
				return true
			}
		}
	}
	return false
}

// manifestManager maps a repository file path to the package manager owning it.
func manifestManager(path string) (constants.DepManager, bool) {
	if isIgnoredPath(path) {
		return "", false
	}
	base := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		base = path[idx+1:]
	}
	switch {
	case base == "go.mod":
		return constants.ManagerGoMod, true
	case base == "package.json":
		return constants.ManagerNpm, true
	case base == "Dockerfile" || strings.HasPrefix(base, "Dockerfile."):
		return constants.ManagerDockerfile, true
	}
	return "", false
}
