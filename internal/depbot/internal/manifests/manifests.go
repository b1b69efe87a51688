// Package manifests extracts pinned dependencies from the manifest files the
// supported package managers own.
package manifests

import (
	"fmt"
	"strings"

	"github.com/spyzhov/ajson"
	"golang.org/x/mod/modfile"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/internal/depbot/constants"
)

// Dependency is a single dependency a manifest pins.
type Dependency struct {
	Name string
	// Version as pinned in the manifest, without a "v" prefix for go modules
	Version string
}

// Parse extracts the dependencies from a manifest of the given manager.
// Entries a scan cannot act on, like unpinned ranges or build stage
// references, are left out.
func Parse(manager constants.DepManager, content []byte) ([]Dependency, error) {
	switch manager {
	case constants.ManagerGoMod:
		return parseGoMod(content)
	case constants.ManagerNpm:
		return parsePackageJSON(content)
	case constants.ManagerDockerfile:
		return parseDockerfile(content), nil
	default:
		return nil, fmt.Errorf("no manifest parser for manager: %s", manager)
	}
}

// parseGoMod lists the direct requirements of a go.mod file. Indirect
// requirements move on their own once their importer updates.
func parseGoMod(content []byte) ([]Dependency, error) {
	file, err := modfile.Parse("go.mod", content, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	var deps []Dependency
	for _, require := range file.Require {
		if require.Indirect {
			continue
		}
		deps = append(deps, Dependency{
			Name:    require.Mod.Path,
			Version: strings.TrimPrefix(require.Mod.Version, "v"),
		})
	}
	return deps, nil
}

// parsePackageJSON lists the dependencies and devDependencies of a
// package.json document.
func parsePackageJSON(content []byte) ([]Dependency, error) {
	root, err := ajson.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse package.json: %w", err)
	}
	var deps []Dependency
	for _, field := range []string{"dependencies", "devDependencies"} {
		nodes, err := root.JSONPath("$." + field)
		if err != nil || len(nodes) == 0 {
			continue
		}
		for _, name := range nodes[0].Keys() {
			valueNode, err := nodes[0].GetKey(name)
			if err != nil {
				continue
			}
			spec, err := valueNode.GetString()
			if err != nil {
				continue
			}
			version, ok := npmPinnedVersion(spec)
			if !ok {
				continue
			}
			deps = append(deps, Dependency{Name: name, Version: version})
		}
	}
	return deps, nil
}

// npmPinnedVersion reduces an npm version spec to the version it pins. Caret
// and tilde ranges pin their lower bound; wildcard ranges, dist-tags and
// url or workspace specs pin nothing.
func npmPinnedVersion(spec string) (string, bool) {
	spec = strings.TrimSpace(spec)
	spec = strings.TrimPrefix(spec, "^")
	spec = strings.TrimPrefix(spec, "~")
	spec = strings.TrimPrefix(spec, "=")
	spec = strings.TrimPrefix(spec, "v")
	if spec == "" {
		return "", false
	}
	if spec[0] < '0' || spec[0] > '9' {
		return "", false
	}
	if strings.ContainsAny(spec, " |<>*") || strings.Contains(spec, ".x") {
		return "", false
	}
	return spec, true
}

// parseDockerfile lists the image references of every FROM instruction.
// References to earlier build stages, variable substitutions, scratch and
// digest pinned images are skipped.
func parseDockerfile(content []byte) []Dependency {
	var deps []Dependency
	stages := map[string]bool{}
	for _, line := range strings.Split(string(content), "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 || !strings.EqualFold(fields[0], "FROM") {
			continue
		}
		args := fields[1:]
		// skip flags like --platform
		for len(args) > 0 && strings.HasPrefix(args[0], "--") {
			args = args[1:]
		}
		if len(args) == 0 {
			continue
		}
		image := args[0]
		// remember the stage alias so later FROM lines can be told apart from images
		if len(args) >= 3 && strings.EqualFold(args[1], "AS") {
			stages[args[2]] = true
		}
		if image == "scratch" || stages[image] || strings.Contains(image, "$") {
			continue
		}
		if strings.Contains(image, "@") {
			continue
		}
		name, tag := splitImageReference(image)
		if tag == "" {
			continue
		}
		deps = append(deps, Dependency{Name: name, Version: tag})
	}
	return deps
}

// splitImageReference splits an image reference into repository and tag. The
// colon of a registry port is not a tag separator.
func splitImageReference(image string) (string, string) {
	idx := strings.LastIndex(image, ":")
	if idx < 0 || strings.Contains(image[idx+1:], "/") {
		return image, ""
	}
	return image[:idx], image[idx+1:]
}
