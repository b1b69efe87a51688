package botconfig

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/xeipuuv/gojsonschema"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

// BotConfig is the configuration document an organisation stores per repository.
// Every key is optional; absent keys inherit from the extended presets or from
// the built-in defaults.
type BotConfig struct {
	// Extends lists preset names this configuration inherits from
	Extends      []string      `json:"extends,omitempty"`
	BaseBranches []string      `json:"baseBranches,omitempty"`
	PackageRules []PackageRule `json:"packageRules,omitempty"`
	// Enabled gates the whole repository when set to false
	Enabled  *bool    `json:"enabled,omitempty"`
	Labels   []string `json:"labels,omitempty"`
	Schedule []string `json:"schedule,omitempty"`
	// PRConcurrentLimit caps how many update pull requests may be open at once.
	// An explicit 0 means no limit and overrides an inherited preset limit;
	// nil inherits
	PRConcurrentLimit   *int     `json:"prConcurrentLimit,omitempty"`
	Automerge           *bool    `json:"automerge,omitempty"`
	IgnoreDeps          []string `json:"ignoreDeps,omitempty"`
	RegistryUrls        []string `json:"registryUrls,omitempty"`
	DependencyDashboard *bool    `json:"dependencyDashboard,omitempty"`
}

// PackageRule narrows bot behaviour to the updates its match* selectors cover.
// An empty selector matches everything.
type PackageRule struct {
	MatchManagers        []string `json:"matchManagers,omitempty"`
	MatchPackageNames    []string `json:"matchPackageNames,omitempty"`
	MatchPackagePatterns []string `json:"matchPackagePatterns,omitempty"`
	MatchUpdateTypes     []string `json:"matchUpdateTypes,omitempty"`
	MatchBaseBranches    []string `json:"matchBaseBranches,omitempty"`
	Enabled              *bool    `json:"enabled,omitempty"`
	Automerge            *bool    `json:"automerge,omitempty"`
	Labels               []string `json:"labels,omitempty"`
	// AllowedVersions is a semver range new versions must satisfy
	AllowedVersions string   `json:"allowedVersions,omitempty"`
	GroupName       string   `json:"groupName,omitempty"`
	Schedule        []string `json:"schedule,omitempty"`
}

// Schema is the JSON schema the bot configuration document is validated against.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "extends": { "type": "array", "items": { "type": "string" } },
    "baseBranches": { "type": "array", "items": { "type": "string" } },
    "enabled": { "type": "boolean" },
    "labels": { "type": "array", "items": { "type": "string" } },
    "schedule": { "type": "array", "items": { "type": "string" } },
    "prConcurrentLimit": { "type": "integer", "minimum": 0 },
    "automerge": { "type": "boolean" },
    "ignoreDeps": { "type": "array", "items": { "type": "string" } },
    "registryUrls": { "type": "array", "items": { "type": "string" } },
    "dependencyDashboard": { "type": "boolean" },
    "packageRules": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "matchManagers": { "type": "array", "items": { "type": "string", "enum": ["gomod", "npm", "dockerfile"] } },
          "matchPackageNames": { "type": "array", "items": { "type": "string" } },
          "matchPackagePatterns": { "type": "array", "items": { "type": "string" } },
          "matchUpdateTypes": { "type": "array", "items": { "type": "string", "enum": ["major", "minor", "patch", "digest"] } },
          "matchBaseBranches": { "type": "array", "items": { "type": "string" } },
          "enabled": { "type": "boolean" },
          "automerge": { "type": "boolean" },
          "labels": { "type": "array", "items": { "type": "string" } },
          "allowedVersions": { "type": "string" },
          "groupName": { "type": "string" },
          "schedule": { "type": "array", "items": { "type": "string" } }
        }
      }
    }
  }
}`

var configSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
	if err != nil {
		panic(fmt.Sprintf("bot configuration schema does not compile: %v", err))
	}
	return s
}()

// Validate checks a raw configuration document against the schema and the
// constraints the schema cannot express. Every schema violation is reported as
// a bracketed "[field: message]" entry on its own line so a console form can
// place them next to the offending fields.
func Validate(doc []byte) *errors.ServiceError {
	if len(doc) == 0 {
		// absent configuration is a valid configuration
		return nil
	}
	result, err := configSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.MalformedBotConfig("failed to parse bot configuration: %v", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		for _, violation := range result.Errors() {
			sb.WriteString(fmt.Sprintf("\n[%s: %s]", violation.Field(), violation.Description()))
		}
		return errors.MalformedBotConfig("bot configuration is invalid:%s", sb.String())
	}

	var cfg BotConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return errors.MalformedBotConfig("failed to parse bot configuration: %v", err)
	}
	return cfg.validate()
}

// validate covers what the JSON schema cannot: RE2 syntax in
// matchPackagePatterns, semver ranges in allowedVersions and the shape of
// schedule windows.
func (cfg *BotConfig) validate() *errors.ServiceError {
	for i, w := range cfg.Schedule {
		if _, err := ParseWindow(w); err != nil {
			return errors.MalformedBotConfig("schedule[%d]: %v", i, err)
		}
	}
	for i, rule := range cfg.PackageRules {
		for j, pattern := range rule.MatchPackagePatterns {
			if _, err := regexp.Compile(pattern); err != nil {
				return errors.MalformedBotConfig("packageRules[%d].matchPackagePatterns[%d]: %q is not a valid RE2 expression", i, j, pattern)
			}
		}
		if rule.AllowedVersions != "" {
			if _, err := semver.ParseRange(rule.AllowedVersions); err != nil {
				return errors.MalformedBotConfig("packageRules[%d].allowedVersions: %q is not a valid semver range", i, rule.AllowedVersions)
			}
		}
		for j, w := range rule.Schedule {
			if _, err := ParseWindow(w); err != nil {
				return errors.MalformedBotConfig("packageRules[%d].schedule[%d]: %v", i, j, err)
			}
		}
	}
	return nil
}

// Parse unmarshals a raw document without validating it. Callers that accept
// documents from the outside go through Validate first.
func Parse(doc []byte) (*BotConfig, error) {
	cfg := &BotConfig{}
	if len(doc) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(doc, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
