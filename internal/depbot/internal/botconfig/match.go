package botconfig

import (
	"regexp"

	"github.com/blang/semver/v4"
)

// Update is the scan finding a package rule is matched against.
type Update struct {
	Manager    string
	DepName    string
	UpdateType string
	BaseBranch string
}

// MatchRule reports whether the rule's selectors cover the update. An empty
// selector list matches everything.
func MatchRule(rule *PackageRule, update Update) bool {
	if !matchList(rule.MatchManagers, update.Manager) {
		return false
	}
	if !matchList(rule.MatchBaseBranches, update.BaseBranch) {
		return false
	}
	if !matchList(rule.MatchUpdateTypes, update.UpdateType) {
		return false
	}
	if len(rule.MatchPackageNames) == 0 && len(rule.MatchPackagePatterns) == 0 {
		return true
	}
	for _, name := range rule.MatchPackageNames {
		if name == update.DepName {
			return true
		}
	}
	for _, pattern := range rule.MatchPackagePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			// invalid patterns are rejected at validation time
			continue
		}
		if re.MatchString(update.DepName) {
			return true
		}
	}
	return false
}

func matchList(selector []string, value string) bool {
	if len(selector) == 0 {
		return true
	}
	for _, s := range selector {
		if s == value {
			return true
		}
	}
	return false
}

// RuleDecision is the folded outcome of the top-level configuration and every
// package rule that matches an update.
type RuleDecision struct {
	Enabled         bool
	Automerge       bool
	Labels          []string
	GroupName       string
	Schedule        []string
	AllowedVersions string
}

// Decide folds the resolved configuration over the update. Rules apply in
// order, later rules winning the keys they set.
func (r *ResolvedConfig) Decide(update Update) RuleDecision {
	d := RuleDecision{
		Enabled:   r.Enabled == nil || *r.Enabled,
		Automerge: r.Automerge != nil && *r.Automerge,
		Labels:    append([]string{}, r.Labels...),
		Schedule:  append([]string{}, r.Schedule...),
	}
	for _, dep := range r.IgnoreDeps {
		if dep == update.DepName {
			d.Enabled = false
		}
	}
	for i := range r.PackageRules {
		rule := &r.PackageRules[i]
		if !MatchRule(rule, update) {
			continue
		}
		if rule.Enabled != nil {
			d.Enabled = *rule.Enabled
		}
		if rule.Automerge != nil {
			d.Automerge = *rule.Automerge
		}
		if len(rule.Labels) > 0 {
			d.Labels = append([]string{}, rule.Labels...)
		}
		if rule.GroupName != "" {
			d.GroupName = rule.GroupName
		}
		if len(rule.Schedule) > 0 {
			d.Schedule = append([]string{}, rule.Schedule...)
		}
		if rule.AllowedVersions != "" {
			d.AllowedVersions = rule.AllowedVersions
		}
	}
	return d
}

// VersionAllowed checks the candidate version against the decision's
// allowedVersions range. Without a range every version passes; with one,
// candidates that do not parse as semver never pass.
func (d RuleDecision) VersionAllowed(version string) bool {
	if d.AllowedVersions == "" {
		return true
	}
	rng, err := semver.ParseRange(d.AllowedVersions)
	if err != nil {
		return false
	}
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return false
	}
	return rng(v)
}
