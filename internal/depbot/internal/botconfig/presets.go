package botconfig

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"

	"github.com/d8ff42ce19a3b0e1c44a/dub-fleet-manager/pkg/errors"
)

const (
	// DefaultsPreset is applied when a configuration extends nothing at all
	DefaultsPreset = "defaults:base"

	// maxExtendsDepth caps how deep an extends chain may recurse
	maxExtendsDepth = 10

	remotePresetCacheTTL     = 5 * time.Minute
	remotePresetCachePurge   = 10 * time.Minute
	remotePresetFetchTimeout = 10 * time.Second
)

// PresetCatalog resolves preset names to configuration fragments. Local presets
// come from the catalog file; "https://" names are fetched from the network and
// cached.
type PresetCatalog struct {
	local  map[string]*BotConfig
	client *resty.Client
	cache  *cache.Cache
}

func NewPresetCatalog(local map[string]*BotConfig) *PresetCatalog {
	return &PresetCatalog{
		local:  local,
		client: resty.New().SetTimeout(remotePresetFetchTimeout),
		cache:  cache.New(remotePresetCacheTTL, remotePresetCachePurge),
	}
}

// ResolvedConfig is a BotConfig with every preset expanded; its Extends list is
// always empty.
type ResolvedConfig struct {
	BotConfig
}

type resolveState struct {
	// applied holds presets fully merged already; duplicates are applied once
	applied map[string]bool
	// stack holds presets currently being expanded; re-entry is a cycle
	stack map[string]bool
}

// Resolve expands cfg's extends chain against the catalog. Presets apply
// depth-first in listing order, later sources win scalar keys, package rules
// concatenate in inheritance order with the local rules last, ignoreDeps union.
// A configuration that extends nothing picks up the "defaults:base" preset when
// the catalog carries one. Resolution is deterministic for a given catalog and
// document.
func (p *PresetCatalog) Resolve(ctx context.Context, cfg *BotConfig) (*ResolvedConfig, *errors.ServiceError) {
	out := &ResolvedConfig{}
	extends := cfg.Extends
	if len(extends) == 0 {
		if _, ok := p.local[DefaultsPreset]; ok {
			extends = []string{DefaultsPreset}
		}
	}
	st := &resolveState{
		applied: map[string]bool{},
		stack:   map[string]bool{},
	}
	for _, name := range extends {
		if err := p.apply(ctx, out, name, st, 0); err != nil {
			return nil, err
		}
	}
	merge(&out.BotConfig, cfg)
	out.Extends = nil
	return out, nil
}

func (p *PresetCatalog) apply(ctx context.Context, out *ResolvedConfig, name string, st *resolveState, depth int) *errors.ServiceError {
	if depth >= maxExtendsDepth {
		return errors.FailedToResolveBotConfig("preset %q exceeds the maximum extends depth of %d", name, maxExtendsDepth)
	}
	if st.applied[name] {
		return nil
	}
	if st.stack[name] {
		return errors.FailedToResolveBotConfig("preset extends cycle detected at %q", name)
	}
	preset, err := p.lookup(ctx, name)
	if err != nil {
		return err
	}
	st.stack[name] = true
	for _, parent := range preset.Extends {
		if err := p.apply(ctx, out, parent, st, depth+1); err != nil {
			return err
		}
	}
	delete(st.stack, name)
	st.applied[name] = true
	merge(&out.BotConfig, preset)
	return nil
}

func (p *PresetCatalog) lookup(ctx context.Context, name string) (*BotConfig, *errors.ServiceError) {
	if strings.HasPrefix(name, "https://") || strings.HasPrefix(name, "http://") {
		return p.fetchRemote(ctx, name)
	}
	preset, ok := p.local[name]
	if !ok {
		return nil, errors.BotConfigPresetNotFound("bot configuration preset %q not found", name)
	}
	return preset, nil
}

func (p *PresetCatalog) fetchRemote(ctx context.Context, url string) (*BotConfig, *errors.ServiceError) {
	if cached, ok := p.cache.Get(url); ok {
		return cached.(*BotConfig), nil
	}
	resp, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.FailedToResolveBotConfig("failed to fetch remote preset %q: %v", url, err)
	}
	if resp.IsError() {
		return nil, errors.FailedToResolveBotConfig("failed to fetch remote preset %q: %s", url, resp.Status())
	}
	if svcErr := Validate(resp.Body()); svcErr != nil {
		return nil, errors.FailedToResolveBotConfig("remote preset %q is not a valid bot configuration: %v", url, svcErr)
	}
	preset, parseErr := Parse(resp.Body())
	if parseErr != nil {
		return nil, errors.FailedToResolveBotConfig("failed to parse remote preset %q: %v", url, parseErr)
	}
	p.cache.Set(url, preset, cache.DefaultExpiration)
	return preset, nil
}

// merge applies src over dst. Scalar keys from src win when they are set,
// packageRules concatenate and ignoreDeps union preserving first-seen order.
func merge(dst *BotConfig, src *BotConfig) {
	if len(src.BaseBranches) > 0 {
		dst.BaseBranches = append([]string{}, src.BaseBranches...)
	}
	if src.Enabled != nil {
		v := *src.Enabled
		dst.Enabled = &v
	}
	if len(src.Labels) > 0 {
		dst.Labels = append([]string{}, src.Labels...)
	}
	if len(src.Schedule) > 0 {
		dst.Schedule = append([]string{}, src.Schedule...)
	}
	if src.PRConcurrentLimit != nil {
		v := *src.PRConcurrentLimit
		dst.PRConcurrentLimit = &v
	}
	if src.Automerge != nil {
		v := *src.Automerge
		dst.Automerge = &v
	}
	dst.IgnoreDeps = union(dst.IgnoreDeps, src.IgnoreDeps)
	if len(src.RegistryUrls) > 0 {
		dst.RegistryUrls = append([]string{}, src.RegistryUrls...)
	}
	if src.DependencyDashboard != nil {
		v := *src.DependencyDashboard
		dst.DependencyDashboard = &v
	}
	dst.PackageRules = append(dst.PackageRules, src.PackageRules...)
}

func union(a []string, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := map[string]bool{}
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
