package lint

import (
	"fmt"
	"sort"
	"sync"

	"github.com/leapstack-labs/autolint/pkg/core"
)

// Registry stores lint rules keyed by stable id. It is append-only: ids are
// never removed or reused. After Freeze it is read-only and safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	rules  map[string]Rule
	frozen bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule. It panics on an empty or duplicate id, or when the
// registry is frozen; both are programming errors in rule packages.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := rule.ID()
	switch {
	case r.frozen:
		panic(fmt.Sprintf("lint: register %s: registry is frozen", id))
	case id == "":
		panic("lint: register: rule id is empty")
	}
	if _, dup := r.rules[id]; dup {
		panic(fmt.Sprintf("lint: register %s: duplicate rule id", id))
	}
	r.rules[id] = rule
}

// RegisterDef wraps and registers a data-driven rule definition.
func (r *Registry) RegisterDef(def RuleDef) {
	r.Register(WrapRuleDef(def))
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Get returns a rule by its id.
func (r *Registry) Get(id string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// All returns every registered rule sorted by id.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
	return rules
}

// ByCategory returns the rules of one category sorted by id.
func (r *Registry) ByCategory(category core.Category) []Rule {
	var rules []Rule
	for _, rule := range r.All() {
		if rule.Category() == category {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// Catalog returns metadata for every rule sorted by id.
func (r *Registry) Catalog() []core.RuleInfo {
	rules := r.All()
	infos := make([]core.RuleInfo, len(rules))
	for i, rule := range rules {
		infos[i] = GetRuleInfo(rule)
	}
	return infos
}

// ValidateRuleIDs returns an *UnknownRuleError naming every id not in the
// registry, or nil.
func (r *Registry) ValidateRuleIDs(ids ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var unknown []string
	for _, id := range ids {
		if _, ok := r.rules[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownRuleError{IDs: unknown}
}

// ValidateRuleConfig checks that every key of an enable map is a known id.
func (r *Registry) ValidateRuleConfig(ruleConfig map[string]bool) error {
	ids := make([]string, 0, len(ruleConfig))
	for id := range ruleConfig {
		ids = append(ids, id)
	}
	return r.ValidateRuleIDs(ids...)
}

// FixSafety returns the fix safety class of a rule, or FixSafetyNone for
// unknown ids.
func (r *Registry) FixSafety(id string) core.FixSafety {
	rule, ok := r.Get(id)
	if !ok {
		return core.FixSafetyNone
	}
	return rule.FixSafety()
}
