// Package group maintains named sets of mutually exclusive toggles.
//
// A Registry maps a group name to the ordered list of members that currently
// belong to it. When one member becomes checked, NotifyChecked unchecks every
// other member of the same group, so at most one member per group is checked
// once the call returns.
package group

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Member is anything that can take part in a group.
type Member interface {
	// ID returns a stable identifier used for logging.
	ID() string
	// Uncheck clears the checked state. It must not trigger a cascade.
	Uncheck()
}

// Registry tracks group membership. The zero value is not usable; create one
// with NewRegistry and share it between the members that should see each
// other.
type Registry struct {
	mu      sync.Mutex
	groups  map[string][]Member
	byGroup map[Member]string
	log     *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for membership and cascade events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		groups:  make(map[string][]Member),
		byGroup: make(map[Member]string),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// normalize maps whitespace-only names to the empty "no group" name.
func normalize(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return name
}

// SetGroup moves m into the named group. An empty or whitespace-only name
// removes m from whatever group it was in. Assigning the group m already
// belongs to does nothing.
func (r *Registry) SetGroup(m Member, name string) {
	if m == nil {
		return
	}
	name = normalize(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	prev, ok := r.byGroup[m]
	if ok && prev == name {
		return
	}
	if ok {
		r.removeLocked(m, prev)
	}
	if name == "" {
		return
	}

	r.groups[name] = append(r.groups[name], m)
	r.byGroup[m] = name
	r.log.Debug("group member added",
		zap.String("group", name),
		zap.String("member", m.ID()),
		zap.Int("size", len(r.groups[name])),
	)
}

// Remove drops m from its group, if any.
func (r *Registry) Remove(m Member) {
	r.SetGroup(m, "")
}

func (r *Registry) removeLocked(m Member, name string) {
	delete(r.byGroup, m)

	members := r.groups[name]
	for i, other := range members {
		if other == m {
			members = append(members[:i:i], members[i+1:]...)
			break
		}
	}
	if len(members) == 0 {
		delete(r.groups, name)
	} else {
		r.groups[name] = members
	}
	r.log.Debug("group member removed",
		zap.String("group", name),
		zap.String("member", m.ID()),
		zap.Int("size", len(members)),
	)
}

// Members returns a copy of the members of the named group in insertion
// order. Unknown groups yield a nil slice.
func (r *Registry) Members(name string) []Member {
	r.mu.Lock()
	defer r.mu.Unlock()

	members := r.groups[name]
	if len(members) == 0 {
		return nil
	}
	out := make([]Member, len(members))
	copy(out, members)
	return out
}

// GroupOf returns the group m belongs to, or "".
func (r *Registry) GroupOf(m Member) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byGroup[m]
}

// Groups returns the names of all non-empty groups, sorted.
func (r *Registry) Groups() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	r.mu.Unlock()

	sort.Strings(names)
	return names
}

// NotifyChecked unchecks every other member of m's group and returns how many
// peers were notified. m itself is left alone; the caller has already marked
// it checked. Members without a group cause no effect.
func (r *Registry) NotifyChecked(m Member) int {
	if m == nil {
		return 0
	}

	r.mu.Lock()
	name := r.byGroup[m]
	var peers []Member
	for _, other := range r.groups[name] {
		if other != m {
			peers = append(peers, other)
		}
	}
	r.mu.Unlock()

	if name == "" || len(peers) == 0 {
		return 0
	}

	// Unlocked so that peer callbacks may call back into the registry.
	for _, p := range peers {
		p.Uncheck()
	}
	r.log.Debug("group cascade",
		zap.String("group", name),
		zap.String("checked", m.ID()),
		zap.Int("unchecked", len(peers)),
	)
	return len(peers)
}
