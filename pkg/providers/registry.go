package providers

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stackplan/pkg/errors"
)

// Registry is an ordered set of providers keyed by name.
// It is read-only after construction and safe for concurrent use.
type Registry struct {
	order  []Provider
	byName map[string]Provider
}

// NewRegistry creates a registry. Detection tries providers in the order
// given; a later provider whose name matches an earlier one (ignoring case)
// replaces it in place.
func NewRegistry(ps ...Provider) *Registry {
	r := &Registry{byName: make(map[string]Provider, len(ps))}
	for _, p := range ps {
		name := strings.ToLower(p.Name())
		if _, dup := r.byName[name]; dup {
			for i, q := range r.order {
				if strings.ToLower(q.Name()) == name {
					r.order[i] = p
				}
			}
		} else {
			r.order = append(r.order, p)
		}
		r.byName[name] = p
	}
	return r
}

// Lookup returns the provider registered under name, ignoring case.
func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.byName[strings.ToLower(name)]
	return p, ok
}

// Get is like Lookup but returns an [errors.ErrCodeUnknownProvider] error.
func (r *Registry) Get(name string) (Provider, error) {
	if p, ok := r.Lookup(name); ok {
		return p, nil
	}
	return nil, errors.New(errors.ErrCodeUnknownProvider, "unknown provider %q (available: %s)", name, strings.Join(r.Names(), ", "))
}

// Names returns provider names in detection order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, p := range r.order {
		names[i] = p.Name()
	}
	return names
}

// All returns the providers in detection order.
func (r *Registry) All() []Provider {
	return append([]Provider(nil), r.order...)
}

// Detect returns the first provider whose Detect reports true.
// Detection errors stop the search and are returned unchanged.
func (r *Registry) Detect(src Source, env Env) (Provider, error) {
	for _, p := range r.order {
		ok, err := p.Detect(src, env)
		if err != nil {
			return nil, fmt.Errorf("%s: detect: %w", p.Name(), err)
		}
		if ok {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNoProvider, "no provider matched the project")
}
