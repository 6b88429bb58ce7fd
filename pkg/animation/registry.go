package animation

import "log"

// Registry is the document-level store of injected sheets. Lookups resolve
// through the sheets currently injected, the most recent one winning.
type Registry struct {
	injected []*Injection
}

// Injection is the handle of one injected sheet.
type Injection struct {
	registry *Registry
	sheet    *Sheet
	removed  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Inject adds the sheet and returns the handle that removes it again.
func (r *Registry) Inject(sheet *Sheet) *Injection {
	inj := &Injection{registry: r, sheet: sheet}
	r.injected = append(r.injected, inj)
	log.Printf("[Animation] injected sheet %q (%d animations, %d rules)",
		sheet.Name, len(sheet.Animations), len(sheet.Rules))
	return inj
}

// Remove takes the sheet out of its registry. It reports whether the sheet
// was still injected; removing twice is a no-op.
func (i *Injection) Remove() bool {
	if i == nil || i.removed {
		return false
	}
	i.removed = true

	r := i.registry
	for idx, inj := range r.injected {
		if inj == i {
			r.injected = append(r.injected[:idx], r.injected[idx+1:]...)
			break
		}
	}
	log.Printf("[Animation] removed sheet %q", i.sheet.Name)
	return true
}

// Removed reports whether Remove has been called.
func (i *Injection) Removed() bool {
	return i == nil || i.removed
}

// Animation resolves a named animation.
func (r *Registry) Animation(name string) (*Animation, bool) {
	for i := len(r.injected) - 1; i >= 0; i-- {
		if a, ok := r.injected[i].sheet.Animation(name); ok {
			return a, true
		}
	}
	return nil, false
}

// Rule resolves a class rule.
func (r *Registry) Rule(class string) (Rule, bool) {
	for i := len(r.injected) - 1; i >= 0; i-- {
		if rule, ok := r.injected[i].sheet.Rule(class); ok {
			return rule, true
		}
	}
	return Rule{}, false
}

// Len returns the number of injected sheets.
func (r *Registry) Len() int {
	return len(r.injected)
}
