package animation

// Rule binds a class name to an animation and how it is played,
// e.g. "fade-in-up-delay-1" plays fadeInUp for 1s after 0.3s.
type Rule struct {
	Class     string
	Animation string
	Timing    Timing
}

// Sheet is a block of animations and class rules that is injected as a unit.
type Sheet struct {
	Name       string
	Animations []*Animation
	Rules      []Rule
}

// Animation returns the sheet's animation with the given name.
func (s *Sheet) Animation(name string) (*Animation, bool) {
	for _, a := range s.Animations {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Rule returns the sheet's rule for the given class.
func (s *Sheet) Rule(class string) (Rule, bool) {
	for _, r := range s.Rules {
		if r.Class == class {
			return r, true
		}
	}
	return Rule{}, false
}
