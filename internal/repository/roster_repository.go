package repository

// RosterRepository serves the static lab-assistant roster consulted when an
// issue is assigned.
type RosterRepository struct {
	names []string
	known map[string]struct{}
}

// NewRosterRepository indexes the given assistant names.
func NewRosterRepository(names []string) *RosterRepository {
	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}
	return &RosterRepository{names: names, known: known}
}

// List returns the roster in table order.
func (r *RosterRepository) List() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Exists reports whether the name is on the roster.
func (r *RosterRepository) Exists(name string) bool {
	_, ok := r.known[name]
	return ok
}
