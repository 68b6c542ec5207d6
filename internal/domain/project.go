package domain

// Project is one entry in the static project directory. The directory is
// defined once at startup and never mutated; entries reference projects by ID.
type Project struct {
	ID   string
	Name string
}

// Directory is an ordered, read-only collection of projects. Report output
// follows directory order, not entry order.
type Directory struct {
	projects []Project
	byID     map[string]Project
}

// NewDirectory builds a Directory from projects in display order.
func NewDirectory(projects []Project) *Directory {
	d := &Directory{
		projects: make([]Project, len(projects)),
		byID:     make(map[string]Project, len(projects)),
	}
	copy(d.projects, projects)
	for _, p := range projects {
		d.byID[p.ID] = p
	}
	return d
}

// DefaultDirectory returns the built-in project directory.
func DefaultDirectory() *Directory {
	return NewDirectory([]Project{
		{ID: "1", Name: "Cruise Ship Deck Upgrade"},
		{ID: "2", Name: "Yacht Club Renovation"},
		{ID: "3", Name: "Marina Boardwalk Installation"},
	})
}

// Projects returns the directory in display order.
func (d *Directory) Projects() []Project {
	out := make([]Project, len(d.projects))
	copy(out, d.projects)
	return out
}

// ByID looks up a project by ID.
func (d *Directory) ByID(id string) (Project, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// Len returns the number of projects in the directory.
func (d *Directory) Len() int {
	return len(d.projects)
}
