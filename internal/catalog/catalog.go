// Package catalog stores the on-demand catalog: titles and program episodes.
package catalog

// Title is a movie or a program, keyed by its upstream id.
type Title struct {
	ID    int64
	Title string
}

// Episode is a single episode of a program.
type Episode struct {
	ID      int64
	Title   string
	TitleID int64
}

// Asset is a catalog entry as built from the upstream API: a *Movie or a *Program.
type Asset interface {
	// Record returns the title row persisted for the asset.
	Record() Title
	asset()
}

// Movie is a standalone title; the title itself is the downloadable unit.
type Movie struct {
	ID   int64
	Name string
}

// Record returns the movie's title row.
func (m *Movie) Record() Title { return Title{ID: m.ID, Title: m.Name} }

func (*Movie) asset() {}

// Program is a TV program and its episodes.
type Program struct {
	ID       int64
	Name     string
	Seasons  int
	Episodes []Episode
}

// Record returns the program's title row.
func (p *Program) Record() Title { return Title{ID: p.ID, Title: p.Name} }

func (*Program) asset() {}
