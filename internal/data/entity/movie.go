package entity

// Movie holds catalog data plus the ordered list of shows it owns.
// IDs are assigned by the movie store and immutable afterwards.
type Movie struct {
	ID       int
	Title    string
	Genre    string
	Duration int // minutes
	Shows    []*Show
}

func NewMovie(id int, title, genre string, duration int) *Movie {
	return &Movie{
		ID:       id,
		Title:    title,
		Genre:    genre,
		Duration: duration,
		Shows:    []*Show{},
	}
}

func (m *Movie) AddShow(show *Show) {
	m.Shows = append(m.Shows, show)
}

// Clone returns an independent copy of the movie and all its shows.
func (m *Movie) Clone() *Movie {
	shows := make([]*Show, len(m.Shows))
	for i, show := range m.Shows {
		shows[i] = show.Clone()
	}
	return &Movie{
		ID:       m.ID,
		Title:    m.Title,
		Genre:    m.Genre,
		Duration: m.Duration,
		Shows:    shows,
	}
}

// FindShowByID returns the show with the given id, or nil.
func (m *Movie) FindShowByID(showID int) *Show {
	for _, show := range m.Shows {
		if show.ID == showID {
			return show
		}
	}
	return nil
}
