package store

// Postgres is the relational backend. All queries are plain
// parameterized SQL against the shared pool.
type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Close() {
	s.db.Close()
}
