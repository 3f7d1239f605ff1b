package logs

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite

	"github.com/nelhage/connect4/ai"
	"github.com/nelhage/connect4/c4"
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Run is one recorded search.
type Run struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"time"`
	Width     int       `db:"width"`
	Height    int       `db:"height"`
	Moves     string    `db:"moves"`
	Algorithm string    `db:"algorithm"`
	Depth     int       `db:"depth"`
	Value     float64   `db:"value"`
	Column    int       `db:"best_column"`
	Visited   uint64    `db:"visited"`
	Evaluated uint64    `db:"evaluated"`
	CacheHits uint64    `db:"cache_hits"`
	Cutoffs   uint64    `db:"cutoffs"`
	ElapsedUS int64     `db:"elapsed_us"`
}

type AlgorithmStats struct {
	Algorithm     string  `db:"algorithm"`
	Depth         int     `db:"depth"`
	Runs          int     `db:"runs"`
	MeanNodes     float64 `db:"mean_nodes"`
	MeanElapsedUS float64 `db:"mean_elapsed_us"`
}

// NewRun describes a search of the position reached by moves on cfg.
func NewRun(cfg *c4.Config, moves []int, alg ai.Algorithm, r *ai.Result) *Run {
	return &Run{
		Timestamp: time.Now().UTC(),
		Width:     cfg.Width(),
		Height:    cfg.Height(),
		Moves:     c4.FormatMoves(moves),
		Algorithm: alg.String(),
		Depth:     r.Stats.Depth,
		Value:     r.Value,
		Column:    r.Column,
		Visited:   r.Stats.Visited,
		Evaluated: r.Stats.Evaluated,
		CacheHits: r.Stats.CacheHits,
		Cutoffs:   r.Stats.Cutoffs,
		ElapsedUS: r.Stats.Elapsed.Microseconds(),
	}
}

func Open(path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err = db.Exec(createRunTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create run table: %w", err)
	}
	if _, err = db.Exec(createAlgorithmView); err != nil {
		db.Close()
		return nil, fmt.Errorf("create algorithm_stats view: %w", err)
	}

	repo := &Repository{db: db}
	repo.insert, err = db.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertRun(run *Run) error {
	res, err := r.insert.Exec(run)
	if err != nil {
		return err
	}
	run.ID, err = res.LastInsertId()
	return err
}

func (r *Repository) InsertRuns(runs []*Run) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, run := range runs {
		if _, e := stmt.Exec(run); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Runs returns up to limit runs, most recent first.
func (r *Repository) Runs(limit int) ([]Run, error) {
	var out []Run
	if err := r.db.Select(&out, selectRuns, limit); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Stats() ([]AlgorithmStats, error) {
	var out []AlgorithmStats
	if err := r.db.Select(&out, selectStats); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
