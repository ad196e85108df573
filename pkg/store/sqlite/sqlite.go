// Package sqlite implements the entity store on a single SQLite database
// file using the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migsqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/corplink/corplink/pkg/common"
	"github.com/corplink/corplink/pkg/logger"
	"github.com/corplink/corplink/pkg/store"
)

//go:embed migrations/*.sql
var migrations embed.FS

// EntityDBStore implements store.EntityStore backed by a SQLite file.
type EntityDBStore struct {
	db *sql.DB
}

// Open opens the SQLite database at path, creating the file and applying
// pending schema migrations as needed. The path is explicit per store so
// callers (and tests) can run against isolated files.
func Open(path string) (*EntityDBStore, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %q: %w", path, err)
	}
	// The file is owned by a single process; one connection avoids
	// SQLITE_BUSY between the pooled handles.
	db.SetMaxOpenConns(1)

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite database %q: %w", path, err)
	}

	logger.Debug("[Store] SQLite database ready", "path", path)
	return &EntityDBStore{db: db}, nil
}

// NewWithDB wraps an already opened database handle without running
// migrations.
func NewWithDB(db *sql.DB) *EntityDBStore {
	return &EntityDBStore{db: db}
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := migsqlite.WithInstance(db, &migsqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close releases the underlying database handle.
func (s *EntityDBStore) Close() error {
	return s.db.Close()
}

func normalized(name string) (string, error) {
	n := common.NormalizeName(name)
	if n == "" {
		return "", store.ErrEmptyName
	}
	return n, nil
}

// CreateCompany inserts a new company and fails with store.ErrDuplicateName
// if the normalized name is already taken.
func (s *EntityDBStore) CreateCompany(ctx context.Context, name string) (int64, error) {
	n, err := normalized(name)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM companies WHERE name = ?`, n).Scan(&id)
	if err == nil {
		return 0, fmt.Errorf("company %q: %w", n, store.ErrDuplicateName)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, &store.ReadError{Op: "companies", Err: err}
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO companies (name) VALUES (?)`, n)
	if err != nil {
		return 0, &store.WriteError{Op: "companies", Err: err}
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, &store.WriteError{Op: "companies", Err: err}
	}
	logger.Debug("[Store] Company created", "name", n, "id", id)
	return id, nil
}

func (s *EntityDBStore) upsert(ctx context.Context, table, name string) (int64, error) {
	n, err := normalized(name)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE name = ?`, n).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, &store.ReadError{Op: table, Err: err}
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO `+table+` (name) VALUES (?)`, n)
	if err != nil {
		return 0, &store.WriteError{Op: table, Err: err}
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, &store.WriteError{Op: table, Err: err}
	}
	return id, nil
}

// UpsertCompany returns the id of the company with the given name, creating
// it first if needed.
func (s *EntityDBStore) UpsertCompany(ctx context.Context, name string) (int64, error) {
	return s.upsert(ctx, "companies", name)
}

// UpsertPerson returns the id of the person with the given name, creating
// it first if needed.
func (s *EntityDBStore) UpsertPerson(ctx context.Context, name string) (int64, error) {
	return s.upsert(ctx, "people", name)
}

// AddRelation links a person to a company under the given role. Repeating
// the call for an existing (person, company, role) triple is a no-op.
func (s *EntityDBStore) AddRelation(ctx context.Context, personID, companyID int64, role common.Role) error {
	if _, err := common.ParseRole(string(role)); err != nil {
		return &store.WriteError{Op: "relations", Err: err}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO relations (person_id, company_id, relation_type) VALUES (?, ?, ?)`,
		personID, companyID, string(role))
	if err != nil {
		return &store.WriteError{Op: "relations", Err: err}
	}
	return nil
}

// Companies returns all stored companies.
func (s *EntityDBStore) Companies(ctx context.Context) ([]common.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM companies ORDER BY name`)
	if err != nil {
		return nil, &store.ReadError{Op: "companies", Err: err}
	}
	defer rows.Close()

	var out []common.Company
	for rows.Next() {
		var c common.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, &store.ReadError{Op: "companies", Err: err}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.ReadError{Op: "companies", Err: err}
	}
	return out, nil
}

// People returns all stored people.
func (s *EntityDBStore) People(ctx context.Context) ([]common.Person, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM people ORDER BY name`)
	if err != nil {
		return nil, &store.ReadError{Op: "people", Err: err}
	}
	defer rows.Close()

	var out []common.Person
	for rows.Next() {
		var p common.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, &store.ReadError{Op: "people", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.ReadError{Op: "people", Err: err}
	}
	return out, nil
}

// Relations returns every stored relation with endpoint names resolved.
func (s *EntityDBStore) Relations(ctx context.Context) ([]common.Relation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.name, c.name, r.relation_type
		FROM relations r
		JOIN people p ON r.person_id = p.id
		JOIN companies c ON r.company_id = c.id
		ORDER BY p.name, c.name, r.relation_type`)
	if err != nil {
		return nil, &store.ReadError{Op: "relations", Err: err}
	}
	defer rows.Close()

	var out []common.Relation
	for rows.Next() {
		var rel common.Relation
		var role string
		if err := rows.Scan(&rel.Person, &rel.Company, &role); err != nil {
			return nil, &store.ReadError{Op: "relations", Err: err}
		}
		rel.Role, err = common.ParseRole(role)
		if err != nil {
			return nil, &store.ReadError{Op: "relations", Err: err}
		}
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, &store.ReadError{Op: "relations", Err: err}
	}
	return out, nil
}

// ReplaceAll clears all three tables and repopulates them from the given
// sets inside one transaction. Any failure rolls back to the prior state.
func (s *EntityDBStore) ReplaceAll(ctx context.Context, companies, people []string, relations []common.Relation) error {
	logger.Debug("[Store] Replacing all data",
		"companies", len(companies), "people", len(people), "relations", len(relations))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &store.WriteError{Op: "replace", Err: err}
	}
	defer tx.Rollback()

	for _, table := range []string{"relations", "people", "companies"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return &store.WriteError{Op: "replace", Err: err}
		}
	}

	companyIDs, err := insertNames(ctx, tx, "companies", companies)
	if err != nil {
		return err
	}
	personIDs, err := insertNames(ctx, tx, "people", people)
	if err != nil {
		return err
	}

	for _, rel := range relations {
		pid, ok := personIDs[common.NormalizeName(rel.Person)]
		if !ok {
			return &store.WriteError{Op: "replace",
				Err: fmt.Errorf("relation references unknown person %q", rel.Person)}
		}
		cid, ok := companyIDs[common.NormalizeName(rel.Company)]
		if !ok {
			return &store.WriteError{Op: "replace",
				Err: fmt.Errorf("relation references unknown company %q", rel.Company)}
		}
		if _, err := common.ParseRole(string(rel.Role)); err != nil {
			return &store.WriteError{Op: "replace", Err: err}
		}
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO relations (person_id, company_id, relation_type) VALUES (?, ?, ?)`,
			pid, cid, string(rel.Role))
		if err != nil {
			return &store.WriteError{Op: "replace", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &store.WriteError{Op: "replace", Err: err}
	}
	return nil
}

func insertNames(ctx context.Context, tx *sql.Tx, table string, names []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(names))
	for _, name := range names {
		n, err := normalized(name)
		if err != nil {
			return nil, &store.WriteError{Op: "replace", Err: err}
		}
		if _, ok := ids[n]; ok {
			continue
		}
		res, err := tx.ExecContext(ctx, `INSERT INTO `+table+` (name) VALUES (?)`, n)
		if err != nil {
			return nil, &store.WriteError{Op: "replace", Err: err}
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, &store.WriteError{Op: "replace", Err: err}
		}
		ids[n] = id
	}
	return ids, nil
}
