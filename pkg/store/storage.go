package store

import (
	"context"

	"github.com/corplink/corplink/pkg/common"
)

// EntityStore defines the interface for the durable entity store holding
// companies, people and their role relations. Backends normalize every name
// with common.NormalizeName before any lookup or insert, so lookups are
// case- and whitespace-insensitive.
//
// The store is owned by a single process; no operation expects a concurrent
// writer. Reads always reflect the current table contents, never a cache.
type EntityStore interface {
	// CreateCompany inserts a company and fails with ErrDuplicateName if a
	// company with the same normalized name already exists. This is the
	// explicit creation path used by the add-company workflow.
	CreateCompany(ctx context.Context, name string) (int64, error)

	// UpsertCompany returns the id of the company with the given normalized
	// name, creating it first if needed. Idempotent.
	UpsertCompany(ctx context.Context, name string) (int64, error)

	// UpsertPerson returns the id of the person with the given normalized
	// name, creating it first if needed. Idempotent.
	UpsertPerson(ctx context.Context, name string) (int64, error)

	// AddRelation links a person to a company under the given role.
	// Idempotent: a (person, company, role) triple is stored at most once
	// and repeating the call is not an error.
	AddRelation(ctx context.Context, personID, companyID int64, role common.Role) error

	Companies(ctx context.Context) ([]common.Company, error)
	People(ctx context.Context) ([]common.Person, error)

	// Relations returns every stored relation with both endpoints resolved
	// to their names.
	Relations(ctx context.Context) ([]common.Relation, error)

	// ReplaceAll clears all three tables and repopulates them from the given
	// sets within a single transaction. On failure the store keeps its prior
	// contents. Relations reference companies and people by name; a relation
	// naming an entity absent from the given sets aborts the whole operation.
	ReplaceAll(ctx context.Context, companies, people []string, relations []common.Relation) error

	Close() error
}
