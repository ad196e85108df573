package common

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EntityKind distinguishes the two entity namespaces. A company and a person
// may share a literal name and still denote different entities.
type EntityKind string

const (
	KindCompany EntityKind = "company"
	KindPerson  EntityKind = "person"
)

// ParseEntityKind maps a raw string onto the closed kind enumeration.
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindCompany:
		return KindCompany, nil
	case KindPerson:
		return KindPerson, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Role labels a relation between a person and a company.
type Role string

const (
	RoleShareholder Role = "shareholder"
	RoleDirector    Role = "director"
)

// ParseRole maps a raw string onto the closed role enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleShareholder:
		return RoleShareholder, nil
	case RoleDirector:
		return RoleDirector, nil
	}
	return "", fmt.Errorf("unknown relation role %q", s)
}

// Company is a legal entity. Its identity is the normalized name.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Person is an individual. Its identity is the normalized name.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Relation is a role-labeled directed link from a person to a company.
// Both endpoints are referenced by their normalized names.
type Relation struct {
	Person  string `json:"person"`
	Company string `json:"company"`
	Role    Role   `json:"role"`
}

// NormalizeName converts a raw name into the canonical stored form:
// surrounding whitespace trimmed, first rune upper-cased, the rest
// lower-cased. "acme", "ACME" and " Acme " all normalize to "Acme".
// This is the single casing convention for the whole system; the store
// applies it on every write and lookup, the document codec on both
// encode and decode.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
