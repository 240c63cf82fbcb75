package db

import (
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// IsUniqueViolation reports whether the provided error is a SQLite unique
// constraint failure. When columnRef is provided (e.g. "orders.po_no"), the
// helper additionally checks the constraint text in the error message.
func IsUniqueViolation(err error, columnRef string) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
			return false
		}
		if columnRef == "" {
			return true
		}
		return strings.Contains(sqliteErr.Error(), columnRef)
	}

	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	if columnRef == "" {
		return true
	}
	return strings.Contains(msg, columnRef)
}
