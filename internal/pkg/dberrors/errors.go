package dberrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError

	"github.com/college/academics/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes the application reacts to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
	CodeNotNullViolation    = "23502"
	CodeInvalidText         = "22P02"
	CodeInvalidDatetime     = "22007"
	CodeDatetimeOverflow    = "22008"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a unique_violation on any constraint.
func IsUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeUniqueViolation
}

// IsForeignKeyViolation reports a foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeForeignKeyViolation
}

// IsInvalidInput reports check, not-null and type-conversion failures.
func IsInvalidInput(err error) bool {
	pgErr, ok := pgError(err)
	if !ok {
		return false
	}
	switch pgErr.Code {
	case CodeCheckViolation, CodeNotNullViolation, CodeInvalidText, CodeInvalidDatetime, CodeDatetimeOverflow:
		return true
	}
	return false
}

// TranslateWrite maps an insert/update failure onto the error taxonomy.
// entity names the row being written and is used in conflict messages.
func TranslateWrite(err error, entity string) error {
	if err == nil {
		return nil
	}
	pgErr, ok := pgError(err)
	if !ok {
		return apperrors.NewDatabaseError(err)
	}
	switch {
	case IsUniqueViolation(err):
		return apperrors.NewConflictError(fmt.Sprintf("%s already exists", entity))
	case IsForeignKeyViolation(err):
		return apperrors.NewNotFoundError(fmt.Sprintf("Referenced %s not found", referencedTable(pgErr)))
	case IsInvalidInput(err):
		return apperrors.NewValidationError(fmt.Sprintf("Invalid %s data: %s", entity, pgErr.Message), pgErr.ColumnName)
	}
	return apperrors.NewDatabaseError(err)
}

// TranslateDelete maps a delete failure. A RESTRICT foreign-key rejection stays
// a database error: the row is still referenced by children.
func TranslateDelete(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.NewDatabaseError(err)
}

// referencedTable pulls the parent from the constraint naming convention
// fk_<child>_<parent>; it falls back to "parent record".
func referencedTable(pgErr *pgconn.PgError) string {
	if parent, ok := constraintParents[pgErr.ConstraintName]; ok {
		return parent
	}
	return "parent record"
}

var constraintParents = map[string]string{
	"fk_sem_batch":    "batch",
	"fk_course_sem":   "semester",
	"fk_course_batch": "batch",
	"fk_stu_course":   "course",
	"fk_sc_user":      "staff user",
	"fk_sc_course":    "course",
	"fk_co_course":    "course",
	"fk_tool_co":      "course outcome",
	"fk_sct_stu":      "student",
	"fk_sct_tool":     "CO tool",
	"fk_tt_user":      "staff user",
	"fk_tt_course":    "course",
	"fk_da_student":   "student",
	"fk_pa_student":   "student",
	"fk_pa_user":      "staff user",
	"fk_pa_course":    "course",
}
