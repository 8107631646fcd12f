package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/college/academics/internal/app/models"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = errors.New("record not found")

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	BatchRepository            *BatchRepository
	UserRepository             *UserRepository
	SemesterRepository         *SemesterRepository
	CourseRepository           *CourseRepository
	StudentRepository          *StudentRepository
	StaffCourseRepository      *StaffCourseRepository
	CourseOutcomeRepository    *CourseOutcomeRepository
	COToolRepository           *COToolRepository
	StudentCOToolRepository    *StudentCOToolRepository
	TimetableRepository        *TimetableRepository
	DayAttendanceRepository    *DayAttendanceRepository
	PeriodAttendanceRepository *PeriodAttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		BatchRepository:            NewBatchRepository(db),
		UserRepository:             NewUserRepository(db),
		SemesterRepository:         NewSemesterRepository(db),
		CourseRepository:           NewCourseRepository(db),
		StudentRepository:          NewStudentRepository(db),
		StaffCourseRepository:      NewStaffCourseRepository(db),
		CourseOutcomeRepository:    NewCourseOutcomeRepository(db),
		COToolRepository:           NewCOToolRepository(db),
		StudentCOToolRepository:    NewStudentCOToolRepository(db),
		TimetableRepository:        NewTimetableRepository(db),
		DayAttendanceRepository:    NewDayAttendanceRepository(db),
		PeriodAttendanceRepository: NewPeriodAttendanceRepository(db),
	}
}

// baseRepository carries the pool and a squirrel builder using $n placeholders.
type baseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func newBaseRepository(db *pgxpool.Pool) baseRepository {
	return baseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// auditColumns are selected by every read.
var auditColumns = []string{"createdBy", "updatedBy", "createdDate", "updatedDate"}

func columns(cols ...string) []string {
	return append(cols, auditColumns...)
}

// dateColumn renders a DATE column as YYYY-MM-DD under its own name.
func dateColumn(name string) string {
	return fmt.Sprintf("TO_CHAR(%s, 'YYYY-MM-DD') AS %s", name, name)
}

// collectRows runs query and maps every row onto T by db tag.
func collectRows[T any](ctx context.Context, db DBTX, query squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
}

// collectOne is collectRows for a single row; no row yields ErrNotFound.
func collectOne[T any](ctx context.Context, db DBTX, query squirrel.Sqlizer) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// returningID appends RETURNING <id> to an insert.
func returningID(insert squirrel.InsertBuilder, idColumn string) squirrel.InsertBuilder {
	return insert.Suffix("RETURNING " + idColumn)
}

// insertReturningID runs an INSERT ... RETURNING <id> and scans the id.
func (r baseRepository) insertReturningID(ctx context.Context, db DBTX, insert squirrel.InsertBuilder, idColumn string) (int64, error) {
	sql, args, err := returningID(insert, idColumn).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func existsQuery(sb squirrel.StatementBuilderType, table string, where squirrel.Sqlizer) squirrel.SelectBuilder {
	return sb.Select("1").
		From(table).
		Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1)
}

// exists reports whether any row of table matches where.
func (r baseRepository) exists(ctx context.Context, table string, where squirrel.Sqlizer) (bool, error) {
	sql, args, err := existsQuery(r.sb, table, where).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var found bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return found, nil
}

func softDeleteQuery(sb squirrel.StatementBuilderType, table string, where squirrel.Sqlizer, updatedBy string) squirrel.UpdateBuilder {
	return sb.Update(table).
		Set("isActive", string(models.ActiveNo)).
		Set("updatedBy", updatedBy).
		Set("updatedDate", squirrel.Expr("NOW()")).
		Where(where)
}

// softDelete marks the matching row inactive and stamps the actor.
func (r baseRepository) softDelete(ctx context.Context, table string, where squirrel.Sqlizer, updatedBy string) error {
	sql, args, err := softDeleteQuery(r.sb, table, where, updatedBy).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build soft delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// stampedReturning stamps updatedDate and returns cols from the updated row.
func stampedReturning(update squirrel.UpdateBuilder, cols []string) squirrel.UpdateBuilder {
	return update.
		Set("updatedDate", squirrel.Expr("NOW()")).
		Suffix("RETURNING " + strings.Join(cols, ", "))
}

// updateReturning applies update and maps the RETURNING row onto T.
func updateReturning[T any](ctx context.Context, db DBTX, update squirrel.UpdateBuilder, cols []string) (*T, error) {
	return collectOne[T](ctx, db, stampedReturning(update, cols))
}
