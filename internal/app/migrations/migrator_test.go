package migrations

import (
	"context"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createRe    = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+)`)
	referenceRe = regexp.MustCompile(`REFERENCES (\w+)`)
)

func TestStepsCoverEveryTableInDependencyOrder(t *testing.T) {
	steps, err := Steps()
	require.NoError(t, err)
	require.Len(t, steps, 12)

	want := []string{
		"Batch", "Users", "Semester", "Course", "Student", "StaffCourse",
		"CourseOutcome", "COTool", "StudentCOTool", "Timetable", "DayAttendance", "PeriodAttendance",
	}

	created := map[string]bool{}
	for i, step := range steps {
		match := createRe.FindStringSubmatch(step.SQL)
		require.NotNil(t, match, "step %s has no idempotent CREATE TABLE", step.Version)
		assert.Equal(t, want[i], match[1])

		for _, ref := range referenceRe.FindAllStringSubmatch(step.SQL, -1) {
			assert.True(t, created[strings.ToLower(ref[1])], "%s references %s before it exists", match[1], ref[1])
		}
		created[strings.ToLower(match[1])] = true

		upper := strings.ToUpper(step.SQL)
		assert.NotContains(t, upper, "DROP ")
		assert.NotContains(t, upper, "ALTER ")
		if i > 0 {
			assert.Less(t, steps[i-1].Version, step.Version)
		}
	}
}

func TestStepsCarryNaturalKeyConstraints(t *testing.T) {
	steps, err := Steps()
	require.NoError(t, err)

	all := ""
	for _, s := range steps {
		all += s.SQL
	}
	for _, constraint := range []string{
		"uq_batch", "uq_users_email", "uq_semester", "uq_staff_course", "uq_course_outcome",
		"uq_student_tool", "uq_timetable_slot", "uq_day_attendance", "uq_period_attendance",
	} {
		assert.Contains(t, all, "CONSTRAINT "+constraint+" UNIQUE")
	}
	assert.Equal(t, 16, strings.Count(all, "ON UPDATE CASCADE ON DELETE RESTRICT"))
}

// fakeDB records executed statements and tracks schema_migrations rows.
type fakeDB struct {
	mu       sync.Mutex
	applied  map[string]bool
	executed []string
}

type fakeRow struct{ exists bool }

func (r fakeRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = r.exists
	return nil
}

type fakeTx struct {
	pgx.Tx
	db      *fakeDB
	pending []string
}

func (d *fakeDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.executed = append(d.executed, sql)
	return pgconn.CommandTag{}, nil
}

func (d *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fakeRow{exists: d.applied[args[0].(string)]}
}

func (d *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return &fakeTx{db: d}, nil
}

func (tx *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if strings.HasPrefix(sql, "INSERT INTO schema_migrations") {
		tx.pending = append(tx.pending, args[0].(string))
		return pgconn.CommandTag{}, nil
	}
	return tx.db.Exec(context.Background(), sql)
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.db.mu.Lock()
	defer tx.db.mu.Unlock()
	for _, v := range tx.pending {
		tx.db.applied[v] = true
	}
	tx.pending = nil
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error { return nil }

func TestMigrateIsIdempotent(t *testing.T) {
	db := &fakeDB{applied: map[string]bool{}}
	m := NewMigrator(db, zerolog.New(io.Discard))

	require.NoError(t, m.Migrate(context.Background()))
	assert.Len(t, db.applied, 12)
	firstRun := len(db.executed)
	assert.Equal(t, 13, firstRun) // tracking table + 12 steps

	require.NoError(t, m.Migrate(context.Background()))
	assert.Equal(t, firstRun+1, len(db.executed), "second run only re-ensures the tracking table")
}
