package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/repositories"
	"github.com/college/academics/internal/pkg/dberrors"
)

// memDB is an in-memory stand-in for the schema. It enforces the unique and
// foreign-key constraints the services leave to the database.
type memDB struct {
	mu     sync.Mutex
	nextID int64

	batches      map[int64]*models.Batch
	users        map[int64]*models.User
	semesters    map[int64]*models.Semester
	courses      map[string]*models.Course
	students     map[string]*models.Student
	staffCourses map[int64]*models.StaffCourse
	outcomes     map[int64]*models.CourseOutcome
	tools        map[int64]*models.COTool
	marks        map[int64]*models.StudentCOTool
	slots        map[int64]*models.Timetable
	days         map[int64]*models.DayAttendance
	periods      map[int64]*models.PeriodAttendance
}

func newMemDB() *memDB {
	return &memDB{
		batches:      map[int64]*models.Batch{},
		users:        map[int64]*models.User{},
		semesters:    map[int64]*models.Semester{},
		courses:      map[string]*models.Course{},
		students:     map[string]*models.Student{},
		staffCourses: map[int64]*models.StaffCourse{},
		outcomes:     map[int64]*models.CourseOutcome{},
		tools:        map[int64]*models.COTool{},
		marks:        map[int64]*models.StudentCOTool{},
		slots:        map[int64]*models.Timetable{},
		days:         map[int64]*models.DayAttendance{},
		periods:      map[int64]*models.PeriodAttendance{},
	}
}

// newTestServices wires every service onto db the way NewServices wires them
// onto the repositories.
func newTestServices(db *memDB) *Services {
	batches := memBatches{db}
	users := memUsers{db}
	semesters := memSemesters{db}
	courses := memCourses{db}
	students := memStudents{db}
	outcomes := memOutcomes{db}
	tools := memTools{db}

	return &Services{
		BatchService:         NewBatchService(batches),
		UserService:          NewUserService(users),
		SemesterService:      NewSemesterService(semesters, batches),
		CourseService:        NewCourseService(courses, semesters, batches),
		StudentService:       NewStudentService(students, courses),
		StaffCourseService:   NewStaffCourseService(memStaffCourses{db}, users, courses),
		CourseOutcomeService: NewCourseOutcomeService(outcomes, courses),
		COToolService:        NewCOToolService(tools, outcomes),
		StudentMarkService:   NewStudentMarkService(memMarks{db}, students, tools, outcomes, courses),
		TimetableService:     NewTimetableService(memSlots{db}, users, courses),
		AttendanceService:    NewAttendanceService(memDays{db}, memPeriods{db}, students, users, courses),
	}
}

func (db *memDB) newID() int64 {
	db.nextID++
	return db.nextID
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: dberrors.CodeUniqueViolation, ConstraintName: constraint}
}

func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: dberrors.CodeForeignKeyViolation, ConstraintName: constraint}
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func created(a *models.Audit) {
	now := time.Now()
	a.CreatedDate = now
	a.UpdatedDate = now
}

// touched keeps the creation half of prev and stamps the update time.
func touched(a *models.Audit, prev models.Audit) {
	a.CreatedBy = prev.CreatedBy
	a.CreatedDate = prev.CreatedDate
	a.UpdatedDate = time.Now()
}

func rowsOf[T any](m map[int64]*T, keep func(*T) bool) []*T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(m[id]))
	}
	return out
}

// seeding helpers

func (db *memDB) addBatch(degree, branch, batch string) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.newID()
	db.batches[id] = &models.Batch{BatchID: id, Degree: degree, Branch: branch, Batch: batch,
		BatchYears: batch + "-2099", IsActive: models.ActiveYes}
	return id
}

func (db *memDB) addSemester(batchID int64, number int) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.newID()
	db.semesters[id] = &models.Semester{SemesterID: id, BatchID: batchID, Degree: "BTech", Branch: "CSE",
		SemesterNumber: number, StartDate: "2024-01-10", EndDate: "2024-05-20", IsActive: models.ActiveYes}
	return id
}

func (db *memDB) addCourse(code string, semesterID, batchID int64, maxMark int) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.courses[code] = &models.Course{CourseCode: code, SemesterID: semesterID, BatchID: batchID,
		CourseName: code, CourseType: models.CourseTypeTheory, CourseCategory: models.CourseCategoryCore,
		MaxMark: maxMark, IsActive: models.ActiveYes}
}

func (db *memDB) addUser(email string, role models.RoleType) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.newID()
	db.users[id] = &models.User{UserID: id, Name: email, Email: email, Role: role, IsActive: models.ActiveYes}
	return id
}

func (db *memDB) addStudent(rollnumber, courseCode string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.students[rollnumber] = &models.Student{Rollnumber: rollnumber, Name: rollnumber, CourseCode: courseCode,
		Degree: "BTech", Branch: "CSE", Batch: "2024", SemesterNumber: 3, IsActive: models.ActiveYes}
}

func (db *memDB) count(table string) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	switch table {
	case "Batch":
		return len(db.batches)
	case "Semester":
		return len(db.semesters)
	case "Course":
		return len(db.courses)
	case "Student":
		return len(db.students)
	case "StudentCOTool":
		return len(db.marks)
	case "Timetable":
		return len(db.slots)
	case "DayAttendance":
		return len(db.days)
	case "PeriodAttendance":
		return len(db.periods)
	}
	return -1
}

// Batch

type memBatches struct{ db *memDB }

func (s memBatches) Create(_ context.Context, b *models.Batch) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.findKey(b.Degree, b.Branch, b.Batch, 0) != nil {
		return 0, uniqueViolation("uq_batch")
	}
	row := clone(b)
	row.BatchID = s.db.newID()
	created(&row.Audit)
	s.db.batches[row.BatchID] = row
	return row.BatchID, nil
}

func (s memBatches) findKey(degree, branch, batch string, except int64) *models.Batch {
	for _, b := range s.db.batches {
		if b.BatchID != except && b.Degree == degree && b.Branch == branch && b.Batch == batch {
			return b
		}
	}
	return nil
}

func (s memBatches) GetByID(_ context.Context, id int64) (*models.Batch, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.batches[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memBatches) FindByKey(_ context.Context, degree, branch, batch string) (*models.Batch, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if row := s.findKey(degree, branch, batch, 0); row != nil {
		return clone(row), nil
	}
	return nil, repositories.ErrNotFound
}

func (s memBatches) GetAll(context.Context) ([]*models.Batch, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.batches, nil), nil
}

func (s memBatches) Exists(_ context.Context, id int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	_, ok := s.db.batches[id]
	return ok, nil
}

func (s memBatches) ExistsYear(_ context.Context, year string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, b := range s.db.batches {
		if b.Batch == year {
			return true, nil
		}
	}
	return false, nil
}

func (s memBatches) Update(_ context.Context, b *models.Batch) (*models.Batch, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.batches[b.BatchID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if s.findKey(b.Degree, b.Branch, b.Batch, b.BatchID) != nil {
		return nil, uniqueViolation("uq_batch")
	}
	row := clone(b)
	touched(&row.Audit, prev.Audit)
	s.db.batches[row.BatchID] = row
	return clone(row), nil
}

func (s memBatches) SoftDelete(_ context.Context, id int64, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.batches[id]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// Semester

type memSemesters struct{ db *memDB }

func (s memSemesters) duplicate(sem *models.Semester) bool {
	for _, other := range s.db.semesters {
		if other.SemesterID != sem.SemesterID && other.BatchID == sem.BatchID && other.Degree == sem.Degree &&
			other.Branch == sem.Branch && other.SemesterNumber == sem.SemesterNumber {
			return true
		}
	}
	return false
}

func (s memSemesters) Create(_ context.Context, sem *models.Semester) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.batches[sem.BatchID]; !ok {
		return 0, fkViolation("fk_sem_batch")
	}
	if s.duplicate(sem) {
		return 0, uniqueViolation("uq_semester")
	}
	row := clone(sem)
	row.SemesterID = s.db.newID()
	created(&row.Audit)
	s.db.semesters[row.SemesterID] = row
	return row.SemesterID, nil
}

func (s memSemesters) Find(_ context.Context, batchID int64, degree, branch string, semesterNumber int) ([]*models.Semester, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.semesters, func(sem *models.Semester) bool {
		return sem.BatchID == batchID && sem.Degree == degree && sem.Branch == branch && sem.SemesterNumber == semesterNumber
	}), nil
}

func (s memSemesters) FindByBatchYear(_ context.Context, year, degree, branch string, semesterNumber int) ([]*models.Semester, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.semesters, func(sem *models.Semester) bool {
		batch, ok := s.db.batches[sem.BatchID]
		return ok && batch.Batch == year && sem.Degree == degree && sem.Branch == branch && sem.SemesterNumber == semesterNumber
	}), nil
}

func (s memSemesters) GetAll(context.Context) ([]*models.Semester, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.semesters, nil), nil
}

func (s memSemesters) GetByID(_ context.Context, id int64) (*models.Semester, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.semesters[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memSemesters) Update(_ context.Context, sem *models.Semester) (*models.Semester, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.semesters[sem.SemesterID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if s.duplicate(sem) {
		return nil, uniqueViolation("uq_semester")
	}
	row := clone(sem)
	touched(&row.Audit, prev.Audit)
	s.db.semesters[row.SemesterID] = row
	return clone(row), nil
}

func (s memSemesters) Delete(_ context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.semesters[id]; !ok {
		return repositories.ErrNotFound
	}
	for _, c := range s.db.courses {
		if c.SemesterID == id {
			return fkViolation("fk_course_sem")
		}
	}
	delete(s.db.semesters, id)
	return nil
}

// Course

type memCourses struct{ db *memDB }

func (s memCourses) Create(_ context.Context, c *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.semesters[c.SemesterID]; !ok {
		return fkViolation("fk_course_sem")
	}
	if _, ok := s.db.batches[c.BatchID]; !ok {
		return fkViolation("fk_course_batch")
	}
	if _, ok := s.db.courses[c.CourseCode]; ok {
		return uniqueViolation("course_pkey")
	}
	row := clone(c)
	created(&row.Audit)
	s.db.courses[row.CourseCode] = row
	return nil
}

func (s memCourses) GetByCode(_ context.Context, code string) (*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.courses[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memCourses) list(keep func(*models.Course) bool) []*models.Course {
	codes := make([]string, 0, len(s.db.courses))
	for code, c := range s.db.courses {
		if keep == nil || keep(c) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	out := make([]*models.Course, 0, len(codes))
	for _, code := range codes {
		out = append(out, clone(s.db.courses[code]))
	}
	return out
}

func (s memCourses) GetAll(context.Context) ([]*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.list(nil), nil
}

func (s memCourses) GetBySemester(_ context.Context, semesterID int64) ([]*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.list(func(c *models.Course) bool { return c.SemesterID == semesterID }), nil
}

func (s memCourses) Exists(_ context.Context, code string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	_, ok := s.db.courses[code]
	return ok, nil
}

func (s memCourses) Update(_ context.Context, c *models.Course) (*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.courses[c.CourseCode]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	row := clone(c)
	touched(&row.Audit, prev.Audit)
	s.db.courses[row.CourseCode] = row
	return clone(row), nil
}

func (s memCourses) SoftDelete(_ context.Context, code, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.courses[code]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// Users

type memUsers struct{ db *memDB }

func (s memUsers) byEmail(email string) *models.User {
	for _, u := range s.db.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s memUsers) Create(_ context.Context, u *models.User) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.byEmail(u.Email) != nil {
		return 0, uniqueViolation("uq_users_email")
	}
	row := clone(u)
	row.UserID = s.db.newID()
	created(&row.Audit)
	s.db.users[row.UserID] = row
	return row.UserID, nil
}

func (s memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if row := s.byEmail(email); row != nil {
		return clone(row), nil
	}
	return nil, repositories.ErrNotFound
}

func (s memUsers) EmailExists(_ context.Context, email string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.byEmail(email) != nil, nil
}

func (s memUsers) List(_ context.Context, role models.RoleType) ([]*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.users, func(u *models.User) bool { return role == "" || u.Role == role }), nil
}

func (s memUsers) Update(_ context.Context, u *models.User) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.users[u.UserID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if other := s.byEmail(u.Email); other != nil && other.UserID != u.UserID {
		return nil, uniqueViolation("uq_users_email")
	}
	row := clone(u)
	touched(&row.Audit, prev.Audit)
	s.db.users[row.UserID] = row
	return clone(row), nil
}

func (s memUsers) SoftDelete(_ context.Context, id int64, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// Student

type memStudents struct{ db *memDB }

func (s memStudents) Create(_ context.Context, st *models.Student) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.courses[st.CourseCode]; !ok {
		return fkViolation("fk_stu_course")
	}
	if _, ok := s.db.students[st.Rollnumber]; ok {
		return uniqueViolation("student_pkey")
	}
	row := clone(st)
	created(&row.Audit)
	s.db.students[row.Rollnumber] = row
	return nil
}

func (s memStudents) GetByRollnumber(_ context.Context, rollnumber string) (*models.Student, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.students[rollnumber]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memStudents) Exists(_ context.Context, rollnumber string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	_, ok := s.db.students[rollnumber]
	return ok, nil
}

func (s memStudents) List(_ context.Context, f repositories.StudentFilter) ([]*models.Student, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	rolls := make([]string, 0, len(s.db.students))
	for roll, st := range s.db.students {
		if (f.Degree == "" || st.Degree == f.Degree) && (f.Branch == "" || st.Branch == f.Branch) &&
			(f.Batch == "" || st.Batch == f.Batch) && (f.SemesterNumber == 0 || st.SemesterNumber == f.SemesterNumber) {
			rolls = append(rolls, roll)
		}
	}
	sort.Strings(rolls)
	out := make([]*models.Student, 0, len(rolls))
	for _, roll := range rolls {
		out = append(out, clone(s.db.students[roll]))
	}
	return out, nil
}

func (s memStudents) Update(_ context.Context, st *models.Student) (*models.Student, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.students[st.Rollnumber]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	row := clone(st)
	touched(&row.Audit, prev.Audit)
	s.db.students[row.Rollnumber] = row
	return clone(row), nil
}

func (s memStudents) SoftDelete(_ context.Context, rollnumber, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.students[rollnumber]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// StaffCourse

type memStaffCourses struct{ db *memDB }

func (s memStaffCourses) exists(staffID int64, courseCode string) bool {
	for _, sc := range s.db.staffCourses {
		if sc.StaffID == staffID && sc.CourseCode == courseCode {
			return true
		}
	}
	return false
}

func (s memStaffCourses) Create(_ context.Context, sc *models.StaffCourse) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.exists(sc.StaffID, sc.CourseCode) {
		return 0, uniqueViolation("uq_staff_course")
	}
	row := clone(sc)
	row.StaffCourseID = s.db.newID()
	created(&row.Audit)
	s.db.staffCourses[row.StaffCourseID] = row
	return row.StaffCourseID, nil
}

func (s memStaffCourses) AssignmentExists(_ context.Context, staffID int64, courseCode string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.exists(staffID, courseCode), nil
}

func (s memStaffCourses) ListByStaff(_ context.Context, staffID int64) ([]*models.StaffCourse, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.staffCourses, func(sc *models.StaffCourse) bool { return sc.StaffID == staffID }), nil
}

func (s memStaffCourses) ListByCourse(_ context.Context, courseCode string) ([]*models.StaffCourse, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.staffCourses, func(sc *models.StaffCourse) bool { return sc.CourseCode == courseCode }), nil
}

func (s memStaffCourses) SoftDelete(_ context.Context, id int64, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.staffCourses[id]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// CourseOutcome

type memOutcomes struct{ db *memDB }

func (s memOutcomes) numberTaken(courseCode, coNumber string, except int64) bool {
	for _, co := range s.db.outcomes {
		if co.COID != except && co.CourseCode == courseCode && co.CONumber == coNumber {
			return true
		}
	}
	return false
}

func (s memOutcomes) Create(_ context.Context, co *models.CourseOutcome) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.numberTaken(co.CourseCode, co.CONumber, 0) {
		return 0, uniqueViolation("uq_course_outcome")
	}
	row := clone(co)
	row.COID = s.db.newID()
	created(&row.Audit)
	s.db.outcomes[row.COID] = row
	return row.COID, nil
}

func (s memOutcomes) GetByID(_ context.Context, id int64) (*models.CourseOutcome, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.outcomes[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memOutcomes) NumberExists(_ context.Context, courseCode, coNumber string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.numberTaken(courseCode, coNumber, 0), nil
}

func (s memOutcomes) ListByCourse(_ context.Context, courseCode string) ([]*models.CourseOutcome, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.outcomes, func(co *models.CourseOutcome) bool { return co.CourseCode == courseCode }), nil
}

func (s memOutcomes) Update(_ context.Context, co *models.CourseOutcome) (*models.CourseOutcome, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.outcomes[co.COID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if s.numberTaken(prev.CourseCode, co.CONumber, co.COID) {
		return nil, uniqueViolation("uq_course_outcome")
	}
	row := clone(co)
	row.CourseCode = prev.CourseCode
	touched(&row.Audit, prev.Audit)
	s.db.outcomes[row.COID] = row
	return clone(row), nil
}

func (s memOutcomes) SoftDelete(_ context.Context, id int64, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.outcomes[id]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// COTool

type memTools struct{ db *memDB }

func (s memTools) Create(_ context.Context, t *models.COTool) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if _, ok := s.db.outcomes[t.COID]; !ok {
		return 0, fkViolation("fk_tool_co")
	}
	row := clone(t)
	row.ToolID = s.db.newID()
	created(&row.Audit)
	s.db.tools[row.ToolID] = row
	return row.ToolID, nil
}

func (s memTools) GetByID(_ context.Context, id int64) (*models.COTool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.tools[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memTools) ListByOutcome(_ context.Context, coID int64) ([]*models.COTool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.tools, func(t *models.COTool) bool { return t.COID == coID }), nil
}

func (s memTools) Update(_ context.Context, t *models.COTool) (*models.COTool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.tools[t.ToolID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	row := clone(t)
	row.COID = prev.COID
	touched(&row.Audit, prev.Audit)
	s.db.tools[row.ToolID] = row
	return clone(row), nil
}

func (s memTools) SoftDelete(_ context.Context, id int64, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.tools[id]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// StudentCOTool

type memMarks struct{ db *memDB }

func (s memMarks) exists(rollnumber string, toolID int64) bool {
	for _, m := range s.db.marks {
		if m.Rollnumber == rollnumber && m.ToolID == toolID {
			return true
		}
	}
	return false
}

func (s memMarks) Create(_ context.Context, m *models.StudentCOTool) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.exists(m.Rollnumber, m.ToolID) {
		return 0, uniqueViolation("uq_student_tool")
	}
	row := clone(m)
	row.StudentToolID = s.db.newID()
	created(&row.Audit)
	s.db.marks[row.StudentToolID] = row
	return row.StudentToolID, nil
}

func (s memMarks) GetByID(_ context.Context, id int64) (*models.StudentCOTool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.marks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return clone(row), nil
}

func (s memMarks) MarkExists(_ context.Context, rollnumber string, toolID int64) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.exists(rollnumber, toolID), nil
}

func (s memMarks) ListByTool(_ context.Context, toolID int64) ([]*models.StudentCOTool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.marks, func(m *models.StudentCOTool) bool { return m.ToolID == toolID }), nil
}

func (s memMarks) Update(_ context.Context, m *models.StudentCOTool) (*models.StudentCOTool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.marks[m.StudentToolID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	row := clone(prev)
	row.MarksObtained = m.MarksObtained
	row.IsActive = m.IsActive
	row.UpdatedBy = m.UpdatedBy
	row.UpdatedDate = time.Now()
	s.db.marks[row.StudentToolID] = row
	return clone(row), nil
}

// Timetable

type memSlots struct{ db *memDB }

func (s memSlots) taken(t *models.Timetable) bool {
	for _, o := range s.db.slots {
		if o.TimetableID != t.TimetableID && o.StaffID == t.StaffID && o.CourseCode == t.CourseCode &&
			o.Degree == t.Degree && o.Branch == t.Branch && o.Batch == t.Batch &&
			o.DayOfWeek == t.DayOfWeek && o.PeriodNumber == t.PeriodNumber {
			return true
		}
	}
	return false
}

func (s memSlots) Create(_ context.Context, t *models.Timetable) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.taken(t) {
		return 0, uniqueViolation("uq_timetable_slot")
	}
	row := clone(t)
	row.TimetableID = s.db.newID()
	created(&row.Audit)
	s.db.slots[row.TimetableID] = row
	return row.TimetableID, nil
}

func (s memSlots) SlotExists(_ context.Context, t *models.Timetable) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.taken(t), nil
}

func (s memSlots) ListByStaff(_ context.Context, staffID int64) ([]*models.Timetable, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.slots, func(t *models.Timetable) bool { return t.StaffID == staffID }), nil
}

func (s memSlots) ListByClass(_ context.Context, degree, branch, batch string) ([]*models.Timetable, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.slots, func(t *models.Timetable) bool {
		return t.Degree == degree && t.Branch == branch && t.Batch == batch
	}), nil
}

func (s memSlots) Update(_ context.Context, t *models.Timetable) (*models.Timetable, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	prev, ok := s.db.slots[t.TimetableID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if s.taken(t) {
		return nil, uniqueViolation("uq_timetable_slot")
	}
	row := clone(t)
	touched(&row.Audit, prev.Audit)
	s.db.slots[row.TimetableID] = row
	return clone(row), nil
}

func (s memSlots) SoftDelete(_ context.Context, id int64, updatedBy string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.slots[id]
	if !ok {
		return repositories.ErrNotFound
	}
	row.IsActive = models.ActiveNo
	row.UpdatedBy = &updatedBy
	return nil
}

// DayAttendance

type memDays struct{ db *memDB }

func (s memDays) marked(rollnumber, date string) bool {
	for _, d := range s.db.days {
		if d.Rollnumber == rollnumber && d.AttendanceDate == date {
			return true
		}
	}
	return false
}

func (s memDays) insert(a *models.DayAttendance) int64 {
	row := clone(a)
	row.DayAttendanceID = s.db.newID()
	created(&row.Audit)
	s.db.days[row.DayAttendanceID] = row
	return row.DayAttendanceID
}

func (s memDays) Create(_ context.Context, a *models.DayAttendance) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.marked(a.Rollnumber, a.AttendanceDate) {
		return 0, uniqueViolation("uq_day_attendance")
	}
	return s.insert(a), nil
}

// CreateMany is all-or-nothing like the transactional repository.
func (s memDays) CreateMany(_ context.Context, records []*models.DayAttendance) ([]int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, a := range records {
		if s.marked(a.Rollnumber, a.AttendanceDate) {
			return nil, uniqueViolation("uq_day_attendance")
		}
	}
	ids := make([]int64, 0, len(records))
	for _, a := range records {
		ids = append(ids, s.insert(a))
	}
	return ids, nil
}

func (s memDays) MarkExists(_ context.Context, rollnumber, date string) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.marked(rollnumber, date), nil
}

func (s memDays) List(_ context.Context, date, degree, branch, batch string) ([]*models.DayAttendance, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.days, func(d *models.DayAttendance) bool {
		return d.AttendanceDate == date && d.Degree == degree && d.Branch == branch && d.Batch == batch
	}), nil
}

func (s memDays) UpdateStatus(_ context.Context, id int64, status models.AttendanceStatus, updatedBy string) (*models.DayAttendance, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.days[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	row.Status = status
	row.UpdatedBy = &updatedBy
	row.UpdatedDate = time.Now()
	return clone(row), nil
}

// PeriodAttendance

type memPeriods struct{ db *memDB }

func (s memPeriods) marked(rollnumber, courseCode, date string, period int) bool {
	for _, p := range s.db.periods {
		if p.Rollnumber == rollnumber && p.CourseCode == courseCode && p.AttendanceDate == date && p.PeriodNumber == period {
			return true
		}
	}
	return false
}

func (s memPeriods) Create(_ context.Context, a *models.PeriodAttendance) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.marked(a.Rollnumber, a.CourseCode, a.AttendanceDate, a.PeriodNumber) {
		return 0, uniqueViolation("uq_period_attendance")
	}
	row := clone(a)
	row.PeriodAttendanceID = s.db.newID()
	created(&row.Audit)
	s.db.periods[row.PeriodAttendanceID] = row
	return row.PeriodAttendanceID, nil
}

func (s memPeriods) MarkExists(_ context.Context, rollnumber, courseCode, date string, periodNumber int) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return s.marked(rollnumber, courseCode, date, periodNumber), nil
}

func (s memPeriods) List(_ context.Context, courseCode, date string) ([]*models.PeriodAttendance, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return rowsOf(s.db.periods, func(p *models.PeriodAttendance) bool {
		return p.CourseCode == courseCode && p.AttendanceDate == date
	}), nil
}

func (s memPeriods) UpdateStatus(_ context.Context, id int64, status models.AttendanceStatus, updatedBy string) (*models.PeriodAttendance, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	row, ok := s.db.periods[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	row.Status = status
	row.UpdatedBy = &updatedBy
	row.UpdatedDate = time.Now()
	return clone(row), nil
}
