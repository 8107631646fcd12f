package models

// Timetable is one weekly teaching slot.
type Timetable struct {
	TimetableID  int64      `json:"timetableId" db:"timetableid"`
	StaffID      int64      `json:"staffId" db:"staffid"`
	CourseCode   string     `json:"courseCode" db:"coursecode"`
	Degree       string     `json:"degree" db:"degree"`
	Branch       string     `json:"branch" db:"branch"`
	Batch        string     `json:"batch" db:"batch"`
	DayOfWeek    DayOfWeek  `json:"dayOfWeek" db:"dayofweek"`
	PeriodNumber int        `json:"periodNumber" db:"periodnumber"`
	IsActive     ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
