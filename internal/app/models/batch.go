package models

// Batch is a cohort admitted in a given year for a degree and branch.
type Batch struct {
	BatchID    int64      `json:"batchId" db:"batchid"`
	Degree     string     `json:"degree" db:"degree"`
	Branch     string     `json:"branch" db:"branch"`
	Batch      string     `json:"batch" db:"batch"`           // start year, e.g. "2024"
	BatchYears string     `json:"batchYears" db:"batchyears"` // e.g. "2024-2028"
	IsActive   ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
