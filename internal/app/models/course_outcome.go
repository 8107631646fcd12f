package models

// CourseOutcome is a weighted learning objective attached to a course.
type CourseOutcome struct {
	COID       int64      `json:"coId" db:"coid"`
	CourseCode string     `json:"courseCode" db:"coursecode"`
	CONumber   string     `json:"coNumber" db:"conumber"`
	Weightage  int        `json:"weightage" db:"weightage"`
	IsActive   ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}

// COTool is an assessment instrument measuring a course outcome.
type COTool struct {
	ToolID    int64      `json:"toolId" db:"toolid"`
	COID      int64      `json:"coId" db:"coid"`
	ToolName  string     `json:"toolName" db:"toolname"`
	Weightage int        `json:"weightage" db:"weightage"`
	IsActive  ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}

// StudentCOTool is the mark a student obtained on one tool.
type StudentCOTool struct {
	StudentToolID int64      `json:"studentToolId" db:"studenttoolid"`
	Rollnumber    string     `json:"rollnumber" db:"rollnumber"`
	ToolID        int64      `json:"toolId" db:"toolid"`
	MarksObtained int        `json:"marksObtained" db:"marksobtained"`
	IsActive      ActiveFlag `json:"isActive" db:"isactive"`
	Audit
}
