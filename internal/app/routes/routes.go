package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/college/academics/internal/app/controllers"
)

// SetupRouter configures all application routes. The admin API is mounted at
// the root.
func SetupRouter(router *gin.Engine, c *controllers.Controllers) {
	router.GET("/health", c.Health.Health)

	// --- Semester and course routes ---
	router.POST("/semester", c.Semester.CreateSemester)
	router.GET("/semester", c.Semester.GetSemesters)
	router.GET("/semesters", c.Semester.GetAllSemesters)
	router.PUT("/semester/:semesterId", c.Semester.UpdateSemester)
	router.DELETE("/semester/:semesterId", c.Semester.DeleteSemester)
	router.POST("/semester/:semesterId/courses", c.Course.CreateCourse)
	router.GET("/semester/:semesterId/courses", c.Course.GetCoursesBySemester)

	router.GET("/courses", c.Course.GetAllCourses)
	course := router.Group("/course/:courseCode")
	{
		course.GET("", c.Course.GetCourse)
		course.PUT("", c.Course.UpdateCourse)
		course.DELETE("", c.Course.DeleteCourse)
		course.GET("/staff", c.StaffCourse.GetStaffByCourse)
		course.POST("/outcomes", c.CourseOutcome.CreateOutcome)
		course.GET("/outcomes", c.CourseOutcome.GetOutcomesByCourse)
	}

	// --- Batch routes ---
	router.POST("/batch", c.Batch.CreateBatch)
	router.GET("/batches", c.Batch.GetAllBatches)
	router.GET("/batch/:batchId", c.Batch.GetBatchByID)
	router.PUT("/batch/:batchId", c.Batch.UpdateBatch)
	router.DELETE("/batch/:batchId", c.Batch.DeleteBatch)

	// --- User routes ---
	users := router.Group("/users")
	{
		users.POST("", c.User.CreateUser)
		users.GET("", c.User.GetUsers)
		users.GET("/:userId", c.User.GetUserByID)
		users.PUT("/:userId", c.User.UpdateUser)
		users.DELETE("/:userId", c.User.DeleteUser)
	}

	// --- Student routes ---
	students := router.Group("/students")
	{
		students.POST("", c.Student.CreateStudent)
		students.GET("", c.Student.GetStudents)
		students.GET("/:rollnumber", c.Student.GetStudent)
		students.PUT("/:rollnumber", c.Student.UpdateStudent)
		students.DELETE("/:rollnumber", c.Student.DeleteStudent)
	}

	// --- Staff assignment routes ---
	router.POST("/staff-courses", c.StaffCourse.AssignCourse)
	router.DELETE("/staff-courses/:staffCourseId", c.StaffCourse.DeleteAssignment)
	router.GET("/staff/:staffId/courses", c.StaffCourse.GetCoursesByStaff)

	// --- Outcome assessment routes ---
	outcomes := router.Group("/outcomes/:coId")
	{
		outcomes.PUT("", c.CourseOutcome.UpdateOutcome)
		outcomes.DELETE("", c.CourseOutcome.DeleteOutcome)
		outcomes.POST("/tools", c.COTool.CreateTool)
		outcomes.GET("/tools", c.COTool.GetToolsByOutcome)
	}
	tools := router.Group("/tools/:toolId")
	{
		tools.PUT("", c.COTool.UpdateTool)
		tools.DELETE("", c.COTool.DeleteTool)
		tools.POST("/marks", c.StudentMark.RecordMark)
		tools.GET("/marks", c.StudentMark.GetMarksByTool)
	}
	router.PUT("/marks/:studentToolId", c.StudentMark.UpdateMark)

	// --- Timetable routes ---
	timetable := router.Group("/timetable")
	{
		timetable.POST("", c.Timetable.CreateSlot)
		timetable.GET("", c.Timetable.GetTimetable)
		timetable.PUT("/:timetableId", c.Timetable.UpdateSlot)
		timetable.DELETE("/:timetableId", c.Timetable.DeleteSlot)
	}

	// --- Attendance routes ---
	attendance := router.Group("/attendance")
	{
		attendance.POST("/day", c.Attendance.MarkDay)
		attendance.POST("/day/bulk", c.Attendance.MarkDayBulk)
		attendance.GET("/day", c.Attendance.GetDayAttendance)
		attendance.PUT("/day/:dayAttendanceId", c.Attendance.UpdateDay)
		attendance.POST("/period", c.Attendance.MarkPeriod)
		attendance.GET("/period", c.Attendance.GetPeriodAttendance)
		attendance.PUT("/period/:periodAttendanceId", c.Attendance.UpdatePeriod)
	}
}
