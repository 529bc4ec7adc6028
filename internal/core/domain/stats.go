package domain

// DashboardStats is the admin dashboard aggregate: account counts per
// role plus the overall total.
type DashboardStats struct {
	TotalUsers              int64 `json:"total_users"`
	TotalStudents           int64 `json:"total_students"`
	TotalInstructors        int64 `json:"total_instructors"`
	TotalCurriculumManagers int64 `json:"total_curriculum_managers"`
	TotalAdmins             int64 `json:"total_admins"`
}
