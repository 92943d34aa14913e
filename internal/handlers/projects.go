package handlers

import (
	"fyp-app-server/internal/middleware"
	"fyp-app-server/internal/models"
	"fyp-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectHandler handles final year project related requests.
type ProjectHandler struct {
	DB *gorm.DB
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: db}
}

// ProposeProjectRequest represents the request body for proposing a project.
type ProposeProjectRequest struct {
	SupervisorID string `json:"supervisorId" binding:"required,uuid"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	AcademicYear string `json:"academicYear" binding:"required"`
}

// ProposeProject handles a student proposing a new project to a supervisor.
func (h *ProjectHandler) ProposeProject(c *gin.Context) {
	var req ProposeProjectRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	studentID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Student ID not found in token")
		return
	}

	// Verify supervisor exists and has the supervisor role
	var supervisor models.User
	if err := h.DB.Where("id = ? AND role = ?", req.SupervisorID, models.RoleSupervisor).First(&supervisor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Supervisor not found or user is not a supervisor")
		} else {
			utils.InternalServerError(c, "Database error verifying supervisor: "+err.Error())
		}
		return
	}

	// One active project per student per academic year
	var existing models.Project
	err := h.DB.Where("student_id = ? AND academic_year = ? AND status NOT IN ?",
		studentID, req.AcademicYear, []models.ProjectStatus{models.ProjectStatusRejected}).
		First(&existing).Error
	if err == nil {
		utils.Conflict(c, "You already have a project for this academic year")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	project := models.Project{
		StudentID:    studentID,
		SupervisorID: req.SupervisorID,
		Title:        req.Title,
		Description:  req.Description,
		AcademicYear: req.AcademicYear,
		Status:       models.ProjectStatusProposed,
	}

	if err := h.DB.Create(&project).Error; err != nil {
		utils.InternalServerError(c, "Failed to create project: "+err.Error())
		return
	}

	utils.Created(c, "Project proposed successfully", project)
}

// GetProjectsForUser handles fetching projects for the logged-in user.
func (h *ProjectHandler) GetProjectsForUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	userRole, _ := middleware.GetUserRoleFromContext(c)

	var projects []models.Project
	var err error

	query := h.DB.Preload("Student").Preload("Supervisor").Order("created_at desc")

	switch userRole {
	case models.RoleStudent:
		err = query.Where("student_id = ?", userID).Find(&projects).Error
	case models.RoleSupervisor:
		err = query.Where("supervisor_id = ?", userID).Find(&projects).Error
	case models.RoleAdmin:
		err = query.Find(&projects).Error
	default:
		utils.Forbidden(c, "User role not permitted to view projects. Role: "+string(userRole))
		return
	}

	if err != nil {
		utils.InternalServerError(c, "Failed to fetch projects: "+err.Error())
		return
	}

	utils.Success(c, "Projects fetched successfully", projects)
}

// GetProjectByID handles fetching a single project by its ID.
// Accessible by the involved student, the supervisor, or an admin.
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	projectIDStr := c.Param("id")
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	var project models.Project
	if err := h.DB.Preload("Student").Preload("Supervisor").Preload("Tasks").Preload("Milestones").
		First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Project not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	if userRole != models.RoleAdmin && userID != project.StudentID && userID != project.SupervisorID {
		utils.Forbidden(c, "You are not authorized to view this project")
		return
	}

	utils.Success(c, "Project fetched successfully", project)
}

// UpdateProjectRequest represents the request body for a student editing a proposal.
type UpdateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateProject handles a student revising their proposal before approval.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectIDStr := c.Param("id")

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var project models.Project
	if err := h.DB.First(&project, "id = ?", projectIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Project not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	if userRole != models.RoleAdmin && userID != project.StudentID {
		utils.Forbidden(c, "Only the project's student can edit the proposal")
		return
	}
	if project.Status != models.ProjectStatusProposed && userRole != models.RoleAdmin {
		utils.BadRequest(c, "Only proposed projects can be edited")
		return
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Description != "" {
		project.Description = req.Description
	}

	if err := h.DB.Save(&project).Error; err != nil {
		utils.InternalServerError(c, "Failed to update project: "+err.Error())
		return
	}

	utils.Success(c, "Project updated successfully", project)
}

// UpdateProjectStatusRequest represents the request body for updating a project's status.
type UpdateProjectStatusRequest struct {
	Status   models.ProjectStatus `json:"status" binding:"required,oneof=proposed approved rejected in_progress completed"`
	Feedback string               `json:"feedback"` // Optional feedback for the status change
}

// UpdateProjectStatus handles updating the status of a project.
// Supervisors drive the approval workflow for their own projects; admins can
// move any project to any status.
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	projectIDStr := c.Param("id")
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	var req UpdateProjectStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var project models.Project
	if err := h.DB.First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Project not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)

	canUpdate := false
	if userRole == models.RoleAdmin {
		canUpdate = true
	} else if userRole == models.RoleSupervisor && userID == project.SupervisorID {
		canUpdate = true
	}

	if !canUpdate {
		utils.Forbidden(c, "You are not authorized to update this project's status")
		return
	}

	project.Status = req.Status
	if req.Feedback != "" {
		project.Feedback = req.Feedback
	}

	if err := h.DB.Save(&project).Error; err != nil {
		utils.InternalServerError(c, "Failed to update project status: "+err.Error())
		return
	}

	utils.Success(c, "Project status updated successfully", project)
}
