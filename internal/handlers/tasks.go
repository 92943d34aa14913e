package handlers

import (
	"time"

	"fyp-app-server/internal/middleware"
	"fyp-app-server/internal/models"
	"fyp-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskHandler handles project task and milestone requests.
type TaskHandler struct {
	DB *gorm.DB
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(db *gorm.DB) *TaskHandler {
	return &TaskHandler{DB: db}
}

// projectForMember loads a project and confirms the requester belongs to it.
func (h *TaskHandler) projectForMember(c *gin.Context, projectID string) (*models.Project, bool) {
	var project models.Project
	if err := h.DB.First(&project, "id = ?", projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Project not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return nil, false
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && userID != project.StudentID && userID != project.SupervisorID {
		utils.Forbidden(c, "You are not a member of this project")
		return nil, false
	}
	return &project, true
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// CreateTask handles adding a task to a project. Both the student and the
// supervisor can create tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectIDStr := c.Param("id")
	if _, err := uuid.Parse(projectIDStr); err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	var req CreateTaskRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	project, ok := h.projectForMember(c, projectIDStr)
	if !ok {
		return
	}

	creatorID, _ := middleware.GetUserIDFromContext(c)
	task := models.Task{
		ProjectID:   project.ID,
		CreatedByID: creatorID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		DueDate:     req.DueDate,
	}

	if err := h.DB.Create(&task).Error; err != nil {
		utils.InternalServerError(c, "Failed to create task: "+err.Error())
		return
	}

	utils.Created(c, "Task created successfully", task)
}

// GetTasksForProject handles listing a project's tasks.
func (h *TaskHandler) GetTasksForProject(c *gin.Context) {
	projectIDStr := c.Param("id")
	if _, err := uuid.Parse(projectIDStr); err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	project, ok := h.projectForMember(c, projectIDStr)
	if !ok {
		return
	}

	var tasks []models.Task
	if err := h.DB.Where("project_id = ?", project.ID).Order("created_at asc").Find(&tasks).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch tasks: "+err.Error())
		return
	}

	utils.Success(c, "Tasks fetched successfully", tasks)
}

// UpdateTaskRequest represents the request body for updating a task.
type UpdateTaskRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress done"`
	DueDate     *time.Time        `json:"dueDate"`
}

// UpdateTask handles editing a task's fields or moving it between statuses.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskIDStr := c.Param("taskId")

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var task models.Task
	if err := h.DB.First(&task, "id = ?", taskIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Task not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if _, ok := h.projectForMember(c, task.ProjectID); !ok {
		return
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := h.DB.Save(&task).Error; err != nil {
		utils.InternalServerError(c, "Failed to update task: "+err.Error())
		return
	}

	utils.Success(c, "Task updated successfully", task)
}

// DeleteTask handles removing a task from a project.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskIDStr := c.Param("taskId")

	var task models.Task
	if err := h.DB.First(&task, "id = ?", taskIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Task not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if _, ok := h.projectForMember(c, task.ProjectID); !ok {
		return
	}

	if err := h.DB.Delete(&models.Task{}, "id = ?", task.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete task: "+err.Error())
		return
	}

	utils.Success(c, "Task deleted successfully", nil)
}

// CreateMilestoneRequest represents the request body for creating a milestone.
type CreateMilestoneRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate" binding:"required"`
}

// CreateMilestone handles adding a milestone to a project.
// Only the supervisor or an admin sets milestones.
func (h *TaskHandler) CreateMilestone(c *gin.Context) {
	projectIDStr := c.Param("id")
	if _, err := uuid.Parse(projectIDStr); err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	var req CreateMilestoneRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	project, ok := h.projectForMember(c, projectIDStr)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && !(userRole == models.RoleSupervisor && userID == project.SupervisorID) {
		utils.Forbidden(c, "Only the project's supervisor can set milestones")
		return
	}

	milestone := models.Milestone{
		ProjectID:   project.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.MilestoneStatusPending,
		DueDate:     req.DueDate,
	}

	if err := h.DB.Create(&milestone).Error; err != nil {
		utils.InternalServerError(c, "Failed to create milestone: "+err.Error())
		return
	}

	utils.Created(c, "Milestone created successfully", milestone)
}

// GetMilestonesForProject handles listing a project's milestones.
func (h *TaskHandler) GetMilestonesForProject(c *gin.Context) {
	projectIDStr := c.Param("id")
	if _, err := uuid.Parse(projectIDStr); err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	project, ok := h.projectForMember(c, projectIDStr)
	if !ok {
		return
	}

	var milestones []models.Milestone
	if err := h.DB.Where("project_id = ?", project.ID).Order("due_date asc").Find(&milestones).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch milestones: "+err.Error())
		return
	}

	utils.Success(c, "Milestones fetched successfully", milestones)
}

// UpdateMilestoneStatusRequest represents the request body for a milestone status change.
type UpdateMilestoneStatusRequest struct {
	Status models.MilestoneStatus `json:"status" binding:"required,oneof=pending reached missed"`
}

// UpdateMilestoneStatus handles marking a milestone reached or missed.
func (h *TaskHandler) UpdateMilestoneStatus(c *gin.Context) {
	milestoneIDStr := c.Param("milestoneId")

	var req UpdateMilestoneStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var milestone models.Milestone
	if err := h.DB.First(&milestone, "id = ?", milestoneIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Milestone not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	project, ok := h.projectForMember(c, milestone.ProjectID)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && !(userRole == models.RoleSupervisor && userID == project.SupervisorID) {
		utils.Forbidden(c, "Only the project's supervisor can update milestones")
		return
	}

	milestone.Status = req.Status
	if err := h.DB.Save(&milestone).Error; err != nil {
		utils.InternalServerError(c, "Failed to update milestone: "+err.Error())
		return
	}

	utils.Success(c, "Milestone updated successfully", milestone)
}
