package handlers

import (
	"fmt"
	"io"
	"net/http"

	"fyp-app-server/internal/middleware"
	"fyp-app-server/internal/models"
	"fyp-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentHandler handles project document related requests.
type DocumentHandler struct {
	DB *gorm.DB
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(db *gorm.DB) *DocumentHandler {
	return &DocumentHandler{DB: db}
}

// documentResponse is the metadata view of a document, without the file body.
type documentResponse struct {
	ID          string                `json:"id"`
	ProjectID   string                `json:"projectId"`
	UploaderID  string                `json:"uploaderId"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Status      models.DocumentStatus `json:"status"`
	FileName    string                `json:"fileName"`
	FileType    string                `json:"fileType"`
	CreatedAt   string                `json:"createdAt"`
}

func toDocumentResponse(d *models.Document) documentResponse {
	return documentResponse{
		ID:          d.ID,
		ProjectID:   d.ProjectID,
		UploaderID:  d.UploaderID,
		Title:       d.Title,
		Description: d.Description,
		Status:      d.Status,
		FileName:    d.FileName,
		FileType:    d.FileType,
		CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// projectForUser loads a project and checks the requesting user may act on it.
func (h *DocumentHandler) projectForUser(c *gin.Context, projectID string) (*models.Project, bool) {
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
		utils.Forbidden(c, "You are not authorized to access this project's documents")
		return nil, false
	}
	return &project, true
}

// UploadDocument handles uploading a document file to a project.
// The file arrives as multipart form data alongside title and description.
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	projectIDStr := c.Param("id")
	if _, err := uuid.Parse(projectIDStr); err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	project, ok := h.projectForUser(c, projectIDStr)
	if !ok {
		return
	}

	title := c.PostForm("title")
	if title == "" {
		utils.BadRequest(c, "Document title is required")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Error retrieving file from form: "+err.Error())
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Error reading file content: "+err.Error())
		return
	}

	uploaderID, _ := middleware.GetUserIDFromContext(c)
	document := models.Document{
		ProjectID:   project.ID,
		UploaderID:  uploaderID,
		Title:       title,
		Description: c.PostForm("description"),
		Status:      models.DocumentStatusDraft,
		FileName:    header.Filename,
		FileType:    header.Header.Get("Content-Type"),
		FileData:    fileData,
	}

	if err := h.DB.Create(&document).Error; err != nil {
		utils.InternalServerError(c, "Failed to store document: "+err.Error())
		return
	}

	utils.Created(c, "Document uploaded successfully", toDocumentResponse(&document))
}

// GetDocumentsForProject handles listing a project's documents without file bodies.
func (h *DocumentHandler) GetDocumentsForProject(c *gin.Context) {
	projectIDStr := c.Param("id")
	if _, err := uuid.Parse(projectIDStr); err != nil {
		utils.BadRequest(c, "Invalid Project ID format")
		return
	}

	project, ok := h.projectForUser(c, projectIDStr)
	if !ok {
		return
	}

	var documents []models.Document
	if err := h.DB.
		Select("id", "project_id", "uploader_id", "title", "description", "status", "file_name", "file_type", "created_at").
		Where("project_id = ?", project.ID).
		Order("created_at desc").
		Find(&documents).Error; err != nil {
		utils.InternalServerError(c, "Failed to fetch documents: "+err.Error())
		return
	}

	out := make([]documentResponse, len(documents))
	for i := range documents {
		out[i] = toDocumentResponse(&documents[i])
	}
	utils.Success(c, "Documents fetched successfully", out)
}

// DownloadDocument streams a document's file content to the client.
func (h *DocumentHandler) DownloadDocument(c *gin.Context) {
	documentIDStr := c.Param("id")
	if _, err := uuid.Parse(documentIDStr); err != nil {
		utils.BadRequest(c, "Invalid Document ID format")
		return
	}

	var document models.Document
	if err := h.DB.First(&document, "id = ?", documentIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Document not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if _, ok := h.projectForUser(c, document.ProjectID); !ok {
		return
	}

	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", document.FileName))
	c.Data(http.StatusOK, document.FileType, document.FileData)
}

// UpdateDocumentStatusRequest represents the request body for the review workflow.
type UpdateDocumentStatusRequest struct {
	Status models.DocumentStatus `json:"status" binding:"required,oneof=draft submitted reviewed approved"`
}

// UpdateDocumentStatus moves a document through the review workflow.
// Students may submit their own drafts; supervisors and admins may set any status.
func (h *DocumentHandler) UpdateDocumentStatus(c *gin.Context) {
	documentIDStr := c.Param("id")
	if _, err := uuid.Parse(documentIDStr); err != nil {
		utils.BadRequest(c, "Invalid Document ID format")
		return
	}

	var req UpdateDocumentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var document models.Document
	if err := h.DB.First(&document, "id = ?", documentIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Document not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	project, ok := h.projectForUser(c, document.ProjectID)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole == models.RoleStudent {
		if userID != project.StudentID || req.Status != models.DocumentStatusSubmitted {
			utils.Forbidden(c, "Students can only submit their own documents for review")
			return
		}
	}

	document.Status = req.Status
	if err := h.DB.Save(&document).Error; err != nil {
		utils.InternalServerError(c, "Failed to update document status: "+err.Error())
		return
	}

	utils.Success(c, "Document status updated successfully", toDocumentResponse(&document))
}

// DeleteDocument removes a document. Only the uploader or an admin may delete.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	documentIDStr := c.Param("id")
	if _, err := uuid.Parse(documentIDStr); err != nil {
		utils.BadRequest(c, "Invalid Document ID format")
		return
	}

	var document models.Document
	if err := h.DB.First(&document, "id = ?", documentIDStr).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Document not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleAdmin && userID != document.UploaderID {
		utils.Forbidden(c, "Only the uploader can delete this document")
		return
	}

	if err := h.DB.Delete(&models.Document{}, "id = ?", document.ID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete document: "+err.Error())
		return
	}

	utils.Success(c, "Document deleted successfully", nil)
}
