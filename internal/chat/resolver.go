package chat

import (
	"context"
	"errors"
	"fmt"

	"fyp-app-server/internal/models"

	"gorm.io/gorm"
)

// IdentityResolver answers who a user id belongs to. The chat core never
// queries the user table directly.
type IdentityResolver interface {
	RoleOf(ctx context.Context, userID string) (models.Role, error)
}

// TagResolver fetches the snapshot embedded into a message when a project
// item is tagged. Resolution happens once, at send time.
type TagResolver interface {
	ResolveTag(ctx context.Context, kind models.TaggedItemType, itemID string) (*models.TaggedItemData, error)
}

// TaggableItem is a lightweight listing entry for the tag picker.
type TaggableItem struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Type        models.TaggedItemType `json:"type"`
	Status      string                `json:"status,omitempty"`
}

// TaggableLister lists the project items a caller may tag in a message,
// scoped to the projects they participate in.
type TaggableLister interface {
	ListAccessibleDocuments(ctx context.Context, callerID string) ([]TaggableItem, error)
	ListAccessibleTasks(ctx context.Context, callerID string) ([]TaggableItem, error)
	ListAccessibleMilestones(ctx context.Context, callerID string) ([]TaggableItem, error)
}

type GormResolver struct {
	db *gorm.DB
}

// NewGormResolver returns an IdentityResolver, TagResolver and TaggableLister
// backed by the application's user/project tables.
func NewGormResolver(db *gorm.DB) *GormResolver {
	return &GormResolver{db: db}
}

func (r *GormResolver) RoleOf(ctx context.Context, userID string) (models.Role, error) {
	var user models.User
	err := r.db.WithContext(ctx).Select("id", "role").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return "", storeErr(err)
	}
	return user.Role, nil
}

func (r *GormResolver) ResolveTag(ctx context.Context, kind models.TaggedItemType, itemID string) (*models.TaggedItemData, error) {
	db := r.db.WithContext(ctx)

	var data models.TaggedItemData
	var err error
	switch kind {
	case models.TaggedItemDocument:
		var doc models.Document
		if err = db.First(&doc, "id = ?", itemID).Error; err == nil {
			data = models.TaggedItemData{Title: doc.Title, Description: doc.Description, Status: string(doc.Status)}
		}
	case models.TaggedItemTask:
		var task models.Task
		if err = db.First(&task, "id = ?", itemID).Error; err == nil {
			data = models.TaggedItemData{Title: task.Title, Description: task.Description, Status: string(task.Status)}
		}
	case models.TaggedItemMilestone:
		var ms models.Milestone
		if err = db.First(&ms, "id = ?", itemID).Error; err == nil {
			data = models.TaggedItemData{Title: ms.Title, Description: ms.Description, Status: string(ms.Status)}
		}
	default:
		return nil, fmt.Errorf("%w: unknown tag kind %q", ErrValidation, kind)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tagged %s %s: %w", kind, itemID, ErrNotFound)
		}
		return nil, storeErr(err)
	}
	return &data, nil
}

func (r *GormResolver) ListAccessibleDocuments(ctx context.Context, callerID string) ([]TaggableItem, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = documents.project_id").
		Where("projects.student_id = ? OR projects.supervisor_id = ?", callerID, callerID).
		Order("documents.created_at asc").
		Find(&docs).Error
	if err != nil {
		return nil, storeErr(err)
	}

	items := make([]TaggableItem, len(docs))
	for i, d := range docs {
		items[i] = TaggableItem{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Type:        models.TaggedItemDocument,
			Status:      string(d.Status),
		}
	}
	return items, nil
}

func (r *GormResolver) ListAccessibleTasks(ctx context.Context, callerID string) ([]TaggableItem, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.student_id = ? OR projects.supervisor_id = ?", callerID, callerID).
		Order("tasks.created_at asc").
		Find(&tasks).Error
	if err != nil {
		return nil, storeErr(err)
	}

	items := make([]TaggableItem, len(tasks))
	for i, t := range tasks {
		items[i] = TaggableItem{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Type:        models.TaggedItemTask,
			Status:      string(t.Status),
		}
	}
	return items, nil
}

func (r *GormResolver) ListAccessibleMilestones(ctx context.Context, callerID string) ([]TaggableItem, error) {
	var milestones []models.Milestone
	err := r.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = milestones.project_id").
		Where("projects.student_id = ? OR projects.supervisor_id = ?", callerID, callerID).
		Order("milestones.created_at asc").
		Find(&milestones).Error
	if err != nil {
		return nil, storeErr(err)
	}

	items := make([]TaggableItem, len(milestones))
	for i, m := range milestones {
		items[i] = TaggableItem{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Type:        models.TaggedItemMilestone,
			Status:      string(m.Status),
		}
	}
	return items, nil
}
