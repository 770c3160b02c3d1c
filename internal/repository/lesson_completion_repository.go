package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/stabiliq/internal/models"
)

// LessonCompletionRepository tracks finished lessons per user.
type LessonCompletionRepository struct {
	db *gorm.DB
}

// NewLessonCompletionRepository constructs a LessonCompletionRepository.
func NewLessonCompletionRepository(db *gorm.DB) *LessonCompletionRepository {
	return &LessonCompletionRepository{db: db}
}

// MarkComplete records the completion; repeating it is a no-op.
func (r *LessonCompletionRepository) MarkComplete(ctx context.Context, userID, moduleID, lessonID string) error {
	return translate(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.LessonCompletion{UserID: userID, ModuleID: moduleID, LessonID: lessonID}).Error)
}

// CompletedLessons returns finished lesson ids keyed by module id.
func (r *LessonCompletionRepository) CompletedLessons(ctx context.Context, userID string) (map[string]map[string]bool, error) {
	var rows []models.LessonCompletion
	if err := r.db.WithContext(ctx).
		Select("module_id", "lesson_id").
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, translate(err)
	}

	done := make(map[string]map[string]bool)
	for _, row := range rows {
		if done[row.ModuleID] == nil {
			done[row.ModuleID] = make(map[string]bool)
		}
		done[row.ModuleID][row.LessonID] = true
	}
	return done, nil
}
