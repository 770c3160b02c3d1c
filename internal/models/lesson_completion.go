package models

// LessonCompletion marks a lesson finished by a user.
type LessonCompletion struct {
	Record
	UserID   string `gorm:"size:64;not null;uniqueIndex:ux_lesson_completion" json:"userId"`
	ModuleID string `gorm:"size:32;not null;uniqueIndex:ux_lesson_completion" json:"moduleId"`
	LessonID string `gorm:"size:32;not null;uniqueIndex:ux_lesson_completion" json:"lessonId"`
}
