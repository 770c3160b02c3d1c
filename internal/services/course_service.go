package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Duration  string `json:"duration"`
	VideoURL  string `json:"videoUrl"`
	Completed bool   `json:"completed"`
}

type PDF struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseModule is one catalog module, annotated with a member's progress.
type CourseModule struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
	PDFs        []PDF    `json:"pdfs"`
	Progress    int      `json:"progress"`
}

// CourseService serves the static catalog and tracks lesson completion.
type CourseService struct {
	lessons LessonStore
	catalog []CourseModule
	log     *zap.Logger
}

func NewCourseService(lessons LessonStore, log *zap.Logger) *CourseService {
	return &CourseService{lessons: lessons, catalog: courseCatalog, log: log.Named("courses")}
}

// Modules lists the catalog with the member's completion flags.
func (s *CourseService) Modules(ctx context.Context, userID string) ([]CourseModule, error) {
	done, err := s.lessons.CompletedLessons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load lesson progress: %w", err)
	}
	out := make([]CourseModule, 0, len(s.catalog))
	for i := range s.catalog {
		out = append(out, withProgress(&s.catalog[i], done[s.catalog[i].ID]))
	}
	return out, nil
}

func (s *CourseService) Module(ctx context.Context, userID, moduleID string) (*CourseModule, error) {
	mod := s.find(moduleID)
	if mod == nil {
		return nil, ErrModuleNotFound
	}
	done, err := s.lessons.CompletedLessons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load lesson progress: %w", err)
	}
	m := withProgress(mod, done[moduleID])
	return &m, nil
}

// CompleteLesson records a finished lesson. Repeating it is a no-op.
func (s *CourseService) CompleteLesson(ctx context.Context, userID, moduleID, lessonID string) error {
	mod := s.find(moduleID)
	if mod == nil {
		return ErrModuleNotFound
	}
	found := false
	for _, l := range mod.Lessons {
		if l.ID == lessonID {
			found = true
			break
		}
	}
	if !found {
		return ErrLessonNotFound
	}
	if err := s.lessons.MarkComplete(ctx, userID, moduleID, lessonID); err != nil {
		return fmt.Errorf("mark lesson complete: %w", err)
	}
	s.log.Debug("lesson completed", zap.String("user_id", userID), zap.String("module_id", moduleID), zap.String("lesson_id", lessonID))
	return nil
}

// CompletedModules counts modules whose every lesson is done.
func (s *CourseService) CompletedModules(ctx context.Context, userID string) (int, error) {
	done, err := s.lessons.CompletedLessons(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load lesson progress: %w", err)
	}
	count := 0
	for i := range s.catalog {
		if withProgress(&s.catalog[i], done[s.catalog[i].ID]).Progress == 100 {
			count++
		}
	}
	return count, nil
}

func (s *CourseService) find(moduleID string) *CourseModule {
	for i := range s.catalog {
		if s.catalog[i].ID == moduleID {
			return &s.catalog[i]
		}
	}
	return nil
}

func withProgress(mod *CourseModule, done map[string]bool) CourseModule {
	m := *mod
	m.Lessons = make([]Lesson, len(mod.Lessons))
	completed := 0
	for i, l := range mod.Lessons {
		l.Completed = done[l.ID]
		if l.Completed {
			completed++
		}
		m.Lessons[i] = l
	}
	if len(m.Lessons) > 0 {
		m.Progress = completed * 100 / len(m.Lessons)
	}
	return m
}
