package services

import (
	"context"
	"time"

	"github.com/example/stabiliq/internal/utils"
)

// AssistanceWaitingDays is how long a member must be enrolled before
// financial assistance unlocks.
const AssistanceWaitingDays = 45

// daysSince counts whole 24h periods between from and now.
func daysSince(from *time.Time, now time.Time) int {
	if from == nil {
		return 0
	}
	d := now.Sub(*from)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

func daysUntilAssistance(days int) int {
	return max(0, AssistanceWaitingDays-days)
}

type DashboardStats struct {
	CoursesCompleted             int        `json:"coursesCompleted"`
	DaysUntilFinancialAssistance int        `json:"daysUntilFinancialAssistance"`
	PlanType                     string     `json:"planType"`
	EnrollmentDate               *time.Time `json:"enrollmentDate"`
	DaysSinceEnrollment          int        `json:"daysSinceEnrollment"`
}

type DashboardService struct {
	users   UserStore
	courses *CourseService
	now     func() time.Time
}

func NewDashboardService(users UserStore, courses *CourseService) *DashboardService {
	return &DashboardService{users: users, courses: courses, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context, identity utils.Identity) (*DashboardStats, error) {
	user, err := lookupUser(ctx, s.users, identity)
	if err != nil {
		return nil, err
	}
	completed, err := s.courses.CompletedModules(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	days := daysSince(user.EnrollmentDate, s.now())
	stats := &DashboardStats{
		CoursesCompleted:             completed,
		DaysUntilFinancialAssistance: daysUntilAssistance(days),
		PlanType:                     string(user.Plan),
		DaysSinceEnrollment:          days,
	}
	if user.EnrollmentDate != nil {
		t := user.EnrollmentDate.UTC()
		stats.EnrollmentDate = &t
	}
	return stats, nil
}
