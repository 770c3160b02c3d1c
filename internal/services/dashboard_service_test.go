package services_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/example/stabiliq/internal/models"
	"github.com/example/stabiliq/internal/repository"
	"github.com/example/stabiliq/internal/services"
	mock_services "github.com/example/stabiliq/internal/services/mocks"
	"github.com/example/stabiliq/internal/utils"
)

var member = utils.Identity{Email: "member@example.com", UserID: "0f8c2d4e-1111-2222-3333-444455556666"}

func enrolledDaysAgo(days int) *models.User {
	at := time.Now().Add(-time.Duration(days)*24*time.Hour - time.Hour)
	return &models.User{
		Record:         models.Record{ID: uuid.MustParse(member.UserID)},
		Email:          member.Email,
		Plan:           models.PlanPro,
		EnrollmentDate: &at,
	}
}

func TestDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_services.NewMockUserStore(ctrl)
	lessons := mock_services.NewMockLessonStore(ctrl)
	svc := services.NewDashboardService(users, services.NewCourseService(lessons, zaptest.NewLogger(t)))

	users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(enrolledDaysAgo(10), nil)
	lessons.EXPECT().CompletedLessons(gomock.Any(), member.UserID).Return(nil, nil)

	stats, err := svc.Stats(context.Background(), member)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DaysSinceEnrollment != 10 || stats.DaysUntilFinancialAssistance != 35 {
		t.Errorf("unexpected day counts %+v", stats)
	}
	if stats.PlanType != "pro" || stats.EnrollmentDate == nil || stats.CoursesCompleted != 0 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestDashboardStatsWithoutEnrollment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	users := mock_services.NewMockUserStore(ctrl)
	lessons := mock_services.NewMockLessonStore(ctrl)
	svc := services.NewDashboardService(users, services.NewCourseService(lessons, zaptest.NewLogger(t)))

	u := enrolledDaysAgo(0)
	u.EnrollmentDate = nil
	users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(u, nil)
	lessons.EXPECT().CompletedLessons(gomock.Any(), gomock.Any()).Return(nil, nil)

	stats, err := svc.Stats(context.Background(), member)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DaysUntilFinancialAssistance != 45 || stats.DaysSinceEnrollment != 0 || stats.EnrollmentDate != nil {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestAssistanceStatus(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		unlocked bool
		left     int
		message  string
	}{
		{"locked", enrolledDaysAgo(44), false, 1, "Available in 1 days"},
		{"unlocked on day 45", enrolledDaysAgo(45), true, 0, "Financial assistance available"},
		{"long enrolled", enrolledDaysAgo(400), true, 0, "Financial assistance available"},
		{"no enrollment", &models.User{Email: member.Email}, false, 45, "Enrollment date not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			users := mock_services.NewMockUserStore(ctrl)
			svc := services.NewFinancialAssistanceService(users, zaptest.NewLogger(t))
			users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(tt.user, nil)

			st, err := svc.Status(context.Background(), member)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if st.IsUnlocked != tt.unlocked || st.DaysRemaining != tt.left || st.Message != tt.message {
				t.Errorf("got %+v", st)
			}
		})
	}
}

func TestAssistanceSubmit(t *testing.T) {
	t.Run("locked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_services.NewMockUserStore(ctrl)
		svc := services.NewFinancialAssistanceService(users, zaptest.NewLogger(t))
		users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(enrolledDaysAgo(30), nil)

		_, err := svc.Submit(context.Background(), member)
		var locked *services.AssistanceLockedError
		if !errors.As(err, &locked) || locked.DaysRemaining != 15 {
			t.Fatalf("expected lock with 15 days, got %v", err)
		}
		if locked.Error() != "Financial assistance is not yet available. Please wait 15 more days." {
			t.Errorf("unexpected message %q", locked.Error())
		}
	})

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_services.NewMockUserStore(ctrl)
		svc := services.NewFinancialAssistanceService(users, zaptest.NewLogger(t))
		users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(enrolledDaysAgo(60), nil)

		res, err := svc.Submit(context.Background(), member)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^FA-0f8c2d4e-\d{14}$`).MatchString(res.RequestID) {
			t.Errorf("unexpected request id %q", res.RequestID)
		}
	})

	t.Run("unknown member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_services.NewMockUserStore(ctrl)
		svc := services.NewFinancialAssistanceService(users, zaptest.NewLogger(t))
		users.EXPECT().FindByEmail(gomock.Any(), member.Email).Return(nil, repository.ErrNotFound)

		if _, err := svc.Submit(context.Background(), member); !errors.Is(err, services.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestRequiredDocuments(t *testing.T) {
	docs := services.NewFinancialAssistanceService(nil, zaptest.NewLogger(t)).RequiredDocuments()
	if len(docs.Documents) != 6 || docs.SubmitEmail != "support@stabiliq.in" {
		t.Fatalf("unexpected documents %+v", docs)
	}
	for _, d := range docs.Documents {
		if !d.Required {
			t.Errorf("%s should be required", d.ID)
		}
	}
}
