package courseservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
	coursedb "github.com/fairway-collective/scorecard/app/modules/course/infrastructure/repositories"
	"github.com/fairway-collective/scorecard/internal/attr"
)

// CourseService manages course records. Import validation happens here, at
// the boundary: the settlement engine downstream trusts hole data.
type CourseService struct {
	repo   coursedb.Repository
	logger *slog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo coursedb.Repository, logger *slog.Logger) *CourseService {
	return &CourseService{repo: repo, logger: logger}
}

// CreateCourse validates and stores a new course, returning its generated ID.
func (s *CourseService) CreateCourse(ctx context.Context, course coursetypes.Course) (uuid.UUID, error) {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	if err := course.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Rejected invalid course",
			attr.ExtractCorrelationID(ctx),
			attr.String("course_name", course.Name),
			attr.Error(err),
		)
		return uuid.Nil, fmt.Errorf("invalid course: %w", err)
	}

	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return uuid.Nil, fmt.Errorf("failed to store course: %w", err)
	}

	s.logger.InfoContext(ctx, "Course created",
		attr.ExtractCorrelationID(ctx),
		attr.String("course_id", course.ID.String()),
		attr.String("course_name", course.Name),
	)
	return course.ID, nil
}

// GetCourse retrieves a course by ID.
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (coursetypes.Course, error) {
	return s.repo.GetCourse(ctx, id)
}

// ListCourses returns all stored courses ordered by name.
func (s *CourseService) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	return s.repo.ListCourses(ctx)
}
