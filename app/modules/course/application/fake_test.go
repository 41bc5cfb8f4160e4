package courseservice

import (
	"context"

	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
)

type fakeCourseRepo struct {
	CreateCourseFunc func(ctx context.Context, course coursetypes.Course) error
	GetCourseFunc    func(ctx context.Context, id uuid.UUID) (coursetypes.Course, error)
	ListCoursesFunc  func(ctx context.Context) ([]coursetypes.Course, error)
}

func (f *fakeCourseRepo) CreateCourse(ctx context.Context, course coursetypes.Course) error {
	return f.CreateCourseFunc(ctx, course)
}

func (f *fakeCourseRepo) GetCourse(ctx context.Context, id uuid.UUID) (coursetypes.Course, error) {
	return f.GetCourseFunc(ctx, id)
}

func (f *fakeCourseRepo) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	return f.ListCoursesFunc(ctx)
}
