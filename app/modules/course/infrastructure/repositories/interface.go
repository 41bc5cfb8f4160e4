package coursedb

import (
	"context"

	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
)

// Repository defines the data access contract for courses.
type Repository interface {
	CreateCourse(ctx context.Context, course coursetypes.Course) error
	GetCourse(ctx context.Context, id uuid.UUID) (coursetypes.Course, error)
	ListCourses(ctx context.Context) ([]coursetypes.Course, error)
}
