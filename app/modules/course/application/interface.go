package courseservice

import (
	"context"

	"github.com/google/uuid"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
)

// Service defines the course module's application surface.
type Service interface {
	CreateCourse(ctx context.Context, course coursetypes.Course) (uuid.UUID, error)
	GetCourse(ctx context.Context, id uuid.UUID) (coursetypes.Course, error)
	ListCourses(ctx context.Context) ([]coursetypes.Course, error)
}
