package coursedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
)

// Course is the persistence model for a course record. Holes live in a
// jsonb column: they are always read and written as a unit.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID        uuid.UUID          `bun:"id,pk,type:uuid"`
	Name      string             `bun:"name,notnull"`
	Holes     []coursetypes.Hole `bun:"holes,type:jsonb,notnull"`
	CreatedAt time.Time          `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time          `bun:",nullzero,notnull,default:current_timestamp"`
}

// ToDomain converts the persistence model to the domain course.
func (c Course) ToDomain() coursetypes.Course {
	return coursetypes.Course{
		ID:    c.ID,
		Name:  c.Name,
		Holes: c.Holes,
	}
}

// FromDomain converts a domain course to its persistence model.
func FromDomain(course coursetypes.Course) *Course {
	return &Course{
		ID:    course.ID,
		Name:  course.Name,
		Holes: course.Holes,
	}
}
