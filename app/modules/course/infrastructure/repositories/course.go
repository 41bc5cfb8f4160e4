package coursedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	coursetypes "github.com/fairway-collective/scorecard/app/modules/course/domain/types"
)

// CourseDBImpl implements Repository on bun.
type CourseDBImpl struct {
	DB *bun.DB
}

func (db *CourseDBImpl) CreateCourse(ctx context.Context, course coursetypes.Course) error {
	model := FromDomain(course)
	if _, err := db.DB.NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert course %s: %w", course.ID, err)
	}
	return nil
}

func (db *CourseDBImpl) GetCourse(ctx context.Context, id uuid.UUID) (coursetypes.Course, error) {
	var model Course
	err := db.DB.NewSelect().
		Model(&model).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coursetypes.Course{}, ErrCourseNotFound
		}
		return coursetypes.Course{}, fmt.Errorf("failed to fetch course %s: %w", id, err)
	}
	return model.ToDomain(), nil
}

func (db *CourseDBImpl) ListCourses(ctx context.Context) ([]coursetypes.Course, error) {
	var models []Course
	err := db.DB.NewSelect().
		Model(&models).
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]coursetypes.Course, len(models))
	for i, m := range models {
		courses[i] = m.ToDomain()
	}
	return courses, nil
}
