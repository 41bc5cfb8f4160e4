package coursetypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourse() Course {
	holes := make([]Hole, 18)
	for i := range holes {
		holes[i] = Hole{Number: i + 1, Par: 4, StrokeIndex: 18 - i}
	}
	return Course{Name: "Test Links", Holes: holes}
}

func TestCourseValidate(t *testing.T) {
	assert.NoError(t, validCourse().Validate())

	tests := []struct {
		name   string
		mutate func(*Course)
	}{
		{"too few holes", func(c *Course) { c.Holes = c.Holes[:17] }},
		{"duplicate hole number", func(c *Course) { c.Holes[1].Number = 1 }},
		{"hole number out of range", func(c *Course) { c.Holes[0].Number = 19 }},
		{"par too low", func(c *Course) { c.Holes[0].Par = 2 }},
		{"par too high", func(c *Course) { c.Holes[0].Par = 7 }},
		{"duplicate stroke index", func(c *Course) { c.Holes[1].StrokeIndex = c.Holes[0].StrokeIndex }},
		{"stroke index out of range", func(c *Course) { c.Holes[0].StrokeIndex = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := validCourse()
			tt.mutate(&course)
			assert.Error(t, course.Validate())
		})
	}
}

func TestCourseHoleLookup(t *testing.T) {
	course := validCourse()

	hole, ok := course.Hole(7)
	require.True(t, ok)
	assert.Equal(t, 7, hole.Number)

	_, ok = course.Hole(19)
	assert.False(t, ok)
}

func TestCourseTotalPar(t *testing.T) {
	assert.Equal(t, 72, validCourse().TotalPar())
}
