package utils

import (
	"testing"

	"elearn/models"

	"github.com/stretchr/testify/assert"
)

func TestCourseProgress(t *testing.T) {
	cases := []struct {
		complete int
		total    int
		want     string
	}{
		{0, 3, "0.0"},
		{1, 3, "33.3"},
		{2, 3, "66.7"},
		{3, 3, "100.0"},
		{3, 7, "42.9"},
		{1, 4, "25.0"},
		{5, 8, "62.5"},
		{1, 1, "100.0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CourseProgress(tc.complete, tc.total),
			"%d of %d", tc.complete, tc.total)
	}
}

func TestProgressFromTrackings(t *testing.T) {
	trackings := []models.Tracking{
		{Status: true},
		{Status: false},
		{Status: false},
	}
	assert.Equal(t, "33.3", ProgressFromTrackings(trackings))

	trackings[1].Status = true
	trackings[2].Status = true
	assert.Equal(t, "100.0", ProgressFromTrackings(trackings))
}
