package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotBounds(t *testing.T) {
	tests := []struct {
		slot      string
		start     int
		end       int
		parseable bool
	}{
		{"10:00-10:50", 600, 650, true},
		{"8:00-8:50", 480, 530, true},
		{"2:00-4:50", 120, 290, true},
		{"TBA", 0, 0, false},
		{"10:00", 0, 0, false},
		{"25:00-26:00", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		start, end, ok := slotBounds(tt.slot)
		assert.Equal(t, tt.parseable, ok, tt.slot)
		if tt.parseable {
			assert.Equal(t, tt.start, start, tt.slot)
			assert.Equal(t, tt.end, end, tt.slot)
		}
	}
}

func TestSlotStart(t *testing.T) {
	assert.Equal(t, 600, slotStart("10:00-10:50"))
	assert.Equal(t, 60, slotStart("1:00-1:50"))
	// Malformed slots sort first rather than failing.
	assert.Equal(t, 0, slotStart("TBA"))
	assert.Equal(t, 0, slotStart(""))
}
