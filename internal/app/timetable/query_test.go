package timetable

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/profwhere/internal/app/models"
)

func profWithMonday(entries ...models.ScheduleEntry) *models.Professor {
	return &models.Professor{
		Name:     "Jane Doe",
		Schedule: map[string][]models.ScheduleEntry{"Monday": entries},
	}
}

func TestMomentOf(t *testing.T) {
	m := MomentOf(time.Date(2026, 1, 12, 10, 25, 0, 0, time.UTC)) // a Monday
	assert.Equal(t, "Monday", m.Day)
	assert.Equal(t, 10*60+25, m.Minutes)
	assert.Equal(t, "10:25", m.Clock())

	assert.Equal(t, "9:05", Moment{Minutes: 9*60 + 5}.Clock())
}

func TestStatusAt(t *testing.T) {
	entry := models.ScheduleEntry{
		Time: "10:00-10:50", CourseCode: "1234", Section: "L1", Room: "A-101",
	}
	prof := profWithMonday(entry)

	tests := []struct {
		name       string
		now        Moment
		wantStatus string
		wantRoom   string
	}{
		{
			name:       "inside the slot",
			now:        Moment{Day: "Monday", Minutes: 10*60 + 25},
			wantStatus: StatusInClass,
			wantRoom:   "A-101",
		},
		{
			name:       "first minute counts",
			now:        Moment{Day: "Monday", Minutes: 10 * 60},
			wantStatus: StatusInClass,
			wantRoom:   "A-101",
		},
		{
			name:       "last minute counts",
			now:        Moment{Day: "Monday", Minutes: 10*60 + 50},
			wantStatus: StatusInClass,
			wantRoom:   "A-101",
		},
		{
			name:       "one minute before",
			now:        Moment{Day: "Monday", Minutes: 10*60 - 1},
			wantStatus: StatusFree,
		},
		{
			name:       "one minute after",
			now:        Moment{Day: "Monday", Minutes: 10*60 + 51},
			wantStatus: StatusFree,
		},
		{
			name:       "day with no classes",
			now:        Moment{Day: "Sunday", Minutes: 10 * 60},
			wantStatus: StatusNoClasses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusAt(prof, tt.now)
			assert.Equal(t, tt.wantStatus, got.Status)
			switch tt.wantStatus {
			case StatusInClass:
				require.NotNil(t, got.CurrentClass)
				assert.Equal(t, "1234", got.CurrentClass.CourseCode)
				assert.Equal(t, tt.wantRoom, got.Location)
			case StatusFree:
				assert.Nil(t, got.CurrentClass)
				assert.Equal(t, "Not in scheduled class", got.Location)
			default:
				assert.Nil(t, got.CurrentClass)
				assert.Empty(t, got.Location)
			}
		})
	}
}

func TestStatusAtSkipsUnparseableSlots(t *testing.T) {
	prof := profWithMonday(
		models.ScheduleEntry{Time: "TBA", CourseCode: "1111"},
		models.ScheduleEntry{Time: "10:00-10:50", CourseCode: "2222"},
	)

	got := StatusAt(prof, Moment{Day: "Monday", Minutes: 10 * 60})
	require.NotNil(t, got.CurrentClass)
	assert.Equal(t, "2222", got.CurrentClass.CourseCode)
}

func TestUpcomingAt(t *testing.T) {
	prof := profWithMonday(
		models.ScheduleEntry{Time: "8:00-8:50", CourseCode: "1111"},
		models.ScheduleEntry{Time: "9:00-9:50", CourseCode: "2222"},
		models.ScheduleEntry{Time: "10:00-10:50", CourseCode: "3333"},
		models.ScheduleEntry{Time: "11:00-11:50", CourseCode: "4444"},
	)

	// A slot starting exactly now is not upcoming.
	got := UpcomingAt(prof, Moment{Day: "Monday", Minutes: 9 * 60}, 3)
	require.Len(t, got, 2)
	assert.Equal(t, "3333", got[0].CourseCode)
	assert.Equal(t, "4444", got[1].CourseCode)

	got = UpcomingAt(prof, Moment{Day: "Monday", Minutes: 7 * 60}, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "1111", got[0].CourseCode)

	assert.Empty(t, UpcomingAt(prof, Moment{Day: "Monday", Minutes: 12 * 60}, 3))
	assert.Empty(t, UpcomingAt(prof, Moment{Day: "Sunday", Minutes: 7 * 60}, 3))
	assert.Empty(t, UpcomingAt(prof, Moment{Day: "Monday", Minutes: 7 * 60}, 0))
}

func searchDataset(names ...string) *models.Dataset {
	ds := &models.Dataset{Professors: make(map[string]*models.Professor)}
	for _, name := range names {
		ds.Professors[name] = &models.Professor{Name: name}
		ds.ProfessorOrder = append(ds.ProfessorOrder, name)
	}
	return ds
}

func TestSearchProfessors(t *testing.T) {
	ds := searchDataset("Jane Doe", "Janet Roe", "Mark Jan", "Alan Smith")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "tiered ranking",
			query: "jan",
			want:  []string{"Jane Doe", "Janet Roe", "Mark Jan"},
		},
		{
			name:  "exact beats prefix",
			query: "jane doe",
			want:  []string{"Jane Doe"},
		},
		{
			name:  "substring match",
			query: "smith",
			want:  []string{"Alan Smith"},
		},
		{
			name:  "case and whitespace insensitive",
			query: "  JANE  ",
			want:  []string{"Jane Doe", "Janet Roe"},
		},
		{
			name:  "no match",
			query: "zzz",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchProfessors(ds, tt.query))
		})
	}
}

func TestSearchProfessorsEmptyQueryAndCap(t *testing.T) {
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("Prof %02d", i))
	}
	ds := searchDataset(names...)

	got := SearchProfessors(ds, "")
	require.Len(t, got, maxSearchResults)
	assert.Equal(t, names[:maxSearchResults], got)

	// The cap applies to ranked results too.
	got = SearchProfessors(ds, "prof")
	assert.Len(t, got, maxSearchResults)
}
