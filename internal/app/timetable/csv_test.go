package timetable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okandemir/profwhere/internal/pkg/apperrors"
)

func TestReadRows(t *testing.T) {
	input := strings.Join([]string{
		`Timetable Export - Semester I`,
		`COMP CODE,COURSE NO.,COURSE TITLE,SEC,"INSTRUCTOR_IN_CHARGE/INSTR` + "\n" + `UCTOR",ROOM,DAYS,"HOUR` + "\n" + `S"`,
		`1234,CS F101,INTRO TO CS,L1,JANE DOE,A-101,MWF,3`,
		`,,,T1,JOHN ROE,A-102,T,4`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, RawRow{
		CompCode:    "1234",
		CourseNo:    "CS F101",
		CourseTitle: "INTRO TO CS",
		Section:     "L1",
		Instructor:  "JANE DOE",
		Room:        "A-101",
		Days:        "MWF",
		Hours:       "3",
	}, rows[0])

	assert.Equal(t, "T1", rows[1].Section)
	assert.Empty(t, rows[1].CompCode)
}

func TestReadRowsHeaderNotFirstRecord(t *testing.T) {
	input := strings.Join([]string{
		`Some export banner`,
		`generated on 2026-01-15`,
		`COMP CODE,COURSE NO.,COURSE TITLE,SEC,INSTRUCTOR,ROOM,DAYS,HOURS`,
		`1234,CS F101,INTRO TO CS,L1,JANE DOE,A-101,MWF,3`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1234", rows[0].CompCode)
}

func TestReadRowsShortRecordsPadToEmpty(t *testing.T) {
	input := strings.Join([]string{
		`COMP CODE,COURSE NO.,COURSE TITLE,SEC,INSTRUCTOR,ROOM,DAYS,HOURS`,
		`1234,CS F101,INTRO TO CS,L1`,
	}, "\n")

	rows, err := ReadRows(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "L1", rows[0].Section)
	assert.Empty(t, rows[0].Instructor)
	assert.Empty(t, rows[0].Hours)
}

func TestReadRowsMissingColumn(t *testing.T) {
	input := strings.Join([]string{
		`COMP CODE,COURSE NO.,COURSE TITLE,SEC,INSTRUCTOR,ROOM,DAYS`,
		`1234,CS F101,INTRO TO CS,L1,JANE DOE,A-101,MWF`,
	}, "\n")

	_, err := ReadRows(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSchemaInvalid)
}

func TestReadRowsEmptyInput(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSchemaInvalid)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "HOURS", normalizeHeader("HOUR\nS"))
	assert.Equal(t, "INSTRUCTOR_IN_CHARGE/INSTRUCTOR", normalizeHeader("INSTRUCTOR_IN_CHARGE/INSTR\nUCTOR"))
	assert.Equal(t, "COMPCODE", normalizeHeader("comp code"))
}
