package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeDays(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "single letters",
			code: "MWF",
			want: []string{"Monday", "Wednesday", "Friday"},
		},
		{
			name: "tuesday thursday span",
			code: "T Th",
			want: []string{"Tuesday", "Thursday"},
		},
		{
			name: "lone Th is thursday only",
			code: "Th",
			want: []string{"Thursday"},
		},
		{
			name: "lone T is tuesday",
			code: "T",
			want: []string{"Tuesday"},
		},
		{
			name: "Th consumed before single letters",
			code: "MTh",
			want: []string{"Thursday", "Monday"},
		},
		{
			name: "saturday",
			code: "S",
			want: []string{"Saturday"},
		},
		{
			name: "duplicates collapse",
			code: "MM",
			want: []string{"Monday"},
		},
		{
			name: "unknown characters skipped",
			code: "MXF",
			want: []string{"Monday", "Friday"},
		},
		{
			name: "empty",
			code: "",
			want: nil,
		},
		{
			name: "whitespace only",
			code: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeDays(tt.code))
		})
	}
}

func TestDecodeHours(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{
			name: "single hour",
			code: "3",
			want: []string{"10:00-10:50"},
		},
		{
			name: "exact two-digit code stays whole",
			code: "10",
			want: []string{"5:00-5:50"},
		},
		{
			name: "lab block stays whole",
			code: "67",
			want: []string{"2:00-4:50"},
		},
		{
			name: "unknown multi-digit token splits per digit",
			code: "78",
			want: []string{"2:00-2:50", "3:00-3:50"},
		},
		{
			name: "space separated tokens decode independently",
			code: "2 4",
			want: []string{"9:00-9:50", "11:00-11:50"},
		},
		{
			name: "unknown characters inside a token are skipped",
			code: "2X4",
			want: []string{"9:00-9:50", "11:00-11:50"},
		},
		{
			name: "fully unknown",
			code: "XY",
			want: nil,
		},
		{
			name: "empty",
			code: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeHours(tt.code))
		})
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "uppercase export name",
			raw:  "JANE DOE",
			want: "Jane Doe",
		},
		{
			name: "extra whitespace collapsed",
			raw:  "  jane\t doe  ",
			want: "Jane Doe",
		},
		{
			name: "already canonical",
			raw:  "Jane Doe",
			want: "Jane Doe",
		},
		{
			name: "no letters means no instructor",
			raw:  "---",
			want: "",
		},
		{
			name: "blank",
			raw:  "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalName(tt.raw))
		})
	}
}
