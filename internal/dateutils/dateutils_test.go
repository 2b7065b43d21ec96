package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"iso", "2026-01-31", "2026-01-31", false},
		{"european", "31.01.2026", "2026-01-31", false},
		{"us", "01/31/2026", "2026-01-31", false},
		{"full timestamp", "2026-01-31 14:30:00", "2026-01-31", false},
		{"short month name", "Jan 31, 2026", "2026-01-31", false},
		{"whitespace noise", "  2026-01-31  ", "2026-01-31", false},
		{"unparseable", "tomorrow", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ToISODate(got))
		})
	}
}

func TestToISODate(t *testing.T) {
	date := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-08-31", ToISODate(date))
}

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{"both bounds", "01.01.2026", "31.01.2026", "2026-01-01", "2026-01-31", false},
		{"open start", "", "2026-01-31", "", "2026-01-31", false},
		{"open end", "2026-01-01", "", "2026-01-01", "", false},
		{"both open", "", "", "", "", false},
		{"reversed", "2026-02-01", "2026-01-01", "", "", true},
		{"bad from", "not a date", "2026-01-31", "", "", true},
		{"bad to", "2026-01-01", "not a date", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := NormalizeRange(tt.from, tt.to)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "Jan 31, 2026", CleanDateString("  Jan   31,  2026 "))
}
