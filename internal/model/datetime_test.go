package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshalLayouts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "RFC3339",
			input: `"2024-03-15T10:30:00Z"`,
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "ISO with microseconds",
			input: `"2024-03-15T10:30:00.123456"`,
			want:  time.Date(2024, 3, 15, 10, 30, 0, 123456000, time.UTC),
		},
		{
			name:  "ISO without fraction",
			input: `"2024-03-15T10:30:00"`,
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "space separated",
			input: `"2024-03-15 10:30:00"`,
			want:  time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "bare date",
			input: `"2024-03-15"`,
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &dt))
			assert.True(t, dt.Equal(tt.want), "got %v, want %v", dt.Time, tt.want)
		})
	}
}

func TestDateTimeUnmarshalNull(t *testing.T) {
	var dt DateTime
	require.NoError(t, json.Unmarshal([]byte("null"), &dt))
	assert.True(t, dt.IsZero())
}

func TestDateTimeUnmarshalGarbage(t *testing.T) {
	var dt DateTime
	err := json.Unmarshal([]byte(`"next tuesday"`), &dt)
	assert.Error(t, err)
}

func TestDateTimeMarshal(t *testing.T) {
	dt := NewDateTime(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T10:30:00"`, string(data))
}

func TestDateTimeMarshalZero(t *testing.T) {
	data, err := json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
