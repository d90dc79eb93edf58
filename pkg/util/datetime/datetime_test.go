package datetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/OwlPharaoh20/Personal-AI-Voice-Assistant/pkg/util/datetime"
)

func TestParseISO(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() string
		act     func(s string) (time.Time, error)
		assert  func(t *testing.T, parsed time.Time, err error)
	}{{
		name: "Should parse a timestamp with time zone",
		arrange: func() string {
			return "2024-02-11T10:30:40+06:00"
		},
		act: func(s string) (time.Time, error) {
			return datetime.ParseISO(s)
		},
		assert: func(t *testing.T, parsed time.Time, err error) {
			assert.NoError(t, err)
			zone := time.FixedZone("BTT", 6*3600)
			assert.True(t, parsed.Equal(time.Date(2024, time.February, 11, 10, 30, 40, 0, zone)))
		},
	}, {
		name: "Should parse a zone-less timestamp",
		arrange: func() string {
			return "2024-01-01T10:00:00"
		},
		act: func(s string) (time.Time, error) {
			return datetime.ParseISO(s)
		},
		assert: func(t *testing.T, parsed time.Time, err error) {
			assert.NoError(t, err)
			assert.Equal(t, 2024, parsed.Year())
			assert.Equal(t, 10, parsed.Hour())
		},
	}, {
		name: "Should parse a bare date",
		arrange: func() string {
			return "2024-01-01"
		},
		act: func(s string) (time.Time, error) {
			return datetime.ParseISO(s)
		},
		assert: func(t *testing.T, parsed time.Time, err error) {
			assert.NoError(t, err)
			assert.Equal(t, time.January, parsed.Month())
		},
	}, {
		name: "Should reject a malformed timestamp",
		arrange: func() string {
			return "not-a-date"
		},
		act: func(s string) (time.Time, error) {
			return datetime.ParseISO(s)
		},
		assert: func(t *testing.T, parsed time.Time, err error) {
			assert.Error(t, err)
			assert.True(t, parsed.IsZero())
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.arrange()
			parsed, err := tt.act(input)
			tt.assert(t, parsed, err)
		})
	}
}
