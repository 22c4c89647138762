package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.June, 15)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-06-15"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))

	var bad Date
	err = json.Unmarshal([]byte(`"15/06/2026"`), &bad)
	require.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2026-06-15"))
	assert.Equal(t, "2026-06-15", d.String())

	// Timestamps from date columns lose their time component.
	require.NoError(t, d.Scan(time.Date(2026, time.June, 15, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-06-15", d.String())

	// Some drivers hand back the full stored text.
	require.NoError(t, d.Scan("2026-06-15T00:00:00Z"))
	assert.Equal(t, "2026-06-15", d.String())

	require.Error(t, d.Scan(42))
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.June, 15)

	assert.Equal(t, "2026-07-15", d.AddDays(30).String())
	assert.Equal(t, 30, d.DaysUntil(NewDate(2026, time.July, 15)))
	assert.Equal(t, -1, d.DaysUntil(NewDate(2026, time.June, 14)))
}
