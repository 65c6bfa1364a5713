package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, "2025-06-15", date.Format(time.DateOnly))

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("15/06/2025")
	assert.Error(t, err)
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(time.Date(2025, 6, 30, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 30, 23, 59, 59, 999999999, time.UTC), end)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(8)
	require.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}
