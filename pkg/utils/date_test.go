package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayBounds(t *testing.T) {
	from, to, err := DayBounds("2026-01-05", "2026-01-07")

	require.NoError(t, err)
	assert.Equal(t, "2026-01-05T00:00:00Z", from)
	assert.Equal(t, "2026-01-07T23:59:59Z", to)
}

func TestDayBoundsSameDay(t *testing.T) {
	from, to, err := DayBounds("2026-01-05", "2026-01-05")

	require.NoError(t, err)
	assert.Equal(t, "2026-01-05T00:00:00Z", from)
	assert.Equal(t, "2026-01-05T23:59:59Z", to)
}

func TestDayBoundsInvalidDates(t *testing.T) {
	tests := []struct {
		name     string
		dateFrom string
		dateTo   string
	}{
		{name: "Data inicial fora do formato", dateFrom: "05/01/2026", dateTo: "2026-01-05"},
		{name: "Data final fora do formato", dateFrom: "2026-01-05", dateTo: "amanhã"},
		{name: "Datas vazias", dateFrom: "", dateTo: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DayBounds(tt.dateFrom, tt.dateTo)
			assert.Error(t, err)
		})
	}
}
