package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data de calendário no formato YYYY-MM-DD.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayBounds converte um par de datas de calendário no intervalo completo de
// timestamps UTC esperado pelo RedTrack: início do dia para a data inicial e
// 23:59:59 para a final.
func DayBounds(dateFrom, dateTo string) (string, string, error) {
	from, err := time.Parse("2006-01-02", dateFrom)
	if err != nil {
		return "", "", fmt.Errorf("data inicial inválida %q: %w", dateFrom, err)
	}

	to, err := time.Parse("2006-01-02", dateTo)
	if err != nil {
		return "", "", fmt.Errorf("data final inválida %q: %w", dateTo, err)
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)

	return start.Format(time.RFC3339), end.Format(time.RFC3339), nil
}
