package utils

import (
	"strings"
	"time"
)

// ParseDateTime aceita YYYY-MM-DD (meia-noite UTC) ou RFC 3339.
// String vazia retorna nil, ou seja, sem restrição.
func ParseDateTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if date, err := time.Parse(time.DateOnly, value); err == nil {
		return &date, nil
	}

	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	utc := date.UTC()
	return &utc, nil
}

func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfDay retorna o último nanossegundo do dia da data informada
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), date.Location())
}

// MonthKey formata o mês no padrão mm-yyyy usado pelos snapshots de ranking
func MonthKey(date time.Time) string {
	return date.Format("01-2006")
}
