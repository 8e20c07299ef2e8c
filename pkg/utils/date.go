package utils

import "time"

// ParseDate converte um parâmetro de data no formato YYYY-MM-DD.
// Uma string vazia é um parâmetro ausente e retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
