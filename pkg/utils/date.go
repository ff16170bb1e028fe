package utils

import "time"

// MonthLayout é o formato fixo de mês usado nos csvs e nos eixos dos
// gráficos (ex.: 2021-03).
const MonthLayout = "2006-01"

// ParseMonth converte um campo de mês no formato fixo YYYY-MM.
func ParseMonth(monthStr string) (time.Time, error) {
	month, err := time.Parse(MonthLayout, monthStr)
	if err != nil {
		return time.Time{}, err
	}

	return month, nil
}

// FormatMonth formata um mês no formato fixo YYYY-MM.
func FormatMonth(month time.Time) string {
	return month.Format(MonthLayout)
}

// FormatMonthLong formata um mês por extenso, como aparece nos títulos
// dos gráficos (ex.: March 2021).
func FormatMonthLong(month time.Time) string {
	return month.Format("January 2006")
}
