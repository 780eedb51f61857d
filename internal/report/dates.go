// Package report holds the date handling, totals and spreadsheet layout of the sales reports.
package report

import (
	"fmt"
	"time"
)

// DateLayout is the query string format of report dates
const DateLayout = "2006-01-02"

var dayNames = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var shortMonthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// Range is an inclusive range of calendar days
type Range struct {
	From time.Time
	To   time.Time
}

// ParseRange reads start and end as YYYY-MM-DD. Missing or malformed bounds fall back to
// today, and reversed bounds are swapped.
func ParseRange(start, end string, today time.Time) Range {
	today = truncateDay(today)
	r := Range{From: parseDate(start, today), To: parseDate(end, today)}
	if r.From.After(r.To) {
		r.From, r.To = r.To, r.From
	}
	return r
}

func parseDate(s string, def time.Time) time.Time {
	t, err := time.ParseInLocation(DateLayout, s, def.Location())
	if err != nil {
		return def
	}
	return t
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SingleDay reports whether the range covers one day
func (r Range) SingleDay() bool {
	return r.From.Equal(r.To)
}

// Start and End format the bounds for query strings and forms
func (r Range) Start() string { return r.From.Format(DateLayout) }
func (r Range) End() string   { return r.To.Format(DateLayout) }

// Label is the page caption, e.g. "Senin, 15 September 2025"
func (r Range) Label() string {
	if r.SingleDay() {
		return LongDate(r.From)
	}
	return LongDate(r.From) + " s/d " + LongDate(r.To)
}

// ShortLabel is the workbook caption, e.g. "15 Sep 2025"
func (r Range) ShortLabel() string {
	if r.SingleDay() {
		return ShortDate(r.From)
	}
	return ShortDate(r.From) + " s/d " + ShortDate(r.To)
}

// FileSuffix is used in export file names
func (r Range) FileSuffix() string {
	return r.From.Format("20060102") + "_" + r.To.Format("20060102")
}

// LongDate formats a day with Indonesian day and month names
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d %s %d", dayNames[t.Weekday()], t.Day(), monthNames[t.Month()-1], t.Year())
}

// ShortDate formats a day with an abbreviated Indonesian month name
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), shortMonthNames[t.Month()-1], t.Year())
}
