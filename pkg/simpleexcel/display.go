package simpleexcel

import (
	"strconv"
	"strings"
)

const (
	displayDateLayout = "2006-01-02"
	displayTimeLayout = "15:04:05"
)

// FormatDisplay returns the text a spreadsheet viewer shows for the cell.
//
// A date-formatted cell only renders as a date when it actually holds a
// date; a plain number under a date format renders as a number.
func FormatDisplay(c Cell) string {
	switch c.Kind {
	case KindEmpty:
		return ""
	case KindDate:
		if IsDateFormat(c.NumberFormat) {
			return c.Time.Format(displayDateLayout)
		}
		return c.Time.Format(displayDateLayout + " " + displayTimeLayout)
	case KindNumber:
		return FormatNumber(c.Number)
	case KindTime:
		if ns := c.Time.Nanosecond(); ns != 0 {
			return c.Time.Format(displayTimeLayout) + "." + strconv.Itoa(ns/1000+1000000)[1:]
		}
		return c.Time.Format(displayTimeLayout)
	default:
		return c.Text
	}
}

// FormatNumber renders v in fixed-point notation with no trailing zeros and
// no dangling decimal point.
func FormatNumber(v float64) string {
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	return text
}
