package simpleexcel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplay(t *testing.T) {
	jan5 := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"empty", EmptyCell(), ""},
		{"whole float", NumberCell(3.0, "General"), "3"},
		{"trailing zero", NumberCell(3.50, "General"), "3.5"},
		{"negative fraction", NumberCell(-0.25, "General"), "-0.25"},
		{"integer", NumberCell(100, "General"), "100"},
		{"large magnitude has no exponent", NumberCell(1e21, "General"), "1000000000000000000000"},
		{"tiny magnitude has no exponent", NumberCell(0.000001, "0.00"), "0.000001"},
		{"no thousands separator", NumberCell(1234567.5, "#,##0.00"), "1234567.5"},
		{"date", DateCell(jan5, "yyyy-mm-dd"), "2024-01-05"},
		{"datetime under date format drops time", DateCell(jan5.Add(13*time.Hour), "m/d/yy h:mm"), "2024-01-05"},
		{"date without date format", DateCell(jan5, "General"), "2024-01-05 00:00:00"},
		{"number under date format stays a number", NumberCell(45296, "yyyy-mm-dd"), "45296"},
		{"time of day", TimeCell(time.Date(1899, 12, 30, 10, 30, 0, 0, time.UTC), "h:mm"), "10:30:00"},
		{"text", TextCell("Report Title"), "Report Title"},
		{"numeric looking text", TextCell("007"), "007"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDisplay(tc.cell))
		})
	}
}

func TestFormatDisplayIsStable(t *testing.T) {
	cells := []Cell{
		NumberCell(2.5000, "0.00"),
		TextCell("x"),
		DateCell(time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), "d-mmm-yy"),
		EmptyCell(),
	}
	for _, c := range cells {
		assert.Equal(t, FormatDisplay(c), FormatDisplay(c))
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "-3", FormatNumber(-3.0))
	assert.Equal(t, "0.1", FormatNumber(0.1))
	assert.Equal(t, "12.345", FormatNumber(12.345))
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"General", false},
		{"0", false},
		{"0.00", false},
		{"#,##0.00", false},
		{"0.00E+00", false},
		{"@", false},
		{"0%", false},
		{`"$"#,##0_);("$"#,##0)`, false},
		{`_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`, false},
		{`"date"0.00`, false},
		{`[$-409]0.00`, false},
		{`[Red]0.00`, false},
		{"mm-dd-yy", true},
		{"yyyy-mm-dd", true},
		{"d-mmm-yy", true},
		{"h:mm AM/PM", true},
		{"[h]:mm:ss", true},
		{"[$-409]dd/mm/yyyy", true},
		{"YYYY", true},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.want, IsDateFormat(tc.code))
		})
	}
}

func TestBuiltinNumFmt(t *testing.T) {
	assert.Equal(t, "mm-dd-yy", BuiltinNumFmt(14))
	assert.Equal(t, "General", BuiltinNumFmt(0))
	assert.Equal(t, "General", BuiltinNumFmt(163))
	assert.True(t, IsDateFormat(BuiltinNumFmt(22)))
	assert.False(t, IsDateFormat(BuiltinNumFmt(4)))
}
