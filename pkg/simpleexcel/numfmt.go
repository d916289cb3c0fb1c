package simpleexcel

import (
	"regexp"
	"strings"
)

// builtinNumFmts holds the format codes implied by the reserved numFmtId
// values of the OOXML spreadsheet format.
var builtinNumFmts = map[int]string{
	0:  "General",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	5:  `"$"#,##0_);("$"#,##0)`,
	6:  `"$"#,##0_);[Red]("$"#,##0)`,
	7:  `"$"#,##0.00_);("$"#,##0.00)`,
	8:  `"$"#,##0.00_);[Red]("$"#,##0.00)`,
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0_);(#,##0)",
	38: "#,##0_);[Red](#,##0)",
	39: "#,##0.00_);(#,##0.00)",
	40: "#,##0.00_);[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_)_("$"* \(#,##0.00\)_("$"* "-"??_)_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// BuiltinNumFmt returns the format code for a built-in numFmtId. Unknown
// ids fall back to "General".
func BuiltinNumFmt(id int) string {
	if code, ok := builtinNumFmts[id]; ok {
		return code
	}
	return "General"
}

var (
	// quoted literals, bracket blocks other than elapsed-time tokens,
	// escaped characters and padding directives
	numFmtLiteralRe = regexp.MustCompile(`"[^"]*"|\[(?:[^\]hHmMsS][^\]]*|[hHmMsS][^\]]*[^\]hHmMsS][^\]]*)\]|\\.|_.`)
	numFmtDateRe    = regexp.MustCompile(`[dmyhsDMYHS]`)
)

// IsDateFormat reports whether a number format code renders its value as a
// date or time.
func IsDateFormat(code string) bool {
	if code == "" {
		return false
	}
	section := code
	if i := strings.IndexByte(section, ';'); i >= 0 {
		section = section[:i]
	}
	section = numFmtLiteralRe.ReplaceAllString(section, "")
	return numFmtDateRe.MatchString(section)
}

// isElapsedFormat reports whether the code shows an elapsed duration such
// as [h]:mm:ss rather than a time of day.
func isElapsedFormat(code string) bool {
	return strings.Contains(code, "[h") || strings.Contains(code, "[m") || strings.Contains(code, "[s") ||
		strings.Contains(code, "[H") || strings.Contains(code, "[M") || strings.Contains(code, "[S")
}
