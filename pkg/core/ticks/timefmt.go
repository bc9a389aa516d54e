package ticks

import (
	"strconv"
	"strings"
	"time"
)

// DefaultMonthNames are the abbreviations used by %b.
var DefaultMonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatDate renders t in UTC using a small strftime-like language:
//
//	%h  hours          %H  hours, zero-padded
//	%M  minutes, padded %S  seconds, padded
//	%d  day of month   %m  month number
//	%y  2-digit year   %Y  full year
//	%b  month name     %p / %P  am/pm, AM/PM
//	%0  zero-pad the next directive
//	%%  a literal percent sign
//
// When the layout contains %p or %P, hours are on the 12-hour clock.
// Unknown directives print the directive letter. monthNames must have 12
// entries; otherwise DefaultMonthNames is used.
func FormatDate(t time.Time, layout string, monthNames []string) string {
	t = t.UTC()
	if len(monthNames) != 12 {
		monthNames = DefaultMonthNames
	}

	hours := t.Hour()
	am := hours < 12
	if strings.Contains(layout, "%p") || strings.Contains(layout, "%P") {
		switch {
		case hours > 12:
			hours -= 12
		case hours == 0:
			hours = 12
		}
	}

	var b strings.Builder
	escape, pad := false, false
	for _, c := range layout {
		if !escape {
			if c == '%' {
				escape = true
			} else {
				b.WriteRune(c)
			}
			continue
		}

		var s string
		switch c {
		case 'h':
			s = strconv.Itoa(hours)
		case 'H':
			s = leftPad(strconv.Itoa(hours))
		case 'M':
			s = leftPad(strconv.Itoa(t.Minute()))
		case 'S':
			s = leftPad(strconv.Itoa(t.Second()))
		case 'd':
			s = strconv.Itoa(t.Day())
		case 'm':
			s = strconv.Itoa(int(t.Month()))
		case 'y':
			s = leftPad(strconv.Itoa(t.Year() % 100))
		case 'Y':
			s = strconv.Itoa(t.Year())
		case 'b':
			s = monthNames[t.Month()-1]
		case 'p':
			s = ampm(am, "am", "pm")
		case 'P':
			s = ampm(am, "AM", "PM")
		case '0':
			pad = true
			continue
		default:
			s = string(c)
		}
		if pad {
			s = leftPad(s)
			pad = false
		}
		b.WriteString(s)
		escape = false
	}
	return b.String()
}

func leftPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func ampm(am bool, a, p string) string {
	if am {
		return a
	}
	return p
}
