package security

import (
	"regexp"
	"strconv"
	"time"
)

// Local part and domain labels allow word characters, dots, hyphens and
// underscores; the domain carries one to three dot-separated segments.
var emailRe = regexp.MustCompile(`^[\w.-]+@[\w-]+(\.[\w-]+){1,3}$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

var (
	monthDays   = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	birthDateRe = regexp.MustCompile(`^\d{8}$`)
)

// ValidBirthDate checks an 8-digit YYYYMMDD string for calendar validity.
// February 29 is accepted only in Gregorian leap years.
func ValidBirthDate(s string) bool {
	if !birthDateRe.MatchString(s) {
		return false
	}
	year, _ := strconv.Atoi(s[:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	if year < 1900 || year > time.Now().Year() {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	days := monthDays[month]
	if month == 2 && isLeapYear(year) {
		days = 29
	}
	return day >= 1 && day <= days
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
