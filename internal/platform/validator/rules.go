package validator

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Required fails on empty or whitespace-only input.
func Required(msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			return strings.TrimSpace(value) != ""
		},
		Message: msg,
	}
}

func MinLength(n int, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			return utf8.RuneCountInString(value) >= n
		},
		Message: msg,
	}
}

func MaxLength(n int, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			return utf8.RuneCountInString(value) <= n
		},
		Message: msg,
	}
}

func Matches(re *regexp.Regexp, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			return re.MatchString(value)
		},
		Message: msg,
	}
}

func Email(msg string) Rule {
	return Matches(emailRegex, msg)
}

// URL accepts absolute http and https URLs with a host.
func URL(msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Message: msg,
	}
}

func Numeric(msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			_, ok := parseNumber(value)
			return ok
		},
		Message: msg,
	}
}

// WholeNumber accepts ASCII digits only, surrounding whitespace aside.
func WholeNumber(msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return false
			}
			for i := 0; i < len(value); i++ {
				if value[i] < '0' || value[i] > '9' {
					return false
				}
			}
			return true
		},
		Message: msg,
	}
}

// MaxBytes bounds the UTF-8 encoded size, as opposed to MaxLength which counts runes.
func MaxBytes(n int, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			return len(value) <= n
		},
		Message: msg,
	}
}

// MinNumber fails when the value is not a number or is below min.
func MinNumber(min float64, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			n, ok := parseNumber(value)
			return ok && n >= min
		},
		Message: msg,
	}
}

// MaxNumber fails when the value is not a number or is above max.
func MaxNumber(max float64, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			n, ok := parseNumber(value)
			return ok && n <= max
		},
		Message: msg,
	}
}

func ContainsUpper(msg string) Rule {
	return containsRune(unicode.IsUpper, msg)
}

func ContainsLower(msg string) Rule {
	return containsRune(unicode.IsLower, msg)
}

func ContainsDigit(msg string) Rule {
	return containsRune(unicode.IsDigit, msg)
}

// EqualsField requires the value to equal the current value of another field.
func EqualsField(other, msg string) Rule {
	return Rule{
		Check: func(value string, values Values) bool {
			return value == values.Get(other)
		},
		Message: msg,
	}
}

// Optional passes empty input and otherwise defers to rule.
func Optional(rule Rule) Rule {
	return Rule{
		Check: func(value string, values Values) bool {
			return value == "" || rule.Check(value, values)
		},
		Message: rule.Message,
	}
}

func Custom(check func(value string, values Values) bool, msg string) Rule {
	return Rule{Check: check, Message: msg}
}

func containsRune(match func(rune) bool, msg string) Rule {
	return Rule{
		Check: func(value string, _ Values) bool {
			return strings.IndexFunc(value, match) >= 0
		},
		Message: msg,
	}
}

func parseNumber(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
