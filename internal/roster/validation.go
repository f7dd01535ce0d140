package roster

// validation.go checks the add-employee form before a row is appended.
//
// Rules run in a fixed order and the first failure wins:
//  1. Every field must be filled in (Incomplete)
//  2. Name: 4 to 30 letters or spaces (BadName)
//  3. Position: 2 to 50 letters or spaces (BadPosition)
//  4. Office: one of Offices (Incomplete)
//  5. Age: leading whole number strictly between 18 and 90 (BadAge)
//  6. Salary: digits only (BadSalary)

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Reason categorises a validation failure.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonIncomplete
	ReasonBadName
	ReasonBadPosition
	ReasonBadAge
	ReasonBadSalary
)

func (r Reason) String() string {
	switch r {
	case ReasonIncomplete:
		return "incomplete"
	case ReasonBadName:
		return "bad-name"
	case ReasonBadPosition:
		return "bad-position"
	case ReasonBadAge:
		return "bad-age"
	case ReasonBadSalary:
		return "bad-salary"
	default:
		return "none"
	}
}

// Age bounds, both exclusive.
const (
	MinAge = 18
	MaxAge = 90
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z ]{4,30}$`)
	positionRe = regexp.MustCompile(`^[a-zA-Z ]{2,50}$`)
	salaryRe   = regexp.MustCompile(`^\d+$`)
)

// ValidationError describes the first rule a form broke.
type ValidationError struct {
	Field  string // Column name
	Value  string // The rejected value
	Reason Reason
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return e.Reason.String()
}

// ReasonOf extracts the Reason from an error returned by Validate.
// Nil errors and foreign errors report ReasonNone.
func ReasonOf(err error) Reason {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return ReasonNone
}

// fieldRule is one ordered validation step.
type fieldRule struct {
	column int
	reason Reason
	valid  func(string) bool
}

var rules = []fieldRule{
	{column: ColName, reason: ReasonBadName, valid: nameRe.MatchString},
	{column: ColPosition, reason: ReasonBadPosition, valid: positionRe.MatchString},
	{column: ColOffice, reason: ReasonIncomplete, valid: isOffice},
	{column: ColAge, reason: ReasonBadAge, valid: validAge},
	{column: ColSalary, reason: ReasonBadSalary, valid: salaryRe.MatchString},
}

// Validate returns nil when f may be appended, or a ValidationError for the
// first rule it breaks.
func Validate(f Form) error {
	fields := f.Fields()

	for i, v := range fields {
		if strings.TrimSpace(v) == "" {
			return ValidationError{Field: Columns[i], Reason: ReasonIncomplete}
		}
	}

	for _, rule := range rules {
		v := fields[rule.column]
		if !rule.valid(v) {
			return ValidationError{
				Field:  Columns[rule.column],
				Value:  v,
				Reason: rule.reason,
			}
		}
	}

	return nil
}

func isOffice(v string) bool {
	for _, o := range Offices {
		if o == v {
			return true
		}
	}
	return false
}

// leadingIntRe picks the signed whole number at the start of the age field;
// "18.9" reads as 18 and "2e1" as 2.
var leadingIntRe = regexp.MustCompile(`^\s*([+-]?\d+)`)

// validAge reads the leading whole number and applies the bounds.
func validAge(v string) bool {
	m := leadingIntRe.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	age, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return age > MinAge && age < MaxAge
}
