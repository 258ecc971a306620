// Package roster holds the guard rules that callers enforce before
// asking the service to add a guard. The repository does not check them.
package roster

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxGuards is the soft cap on roster size
const MaxGuards = 30

var (
	ErrRosterFull  = fmt.Errorf("roster is limited to %d guards", MaxGuards)
	ErrIDNumber    = errors.New("id number must be exactly 9 digits")
	ErrPhone       = errors.New("phone must be an Israeli mobile number (05XXXXXXXX)")
	ErrMissingName = errors.New("first and last name are required")
)

var (
	idNumberPattern = regexp.MustCompile(`^\d{9}$`)
	mobilePattern   = regexp.MustCompile(`^05\d{8}$`)
)

// CanAdd reports whether one more guard fits under the cap
func CanAdd(current int) error {
	if current >= MaxGuards {
		return ErrRosterFull
	}
	return nil
}

// ValidateIDNumber checks the national id format
func ValidateIDNumber(idNumber string) error {
	if !idNumberPattern.MatchString(idNumber) {
		return ErrIDNumber
	}
	return nil
}

// ValidatePhone checks the mobile number format
func ValidatePhone(phone string) error {
	if !mobilePattern.MatchString(phone) {
		return ErrPhone
	}
	return nil
}

// ValidateNewGuard runs every caller-side check for a guard about to be added
func ValidateNewGuard(current int, firstName, lastName, idNumber, phone string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrMissingName
	}
	if err := ValidateIDNumber(idNumber); err != nil {
		return err
	}
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	return CanAdd(current)
}
