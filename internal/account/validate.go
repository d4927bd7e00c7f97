package account

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// holderNamePattern accepts two capitalized words, Latin or Cyrillic:
// "Ivan Petrov", "Иван Петров".
var holderNamePattern = regexp.MustCompile(`^[A-ZА-Я][a-zа-я]+ [A-ZА-Я][a-zа-я]+$`)

const numberPrefix = "ACC-"

// validateHolderName checks the "First Last" holder pattern.
func validateHolderName(name string) error {
	if !holderNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must be two capitalized words (Latin or Cyrillic)", ErrInvalidHolderName, name)
	}
	return nil
}

// validateAccountNumber checks a caller-supplied number: "ACC-" followed by an
// integer.
func validateAccountNumber(number string) error {
	if !strings.HasPrefix(number, numberPrefix) {
		return fmt.Errorf("%w: %q must start with %q", ErrInvalidAccountNumber, number, numberPrefix)
	}
	if _, err := strconv.Atoi(number[len(numberPrefix):]); err != nil {
		return fmt.Errorf("%w: %q has a non-integer suffix", ErrInvalidAccountNumber, number)
	}
	return nil
}

// formatAccountNumber canonicalizes a generated integer to ACC-<integer>.
func formatAccountNumber(n int) string {
	return fmt.Sprintf("%s%d", numberPrefix, n)
}
