package booking

import "fmt"

// ConfirmationNumber builds the customer-facing reference in the
// STY-<sequence>-<year> format, e.g. STY-042-2026. The sequence is the
// created record's id, zero-padded to three digits.
func ConfirmationNumber(id int, year int) string {
	return fmt.Sprintf("STY-%03d-%d", id, year)
}
