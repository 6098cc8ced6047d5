package db

import "strings"

// IsUniqueViolation reports whether err is a unique-constraint failure. When
// constraintName is given it must appear in the error text, which scopes the
// check to one index (e.g. users_email_key vs cart_items_customer_product_key).
// Both the postgres and sqlite phrasings are recognized so the same repo code
// behaves identically under the in-memory test driver.
func IsUniqueViolation(err error, constraintName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if constraintName != "" {
		return strings.Contains(msg, constraintName)
	}
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
