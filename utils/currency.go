package utils

import "fmt"

// FormatGBP formats an amount as pounds sterling for emails and receipts.
// Example: 15000.5 -> "£15000.50"
func FormatGBP(amount float64) string {
	return fmt.Sprintf("£%.2f", amount)
}
