// Package rules implements the deterministic first classification stage:
// description normalization, vendor lookup tables, UPI handle resolution and
// regex fallback rules. It is pure string work with no I/O, so it is safe to
// call from many workers at once.
package rules

import (
	"regexp"
	"strings"
)

// glueFixes splits tokens that banks print without separators. Order matters
// where one fix is a prefix of another.
var glueFixes = []struct{ bad, good string }{
	{"SALARYCREDIT", "SALARY CREDIT"},
	{"SMSCHRG", "SMS CHRG"},
	{"ATMWDR", "ATM WDR"},
	{"ATMWDL", "ATM WDR"},
	{"INTERNETBANGALORE", "INTERNET BANGALORE"},
	{"MOBILERECHARGE", "MOBILE RECHARGE"},
	{"LATEFINEFEES", "LATE FINE FEES"},
	{"VLPCHARGES", "VLP CHARGES"},
	{"TRANSFERTOANIL", "TRANSFER TO ANIL"},
	{"DMART", "D MART"},
	{"BIGBASKET", "BIG BASKET"},
	{"PHONEPE", "PHONE PE"},
	{"GOOGLEPAY", "GOOGLE PAY"},
	{"BHARATPET", "BHARAT PETROLEUM"},
	{"HINDPETRO", "HINDUSTAN PETROLEUM"},
	{"INDIANOIL", "INDIAN OIL"},
}

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	upiDebitRe    = regexp.MustCompile(`UPI/DR/[\w/.\-]+/`)
	upiCreditRe   = regexp.MustCompile(`UPI/CR/[\w/.\-]+/`)
	upiRefRe      = regexp.MustCompile(`UPI/\d{12,}/`)
	longNumericRe = regexp.MustCompile(`\b\d{12,}\b`)
)

// NormalizeDesc uppercases a bank narration and strips the noise that would
// otherwise defeat substring matching: glued tokens, UPI routing segments and
// long transaction references.
func NormalizeDesc(desc string) string {
	if desc == "" {
		return ""
	}

	d := strings.ToUpper(desc)
	d = whitespaceRe.ReplaceAllString(d, " ")

	for _, f := range glueFixes {
		d = strings.ReplaceAll(d, f.bad, f.good)
	}

	d = upiDebitRe.ReplaceAllString(d, "UPI/")
	d = upiCreditRe.ReplaceAllString(d, "UPI/")
	d = upiRefRe.ReplaceAllString(d, "UPI/")

	d = longNumericRe.ReplaceAllString(d, " ")

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(d, " "))
}

// titleCase renders an uppercased vendor key the way it is stored on the
// transaction ("HOTEL RAJ" becomes "Hotel Raj").
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
