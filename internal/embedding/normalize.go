package embedding

import (
	"regexp"
	"strings"
)

// The embedding stage uses a harsher normalizer than the rules stage: gateway
// prefixes and bank reference codes pollute vector similarity far more than
// they hurt substring matching.
var embGlueFixes = []struct{ bad, good string }{
	{"SALARYCREDIT", "SALARY CREDIT"},
	{"SMSCHRG", "SMS CHRG"},
	{"ATMWDR", "ATM WDR"},
	{"ATMWDL", "ATM WDR"},
	{"IPAY/ESHP", "IPAY"},
	{"SBI EPAY", "SBIEPAY"},
	{"MMT/IMPS", "IMPS"},
	{"NEFT-", "NEFT "},
	{"NEFT/", "NEFT "},
	{"IMPS/", "IMPS "},
	{"VISA-POS", "VISA POS"},
	{"VISA/", "VISA "},
	{"U P I", "UPI"},
}

var (
	idRefRe      = regexp.MustCompile(`\bID0\d{4,}\b`)
	bnRefRe      = regexp.MustCompile(`\bBN\d{4,}\b`)
	refSlashNoRe = regexp.MustCompile(`REF\\\d{3,}`)
	refSlashRe   = regexp.MustCompile(`REF\\`)
	longNumRe    = regexp.MustCompile(`\b\d{7,}\b`)
	longAlnumRe  = regexp.MustCompile(`\b[A-Z0-9]{10,}\b`)
	punctRe      = regexp.MustCompile(`[_\t]+`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

// NormalizeText cleans a narration before embedding.
func NormalizeText(desc string) string {
	if desc == "" {
		return ""
	}
	d := strings.ToUpper(desc)

	for _, f := range embGlueFixes {
		d = strings.ReplaceAll(d, f.bad, f.good)
	}

	d = idRefRe.ReplaceAllString(d, "ID_REF")
	d = bnRefRe.ReplaceAllString(d, "BN_REF")
	d = refSlashNoRe.ReplaceAllString(d, "REF")
	d = refSlashRe.ReplaceAllString(d, "REF ")

	d = longNumRe.ReplaceAllString(d, " ")
	d = longAlnumRe.ReplaceAllString(d, " ")

	d = punctRe.ReplaceAllString(d, " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(d, " "))
}
