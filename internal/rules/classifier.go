package rules

import (
	"regexp"
	"strings"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

// Patterns that pull a merchant name out of a UPI narration before the
// generic handle logic runs. Matched against the normalized (uppercase) text.
var upiMerchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`UPI.*?[-/]([A-Z]{3,}(?:\s+[A-Z]+)?)\b`),
	regexp.MustCompile(`UPI/\d+/([A-Z\s]{3,}?)(?:/|@|\s|$)`),
	regexp.MustCompile(`(?i)([A-Z]{3,}(?:\s+[A-Z]+)?)@(?:ybl|paytm|oksbi|okhdfcbank)`),
}

var (
	emiPaymentRe = regexp.MustCompile(`(?i)\bEMIPAYMENT\b|\bHDFC[-\s]*LOAN\b`)
	salaryRe     = regexp.MustCompile(`(?i)\bSALARY\b`)
	emiRe        = regexp.MustCompile(`(?i)\bEMI\b|\bLOAN\b`)
	atmWdrRe     = regexp.MustCompile(`(?i)\bATM\s*WD[RL]?\b`)
	atmDepRe     = regexp.MustCompile(`(?i)\bATM\s*DEP`)
	intPdRe      = regexp.MustCompile(`(?i)\bINT[.\s]*PD\b|\bINTEREST`)
	qtrChargeRe  = regexp.MustCompile(`(?i)QUARTER|QTRLY|AVG.*BAL`)
	smsChargeRe  = regexp.MustCompile(`(?i)\bSMS\b`)
	electricRe   = regexp.MustCompile(`(?i)\bELECTRIC`)
	gasRe        = regexp.MustCompile(`(?i)\bGAS\b|\bLPG\b`)
	insuranceRe  = regexp.MustCompile(`(?i)\bPMSBY\b|\bPMJJBY\b|\bINSURANCE\b`)
	transferRe   = regexp.MustCompile(`(?i)\bNEFT\b|\bIMPS\b|\bRTGS\b`)

	posMarkerRe   = regexp.MustCompile(`(?i)\b(?:VISA|IDBV|MASTER|RUPAY)[-\s]*POS\b`)
	posMerchantRe = regexp.MustCompile(`(?i)POS/([^/\s]+(?:\s+[^/\s]+){0,3})`)
)

// Last-chance keyword table, ordered.
var keywordTable = []struct {
	keyword    string
	category   string
	subcat     string
	confidence float64
}{
	{"RESTAURANT", "Dining", "Restaurant", 0.75},
	{"HOTEL", "Dining", "Restaurant", 0.75},
	{"CAFE", "Dining", "Cafe", 0.75},
	{"PETROL", "Transport", "Fuel", 0.80},
	{"PETROLEUM", "Transport", "Fuel", 0.80},
	{"GROCERY", "Groceries", "LocalShops", 0.75},
	{"SUPERMARKET", "Groceries", "Supermarket", 0.75},
	{"MEDICAL", "Shopping", "Pharmacy", 0.75},
	{"PHARMACY", "Shopping", "Pharmacy", 0.75},
	{"TAXI", "Transport", "Cab", 0.75},
	{"CAB", "Transport", "Cab", 0.75},
}

// Classify resolves a narration using the lookup tables and regex rules.
// It never returns an error: anything it cannot place comes back as a
// pending result for the later stages.
func Classify(description string) model.ClassificationResult {
	raw := strings.TrimSpace(description)
	if raw == "" {
		return model.PendingResult("empty", 0, nil)
	}

	textLower := strings.ToLower(raw)
	textNorm := NormalizeDesc(raw)
	meta := map[string]any{}

	var category, subcategory, vendor string
	var confidence float64

	// UPI merchant extraction first: a known merchant inside the handle
	// beats every generic rule.
	if strings.Contains(textNorm, "UPI") {
		for _, pat := range upiMerchantPatterns {
			m := pat.FindStringSubmatch(textNorm)
			if m == nil {
				continue
			}
			merchant := strings.TrimSpace(strings.ToUpper(m[1]))
			for _, key := range vendorKeys {
				if strings.Contains(merchant, key) || strings.Contains(key, merchant) {
					p := VendorCategoryMap[key]
					meta["matched_rule"] = "upi_vendor"
					meta["upi_merchant"] = merchant
					return model.Resolved(p.Category, p.Subcategory, titleCase(key), 0.90, meta)
				}
			}
		}
	}

	// General UPI handle resolution. A generic business transfer or a bare
	// UPI hint is held back so the vendor tables get a chance first.
	var upiFallback *model.ClassificationResult
	if res, ok := classifyUPI(textNorm); ok {
		generic := res.Category == "Transfers" && res.Subcategory == "ToBusiness"
		if res.Resolved() && !generic {
			return res
		}
		upiFallback = &res
	}

	// Vendor map. High-confidence hits return immediately, partial hits are
	// kept as context for the rules below.
	if key, conf, ok := matchVendor(textNorm); ok {
		p := VendorCategoryMap[key]
		category, subcategory = p.Category, p.Subcategory
		vendor = titleCase(key)
		confidence = conf
		meta["matched_rule"] = "vendor_map"
		meta["vendor_key"] = key
		if confidence >= 0.85 {
			// Salary phrases live in the vendor map too, but carry the
			// stronger semantic-rule confidence.
			if category == "Income" && subcategory == "Salary" {
				meta["matched_rule"] = "salary"
				return model.Resolved(category, subcategory, vendor, 0.98, meta)
			}
			return model.Resolved(category, subcategory, vendor, confidence, meta)
		}
	}

	// Semantic rules.
	if emiPaymentRe.MatchString(textNorm) {
		meta["matched_rule"] = "emi"
		return model.Resolved("Debt", "LoanEMI", orDefault(vendor, "HDFC Loan"), 0.95, meta)
	}

	switch {
	case salaryRe.MatchString(textNorm):
		meta["matched_rule"] = "salary"
		return model.Resolved("Income", "Salary", orDefault(vendor, "Employer"), 0.98, meta)

	case emiRe.MatchString(textNorm):
		meta["matched_rule"] = "emi"
		return model.Resolved("Debt", "LoanEMI", orDefault(vendor, "LoanProvider"), 0.90, meta)

	case atmWdrRe.MatchString(textNorm):
		category, subcategory = "Cash", "ATMWithdrawal"
		vendor = orDefault(vendor, "ATM")
		confidence = maxf(confidence, 0.90)
		meta["matched_rule"] = "atm_wdr"

	case atmDepRe.MatchString(textNorm):
		category, subcategory = "Cash", "ATMDeposit"
		vendor = orDefault(vendor, "ATM")
		confidence = maxf(confidence, 0.90)
		meta["matched_rule"] = "atm_dep"

	case intPdRe.MatchString(textNorm):
		category, subcategory = "Income", "Interest"
		vendor = orDefault(vendor, "BankInterest")
		confidence = maxf(confidence, 0.90)
		meta["matched_rule"] = "interest"

	case qtrChargeRe.MatchString(textNorm):
		category, subcategory = "BankCharges", "BalanceCharge"
		vendor = orDefault(vendor, "BankFee")
		confidence = maxf(confidence, 0.85)
		meta["matched_rule"] = "qtr_charge"

	case smsChargeRe.MatchString(textNorm):
		category, subcategory = "BankCharges", "SMS"
		vendor = orDefault(vendor, "BankFee")
		confidence = maxf(confidence, 0.85)
		meta["matched_rule"] = "sms_charge"

	case electricRe.MatchString(textNorm):
		category, subcategory = "Utilities", "Electricity"
		vendor = orDefault(vendor, "ElectricityBoard")
		confidence = maxf(confidence, 0.90)
		meta["matched_rule"] = "electricity"

	case gasRe.MatchString(textNorm):
		category, subcategory = "Utilities", "Gas"
		vendor = orDefault(vendor, "GasProvider")
		confidence = maxf(confidence, 0.90)
		meta["matched_rule"] = "gas"

	case insuranceRe.MatchString(textNorm):
		category, subcategory = "Insurance", "GovtScheme"
		vendor = orDefault(vendor, "GovtInsurance")
		confidence = maxf(confidence, 0.90)
		meta["matched_rule"] = "govt_insurance"

	case transferRe.MatchString(textNorm) && category == "":
		category, subcategory = "Transfers", "ToPerson"
		vendor = orDefault(vendor, "BankTransfer")
		confidence = maxf(confidence, 0.70)
		meta["matched_rule"] = "bank_transfer"
	}

	// Card POS purchases: extract the merchant after the POS marker and run
	// it through the vendor map.
	if category == "" && posMarkerRe.MatchString(textNorm) {
		if m := posMerchantRe.FindStringSubmatch(textNorm); m != nil {
			merchant := strings.TrimSpace(strings.ToUpper(m[1]))
			for _, key := range vendorKeys {
				if strings.Contains(merchant, key) {
					p := VendorCategoryMap[key]
					meta["matched_rule"] = "pos_vendor"
					meta["pos_merchant"] = merchant
					return model.Resolved(p.Category, p.Subcategory, titleCase(key), 0.85, meta)
				}
			}
		}
	}

	// Category regex fallback.
	if category == "" {
	categories:
		for _, entry := range categoryPatterns {
			for _, pat := range entry.patterns {
				if pat.MatchString(textLower) || pat.MatchString(textNorm) {
					parts := strings.SplitN(entry.label, ".", 2)
					category = parts[0]
					if len(parts) > 1 {
						subcategory = parts[1]
					}
					confidence = maxf(confidence, 0.80)
					meta["matched_rule"] = "category_regex"
					meta["category_hit"] = pat.String()
					break categories
				}
			}
		}
	}

	// Vendor regex fallback names a vendor even when no category matched.
	if vendor == "" {
	vendors:
		for _, entry := range vendorPatterns {
			for _, pat := range entry.patterns {
				if pat.MatchString(textLower) || pat.MatchString(textNorm) {
					vendor = entry.label
					meta["vendor_hit"] = pat.String()
					if _, ok := meta["matched_rule"]; !ok {
						meta["matched_rule"] = "vendor_regex"
					}
					if category == "" {
						category = "Uncategorized"
					}
					confidence = maxf(confidence, 0.70)
					break vendors
				}
			}
		}
	}

	// Keyword sweep.
	if category == "" {
		for _, kw := range keywordTable {
			if strings.Contains(textNorm, kw.keyword) {
				category, subcategory = kw.category, kw.subcat
				confidence = maxf(confidence, kw.confidence)
				meta["matched_rule"] = "keyword_detection"
				meta["keyword"] = kw.keyword
				break
			}
		}
	}

	// A held-back UPI result beats an empty or merely vendor-named outcome.
	if upiFallback != nil && (category == "" || category == "Uncategorized") {
		if upiFallback.Resolved() || category == "" {
			return *upiFallback
		}
	}

	if category == "" {
		meta["reason"] = "no_regex_match"
		meta["text_norm"] = textNorm
		if suggestion, ok := suggestVendor(textNorm); ok {
			meta["vendor_suggestion"] = suggestion
		}
		return model.PendingResult("no_regex_match", 0, meta)
	}

	return model.Resolved(category, subcategory, vendor, confidence, meta)
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
