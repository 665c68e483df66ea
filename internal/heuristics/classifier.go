// Package heuristics is the second classification stage: broad lowercase
// keyword groups with medium confidence. It catches what the strict rule
// tables miss and leaves the genuinely ambiguous rows for the embedding and
// LLM stages.
package heuristics

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

var (
	upiRe          = regexp.MustCompile(`\bupi\b|upi/|ip[ay]y|paytm|phonepe|googlepay|gpay|bhim|sbipay|sbiepay|eship|ipayment`)
	cardRe         = regexp.MustCompile(`\b(debit card|credit card|visa-pos|visa-ref|mastercard|pos|atm)\b`)
	bankTransferRe = regexp.MustCompile(`\b(imps|neft|rtgs|fund transfer|transfer from|transfer to|mmid)\b`)
	txnRefRe       = regexp.MustCompile(`\b(ref|txn|trn|utr|id0|bn\d{3,})`)
	amountRe       = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

// Vendor groups, matched as lowercase substrings.
var (
	wallets       = []string{"paytm", "phonepe", "gpay", "googlepay", "mobikwik", "freecharge"}
	food          = []string{"zomato", "swiggy", "dunzo", "foodpanda", "dominos", "pizza hut", "pizza"}
	transport     = []string{"uber", "ola", "rapido", "redbus", "ola cabs", "uber india"}
	marketplaces  = []string{"amazon", "flipkart", "myntra", "ajio", "tatacliq", "amazon.in"}
	grocery       = []string{"bigbasket", "dmart", "more", "spencer", "reliance fresh", "nature's basket", "grocery"}
	fuel          = []string{"bpcl", "indian oil", "hpcl", "bharat petroleum", "petrol", "fuel"}
	travel        = []string{"indigo", "air india", "goair", "spicejet", "make my trip", "cleartrip", "booking.com"}
	utilities     = []string{"broadband", "bsnl", "reliance jio", "jio", "vodafone", "airtel", "electricity", "bescom", "bses", "mahavitaran"}
	subscriptions = []string{"netflix", "spotify", "prime video", "hotstar", "zee5", "youtube premium", "apple"}
	recurringFees = []string{"emi", "loan emi", "equated monthly", "monthly instalment"}
	bankFees      = []string{"bank charges", "cheque bounce", "service charge", "monthly maintenance", "mms_charge", "sms_charge", "annual_card_fee"}
)

func containsAny(d string, tokens []string) bool {
	return firstToken(d, tokens) != ""
}

func firstToken(d string, tokens []string) string {
	for _, t := range tokens {
		if strings.Contains(d, t) {
			return t
		}
	}
	return ""
}

// Classify runs the keyword cascade against a narration. First match wins.
func Classify(description string) model.ClassificationResult {
	if strings.TrimSpace(description) == "" {
		return model.PendingResult("empty", 0, nil)
	}

	d := strings.ToLower(strings.TrimSpace(description))
	meta := map[string]any{}

	if containsAny(d, []string{"salary", "credited", "salary credit", "payroll", "salary by", "salary from"}) {
		meta["matched_rule"] = "income_exact"
		return model.Resolved("Income", "Salary", "", 0.98, meta)
	}

	if m := bankTransferRe.FindString(d); m != "" || containsAny(d, []string{"neft-", "imps/", "rtgs"}) {
		meta["matched_rule"] = "bank_transfer"
		if m != "" {
			meta["matched_token"] = m
		}
		return model.Resolved("Transfers", "BankTransfer", "", 0.88, meta)
	}

	if upiRe.MatchString(d) || containsAny(d, wallets) || strings.Contains(d, "ipay") {
		token := upiRe.FindString(d)
		if token == "" {
			token = firstToken(d, wallets)
		}
		meta["matched_rule"] = "upi_wallet"
		meta["matched_token"] = token
		if containsAny(d, []string{"refund", "reversal", "credited"}) {
			return model.Resolved("Transfers", "Refund", "", 0.80, meta)
		}
		return model.Resolved("Transfers", "UPI", "", 0.75, meta)
	}

	if cardRe.MatchString(d) || containsAny(d, []string{"visa-pos", "pos", "debit card", "credit card", "vpa"}) {
		meta["matched_rule"] = "card_pos"
		if m := cardRe.FindString(d); m != "" {
			meta["matched_token"] = m
		}
		switch {
		case containsAny(d, food):
			return model.Resolved("Dining", "Food", "", 0.78, meta)
		case containsAny(d, fuel):
			return model.Resolved("Transport", "Fuel", "", 0.80, meta)
		case containsAny(d, grocery):
			return model.Resolved("Groceries", "Supermarket", "", 0.78, meta)
		}
		return model.Resolved("Shopping", "POS", "", 0.70, meta)
	}

	if containsAny(d, food) || containsAny(d, []string{"hotel", "resto", "restaurant", "meal", "dine"}) {
		meta["matched_rule"] = "food_keywords"
		meta["matched_token"] = firstToken(d, food)
		conf := 0.66
		if containsAny(d, []string{"zomato", "swiggy"}) {
			conf = 0.80
		}
		return model.Resolved("Dining", "FoodDelivery", "", conf, meta)
	}

	if containsAny(d, transport) || containsAny(d, []string{"cab", "taxi", "auto", "ride"}) {
		meta["matched_rule"] = "transport"
		meta["matched_token"] = firstToken(d, transport)
		return model.Resolved("Transport", "Cab", "", 0.75, meta)
	}

	if containsAny(d, marketplaces) || containsAny(d, []string{"online shopping", "order", "seller"}) {
		meta["matched_rule"] = "marketplace"
		meta["matched_token"] = firstToken(d, marketplaces)
		return model.Resolved("Shopping", "Online", "", 0.78, meta)
	}

	if containsAny(d, grocery) || containsAny(d, []string{"supermarket", "kirana", "store"}) {
		meta["matched_rule"] = "grocery"
		meta["matched_token"] = firstToken(d, grocery)
		return model.Resolved("Groceries", "Shopping", "", 0.78, meta)
	}

	if containsAny(d, fuel) {
		meta["matched_rule"] = "fuel"
		meta["matched_token"] = firstToken(d, fuel)
		return model.Resolved("Transport", "Fuel", "", 0.82, meta)
	}

	if containsAny(d, travel) || containsAny(d, []string{"booking", "irctc", "railway", "train ticket", "flight", "hotel booking"}) {
		meta["matched_rule"] = "travel"
		meta["matched_token"] = firstToken(d, travel)
		return model.Resolved("Travel", "TravelBooking", "", 0.80, meta)
	}

	if containsAny(d, utilities) || containsAny(d, []string{"water bill", "gas bill", "mobile recharge"}) {
		meta["matched_rule"] = "utilities"
		meta["matched_token"] = firstToken(d, utilities)
		return model.Resolved("Bills", "Utilities", "", 0.85, meta)
	}

	if containsAny(d, subscriptions) || strings.Contains(d, "subscription") || strings.Contains(d, "monthly plan") {
		meta["matched_rule"] = "subscription"
		meta["matched_token"] = firstToken(d, subscriptions)
		return model.Resolved("Entertainment", "Subscription", "", 0.88, meta)
	}

	if containsAny(d, recurringFees) || strings.Contains(d, "equated") {
		meta["matched_rule"] = "emi"
		meta["matched_token"] = firstToken(d, recurringFees)
		return model.Resolved("Bills", "EMI", "", 0.90, meta)
	}

	if containsAny(d, bankFees) || (strings.Contains(d, "charge") && strings.Contains(d, "bank")) {
		meta["matched_rule"] = "bank_fee"
		return model.Resolved("Bills", "BankCharges", "", 0.88, meta)
	}

	if containsAny(d, []string{"atm", "cash wdl", "cash withdrawal"}) {
		meta["matched_rule"] = "atm"
		return model.Resolved("Cash", "ATMWithdrawal", "", 0.86, meta)
	}

	if containsAny(d, []string{"refund", "reversal", "reversed", "credited back"}) {
		meta["matched_rule"] = "refund"
		return model.Resolved("Transfers", "Refund", "", 0.80, meta)
	}

	if containsAny(d, []string{"govt", "income tax", "tds", "tax", "gst", "cbic", "gstin"}) {
		meta["matched_rule"] = "taxes"
		return model.Resolved("Bills", "Taxes", "", 0.92, meta)
	}

	if containsAny(d, []string{"hospital", "clinic", "pharmacy", "medic", "dr.", "doctor", "chemist", "wellness"}) {
		meta["matched_rule"] = "health"
		return model.Resolved("Health", "Medical", "", 0.80, meta)
	}

	if containsAny(d, []string{"school", "college", "tuition", "university", "exam", "entrance", "course fee"}) {
		meta["matched_rule"] = "education"
		return model.Resolved("Education", "Tuition", "", 0.84, meta)
	}

	if containsAny(d, []string{"donation", "charity", "donated", "ngo"}) {
		meta["matched_rule"] = "donation"
		return model.Resolved("Giving", "Donation", "", 0.82, meta)
	}

	if containsAny(d, []string{"parking", "toll", "metro"}) {
		meta["matched_rule"] = "parking_toll"
		return model.Resolved("Transport", "TollParking", "", 0.78, meta)
	}

	// Transaction references without a merchant signal.
	if ref := txnRefRe.FindString(d); ref != "" {
		meta["matched_rule"] = "txn_ref"
		meta["matched_token"] = ref
		if upiRe.MatchString(d) {
			return model.Resolved("Transfers", "UPI", "", 0.72, meta)
		}
		if containsAny(d, []string{"shop", "store", "merchant", "m/s"}) {
			return model.Resolved("Shopping", "POS", "", 0.65, meta)
		}
	}

	// Small money tokens read like daily spend.
	if amounts := amountRe.FindAllString(strings.ReplaceAll(description, ",", ""), -1); len(amounts) > 0 {
		smallest := -1.0
		for _, a := range amounts {
			if v, err := strconv.ParseFloat(a, 64); err == nil && (smallest < 0 || v < smallest) {
				smallest = v
			}
		}
		if smallest >= 0 && smallest < 200 {
			meta["matched_rule"] = "amount_heuristic"
			meta["sample_amounts"] = amounts
			if containsAny(d, []string{"hotel", "restaurant", "canteen", "dhaba", "chai", "coffee"}) {
				return model.Resolved("Dining", "Food", "", 0.64, meta)
			}
			if containsAny(d, transport) {
				return model.Resolved("Transport", "Cab", "", 0.64, meta)
			}
			return model.Resolved("Shopping", "Misc", "", 0.55, meta)
		}
	}

	// Last resort: a bare vendor token anywhere in the line.
	groups := []struct {
		tokens      []string
		category    string
		subcategory string
		confidence  float64
	}{
		{wallets, "Transfers", "UPI", 0.68},
		{food, "Dining", "FoodDelivery", 0.70},
		{transport, "Transport", "Cab", 0.70},
		{marketplaces, "Shopping", "Online", 0.72},
		{grocery, "Groceries", "Supermarket", 0.72},
		{fuel, "Transport", "Fuel", 0.78},
		{utilities, "Bills", "Utilities", 0.78},
	}
	for _, g := range groups {
		if v := firstToken(d, g.tokens); v != "" {
			meta["matched_rule"] = "vendor_fallback"
			meta["matched_token"] = v
			return model.Resolved(g.category, g.subcategory, "", g.confidence, meta)
		}
	}

	meta["matched_rule"] = "no_heuristic_match"
	return model.PendingResult("no_heuristic_match", 0, meta)
}
