package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

func TestClassifyEmpty(t *testing.T) {
	res := Classify("   ")
	assert.Equal(t, model.Pending, res.Category)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, "empty", res.Meta["reason"])
}

func TestClassifyKeywordGroups(t *testing.T) {
	tests := []struct {
		desc        string
		category    string
		subcategory string
		confidence  float64
	}{
		{"SALARY FROM ACME CORP", "Income", "Salary", 0.98},
		{"IMPS fund transfer 400112", "Transfers", "BankTransfer", 0.88},
		{"phonepe payment to shop", "Transfers", "UPI", 0.75},
		{"upi/ refund processed", "Transfers", "Refund", 0.80},
		{"POS purchase dominos", "Dining", "Food", 0.78},
		{"POS purchase hpcl pump", "Transport", "Fuel", 0.80},
		{"POS purchase misc", "Shopping", "POS", 0.70},
		{"swiggy delivery", "Dining", "FoodDelivery", 0.80},
		{"lunch at restaurant", "Dining", "FoodDelivery", 0.66},
		{"uber ride downtown", "Transport", "Cab", 0.75},
		{"flipkart order 1234", "Shopping", "Online", 0.78},
		{"bigbasket weekly", "Groceries", "Shopping", 0.78},
		{"spicejet flight blr", "Travel", "TravelBooking", 0.80},
		{"airtel broadband bill", "Bills", "Utilities", 0.85},
		{"netflix subscription", "Entertainment", "Subscription", 0.88},
		{"loan emi instalment", "Bills", "EMI", 0.90},
		{"cheque bounce penalty", "Bills", "BankCharges", 0.88},
		{"cash withdrawal branch", "Cash", "ATMWithdrawal", 0.86},
		{"tds deducted", "Bills", "Taxes", 0.92},
		{"apollo clinic visit", "Health", "Medical", 0.80},
		{"college exam fee", "Education", "Tuition", 0.84},
		{"ngo donation", "Giving", "Donation", 0.82},
		{"toll plaza fastag", "Transport", "TollParking", 0.78},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := Classify(tt.desc)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.subcategory, res.Subcategory)
			assert.InDelta(t, tt.confidence, res.Confidence, 0.001)
		})
	}
}

func TestClassifyAmountHeuristic(t *testing.T) {
	res := Classify("misc spend 45.00")
	assert.Equal(t, "Shopping", res.Category)
	assert.Equal(t, "Misc", res.Subcategory)
	assert.InDelta(t, 0.55, res.Confidence, 0.001)
}

func TestClassifyNoMatchIsPending(t *testing.T) {
	res := Classify("zzqx 9")
	assert.Equal(t, model.Pending, res.Category)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, "no_heuristic_match", res.Meta["matched_rule"])
}
