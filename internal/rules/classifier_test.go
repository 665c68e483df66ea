package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
)

func TestNormalizeDesc(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"glued salary", "salarycredit feb", "SALARY CREDIT FEB"},
		{"glued atm", "ATMWDL PUNE", "ATM WDR PUNE"},
		{"upi debit noise", "UPI/DR/403599002/ZOMATO", "UPI/ZOMATO"},
		{"upi long ref", "UPI/123456789012/SWIGGY", "UPI/SWIGGY"},
		{"long numeric stripped", "NEFT 123456789012 RAMESH", "NEFT RAMESH"},
		{"whitespace collapsed", "  POS   DMART  ", "POS D MART"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDesc(tt.input))
		})
	}
}

func TestClassifyUPIZomato(t *testing.T) {
	res := Classify("UPI/123456789012/ZOMATO/paytm")

	assert.Equal(t, "Dining", res.Category)
	assert.Equal(t, "FoodDelivery", res.Subcategory)
	assert.Equal(t, "Zomato", res.Vendor)
	assert.InDelta(t, 0.90, res.Confidence, 0.001)
}

func TestClassifySalary(t *testing.T) {
	res := Classify("SALARY CREDIT FEB 2024")

	assert.Equal(t, "Income", res.Category)
	assert.Equal(t, "Salary", res.Subcategory)
	assert.InDelta(t, 0.98, res.Confidence, 0.001)
}

func TestClassifyEmpty(t *testing.T) {
	res := Classify("")

	assert.Equal(t, model.Pending, res.Category)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, "empty", res.Meta["reason"])
}

func TestClassifyTable(t *testing.T) {
	tests := []struct {
		desc        string
		category    string
		subcategory string
		minConf     float64
	}{
		{"ATM WDR 2000 PUNE", "Cash", "ATMWithdrawal", 0.90},
		{"EMI PAYMENT HDFC-LOAN 0042", "Debt", "LoanEMI", 0.95},
		{"INT.PD UPTO 31-03", "Income", "Interest", 0.90},
		{"QTRLY AVG BAL CHARGE", "BankCharges", "BalanceCharge", 0.85},
		{"SMSCHRG MAR-24", "BankCharges", "SMS", 0.85},
		{"MSEDCL ELECTRICITY BILL", "Utilities", "Electricity", 0.90},
		{"PMSBY RENEWAL", "Insurance", "GovtScheme", 0.90},
		{"NEFT-AXIS-SETTLEMENT", "Transfers", "ToPerson", 0.70},
		{"DMART NANDED", "Groceries", "Supermarket", 0.80},
		{"SWIGGY ORDER 88123", "Dining", "FoodDelivery", 0.90},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			res := Classify(tt.desc)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.subcategory, res.Subcategory)
			assert.GreaterOrEqual(t, res.Confidence, tt.minConf)
		})
	}
}

func TestClassifyUPIPersonTransfer(t *testing.T) {
	res := Classify("UPI/ramesh.kumar@oksbi/payment")

	assert.Equal(t, "Transfers", res.Category)
	assert.Equal(t, "ToPerson", res.Subcategory)
	assert.InDelta(t, 0.80, res.Confidence, 0.001)
}

func TestClassifyPOSMerchant(t *testing.T) {
	res := Classify("VISA-POS POS/APOLLO PHARMACY HYD")

	assert.Equal(t, "Shopping", res.Category)
	assert.Equal(t, "Pharmacy", res.Subcategory)
}

func TestClassifyUnmatchedIsPending(t *testing.T) {
	res := Classify("XQZV 0042")

	require.Equal(t, model.Pending, res.Category)
	assert.Zero(t, res.Confidence)
	assert.Equal(t, "no_regex_match", res.Meta["reason"])
	assert.NotEmpty(t, res.Meta["text_norm"])
}

func TestMatchVendorTiers(t *testing.T) {
	key, conf, ok := matchVendor("PAYMENT TO BIGBASKET ORDER")
	require.True(t, ok)
	assert.Equal(t, "BIGBASKET", key)
	assert.InDelta(t, 0.95, conf, 0.001)

	key, conf, ok = matchVendor("CREDIT CAFE COFFEE DAY OUTLET")
	require.True(t, ok)
	assert.Equal(t, "CAFE COFFEE DAY", key)
	assert.InDelta(t, 0.95, conf, 0.001)
}

func TestLooksLikePerson(t *testing.T) {
	assert.True(t, looksLikePerson("RAMESH KUMAR"))
	assert.True(t, looksLikePerson("MR SHARMA"))
	assert.False(t, looksLikePerson("ZOMATO"))
	assert.False(t, looksLikePerson("HPCL9012"))
}
