package embedding

import "regexp"

// Strong rule overrides run before any vector math. They exist because
// similarity scoring is wasted on narrations whose label is already obvious.
type override struct {
	re          *regexp.Regexp
	category    string
	subcategory string
	confidence  float64
	rule        string
}

var overrides = []override{
	{regexp.MustCompile(`(?i)\bSALARY CREDIT\b|\bSALARYCREDIT\b|\bSALARY\b`), "Income", "Salary", 0.99, "salary_rule"},
	{regexp.MustCompile(`(?i)\bEMI\b|\bEMI PAYMENT\b|\bE M I\b`), "Debt", "LoanEMI", 0.96, "emi_rule"},
	{regexp.MustCompile(`(?i)\bATM WDR\b|\bATMWDR\b|\bCASH WDL\b|\bCASH WITHDRAWAL\b`), "Cash", "ATMWithdrawal", 0.88, "atm_wdr_rule"},
	{regexp.MustCompile(`(?i)\bATM DEP\b|\bATM DEPOSIT\b`), "Cash", "ATMDeposit", 0.85, "atm_dep_rule"},
	{regexp.MustCompile(`(?i)\bINT\.?PD\b|\bINTEREST\b|\bINT PAID\b`), "Income", "Interest", 0.93, "interest_rule"},
	{regexp.MustCompile(`(?i)QUARTERLY AVG BAL|QTRLY AVG BAL|AVG BALANCE CHARGE`), "BankCharges", "BalanceCharge", 0.85, "qtr_charge_rule"},
	{regexp.MustCompile(`(?i)\bSMS CHR|SMS CHRG|SMSCHRG|SMS CHARGE`), "BankCharges", "SMS", 0.82, "sms_charge_rule"},
	{regexp.MustCompile(`(?i)ELECTRICITY BILL|ELECTRICITY CHARGE|BILL PAYMENT - ELECTRICITY`), "Utilities", "Electricity", 0.92, "electricity_rule"},
	{regexp.MustCompile(`(?i)\bGAS BILL\b|\bGAS CHARGE\b`), "Utilities", "Gas", 0.90, "gas_rule"},
	{regexp.MustCompile(`(?i)PMSBY|PMJJBY|INSURANCE|PREMIUM`), "Insurance", "GovtScheme", 0.90, "govt_insurance_rule"},
	{regexp.MustCompile(`(?i)\bREFUND\b|\bREVERSAL\b|\bREVERSED\b|\bCREDITED BACK\b`), "Transfers", "Refund", 0.86, "refund_rule"},
	{regexp.MustCompile(`(?i)\bNEFT\b|\bIMPS\b|\bRTGS\b|\bNFS\b|\bMMID\b`), "Transfers", "BankTransfer", 0.88, "bank_transfer_rule"},
	{regexp.MustCompile(`(?i)\bBPCL\b|\bIOCL\b|\bHPCL\b|\bPETROL\b|\bFUEL\b|\bPETROL PUMP\b`), "Transport", "Fuel", 0.88, "fuel_rule"},
	{regexp.MustCompile(`(?i)ANNUAL.*CARD.*FEE|ANNUAL CARD FEE|BANK CHARGES|SERVICE CHARGE|MAINTENANCE CHARGE`), "BankCharges", "Fees", 0.86, "bank_fee_rule"},
}

func applyOverrides(textNorm string) (override, bool) {
	for _, o := range overrides {
		if o.re.MatchString(textNorm) {
			return o, true
		}
	}
	return override{}, false
}
