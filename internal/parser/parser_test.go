package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBOB(t *testing.T) {
	page := `BANK OF BARODA
Statement of Account
Se- Transac- Value Description Debit Credit Balance
1 03-02- 03-02- UPI/DR/403599002/ZOMATO
2024 2024 850.00 - 12,340.50
2 05-02- 05-02- SALARY CREDIT FEB
2024 2024 - 45,000.00 57,340.50`

	rows := parseBOB([]string{page})
	require.Len(t, rows, 2)

	assert.Equal(t, "03-02-2024", rows[0].Date)
	assert.Equal(t, "UPI/DR/403599002/ZOMATO", rows[0].Description)
	assert.Equal(t, "850.00", rows[0].Debit)
	assert.Empty(t, rows[0].Credit)
	assert.Equal(t, "12,340.50", rows[0].Balance)

	assert.Equal(t, "05-02-2024", rows[1].Date)
	assert.Equal(t, "45,000.00", rows[1].Credit)
	assert.Empty(t, rows[1].Debit)
}

func TestParsePNB(t *testing.T) {
	page := `02/01/2024 ATM WDR MUMBAI 2,000.00 - 18,500.00
05/01/2024 NEFT TRANSFER TO RAMESH 5,000.00 31,200.00
continuation of narration here
07/01/2024 SALARY CREDIT JAN 45,000.00 76,200.00`

	rows := parsePNB([]string{page})
	require.Len(t, rows, 3)

	assert.Equal(t, "02/01/2024", rows[0].Date)
	assert.Equal(t, "2,000.00", rows[0].Debit)
	assert.Empty(t, rows[0].Credit)
	assert.Equal(t, "18,500.00", rows[0].Balance)

	assert.Equal(t, "5,000.00", rows[1].Debit)
	assert.Contains(t, rows[1].Description, "continuation of narration")

	// single amount column on an inflow row lands in Credit
	assert.Equal(t, "45,000.00", rows[2].Credit)
	assert.Empty(t, rows[2].Debit)
}

func TestParseSBI(t *testing.T) {
	page := `State Bank of India
Account Statement
6 Sep 2019 TO TRANSFER UPI/DR/925012345678/
SWIGGY BANGALORE 320.00 9,680.00
8 Sep 2019 BY TRANSFER SALARY CREDIT
SEP 2019 50,000.00 59,680.00`

	rows := parseSBI([]string{page})
	require.Len(t, rows, 2)

	assert.Equal(t, "6 Sep 2019", rows[0].Date)
	assert.Contains(t, rows[0].Description, "SWIGGY")
	assert.Equal(t, "320.00", rows[0].Debit)
	assert.Equal(t, "9,680.00", rows[0].Balance)

	assert.Equal(t, "8 Sep 2019", rows[1].Date)
	assert.Equal(t, "50,000.00", rows[1].Credit)
	assert.Equal(t, "59,680.00", rows[1].Balance)
}

func TestParseFederal(t *testing.T) {
	page := `01/03/2024 1,250.00 DR 22,400.00 POS/DMART HYDERABAD
wrapped narration tail
04/03/2024 10,000.00 CR 32,400.00 IMPS FROM ANITA`

	rows := parseFederal([]string{page})
	require.Len(t, rows, 2)

	assert.Equal(t, "01/03/2024", rows[0].Date)
	assert.Equal(t, "1,250.00", rows[0].Debit)
	assert.Equal(t, "22,400.00", rows[0].Balance)
	assert.Contains(t, rows[0].Description, "wrapped narration tail")

	assert.Equal(t, "10,000.00", rows[1].Credit)
	assert.Empty(t, rows[1].Debit)
}

func TestParseFederalBalanceFirstVariant(t *testing.T) {
	page := `02/03/2024 18,000.00 600.00 DR FUEL HPCL PUMP`

	rows := parseFederal([]string{page})
	require.Len(t, rows, 1)
	assert.Equal(t, "600.00", rows[0].Debit)
	assert.Equal(t, "18,000.00", rows[0].Balance)
	assert.Equal(t, "FUEL HPCL PUMP", rows[0].Description)
}

func TestParseICICI(t *testing.T) {
	page := `12-04-2024 UPI/412345678901/PHONEPE/
GROCERY STORE 0 430.00 8,970.00
15-04-2024 INT.PD UPTO 14-04 120.00 0 9,090.00`

	rows := parseICICI([]string{page})
	require.Len(t, rows, 2)

	assert.Equal(t, "12-04-2024", rows[0].Date)
	assert.Contains(t, rows[0].Description, "GROCERY STORE")
	assert.Equal(t, "430.00", rows[0].Debit)
	assert.Empty(t, rows[0].Credit)
	assert.Equal(t, "8,970.00", rows[0].Balance)

	assert.Equal(t, "120.00", rows[1].Credit)
	assert.Empty(t, rows[1].Debit)
}

func TestParseIDBI(t *testing.T) {
	page := `IDBI Bank Ltd
Txn Date Value Date Description CR/DR Amount Balance
10/05/2024 UPI/MANDATE/NETFLICK SUBSCRIPTION Dr. INR 649.0010/05/2024 08:12:45 AM1023 14,351.00
12/05/2024 NEFT SALARY MAY Cr. INR 52,000.0012/05/2024 10:00:01 AM1024 66,351.00`

	rows := parseIDBI([]string{page})
	require.Len(t, rows, 2)

	assert.Equal(t, "10/05/2024", rows[0].Date)
	assert.Equal(t, "649.00", rows[0].Debit)
	assert.Equal(t, "14,351.00", rows[0].Balance)

	assert.Equal(t, "52,000.00", rows[1].Credit)
	assert.Contains(t, rows[1].Description, "SALARY")
}

func TestSplitLines(t *testing.T) {
	lines := splitLines("  a  \n\n b\n")
	assert.Equal(t, []string{"a", "b"}, lines)
}
