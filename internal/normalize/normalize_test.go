package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SREEDEEP-DEY/SpendSight/internal/parser"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "450.00", "450"},
		{"thousands separators", "1,23,456.78", "123456.78"},
		{"parenthesized is negative", "(1,234.50)", "-1234.5"},
		{"trailing Dr marker", "500.00Dr", "500"},
		{"trailing CR marker", "500.00CR", "500"},
		{"dash placeholder", "-", "0"},
		{"empty", "", "0"},
		{"garbage", "N/A rate", "0"},
		{"negative sign", "-89.90", "-89.9"},
		{"embedded spaces", "1 234.50", "1234.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			got := CleanAmount(tt.raw)
			assert.True(t, want.Equal(got), "got %s, want %s", got, want)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{"dmy slashes", "12/06/2023", time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"dmy dashes", "12-06-2023", time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"dmy two digit year", "12/06/23", time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"iso", "2023-06-12", time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"textual", "12 Jan 2023", time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC), true},
		{"compact textual", "12JAN23", time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC), true},
		{"full month name", "12 January 2023", time.Date(2023, 1, 12, 0, 0, 0, 0, time.UTC), true},
		{"compact digits", "120623", time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"compact eight digits", "12062023", time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC), true},
		{"impossible day", "31/02/2023", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"garbage", "??", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDateTextualWithoutYear(t *testing.T) {
	got, ok := ParseDate("12 Jan")
	require.True(t, ok)
	assert.Equal(t, time.Now().Year(), got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 12, got.Day())
}

func TestNormalize(t *testing.T) {
	t.Run("amount field wins", func(t *testing.T) {
		txn, ok := Normalize(parser.RawRow{
			Date:        "01/02/2024",
			Description: " UPI/DR/4001/ZOMATO ",
			Amount:      "-450.00",
			Debit:       "999.00",
		}, "stmt-1", "owner-1")
		require.True(t, ok)
		assert.Equal(t, "UPI/DR/4001/ZOMATO", txn.Description)
		assert.True(t, txn.Amount.Equal(decimal.NewFromFloat(-450)), "got %s", txn.Amount)
	})

	t.Run("debit becomes negative", func(t *testing.T) {
		txn, ok := Normalize(parser.RawRow{
			Date:        "01/02/2024",
			Description: "ATM WDR",
			Debit:       "2,000.00",
		}, "stmt-1", "owner-1")
		require.True(t, ok)
		assert.True(t, txn.Amount.Equal(decimal.NewFromInt(-2000)), "got %s", txn.Amount)
	})

	t.Run("credit stays positive", func(t *testing.T) {
		txn, ok := Normalize(parser.RawRow{
			Date:        "01/02/2024",
			Description: "SALARY CREDIT",
			Credit:      "55,000.00",
		}, "stmt-1", "owner-1")
		require.True(t, ok)
		assert.True(t, txn.Amount.Equal(decimal.NewFromInt(55000)), "got %s", txn.Amount)
	})

	t.Run("dash placeholders leave amount zero", func(t *testing.T) {
		txn, ok := Normalize(parser.RawRow{
			Date:        "01/02/2024",
			Description: "BALANCE FORWARD",
			Debit:       "-",
			Credit:      "-",
		}, "stmt-1", "owner-1")
		require.True(t, ok)
		assert.True(t, txn.Amount.IsZero())
	})

	t.Run("bad date drops the row", func(t *testing.T) {
		_, ok := Normalize(parser.RawRow{
			Date:        "??",
			Description: "whatever",
			Debit:       "10.00",
		}, "stmt-1", "owner-1")
		assert.False(t, ok)
	})

	t.Run("statement identity is stamped", func(t *testing.T) {
		txn, ok := Normalize(parser.RawRow{
			Date:        "01/02/2024",
			Description: "x",
			Debit:       "10.00",
		}, "stmt-7", "owner-9")
		require.True(t, ok)
		assert.Equal(t, "stmt-7", txn.StatementID)
		assert.Equal(t, "owner-9", txn.OwnerID)
	})
}
