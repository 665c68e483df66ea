package normalize

import (
	"strings"

	"github.com/SREEDEEP-DEY/SpendSight/internal/model"
	"github.com/SREEDEEP-DEY/SpendSight/internal/parser"
)

// Normalize maps a raw parsed row plus statement identity into the canonical
// transaction record. It returns (zero, false) when the date field is missing,
// shorter than four characters, or unparsable; the caller drops the row and
// keeps the file.
//
// Amount resolution, in strict priority order:
//  1. a non-zero Amount field is trusted as-is (sign already encodes direction)
//  2. a populated debit-like field is stored as a negative absolute value
//  3. a populated credit-like field is stored as a positive absolute value
//  4. otherwise the amount is zero and no source is recorded
//
// Outflow negative, inflow positive: every downstream consumer relies on this
// sign contract.
func Normalize(row parser.RawRow, statementID, ownerID string) (model.Transaction, bool) {
	rawDate := strings.TrimSpace(row.Date)
	if len(rawDate) < 4 {
		return model.Transaction{}, false
	}
	date, ok := ParseDate(rawDate)
	if !ok {
		return model.Transaction{}, false
	}

	amount := CleanAmount(row.Amount)
	if amount.IsZero() {
		if hasValue(row.Debit) {
			amount = CleanAmount(row.Debit).Abs().Neg()
		} else if hasValue(row.Credit) {
			amount = CleanAmount(row.Credit).Abs()
		}
	}

	return model.Transaction{
		StatementID: statementID,
		OwnerID:     ownerID,
		Date:        date,
		Description: strings.TrimSpace(row.Description),
		Amount:      amount,
		Confidence:  0.0,
		Source:      model.SourceNone,
	}, true
}

func hasValue(v string) bool {
	v = strings.TrimSpace(strings.ReplaceAll(v, " ", ""))
	return v != "" && v != "-"
}
