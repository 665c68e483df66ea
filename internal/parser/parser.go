// Package parser implements the statement-parser capability: given a PDF
// bank statement, it detects the issuing bank from first-page text and
// recovers ordered raw transaction rows from that bank's tabular layout.
// An unrecognized document is a valid "unsupported" result, not an error.
package parser

import (
	"context"
	"fmt"
	"strings"
)

// RawRow is one transaction row as recovered from a statement layout. All
// fields are optional strings exactly as printed; normalization happens
// downstream. Bank parsers map whichever debit/withdrawal or credit/deposit
// column their layout uses onto Debit and Credit.
type RawRow struct {
	Date        string
	Description string
	Debit       string
	Credit      string
	Amount      string
	Balance     string
}

// Bank tags returned by Parse.
const (
	BankBOB     = "BOB"
	BankPNB     = "PNB"
	BankSBI     = "SBI"
	BankFederal = "Federal Bank"
	BankICICI   = "ICICI Bank"
	BankIDBI    = "IDBI Bank"
)

// StatementParser is the capability the pipeline consumes. Parse returns
// ("", nil, nil) when no known bank format matches the document.
type StatementParser interface {
	Parse(ctx context.Context, filepath string) (bank string, rows []RawRow, err error)
}

// PDFParser detects the bank from first-page text and routes to the matching
// layout parser.
type PDFParser struct{}

// NewPDFParser returns a parser for the supported bank layouts.
func NewPDFParser() *PDFParser {
	return &PDFParser{}
}

// Parse extracts page text and routes to a bank-specific row parser.
func (p *PDFParser) Parse(ctx context.Context, filepath string) (string, []RawRow, error) {
	pages, err := extractPages(filepath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract text from %s: %w", filepath, err)
	}
	if len(pages) == 0 {
		return "", nil, nil
	}
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	first := strings.ToLower(pages[0])

	switch {
	case strings.Contains(first, "bank of baroda") || strings.Contains(first, "statement of account"):
		return BankBOB, parseBOB(pages), nil
	case strings.Contains(first, "punjab national bank"):
		return BankPNB, parsePNB(pages), nil
	case strings.Contains(first, "state bank of india") || strings.Contains(first, "sbi"):
		return BankSBI, parseSBI(pages), nil
	case strings.Contains(first, "federal bank"):
		return BankFederal, parseFederal(pages), nil
	case strings.Contains(first, "icici"):
		return BankICICI, parseICICI(pages), nil
	case strings.Contains(first, "idbi"):
		return BankIDBI, parseIDBI(pages), nil
	}

	return "", nil, nil
}

// splitLines breaks page text into trimmed, non-empty lines.
func splitLines(page string) []string {
	raw := strings.Split(page, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
