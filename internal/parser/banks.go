package parser

import (
	"regexp"
	"strings"
)

// Each bank parser is a small line-oriented state machine: find the line (or
// line group) that starts a transaction, absorb wrapped description lines,
// and peel the amount columns off the end. A malformed line is skipped, never
// fatal to the file.

var moneyRe = regexp.MustCompile(`^[\d,]+\.\d{2}$`)

// ---------------------------------------------------------------------------
// Bank of Baroda: "serial dd-mm- dd-mm- description yyyy yyyy debit credit balance"
// with wrapped rows merged until two year tokens and a balance are seen.
// ---------------------------------------------------------------------------

var (
	bobStartRe = regexp.MustCompile(`^\d+\s+\d{2}-\d{2}-`)
	bobRowRe   = regexp.MustCompile(`^(\d+)\s+(\d{2}-\d{2}-)\s+(\d{2}-\d{2}-)\s+(.+)$`)
	yearRe     = regexp.MustCompile(`\b\d{4}\b`)
	balanceRe  = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

var bobSkip = []string{
	"Se-", "rial", "Transac-", "tion", "Value", "Description", "Cheque",
	"Debit", "Credit", "Balance", "Continued on next", "Statement of Account",
	"AccountHolder:", "AccountNumber:", "GeneratedOn:", "End of statement",
}

func parseBOB(pages []string) []RawRow {
	var rows []RawRow
	for _, page := range pages {
		var filtered []string
		for _, line := range splitLines(page) {
			if containsAny(line, bobSkip) {
				continue
			}
			filtered = append(filtered, line)
		}

		// Merge wrapped lines into complete transaction strings.
		var merged []string
		for i := 0; i < len(filtered); {
			if !bobStartRe.MatchString(filtered[i]) {
				i++
				continue
			}
			buffer := filtered[i]
			i++
			for i < len(filtered) && !bobStartRe.MatchString(filtered[i]) {
				buffer += " " + filtered[i]
				i++
				if len(yearRe.FindAllString(buffer, -1)) >= 2 && balanceRe.MatchString(buffer) {
					break
				}
			}
			merged = append(merged, strings.TrimSpace(buffer))
		}

		for _, line := range merged {
			if row, ok := parseBOBLine(line); ok {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func parseBOBLine(line string) (RawRow, bool) {
	m := bobRowRe.FindStringSubmatch(line)
	if m == nil {
		return RawRow{}, false
	}
	datePartial, rest := m[2], m[4]

	years := yearRe.FindAllString(rest, -1)
	if len(years) < 2 {
		return RawRow{}, false
	}
	date := datePartial + years[0]
	for _, y := range years[:2] {
		rest = strings.Replace(rest, y, "", 1)
	}

	// Trailing tokens are debit, credit, balance with "-" placeholders.
	var amounts, descTokens []string
	for _, tok := range strings.Fields(rest) {
		if moneyRe.MatchString(tok) || tok == "-" {
			amounts = append(amounts, tok)
		} else if len(amounts) < 3 {
			descTokens = append(descTokens, tok)
		}
	}
	if len(amounts) == 0 || !moneyRe.MatchString(amounts[len(amounts)-1]) {
		return RawRow{}, false
	}

	row := RawRow{
		Date:        date,
		Description: strings.Join(descTokens, " "),
		Balance:     amounts[len(amounts)-1],
	}
	amounts = amounts[:len(amounts)-1]
	if len(amounts) > 0 {
		if tok := amounts[len(amounts)-1]; tok != "-" {
			row.Credit = tok
		}
		amounts = amounts[:len(amounts)-1]
	}
	if len(amounts) > 0 {
		if tok := amounts[len(amounts)-1]; tok != "-" {
			row.Debit = tok
		}
	}
	return row, true
}

// ---------------------------------------------------------------------------
// Punjab National Bank: "dd/mm/yyyy description [debit] [credit] balance"
// with "-" placeholders in empty columns; wrapped descriptions continue on
// the following line.
// ---------------------------------------------------------------------------

var pnbStartRe = regexp.MustCompile(`^\d{2}[/-]\d{2}[/-]\d{4}\b`)

var pnbSkip = []string{"DATE", "Continued", "PARTICULARS", "Page"}

func parsePNB(pages []string) []RawRow {
	var rows []RawRow
	var current *RawRow

	for _, page := range pages {
		for _, line := range splitLines(page) {
			if containsAny(line, pnbSkip) {
				continue
			}
			if !pnbStartRe.MatchString(line) {
				if current != nil {
					current.Description += " " + line
				}
				continue
			}
			if current != nil {
				rows = append(rows, *current)
			}
			current = nil

			fields := strings.Fields(line)
			date := fields[0]
			rest := fields[1:]

			// Peel trailing money/placeholder columns: up to debit, credit, balance.
			var amounts []string
			for len(rest) > 0 && len(amounts) < 3 {
				tok := rest[len(rest)-1]
				if !moneyRe.MatchString(tok) && tok != "-" {
					break
				}
				amounts = append([]string{tok}, amounts...)
				rest = rest[:len(rest)-1]
			}
			if len(amounts) == 0 {
				continue
			}

			row := RawRow{
				Date:        date,
				Description: strings.Join(rest, " "),
				Balance:     amounts[len(amounts)-1],
			}
			switch len(amounts) {
			case 3:
				if amounts[0] != "-" {
					row.Debit = amounts[0]
				}
				if amounts[1] != "-" {
					row.Credit = amounts[1]
				}
			case 2:
				// A single amount column before the balance: credit when the
				// row reads like an inflow, debit otherwise.
				if amounts[0] != "-" {
					if looksLikeInflow(row.Description) {
						row.Credit = amounts[0]
					} else {
						row.Debit = amounts[0]
					}
				}
			}
			current = &row
		}
	}
	if current != nil {
		rows = append(rows, *current)
	}
	return rows
}

func looksLikeInflow(desc string) bool {
	d := strings.ToUpper(desc)
	return containsAny(d, []string{"SALARY", "CREDIT", "INT.PD", "INT PD", "INTEREST", "DEPOSIT", "REFUND", " CR "})
}

// ---------------------------------------------------------------------------
// State Bank of India: blocks starting "6 Sep 2019", description wraps, and
// debit/credit plus balance amounts appear at the end of the block.
// ---------------------------------------------------------------------------

var sbiStartRe = regexp.MustCompile(`(?i)^(\d{1,2}\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`)

var sbiSkip = []string{
	"state bank of india", "account statement", "account no", "branch",
	"ifsc", "micr", "page", "balance brought forward", "balance carried forward",
	"date particulars", "value date",
}

func parseSBI(pages []string) []RawRow {
	var rows []RawRow
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		text := strings.Join(block, " ")
		block = nil

		m := sbiStartRe.FindStringSubmatch(text)
		if m == nil {
			return
		}
		date := m[1]
		rest := strings.TrimSpace(text[len(m[0]):])

		fields := strings.Fields(rest)
		var amounts []string
		for len(fields) > 0 && len(amounts) < 3 && moneyRe.MatchString(fields[len(fields)-1]) {
			amounts = append([]string{fields[len(fields)-1]}, amounts...)
			fields = fields[:len(fields)-1]
		}
		if len(amounts) == 0 {
			return
		}

		row := RawRow{
			Date:        date,
			Description: strings.Join(fields, " "),
			Balance:     amounts[len(amounts)-1],
		}
		switch len(amounts) {
		case 3:
			row.Debit = amounts[0]
			row.Credit = amounts[1]
		case 2:
			if looksLikeInflow(row.Description) {
				row.Credit = amounts[0]
			} else {
				row.Debit = amounts[0]
			}
		}
		rows = append(rows, row)
	}

	for _, page := range pages {
		for _, line := range splitLines(page) {
			if containsAny(strings.ToLower(line), sbiSkip) {
				continue
			}
			if sbiStartRe.MatchString(line) {
				flush()
			}
			block = append(block, line)
		}
		flush()
	}
	return rows
}

// ---------------------------------------------------------------------------
// Federal Bank: "dd/mm/yyyy amount DR|CR balance description" with a swapped
// balance-first variant; continuation lines append to the last description.
// ---------------------------------------------------------------------------

var (
	federalAmtFirstRe = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})\s+([\d,.]+)\s+(DR|CR)\s+([\d,.]+)\s+(.*)`)
	federalBalFirstRe = regexp.MustCompile(`^s?\s*(\d{2}/\d{2}/\d{4})\s+([\d,.]+)\s+([\d,.]+)\s+(DR|CR)\s+(.*)`)
)

func parseFederal(pages []string) []RawRow {
	var rows []RawRow
	for _, page := range pages {
		for _, line := range splitLines(page) {
			var date, amount, typ, balance, desc string
			if m := federalAmtFirstRe.FindStringSubmatch(line); m != nil {
				date, amount, typ, balance, desc = m[1], m[2], m[3], m[4], m[5]
			} else if m := federalBalFirstRe.FindStringSubmatch(line); m != nil {
				date, balance, amount, typ, desc = m[1], m[2], m[3], m[4], m[5]
			} else {
				if len(rows) > 0 && !strings.HasPrefix(line, "Date") && !strings.HasPrefix(line, "Continued on") && !strings.HasPrefix(line, "End of statement") {
					rows[len(rows)-1].Description += " " + line
				}
				continue
			}

			row := RawRow{
				Date:        strings.TrimPrefix(date, "s"),
				Description: strings.TrimSpace(desc),
				Balance:     balance,
			}
			if strings.EqualFold(typ, "DR") {
				row.Debit = amount
			} else {
				row.Credit = amount
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// ---------------------------------------------------------------------------
// ICICI: rows start "dd-mm-yyyy", wrap across lines, and end with
// "deposit withdrawal balance".
// ---------------------------------------------------------------------------

var (
	iciciStartRe  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}`)
	iciciAmountRe = regexp.MustCompile(`([\d,]+\.\d{2}|0)\s+([\d,]+\.\d{2}|0)\s+([\d,]+\.\d{2})$`)
)

func parseICICI(pages []string) []RawRow {
	var rows []RawRow
	var buffer []string

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		text := strings.Join(buffer, " ")
		buffer = nil

		m := iciciAmountRe.FindStringSubmatch(text)
		if m == nil {
			return
		}
		deposit, withdrawal := m[1], m[2]
		text = strings.TrimSpace(iciciAmountRe.ReplaceAllString(text, ""))
		if len(text) < 10 {
			return
		}

		row := RawRow{
			Date:        text[:10],
			Description: strings.TrimSpace(text[10:]),
			Balance:     m[3],
		}
		if deposit != "0" {
			row.Credit = deposit
		}
		if withdrawal != "0" {
			row.Debit = withdrawal
		}
		rows = append(rows, row)
	}

	for _, page := range pages {
		for _, line := range splitLines(page) {
			if iciciStartRe.MatchString(line) {
				flush()
			}
			buffer = append(buffer, line)
		}
		flush()
	}
	return rows
}

// ---------------------------------------------------------------------------
// IDBI: "dd/mm/yyyy description Cr.|Dr. INR amount dd/mm/yyyy hh:mm:ss AM
// serial balance" on a single printed line.
// ---------------------------------------------------------------------------

var idbiRowRe = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{4})\s+(.+?)\s+(Cr\.|Dr\.)\s+INR\s+([\d,]+\.\d{2})(\d{2}/\d{2}/\d{4})\s+\d{2}:\d{2}:\d{2}\s+(?:AM|PM)\d+\s+([\d,]+\.\d{2})\s*$`)

var idbiSkip = []string{
	"Txn Date", "Value Date", "Cheque", "Description", "CR/DR", "Amount",
	"Balance", "Page", "IDBI Bank Ltd", "Account No", "Customer ID",
	"Statement Summary", "Account Branch",
}

func parseIDBI(pages []string) []RawRow {
	var rows []RawRow
	for _, page := range pages {
		for _, line := range splitLines(page) {
			if containsAny(line, idbiSkip) {
				continue
			}
			m := idbiRowRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			row := RawRow{
				Date:        m[1], // transaction date, not value date
				Description: strings.TrimSpace(m[2]),
				Balance:     m[6],
			}
			if m[3] == "Cr." {
				row.Credit = m[4]
			} else {
				row.Debit = m[4]
			}
			rows = append(rows, row)
		}
	}
	return rows
}
