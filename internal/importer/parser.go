// Package importer bulk-loads bank statement files into the backend through
// the regular transaction API, skipping lines that were imported before.
package importer

import (
	"crypto/sha256"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"

	"github.com/kairenq/payment-transactions/internal/model"
)

// StatementLine is one transaction parsed from an OFX/QFX statement, ready to
// be submitted to the backend.
type StatementLine struct {
	FitID     string
	AccountID string
	Date      time.Time
	Amount    float64
	Type      model.TransactionType
	Payee     string
	Memo      string
}

// Hash identifies the line for duplicate detection across repeated imports of
// overlapping statements.
func (l StatementLine) Hash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		l.Date.Format("2006-01-02"),
		l.Amount,
		l.Payee,
		l.AccountID)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(data)))
}

// Params converts the line into transaction creation parameters.
func (l StatementLine) Params(currency string) model.TransactionParams {
	date := model.NewDateTime(l.Date)
	description := l.Payee
	if l.Memo != "" && l.Memo != l.Payee {
		description = strings.TrimSpace(l.Payee + " " + l.Memo)
	}
	params := model.TransactionParams{
		Type:            l.Type,
		Amount:          l.Amount,
		Currency:        currency,
		Description:     description,
		TransactionDate: &date,
	}
	if l.Type == model.TypeIncome {
		params.Sender = l.Payee
	} else {
		params.Recipient = l.Payee
	}
	return params
}

// Parser parses OFX/QFX statement files.
type Parser struct{}

// NewParser creates an OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting defects in real-world OFX exports:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = tagFixRegex.ReplaceAllString(content, "$1>")
	return content
}

// Parse reads an OFX/QFX statement and returns its transaction lines.
func (p *Parser) Parse(reader io.Reader) ([]StatementLine, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX statement: %w", err)
	}

	var lines []StatementLine
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, tx := range stmt.BankTranList.Transactions {
				lines = append(lines, convertLine(tx, accountID))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, tx := range stmt.BankTranList.Transactions {
				lines = append(lines, convertLine(tx, accountID))
			}
		}
	}
	return lines, nil
}

// convertLine maps one OFX transaction to a statement line. OFX amounts are
// signed: negative is money out, positive money in. The backend wants a
// positive amount plus an explicit type instead.
func convertLine(tx ofxgo.Transaction, accountID string) StatementLine {
	amount, _ := tx.TrnAmt.Float64()
	txType := model.TypeIncome
	if amount < 0 {
		amount = -amount
		txType = model.TypeExpense
	}

	payee := string(tx.Name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		payee = string(tx.Payee.Name)
	}

	return StatementLine{
		FitID:     string(tx.FiTID),
		AccountID: accountID,
		Date:      tx.DtPosted.Time,
		Amount:    amount,
		Type:      txType,
		Payee:     strings.TrimSpace(payee),
		Memo:      strings.TrimSpace(string(tx.Memo)),
	}
}
