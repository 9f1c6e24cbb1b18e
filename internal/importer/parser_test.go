package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairenq/payment-transactions/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL ACME CORP
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2024011001
<NAME>NETFLIX.COM
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseBankStatement(t *testing.T) {
	parser := NewParser()
	lines, err := parser.Parse(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// Negative OFX amount becomes a positive expense.
	debit := lines[0]
	assert.Equal(t, "2024011501", debit.FitID)
	assert.Equal(t, "1234567890", debit.AccountID)
	assert.Equal(t, model.TypeExpense, debit.Type)
	assert.Equal(t, 25.50, debit.Amount)
	assert.Equal(t, "STARBUCKS STORE #1234", debit.Payee)
	assert.Equal(t, 2024, debit.Date.Year())
	assert.Equal(t, time.January, debit.Date.Month())
	assert.Equal(t, 15, debit.Date.Day())

	// Positive OFX amount becomes income.
	credit := lines[1]
	assert.Equal(t, model.TypeIncome, credit.Type)
	assert.Equal(t, 1500.00, credit.Amount)
	assert.Equal(t, "PAYROLL ACME CORP", credit.Payee)
}

func TestParseCreditCardStatement(t *testing.T) {
	parser := NewParser()
	lines, err := parser.Parse(strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "CC2024011001", lines[0].FitID)
	assert.Equal(t, "4111111111111111", lines[0].AccountID)
	assert.Equal(t, model.TypeExpense, lines[0].Type)
	assert.Equal(t, 45.99, lines[0].Amount)
}

func TestParseInvalidInput(t *testing.T) {
	parser := NewParser()

	_, err := parser.Parse(strings.NewReader("not valid OFX"))
	assert.Error(t, err)

	_, err = parser.Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseToleratesLeadingWhitespace(t *testing.T) {
	parser := NewParser()
	lines, err := parser.Parse(strings.NewReader("\n\n  " + sampleBankOFX))
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestStatementLineHash(t *testing.T) {
	line := StatementLine{
		FitID:     "TX001",
		AccountID: "123456",
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:    25.50,
		Type:      model.TypeExpense,
		Payee:     "STARBUCKS",
	}

	// The FITID is excluded: banks reassign them across exports, so identity
	// rests on date, amount, payee, and account.
	same := line
	same.FitID = "TX002"
	assert.Equal(t, line.Hash(), same.Hash())

	differentAmount := line
	differentAmount.Amount = 30.00
	assert.NotEqual(t, line.Hash(), differentAmount.Hash())

	differentDate := line
	differentDate.Date = line.Date.AddDate(0, 0, 1)
	assert.NotEqual(t, line.Hash(), differentDate.Hash())
}

func TestStatementLineParams(t *testing.T) {
	line := StatementLine{
		FitID:     "TX001",
		AccountID: "123456",
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:    25.50,
		Type:      model.TypeExpense,
		Payee:     "STARBUCKS",
		Memo:      "card 1234",
	}

	params := line.Params("USD")
	assert.Equal(t, model.TypeExpense, params.Type)
	assert.Equal(t, 25.50, params.Amount)
	assert.Equal(t, "USD", params.Currency)
	assert.Equal(t, "STARBUCKS card 1234", params.Description)
	assert.Equal(t, "STARBUCKS", params.Recipient)
	assert.Empty(t, params.Sender)
	require.NotNil(t, params.TransactionDate)

	income := line
	income.Type = model.TypeIncome
	params = income.Params("")
	assert.Equal(t, "STARBUCKS", params.Sender)
	assert.Empty(t, params.Recipient)
	assert.Empty(t, params.Currency)
}
