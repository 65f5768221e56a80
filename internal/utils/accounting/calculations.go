package accounting

import (
	"fmt"

	"github.com/awtech/cashdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the accounting sign convention to a journal
// line based on the account type:
// debit to ASSET/EXPENSE increases the balance, credit decreases it;
// the convention inverts for LIABILITY/EQUITY/INCOME.
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := line.Amount
	isDebit := line.LineType == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Income:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q for account %s", accountType, line.AccountID)
	}
	return signedAmount, nil
}

// CalculateBalanceChanges folds journal lines into per-account signed deltas.
func CalculateBalanceChanges(lines []domain.JournalLine, accounts map[string]domain.Account) (map[string]decimal.Decimal, error) {
	changes := make(map[string]decimal.Decimal, len(accounts))
	for _, line := range lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("account %s not found for balance calculation", line.AccountID)
		}
		signed, err := CalculateSignedAmount(line, account.AccountType)
		if err != nil {
			return nil, err
		}
		changes[line.AccountID] = changes[line.AccountID].Add(signed)
	}
	return changes, nil
}
