package services

import (
	"github.com/awtech/cashdesk/internal/core/domain"
)

// AccountRule restricts which chart accounts a document side may use.
// An empty rule allows any account.
type AccountRule struct {
	AccountTypes []domain.AccountType
}

// Allows reports whether the rule permits the given account.
func (r AccountRule) Allows(account domain.Account) bool {
	if len(r.AccountTypes) == 0 {
		return true
	}
	for _, t := range r.AccountTypes {
		if account.AccountType == t {
			return true
		}
	}
	return false
}

// DocumentTypeConfig parameterizes the generic approval engine for one
// document type: its reference prefix, default flow direction and the
// account-side restrictions applied before approval.
type DocumentTypeConfig struct {
	TypeName         domain.DocumentType
	TypeCode         string // Short code used inside references, e.g. "PAY"
	DefaultDirection domain.FlowDirection
	DebitRule        AccountRule
	CreditRule       AccountRule
}

// documentTypeConfigs registers every supported workflow. The account rules
// follow the chart restrictions of the source workflows: outgoing cash
// documents debit expense or asset accounts and credit a cash (asset)
// account, incoming ones debit cash and credit income or receivables.
var documentTypeConfigs = map[domain.DocumentType]DocumentTypeConfig{
	domain.TypePayment: {
		TypeName:         domain.TypePayment,
		TypeCode:         "PAY",
		DefaultDirection: domain.DirectionSending,
		DebitRule:        AccountRule{AccountTypes: []domain.AccountType{domain.Expense, domain.Asset}},
		CreditRule:       AccountRule{AccountTypes: []domain.AccountType{domain.Asset}},
	},
	domain.TypePaymentReceive: {
		TypeName:         domain.TypePaymentReceive,
		TypeCode:         "RCV",
		DefaultDirection: domain.DirectionReceiving,
		DebitRule:        AccountRule{AccountTypes: []domain.AccountType{domain.Asset}},
		CreditRule:       AccountRule{AccountTypes: []domain.AccountType{domain.Income, domain.Asset}},
	},
	domain.TypeSalary: {
		TypeName:         domain.TypeSalary,
		TypeCode:         "SAL",
		DefaultDirection: domain.DirectionSending,
		DebitRule:        AccountRule{AccountTypes: []domain.AccountType{domain.Expense}},
		CreditRule:       AccountRule{AccountTypes: []domain.AccountType{domain.Asset, domain.Liability}},
	},
	domain.TypeFee: {
		TypeName:         domain.TypeFee,
		TypeCode:         "FEE",
		DefaultDirection: domain.DirectionReceiving,
		DebitRule:        AccountRule{AccountTypes: []domain.AccountType{domain.Asset}},
		CreditRule:       AccountRule{AccountTypes: []domain.AccountType{domain.Income}},
	},
	domain.TypeDonationOrder: {
		TypeName:         domain.TypeDonationOrder,
		TypeCode:         "DON",
		DefaultDirection: domain.DirectionReceiving,
		DebitRule:        AccountRule{AccountTypes: []domain.AccountType{domain.Asset}},
		CreditRule:       AccountRule{AccountTypes: []domain.AccountType{domain.Income}},
	},
}

// ConfigForType returns the engine configuration for a document type.
func ConfigForType(docType domain.DocumentType) (DocumentTypeConfig, bool) {
	cfg, ok := documentTypeConfigs[docType]
	return cfg, ok
}
