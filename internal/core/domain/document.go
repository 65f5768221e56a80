package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DocumentStatus is the workflow state of an approval document.
type DocumentStatus string

const (
	StatusDraft           DocumentStatus = "DRAFT"
	StatusWaitingApproval DocumentStatus = "WAITING_APPROVAL"
	StatusDone            DocumentStatus = "DONE"
	StatusCancelled       DocumentStatus = "CANCELLED"
)

var validStatuses = map[DocumentStatus]bool{
	StatusDraft:           true,
	StatusWaitingApproval: true,
	StatusDone:            true,
	StatusCancelled:       true,
}

// IsValid returns true if the status is a known workflow status.
func (s DocumentStatus) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal returns true if no further transition is permitted from the status.
// DONE is the only terminal status: CANCELLED documents may still be reset to draft.
func (s DocumentStatus) IsTerminal() bool {
	return s == StatusDone
}

func (s DocumentStatus) String() string {
	return string(s)
}

// DocumentType identifies which approval workflow a document belongs to.
// Each type carries its own reference sequence and approver capability.
type DocumentType string

const (
	TypePayment        DocumentType = "PAYMENT"
	TypePaymentReceive DocumentType = "PAYMENT_RECEIVE"
	TypeSalary         DocumentType = "SALARY"
	TypeFee            DocumentType = "FEE"
	TypeDonationOrder  DocumentType = "DONATION_ORDER"
)

// DoneLabel is the human-facing wording for a document of this type once it
// reaches DONE. A processed receipt reads "received"; everything else reads
// "done".
func (t DocumentType) DoneLabel() string {
	if t == TypePaymentReceive {
		return "received"
	}
	return "done"
}

// FlowDirection records whether money leaves or enters the company.
type FlowDirection string

const (
	DirectionSending   FlowDirection = "SENDING"
	DirectionReceiving FlowDirection = "RECEIVING"
)

// Document is an approval-gated posting request: a payment, receipt, salary,
// fee or donation order that moves through DRAFT -> WAITING_APPROVAL -> DONE
// and, on approval, produces exactly one balanced journal entry.
type Document struct {
	DocumentID      string          `json:"documentID"` // Primary key (UUID)
	Reference       string          `json:"reference"`  // Human-facing sequence reference, immutable once assigned
	DocType         DocumentType    `json:"docType"`
	CompanyID       string          `json:"companyID"` // Owning company, immutable
	Direction       FlowDirection   `json:"direction"`
	Amount          decimal.Decimal `json:"amount"` // Always > 0
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	CounterpartyID  *string         `json:"counterpartyID"` // Optional partner reference
	Label           string          `json:"label"`
	EntryDate       time.Time       `json:"entryDate"`
	Notes           string          `json:"notes"`
	Status          DocumentStatus  `json:"status"`
	PostedJournalID *string         `json:"postedJournalID"` // Set exactly once, on approval
	AuditFields
}

// StatusLabel renders the workflow status for display. Processed documents
// use the per-type wording from DoneLabel.
func (d *Document) StatusLabel() string {
	if d.Status == StatusDone {
		return d.DocType.DoneLabel()
	}
	return strings.ToLower(string(d.Status))
}

// DocumentEvent is one audit-trail entry recording a workflow transition.
type DocumentEvent struct {
	EventID    string         `json:"eventID"`
	DocumentID string         `json:"documentID"`
	FromStatus DocumentStatus `json:"fromStatus"`
	ToStatus   DocumentStatus `json:"toStatus"`
	ActorID    string         `json:"actorID"`
	JournalID  *string        `json:"journalID"` // Present on approval events
	Note       string         `json:"note"`
	CreatedAt  time.Time      `json:"createdAt"`
}
