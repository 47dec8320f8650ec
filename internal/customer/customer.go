// Package customer generates bank customers: a transaction request plus the
// four documents a teller checks. A fraudulent customer carries one to three
// deliberately corrupted documents; legitimate customers carry none.
package customer

import "time"

// TransactionKind identifies what the customer wants done.
type TransactionKind string

const (
	Deposit      TransactionKind = "deposit"
	Withdrawal   TransactionKind = "withdrawal"
	WireTransfer TransactionKind = "wire_transfer"
)

// Transaction is the customer's requested operation. Amounts are whole
// dollars.
type Transaction struct {
	Kind          TransactionKind `json:"kind"`
	Amount        int             `json:"amount"`
	AccountNumber string          `json:"account_number"`
	TargetAccount string          `json:"target_account,omitempty"`
	RecipientName string          `json:"recipient_name,omitempty"`
}

// DocumentType discriminates the Document union.
type DocumentType string

const (
	DocID        DocumentType = "id"
	DocSlip      DocumentType = "slip"
	DocPassbook  DocumentType = "bank_book"
	DocSignature DocumentType = "signature"
)

// IDCard is the customer's identity document.
type IDCard struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	BirthDate     string `json:"birth_date"` // YYYY-MM-DD
}

// TransactionSlip is the filled-in request form.
type TransactionSlip struct {
	Kind          TransactionKind `json:"kind"`
	Amount        int             `json:"amount"`
	AccountNumber string          `json:"account_number"`
	TargetAccount string          `json:"target_account,omitempty"`
	RecipientName string          `json:"recipient_name,omitempty"`
}

// Passbook is the customer's bank book.
type Passbook struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	Balance       int    `json:"balance"`
}

// SignatureCard is the signature on file plus today's signature.
type SignatureCard struct {
	Name      string      `json:"name"`
	Authentic bool        `json:"authentic"`
	Forgery   ForgeryKind `json:"forgery,omitempty"` // set iff !Authentic
}

// ForgeryKind categorizes why a signature fails comparison.
type ForgeryKind string

const (
	ForgeryWrongName       ForgeryKind = "wrong_name"
	ForgeryMisspelled      ForgeryKind = "misspelled"
	ForgeryPartialMatch    ForgeryKind = "partial_match"
	ForgerySimilarName     ForgeryKind = "similar_name"
	ForgeryShakyHand       ForgeryKind = "shaky_hand"
	ForgeryStyleMismatch   ForgeryKind = "style_mismatch"
	ForgeryPressureAnomaly ForgeryKind = "pressure_anomaly"
	ForgeryRushed          ForgeryKind = "rushed"
)

// Indicators returns the tells a signature comparison surfaces for this
// forgery kind. Comparison is informational only; it never decides for the
// teller.
func (f ForgeryKind) Indicators() []string {
	if ind, ok := forgeryIndicators[f]; ok {
		return ind
	}
	return nil
}

// Document is a tagged union: exactly one payload pointer is set, selected
// by Type. Valid reports whether the document agrees with the customer's
// ground truth; Fault describes the inconsistency and is empty iff Valid.
type Document struct {
	Type      DocumentType     `json:"type"`
	ID        *IDCard          `json:"id_card,omitempty"`
	Slip      *TransactionSlip `json:"transaction_slip,omitempty"`
	Passbook  *Passbook        `json:"passbook,omitempty"`
	Signature *SignatureCard   `json:"signature_card,omitempty"`
	Valid     bool             `json:"valid"`
	Fault     string           `json:"fault,omitempty"`
}

// Customer is one person at the counter. Fraudulent is fixed at generation
// time and always equals "at least one document is invalid".
type Customer struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Transaction Transaction `json:"transaction"`
	Documents   [4]Document `json:"documents"` // order: id, slip, bank_book, signature
	Fraudulent  bool        `json:"fraudulent"`

	// Balance is the account's true balance, revealed by an account lookup.
	Balance int `json:"balance"`

	Patience    int       `json:"patience"`
	MaxPatience int       `json:"max_patience"`
	CreatedAt   time.Time `json:"created_at"`
}

// Doc returns the document of the given type.
func (c *Customer) Doc(t DocumentType) *Document {
	for i := range c.Documents {
		if c.Documents[i].Type == t {
			return &c.Documents[i]
		}
	}
	return nil
}

// HasInvalidDocument reports whether any document fails validation.
func (c *Customer) HasInvalidDocument() bool {
	for i := range c.Documents {
		if !c.Documents[i].Valid {
			return true
		}
	}
	return false
}
