package customer

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	// fraud corrupts between 1 and 3 of the four documents
	minCorrupt = 1
	maxCorrupt = 3

	minAge = 18
	maxAge = 80

	levelScaleAbove = 3 // amounts scale ×1.5 above this level
)

// Config tunes generation. The zero FraudRate reproduces the all-legitimate
// game mode.
type Config struct {
	// FraudRate is the probability a withdrawal or wire transfer is
	// fraudulent. Deposits are never fraudulent.
	FraudRate float64
}

// DefaultConfig returns the standard difficulty.
func DefaultConfig() Config {
	return Config{FraudRate: 0.30}
}

// Generator produces customers. Account numbers never collide within one
// generator's lifetime.
type Generator struct {
	cfg  Config
	rng  *rand.Rand
	used map[string]struct{}
}

// New creates a generator with a random seed.
func New(cfg Config) *Generator {
	return NewSeeded(cfg, rand.Uint64(), rand.Uint64())
}

// NewSeeded creates a deterministic generator for a fixed seed pair.
func NewSeeded(cfg Config, seed1, seed2 uint64) *Generator {
	return &Generator{
		cfg:  cfg,
		rng:  rand.New(rand.NewPCG(seed1, seed2)),
		used: make(map[string]struct{}),
	}
}

// Customer generates one customer for the given difficulty level.
// Generation is total: it always succeeds.
func (g *Generator) Customer(level int) Customer {
	name := g.name()
	kind := transactionKinds[g.rng.IntN(len(transactionKinds))]
	amount := g.amount(level)
	account := g.accountNumber()

	tx := Transaction{
		Kind:          kind,
		Amount:        amount,
		AccountNumber: account,
	}
	if kind == WireTransfer {
		tx.TargetAccount = g.accountNumber()
		tx.RecipientName = g.name()
	}

	c := Customer{
		ID:          uuid.NewString(),
		Name:        name,
		Transaction: tx,
		Balance:     g.balance(tx),
		MaxPatience: maxPatienceFor(level),
		CreatedAt:   time.Now(),
	}
	c.Patience = c.MaxPatience
	c.Documents = g.documents(c)

	// the fraud decision is made exactly once, here; corruption below is
	// what makes it true on paper
	fraud := kind != Deposit && g.rng.Float64() < g.cfg.FraudRate
	if fraud {
		g.corrupt(&c)
	}
	c.Fraudulent = c.HasInvalidDocument()

	return c
}

// name picks a full name from the fixed pools.
func (g *Generator) name() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

// amount draws a bracket uniformly, then a value inside it.
func (g *Generator) amount(level int) int {
	b := amountBrackets[g.rng.IntN(len(amountBrackets))]
	v := b[0] + g.rng.IntN(b[1]-b[0]+1)
	if level > levelScaleAbove {
		v = v * 3 / 2
	}
	return v
}

// balance returns the account's true balance. Legitimate withdrawals and
// transfers are always covered; the corrupted-slip case is what produces
// insufficient-funds situations.
func (g *Generator) balance(tx Transaction) int {
	if tx.Kind == Deposit {
		return 100 + g.rng.IntN(9900)
	}
	return tx.Amount + g.rng.IntN(9000)
}

// accountNumber returns a fresh 9-digit account number.
func (g *Generator) accountNumber() string {
	for {
		n := 100_000_000 + g.rng.IntN(900_000_000)
		acct := fmt.Sprintf("%09d", n)
		if _, dup := g.used[acct]; dup {
			continue
		}
		g.used[acct] = struct{}{}
		return acct
	}
}

// documents populates all four documents from ground truth.
func (g *Generator) documents(c Customer) [4]Document {
	tx := c.Transaction
	return [4]Document{
		{
			Type:  DocID,
			Valid: true,
			ID: &IDCard{
				Name:          c.Name,
				AccountNumber: tx.AccountNumber,
				BirthDate:     g.birthDate(),
			},
		},
		{
			Type:  DocSlip,
			Valid: true,
			Slip: &TransactionSlip{
				Kind:          tx.Kind,
				Amount:        tx.Amount,
				AccountNumber: tx.AccountNumber,
				TargetAccount: tx.TargetAccount,
				RecipientName: tx.RecipientName,
			},
		},
		{
			Type:  DocPassbook,
			Valid: true,
			Passbook: &Passbook{
				Name:          c.Name,
				AccountNumber: tx.AccountNumber,
				Balance:       c.Balance,
			},
		},
		{
			Type:  DocSignature,
			Valid: true,
			Signature: &SignatureCard{
				Name:      c.Name,
				Authentic: true,
			},
		},
	}
}

// corrupt invalidates 1–3 documents, each with a type-specific fault.
func (g *Generator) corrupt(c *Customer) {
	n := minCorrupt + g.rng.IntN(maxCorrupt-minCorrupt+1)
	for _, i := range g.rng.Perm(len(c.Documents))[:n] {
		doc := &c.Documents[i]
		doc.Valid = false
		switch doc.Type {
		case DocID:
			g.corruptID(c, doc)
		case DocSlip:
			g.corruptSlip(c, doc)
		case DocPassbook:
			doc.Passbook.AccountNumber = g.accountNumber()
			doc.Fault = "passbook account number does not match the account on record"
		case DocSignature:
			kind := forgeryKinds[g.rng.IntN(len(forgeryKinds))]
			doc.Signature.Authentic = false
			doc.Signature.Forgery = kind
			doc.Fault = "signature fails comparison: " + kind.Indicators()[0]
		}
	}
}

func (g *Generator) corruptID(c *Customer, doc *Document) {
	switch g.rng.IntN(3) {
	case 0:
		doc.ID.Name = g.otherName(c.Name)
		doc.Fault = "name on ID does not match the account holder"
	case 1:
		doc.ID.AccountNumber = g.accountNumber()
		doc.Fault = "account number on ID does not match the account on record"
	default:
		orig := doc.ID.BirthDate
		for doc.ID.BirthDate == orig {
			doc.ID.BirthDate = g.birthDate()
		}
		doc.Fault = "birth date on ID does not match bank records"
	}
}

func (g *Generator) corruptSlip(c *Customer, doc *Document) {
	delta := 5 * (1 + g.rng.IntN(19)) // $5–$95
	if g.rng.IntN(2) == 0 && doc.Slip.Amount > delta {
		delta = -delta
	}
	doc.Slip.Amount += delta
	doc.Fault = fmt.Sprintf("slip shows $%d but the customer asked for $%d",
		doc.Slip.Amount, c.Transaction.Amount)
}

// otherName returns a pool name guaranteed to differ from name.
func (g *Generator) otherName(name string) string {
	for {
		if n := g.name(); n != name {
			return n
		}
	}
}

// birthDate returns a YYYY-MM-DD date for an age in [18, 80]. Days are
// clamped to 1–28 so every month is valid.
func (g *Generator) birthDate() string {
	age := minAge + g.rng.IntN(maxAge-minAge+1)
	year := time.Now().Year() - age
	month := 1 + g.rng.IntN(12)
	day := 1 + g.rng.IntN(28)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func (g *Generator) pick(s []string) string {
	return s[g.rng.IntN(len(s))]
}

func maxPatienceFor(level int) int {
	p := 16 - level
	if p < 8 {
		p = 8
	}
	return p
}
