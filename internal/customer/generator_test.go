package customer

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestCustomerFields(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 1, 2)
	c := g.Customer(1)

	tests := []struct {
		name  string
		check func() bool
	}{
		{"ID non-empty", func() bool { return c.ID != "" }},
		{"Name has two parts", func() bool { return len(strings.Fields(c.Name)) == 2 }},
		{"Amount positive", func() bool { return c.Transaction.Amount > 0 }},
		{"Account is 9 digits", func() bool {
			return regexp.MustCompile(`^\d{9}$`).MatchString(c.Transaction.AccountNumber)
		}},
		{"Four documents", func() bool { return len(c.Documents) == 4 }},
		{"Balance positive", func() bool { return c.Balance > 0 }},
		{"Patience full", func() bool { return c.Patience == c.MaxPatience && c.MaxPatience > 0 }},
		{"CreatedAt non-zero", func() bool { return !c.CreatedAt.IsZero() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check() {
				t.Errorf("check failed for customer: %+v", c)
			}
		})
	}
}

func TestDocumentOrderAndPayloads(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 3, 4)
	c := g.Customer(1)

	order := []DocumentType{DocID, DocSlip, DocPassbook, DocSignature}
	for i, want := range order {
		if c.Documents[i].Type != want {
			t.Errorf("documents[%d].Type = %s, want %s", i, c.Documents[i].Type, want)
		}
	}

	if c.Doc(DocID).ID == nil {
		t.Error("id document missing IDCard payload")
	}
	if c.Doc(DocSlip).Slip == nil {
		t.Error("slip document missing TransactionSlip payload")
	}
	if c.Doc(DocPassbook).Passbook == nil {
		t.Error("passbook document missing Passbook payload")
	}
	if c.Doc(DocSignature).Signature == nil {
		t.Error("signature document missing SignatureCard payload")
	}
}

func TestDepositsNeverFraudulent(t *testing.T) {
	g := NewSeeded(Config{FraudRate: 1.0}, 5, 6)

	deposits := 0
	for range 500 {
		c := g.Customer(1)
		if c.Transaction.Kind != Deposit {
			continue
		}
		deposits++
		if c.Fraudulent {
			t.Fatalf("deposit customer %s marked fraudulent", c.ID)
		}
		if c.HasInvalidDocument() {
			t.Fatalf("deposit customer %s has an invalid document", c.ID)
		}
	}
	if deposits == 0 {
		t.Fatal("no deposits generated in 500 customers")
	}
}

func TestFraudFlagMatchesDocuments(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 7, 8)

	for range 500 {
		c := g.Customer(1)
		if c.Fraudulent != c.HasInvalidDocument() {
			t.Fatalf("Fraudulent=%v but HasInvalidDocument=%v: %+v",
				c.Fraudulent, c.HasInvalidDocument(), c)
		}
	}
}

func TestFraudulentCustomersHaveFaults(t *testing.T) {
	g := NewSeeded(Config{FraudRate: 1.0}, 9, 10)

	fraudSeen := false
	for range 500 {
		c := g.Customer(1)
		if !c.Fraudulent {
			continue
		}
		fraudSeen = true

		invalid := 0
		for _, d := range c.Documents {
			if d.Valid {
				if d.Fault != "" {
					t.Fatalf("valid document carries fault %q", d.Fault)
				}
				continue
			}
			invalid++
			if d.Fault == "" {
				t.Fatalf("invalid %s document has empty fault", d.Type)
			}
		}
		if invalid < 1 || invalid > 3 {
			t.Fatalf("fraudulent customer has %d invalid documents, want 1–3", invalid)
		}
	}
	if !fraudSeen {
		t.Fatal("no fraudulent customers generated at FraudRate=1")
	}
}

func TestZeroFraudRate(t *testing.T) {
	g := NewSeeded(Config{FraudRate: 0}, 11, 12)

	for range 300 {
		c := g.Customer(1)
		if c.Fraudulent || c.HasInvalidDocument() {
			t.Fatalf("customer fraudulent at FraudRate=0: %+v", c)
		}
	}
}

func TestAmountBrackets(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 13, 14)

	for range 500 {
		c := g.Customer(1)
		a := c.Transaction.Amount
		if a < 25 || a > 5000 {
			t.Fatalf("amount %d outside brackets at level 1", a)
		}
	}
}

func TestAmountScalesAboveLevelThree(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 15, 16)

	for range 500 {
		c := g.Customer(5)
		a := c.Transaction.Amount
		if a < 25*3/2 || a > 5000*3/2 {
			t.Fatalf("amount %d outside scaled brackets at level 5", a)
		}
	}
}

func TestAccountNumbersNeverCollide(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 17, 18)

	seen := make(map[string]bool)
	for range 1000 {
		c := g.Customer(1)
		if seen[c.Transaction.AccountNumber] {
			t.Fatalf("account number %s issued twice", c.Transaction.AccountNumber)
		}
		seen[c.Transaction.AccountNumber] = true
	}
}

func TestTransferCarriesRecipient(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 19, 20)

	for range 300 {
		c := g.Customer(1)
		tx := c.Transaction
		if tx.Kind == WireTransfer {
			if tx.TargetAccount == "" || tx.RecipientName == "" {
				t.Fatalf("transfer missing recipient: %+v", tx)
			}
			if tx.TargetAccount == tx.AccountNumber {
				t.Fatal("transfer targets its own account")
			}
		} else if tx.TargetAccount != "" || tx.RecipientName != "" {
			t.Fatalf("%s carries transfer fields: %+v", tx.Kind, tx)
		}
	}
}

func TestBirthDateClamped(t *testing.T) {
	g := NewSeeded(DefaultConfig(), 21, 22)
	year := time.Now().Year()

	for range 300 {
		c := g.Customer(1)
		bd := c.Doc(DocID).ID.BirthDate

		parts := strings.SplitN(bd, "-", 3)
		if len(parts) != 3 {
			t.Fatalf("birth date %q not YYYY-MM-DD", bd)
		}
		y, _ := strconv.Atoi(parts[0])
		mo, _ := strconv.Atoi(parts[1])
		d, _ := strconv.Atoi(parts[2])

		if age := year - y; age < 18 || age > 80 {
			t.Fatalf("age %d outside 18–80 (birth date %s)", age, bd)
		}
		if mo < 1 || mo > 12 {
			t.Fatalf("month %d out of range in %s", mo, bd)
		}
		if d < 1 || d > 28 {
			t.Fatalf("day %d out of range in %s", d, bd)
		}
	}
}

func TestLegitimateWithdrawalsAreCovered(t *testing.T) {
	g := NewSeeded(Config{FraudRate: 0}, 23, 24)

	for range 300 {
		c := g.Customer(1)
		if c.Transaction.Kind == Deposit {
			continue
		}
		if c.Balance < c.Transaction.Amount {
			t.Fatalf("legitimate %s for $%d but balance $%d",
				c.Transaction.Kind, c.Transaction.Amount, c.Balance)
		}
	}
}

func TestSignatureForgeryHasIndicators(t *testing.T) {
	g := NewSeeded(Config{FraudRate: 1.0}, 25, 26)

	found := false
	for range 500 {
		c := g.Customer(1)
		sig := c.Doc(DocSignature)
		if sig.Valid {
			continue
		}
		found = true
		if sig.Signature.Authentic {
			t.Fatal("invalid signature card still marked authentic")
		}
		if sig.Signature.Forgery == "" {
			t.Fatal("forged signature missing forgery kind")
		}
		if len(sig.Signature.Forgery.Indicators()) == 0 {
			t.Fatalf("forgery kind %s has no indicators", sig.Signature.Forgery)
		}
	}
	if !found {
		t.Fatal("no forged signatures generated in 500 customers")
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeeded(DefaultConfig(), 42, 43)
	b := NewSeeded(DefaultConfig(), 42, 43)

	for i := range 50 {
		ca, cb := a.Customer(1), b.Customer(1)
		if ca.Name != cb.Name ||
			ca.Transaction != cb.Transaction ||
			ca.Fraudulent != cb.Fraudulent {
			t.Fatalf("customer %d diverged between identical seeds", i)
		}
	}
}
