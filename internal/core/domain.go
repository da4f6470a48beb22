package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type (
	TransactionType string

	// Transaction is a single income or expense event.
	Transaction struct {
		ID            string          `json:"id"`
		Type          TransactionType `json:"type"`
		Category      string          `json:"category"`
		Amount        Money           `json:"amount_cents"`
		Date          Date            `json:"date"`
		Description   string          `json:"description,omitempty"`
		PaymentMethod string          `json:"payment_method,omitempty"`
		CreatedAt     time.Time       `json:"created_at"`
	}

	// Budgets maps a category name to its monthly limit. Re-setting a
	// category overwrites the previous limit; no history is kept.
	Budgets map[string]Money

	// Goal is a savings goal.
	Goal struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		TargetAmount  Money     `json:"target_amount_cents"`
		CurrentAmount Money     `json:"current_amount_cents"`
		TargetDate    Date      `json:"target_date"`
		Completed     bool      `json:"completed"`
		CreatedAt     time.Time `json:"created_at"`
	}

	// Payment is one entry in a bill's payment history.
	Payment struct {
		Date   Date  `json:"date"`
		Amount Money `json:"amount_cents"`
	}

	// Bill is a recurring obligation tracked by a single fixed due date.
	// Frequency is an informational label; recording a payment never
	// advances DueDate, so a recurring bill needs its DueDate moved by
	// the caller once paid or the overdue check will flag the old cycle.
	Bill struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Amount         Money     `json:"amount_cents"`
		DueDate        Date      `json:"due_date"`
		Frequency      string    `json:"frequency,omitempty"`
		AutoPay        bool      `json:"auto_pay"`
		PaymentHistory []Payment `json:"payment_history"`
		CreatedAt      time.Time `json:"created_at"`
	}

	Asset struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Type        string    `json:"type,omitempty"`
		Value       Money     `json:"value_cents"`
		Date        Date      `json:"date"`
		Description string    `json:"description,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	Liability struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Type        string `json:"type,omitempty"`
		Amount      Money  `json:"amount_cents"`
		Date        Date   `json:"date"`
		Description string `json:"description,omitempty"`
		// InterestRate is in basis points (4.5% -> 450). Zero means unset.
		InterestRate int64     `json:"interest_rate_bps,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	// Settings is the singleton display-currency record. The core never
	// formats amounts itself; the record exists for display collaborators.
	Settings struct {
		Currency       string `json:"currency"`
		CurrencySymbol string `json:"currency_symbol"`
	}
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidDate   = errors.New("invalid date")
	ErrNegativeRate  = errors.New("negative interest rate")
)

// DefaultSettings is used when no settings record has been persisted yet.
var DefaultSettings = Settings{Currency: "USD", CurrencySymbol: "$"}

// Default taxonomy offered to API consumers. Purely informational: nothing
// in the ledger restricts categories or payment methods to these lists.
var (
	DefaultExpenseCategories = []string{
		"Groceries", "Rent/Mortgage", "Utilities", "Transportation",
		"Entertainment", "Healthcare", "Shopping", "Dining Out",
		"Insurance", "Education", "Personal Care", "Other",
	}

	DefaultIncomeCategories = []string{
		"Salary", "Freelance", "Investments", "Business", "Gift", "Other",
	}

	PaymentMethods = []string{
		"Cash", "Credit Card", "Debit Card", "Bank Transfer", "Digital Wallet", "Check",
	}
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if g.TargetAmount.Cents <= 0 {
		return ErrInvalidAmount
	}
	return g.CurrentAmount.Validate()
}

func (b Bill) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyName
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if b.DueDate.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (a Asset) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	return a.Value.Validate()
}

func (l Liability) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if err := l.Amount.Validate(); err != nil {
		return err
	}
	if l.InterestRate < 0 {
		return ErrNegativeRate
	}
	return nil
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.Currency) == "" {
		return fmt.Errorf("currency code: %w", ErrEmptyName)
	}
	if strings.TrimSpace(s.CurrencySymbol) == "" {
		return fmt.Errorf("currency symbol: %w", ErrEmptyName)
	}
	return nil
}

// LastPayment returns the most recent payment history entry. Entries are
// append-only in chronological order, so that is the last element.
func (b Bill) LastPayment() (Payment, bool) {
	if len(b.PaymentHistory) == 0 {
		return Payment{}, false
	}
	return b.PaymentHistory[len(b.PaymentHistory)-1], true
}
