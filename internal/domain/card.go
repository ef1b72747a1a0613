package domain

import "github.com/shopspring/decimal"

// Defaults applied to every new card.
const CardTypeCredit = "Credit Card"

// DefaultCardLimit is the credit limit of a new card.
const DefaultCardLimit int64 = 100_000

// Card is a credit card keyed by the owner's mobile number.
type Card struct {
	CardID          int64           `json:"card_id"`
	MobileNumber    string          `json:"mobile_number"`
	CardNumber      string          `json:"card_number"`
	CardType        string          `json:"card_type"`
	TotalLimit      decimal.Decimal `json:"total_limit"`
	AmountUsed      decimal.Decimal `json:"amount_used"`
	AvailableAmount decimal.Decimal `json:"available_amount"`
	Audit
}

// NewCard builds a credit card with the default limit and nothing used yet.
func NewCard(mobileNumber, cardNumber string) *Card {
	return &Card{
		MobileNumber:    mobileNumber,
		CardNumber:      cardNumber,
		CardType:        CardTypeCredit,
		TotalLimit:      decimal.NewFromInt(DefaultCardLimit),
		AmountUsed:      decimal.Zero,
		AvailableAmount: decimal.NewFromInt(DefaultCardLimit),
		Audit:           Audit{CreatedBy: ActorCards},
	}
}

func (c *Card) RecordID() int64           { return c.CardID }
func (c *Card) SetRecordID(id int64)      { c.CardID = id }
func (c *Card) RecordNumber() string      { return c.CardNumber }
func (c *Card) OwnerMobileNumber() string { return c.MobileNumber }
func (c *Card) AuditInfo() *Audit         { return &c.Audit }

// Validate checks the keys of the card.
func (c *Card) Validate() error {
	return validateNumbered("cardNumber", c.CardNumber, c.MobileNumber)
}

var _ NumberedRecord = (*Card)(nil)
