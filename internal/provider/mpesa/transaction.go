package mpesa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when parsing a provider date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"20060102150405", // Daraja TransTime
	"2006-01-02",
}

// Transaction is a provider transaction that passed validation.
type Transaction struct {
	Description string
	Amount      decimal.Decimal
	OccurredAt  time.Time
}

// RejectedTransaction is a provider entry that failed validation and was quarantined.
type RejectedTransaction struct {
	Index  int
	Reason string
	Raw    json.RawMessage
}

// TransactionBatch is the validated result of one transaction listing.
type TransactionBatch struct {
	Transactions []Transaction
	Rejected     []RejectedTransaction
}

type rawTransaction struct {
	Description *string         `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	Date        *string         `json:"date"`
}

// ParseTransactions decodes a provider response body. The body must be a JSON array;
// entries that do not match the transaction schema are returned in Rejected. Dates without
// a zone are read in loc; a nil loc means UTC.
func ParseTransactions(body []byte, loc *time.Location) (*TransactionBatch, error) {
	if loc == nil {
		loc = time.UTC
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	if entries == nil {
		return nil, errors.New("failed to decode transactions: response is null")
	}

	batch := &TransactionBatch{
		Transactions: make([]Transaction, 0, len(entries)),
	}
	for i, entry := range entries {
		tx, err := parseTransaction(entry, loc)
		if err != nil {
			batch.Rejected = append(batch.Rejected, RejectedTransaction{
				Index:  i,
				Reason: err.Error(),
				Raw:    entry,
			})
			continue
		}
		batch.Transactions = append(batch.Transactions, tx)
	}

	return batch, nil
}

func parseTransaction(entry json.RawMessage, loc *time.Location) (Transaction, error) {
	trimmed := bytes.TrimSpace(entry)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Transaction{}, errors.New("entry is not an object")
	}

	var raw rawTransaction
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Transaction{}, fmt.Errorf("invalid entry: %w", err)
	}

	if raw.Description == nil || strings.TrimSpace(*raw.Description) == "" {
		return Transaction{}, errors.New("description is required")
	}

	amount, err := parseAmount(raw.Amount)
	if err != nil {
		return Transaction{}, err
	}

	if raw.Date == nil || *raw.Date == "" {
		return Transaction{}, errors.New("date is required")
	}
	occurredAt, err := parseDate(*raw.Date, loc)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Description: *raw.Description,
		Amount:      amount,
		OccurredAt:  occurredAt,
	}, nil
}

// parseAmount accepts both JSON numbers and numeric strings.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Decimal{}, errors.New("amount is required")
	}
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(raw); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse amount '%s': %w", string(raw), err)
	}
	return amount, nil
}

// parseDate only uses loc for layouts without a zone; RFC3339 offsets are kept.
func parseDate(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date '%s'", value)
}
