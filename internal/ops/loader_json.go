package ops

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimpleJSONFormat is a minimal JSON format for importing operations
// Example:
//
//	{
//	  "operations": [
//	    {"date": "15.01.2024 12:00:00", "description": "Магазин", "category": "Супермаркеты",
//	     "amount": -500.0, "payment_date": "15.01.2024", "payment_amount": -500.0,
//	     "card": "*7197", "bonus": 5.0}
//	  ]
//	}
//
// This format is easy to convert to from any bank export or data source.
type SimpleJSONFormat struct {
	Operations []SimpleJSONOperation `json:"operations"`
}

type SimpleJSONOperation struct {
	Date          string  `json:"date"`                     // DD.MM.YYYY, optionally with HH:MM:SS
	PaymentDate   string  `json:"payment_date,omitempty"`   // DD.MM.YYYY
	Card          string  `json:"card,omitempty"`           // card identifier, may be empty
	Description   string  `json:"description,omitempty"`    //
	Category      string  `json:"category,omitempty"`       //
	Amount        float64 `json:"amount"`                   // negative for expenses
	PaymentAmount float64 `json:"payment_amount,omitempty"` //
	Bonus         float64 `json:"bonus,omitempty"`          //
	Cashback      float64 `json:"cashback,omitempty"`       //
}

// ParseSimpleJSON parses a JSON file in the simple JSON format
func ParseSimpleJSON(path string) ([]Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var transactions []Transaction
	for _, op := range jsonData.Operations {
		opDate, err := parseOperationDate(op.Date)
		if err != nil {
			return nil, err
		}
		tx := Transaction{
			OperationDate: opDate,
			Card:          op.Card,
			Description:   op.Description,
			Category:      op.Category,
			Amount:        op.Amount,
			PaymentAmount: op.PaymentAmount,
			Bonus:         op.Bonus,
			Cashback:      op.Cashback,
		}
		if op.PaymentDate != "" {
			tx.PaymentDate, err = parseOperationDate(op.PaymentDate)
			if err != nil {
				return nil, err
			}
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func init() {
	RegisterLoader("simple-json", LoaderFunc(ParseSimpleJSON))
}
