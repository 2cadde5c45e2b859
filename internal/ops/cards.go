package ops

import (
	"math"

	"spendview/internal/log"
)

// cardSuffixLen is the number of trailing characters of the card identifier
// used as the grouping key.
const cardSuffixLen = 5

// CardUsage groups operations by card suffix and sums spend and bonuses per
// group. Groups are returned in first-seen order. Operations without a card
// number are logged and skipped; the run continues. Two cards sharing the same
// suffix land in the same group regardless of the full identifier.
func CardUsage(txs []Transaction, logger *log.Logger) []CardSummary {
	index := make(map[string]int)
	var summaries []CardSummary

	for _, tx := range txs {
		if tx.Card == "" {
			if logger != nil {
				logger.Warn("operation without card number, skipping",
					"date", tx.OperationDate.Format(DateLayout),
					"description", tx.Description)
			}
			continue
		}

		suffix := cardSuffix(tx.Card)
		i, ok := index[suffix]
		if !ok {
			i = len(summaries)
			index[suffix] = i
			summaries = append(summaries, CardSummary{EndDigits: suffix})
		}

		if tx.Amount < 0 {
			summaries[i].Spent += math.Abs(tx.Amount)
		}
		summaries[i].Bonus += tx.Bonus
	}

	return summaries
}

func cardSuffix(card string) string {
	if len(card) <= cardSuffixLen {
		return card
	}
	return card[len(card)-cardSuffixLen:]
}
