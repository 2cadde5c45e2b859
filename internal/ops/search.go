package ops

import "regexp"

// Search returns transactions whose description contains query as a literal,
// case-insensitive substring. An empty query matches nothing. Input order is
// preserved and transactions without a description never match.
func Search(txs []Transaction, query string) []Transaction {
	return search(txs, query, false)
}

// SearchWithCategory matches query against both description and category.
func SearchWithCategory(txs []Transaction, query string) []Transaction {
	return search(txs, query, true)
}

func search(txs []Transaction, query string, includeCategory bool) []Transaction {
	if query == "" {
		return nil
	}

	// The query is literal text, not a pattern.
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var matches []Transaction
	for _, tx := range txs {
		if re.MatchString(tx.Description) || (includeCategory && re.MatchString(tx.Category)) {
			matches = append(matches, tx)
		}
	}
	return matches
}
