package optimizer

import (
	"github.com/pkoukk/tiktoken-go"
)

// TokenCounter estimates how many tokens a prompt costs. Gemini does not
// publish a tiktoken encoding, so cl100k_base is used as an approximation;
// the budget it enforces is a guard against runaway inputs, not exact
// vendor accounting.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
}

func NewTokenCounter() (*TokenCounter, error) {
	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, err
	}
	return &TokenCounter{encoding: encoding}, nil
}

// Count returns the approximate token count of text.
func (tc *TokenCounter) Count(text string) int {
	return len(tc.encoding.Encode(text, nil, nil))
}
