package scorer

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadNgram reads a bigram table from a JSON file mapping "first second"
// word pairs to log10 probabilities and builds a scorer from it.
func LoadNgram(path string, unseen float64) (*Ngram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bigram table: %w", err)
	}
	var probs map[string]float64
	if err := json.Unmarshal(data, &probs); err != nil {
		return nil, fmt.Errorf("decoding bigram table: %w", err)
	}
	return NewNgram(probs, unseen), nil
}
