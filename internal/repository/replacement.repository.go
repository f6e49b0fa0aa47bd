package repository

// ReplacementRepository maps a symbol to a similar asset that keeps market
// exposure after the original is sold for a loss.
type ReplacementRepository interface {
	ReplacementFor(symbol string) (string, bool)
}

type replacementRepositoryHandler struct {
	Replacements map[string]string
}

func NewReplacementRepository(replacements map[string]string) ReplacementRepository {
	if replacements == nil {
		replacements = DefaultReplacements()
	}
	return replacementRepositoryHandler{Replacements: replacements}
}

func (h replacementRepositoryHandler) ReplacementFor(symbol string) (string, bool) {
	replacement, ok := h.Replacements[symbol]
	if !ok || replacement == "" {
		return "", false
	}
	return replacement, true
}

func DefaultReplacements() map[string]string {
	return map[string]string{
		"TSLA": "TSLF",
		"AAPL": "APLF",
		"SPY":  "VOO",
	}
}
