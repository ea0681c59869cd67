package domain

type Relevance string

const (
	RelevanceHigh    Relevance = "high"
	RelevanceMedium  Relevance = "medium"
	RelevanceLow     Relevance = "low"
	RelevanceUnknown Relevance = "unknown"
)

// ParseRelevance maps a raw classifier answer to a Relevance.
// Matching is exact: "High" or " high" are Unknown, and Unknown never advances.
func ParseRelevance(raw string) Relevance {
	switch Relevance(raw) {
	case RelevanceHigh, RelevanceMedium, RelevanceLow:
		return Relevance(raw)
	default:
		return RelevanceUnknown
	}
}

func (r Relevance) Advances() bool {
	return r == RelevanceHigh
}
