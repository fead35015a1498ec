package model

// DateCount is a per-day document count.
type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ValueCount is a counted value of a terms facet.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ScoredValue carries a sentiment-weighted value. Count holds the
// normalized bias unless a raw sentiment count was substituted for it.
type ScoredValue struct {
	Value string  `json:"value"`
	Count float64 `json:"count"`
}

// LanguageCount is a per-language document count.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}
