package naming

// Distance limits by candidate length. Short names tolerate a single typo.
const (
	ShortNameLength  = 4
	MediumNameLength = 8

	ShortNameLimit  = 1
	MediumNameLimit = 2
	LongNameLimit   = 3
)

// MinQueryLength is the shortest input considered for fuzzy matching
const MinQueryLength = 2
