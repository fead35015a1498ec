package solr

const (
	// GroupsLimit is the default cap for ranked top-content lists.
	GroupsLimit = 500
	// QueryLimit is the default facet/group result limit per query.
	QueryLimit = 10000
	// RowsLimit is the hard cap on rows for single bulk selects.
	RowsLimit = 100000
	// BatchRows is the fixed batch size for paginated bulk reads.
	BatchRows = 20000

	// UpdateBatch is the initial batch size for bulk writes.
	UpdateBatch = 1000
	// UpdateBatchFloor is the smallest batch size the write driver shrinks to.
	UpdateBatchFloor = 125
	// UpdateAttempts is the retry ceiling per write batch.
	UpdateAttempts = 3

	// SpaceToken encodes internal whitespace inside escaped terms.
	SpaceToken = "%20"
)

// Sentiment labels as stored in the index.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Sentiments lists the known sentiment labels in gate order.
var Sentiments = []string{SentimentPositive, SentimentNeutral, SentimentNegative}
