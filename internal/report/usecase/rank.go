package usecase

import (
	"container/heap"
	"sort"

	"analytics-srv/internal/model"
	"analytics-srv/internal/report"
	"analytics-srv/pkg/solr"
)

// orderedCounts accumulates values keyed by string while remembering
// first-encounter order, so equal counts rank deterministically.
type orderedCounts struct {
	keys []string
	idx  map[string]int
	vals []float64
}

func newOrderedCounts() *orderedCounts {
	return &orderedCounts{idx: map[string]int{}}
}

func (o *orderedCounts) add(key string, v float64) {
	if i, ok := o.idx[key]; ok {
		o.vals[i] += v
		return
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

func (o *orderedCounts) get(key string) (float64, bool) {
	i, ok := o.idx[key]
	if !ok {
		return 0, false
	}
	return o.vals[i], true
}

type rankEntry struct {
	key string
	val float64
	seq int
}

// entryHeap keeps the n strongest entries. For descending ranking it is
// a min-heap whose root is the weakest kept entry; ties break on
// encounter order, keeping the earliest.
type entryHeap struct {
	entries []rankEntry
	desc    bool
}

func (h entryHeap) Len() int { return len(h.entries) }
func (h entryHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.val != b.val {
		if h.desc {
			return a.val < b.val
		}
		return a.val > b.val
	}
	return a.seq > b.seq
}
func (h entryHeap) Swap(i, j int)      { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }
func (h *entryHeap) Push(x any)        { h.entries = append(h.entries, x.(rankEntry)) }
func (h *entryHeap) Pop() any {
	old := h.entries
	n := len(old)
	x := old[n-1]
	h.entries = old[:n-1]
	return x
}

// topEntries ranks the accumulated counts and returns the n strongest,
// descending when desc is set, ascending otherwise.
func topEntries(o *orderedCounts, n int, desc bool) []rankEntry {
	if n > len(o.keys) {
		n = len(o.keys)
	}
	if n <= 0 {
		return nil
	}

	h := &entryHeap{desc: desc, entries: make([]rankEntry, 0, n)}
	for i, key := range o.keys {
		entry := rankEntry{key: key, val: o.vals[i], seq: i}
		if h.Len() < n {
			heap.Push(h, entry)
			continue
		}
		root := h.entries[0]
		stronger := entry.val > root.val
		if !desc {
			stronger = entry.val < root.val
		}
		if stronger {
			h.entries[0] = entry
			heap.Fix(h, 0)
		}
	}

	out := h.entries
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].val != out[j].val {
			if desc {
				return out[i].val > out[j].val
			}
			return out[i].val < out[j].val
		}
		return out[i].seq < out[j].seq
	})
	return out
}

func topCounts(o *orderedCounts, n int) []model.ValueCount {
	entries := topEntries(o, n, true)
	out := make([]model.ValueCount, len(entries))
	for i, e := range entries {
		out[i] = model.ValueCount{Value: e.key, Count: int(e.val)}
	}
	return out
}

func topScores(o *orderedCounts, n int, desc bool, multiplyBy float64) []model.ScoredValue {
	entries := topEntries(o, n, desc)
	out := make([]model.ScoredValue, len(entries))
	for i, e := range entries {
		out[i] = model.ScoredValue{Value: e.key, Count: multiplyBy * e.val}
	}
	return out
}

type biasOptions struct {
	// withNegativePositive additionally builds the most-negative ranking
	// with raw negative counts substituted in.
	withNegativePositive bool
}

// computeBias fills a breakdown's cross-sentiment rollup and bias
// rankings. The bias of a value is (positive - negative) / total, which
// stays within [-1, 1]. Values never seen under Positive or Negative
// carry no bias and are left out of the rankings.
func computeBias(fb *report.FeatureBreakdown, sentimentOrder []string, topN int, opts biasOptions) {
	all := newOrderedCounts()
	signed := newOrderedCounts()
	for _, sentiment := range sentimentOrder {
		for _, vc := range fb.BySentiment[sentiment] {
			all.add(vc.Value, float64(vc.Count))
			switch sentiment {
			case solr.SentimentPositive:
				signed.add(vc.Value, float64(vc.Count))
			case solr.SentimentNegative:
				signed.add(vc.Value, -float64(vc.Count))
			}
		}
	}

	bias := newOrderedCounts()
	for i, key := range signed.keys {
		if total, ok := all.get(key); ok && total != 0 {
			bias.add(key, signed.vals[i]/total)
		}
	}

	fb.AllSentiments = topCounts(all, topN)
	if opts.withNegativePositive {
		fb.NegativePositive = topScores(bias, topN, false, -1)
		substituteCounts(fb.NegativePositive, fb.BySentiment[solr.SentimentNegative])
	}
	fb.PositiveNegative = topScores(bias, topN, true, 1)
}

// substituteCounts replaces normalized bias values with the raw counts
// of the matching sentiment list where one exists.
func substituteCounts(list []model.ScoredValue, raw []model.ValueCount) {
	if len(raw) == 0 {
		return
	}
	counts := make(map[string]int, len(raw))
	for _, vc := range raw {
		counts[vc.Value] = vc.Count
	}
	for i := range list {
		if c, ok := counts[list[i].Value]; ok {
			list[i].Count = float64(c)
		}
	}
}

// sumAcross unions per-language value counts in language order and ranks
// the union by count.
func sumAcross(perLanguage map[string][]model.ValueCount, order []string, topN int) []model.ValueCount {
	all := newOrderedCounts()
	for _, lang := range order {
		for _, vc := range perLanguage[lang] {
			all.add(vc.Value, float64(vc.Count))
		}
	}
	return topCounts(all, topN)
}
