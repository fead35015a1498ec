package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"analytics-srv/internal/model"
	"analytics-srv/internal/network"
)

// timesAccount pulls the account out of one interaction-times entry of
// the form "<account> <timestamp>...".
func timesAccount(entry string) string {
	fields := strings.Fields(entry)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func extractionQuery(interaction string) (string, []string, bool) {
	switch interaction {
	case network.InteractionRetweet:
		return "userScreenName:* AND (retweetTimes:* OR retweeters:*)",
			[]string{"id", "userScreenName", "retweetTimes", "retweeters"},
			true
	case network.InteractionReply:
		return "userScreenName:* AND repliesTimes:*",
			[]string{"id", "userScreenName", "repliesTimes"},
			true
	}
	return "", nil, false
}

// extractionEvent announces a finished interaction scan on the bus.
type extractionEvent struct {
	ID          string `json:"id"`
	Core        string `json:"core"`
	Interaction string `json:"interaction"`
	Accounts    int    `json:"accounts"`
	Hits        int    `json:"hits"`
	ExtractedAt string `json:"extractedAt"`
}

func (uc *implUseCase) ExtractInteractions(ctx context.Context, input network.ExtractInput) (network.ExtractOutput, error) {
	query, fields, ok := extractionQuery(input.Interaction)
	if !ok {
		return network.ExtractOutput{}, network.ErrUnknownInteraction
	}

	interactions := map[string]map[string]int{}
	hits, err := uc.repo.StreamInteractions(ctx, input.Core, query, fields, func(docs []model.Document) error {
		for _, doc := range docs {
			aggregateDoc(interactions, doc, input.Interaction)
		}
		return nil
	})
	if err != nil {
		return network.ExtractOutput{}, uc.wrapErr(ctx, "ExtractInteractions", err)
	}

	out := network.ExtractOutput{
		Interactions: interactions,
		Hits:         hits,
		EventID:      uuid.NewString(),
	}
	uc.publishExtraction(ctx, input, out)
	return out, nil
}

// aggregateDoc adds one document's interaction sources to the target's
// tally. Sources repeated inside a single document count once.
func aggregateDoc(interactions map[string]map[string]int, doc model.Document, interaction string) {
	target := doc.UserScreenName
	if target == "" {
		return
	}

	sources := map[string]struct{}{}
	times := doc.RetweetTimes
	if interaction == network.InteractionReply {
		times = doc.RepliesTimes
	}
	for _, entry := range times {
		if account := timesAccount(entry); account != "" {
			sources[account] = struct{}{}
		}
	}
	if interaction == network.InteractionRetweet {
		for _, account := range doc.Retweeters {
			if account != "" {
				sources[account] = struct{}{}
			}
		}
	}
	if len(sources) == 0 {
		return
	}

	tally := interactions[target]
	if tally == nil {
		tally = map[string]int{}
		interactions[target] = tally
	}
	for source := range sources {
		tally[source]++
	}
}

// publishExtraction is best effort: a bus failure never fails the scan.
func (uc *implUseCase) publishExtraction(ctx context.Context, input network.ExtractInput, out network.ExtractOutput) {
	if uc.producer == nil {
		return
	}
	event := extractionEvent{
		ID:          out.EventID,
		Core:        input.Core,
		Interaction: input.Interaction,
		Accounts:    len(out.Interactions),
		Hits:        out.Hits,
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		uc.l.Warnf(ctx, "network.usecase.publishExtraction.Marshal: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(out.EventID), payload); err != nil {
		uc.l.Warnf(ctx, "network.usecase.publishExtraction.Publish: %v", err)
	}
}
