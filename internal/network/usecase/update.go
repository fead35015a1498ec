package usecase

import (
	"context"
	"fmt"

	"analytics-srv/internal/network"
)

func (uc *implUseCase) UpdateCommunityFields(ctx context.Context, core string, updates []network.FieldUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	docs := make([]map[string]any, 0, len(updates))
	for _, u := range updates {
		doc := map[string]any{"id": u.ID}
		for field, value := range u.Fields {
			doc[field] = map[string]any{"set": value}
		}
		docs = append(docs, doc)
	}

	remaining, err := uc.repo.UpdateDocuments(ctx, core, docs)
	if err != nil {
		uc.l.Errorf(ctx, "network.usecase.UpdateCommunityFields: %v", err)
		if len(remaining) > 0 {
			return len(remaining), fmt.Errorf("%w: %d of %d", network.ErrPartialWrite, len(remaining), len(docs))
		}
		return 0, uc.wrapErr(ctx, "UpdateCommunityFields", err)
	}
	return 0, nil
}
