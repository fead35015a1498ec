package solr

import (
	"context"
	"encoding/json"
)

// SelectAll pages through every match of the query in BatchRows batches,
// handing each page to fn in order. The total match count is taken from
// the first page so documents added mid-scan are not chased.
func (c *implClient) SelectAll(ctx context.Context, core string, params SelectParams, fn func(docs []json.RawMessage) error) (int, error) {
	params.Rows = BatchRows
	params.Start = 0

	total := -1
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		page, err := c.Select(ctx, core, params)
		if err != nil {
			return 0, err
		}
		if total < 0 {
			total = page.NumFound
		}
		if len(page.Docs) > 0 {
			if err := fn(page.Docs); err != nil {
				return 0, err
			}
		}

		params.Start += BatchRows
		if params.Start >= total || len(page.Docs) == 0 {
			return total, nil
		}
	}
}
