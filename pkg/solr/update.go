package solr

import (
	"context"
	"fmt"
)

// Update writes partial document updates through the core's update
// handler. Batches start at UpdateBatch documents; a failed batch is
// halved (down to UpdateBatchFloor) and retried up to UpdateAttempts
// times before the unwritten remainder is returned with the error.
func (c *implClient) Update(ctx context.Context, core string, docs []map[string]any) ([]map[string]any, error) {
	if !c.HasCore(core) {
		return docs, fmt.Errorf("%w: %s", ErrCoreNotRegistered, core)
	}
	updateURL := fmt.Sprintf("%s/%s/update?commit=true", c.baseURL, core)

	batch := UpdateBatch
	attempts := 0
	for len(docs) > 0 {
		if err := ctx.Err(); err != nil {
			return docs, err
		}

		n := batch
		if n > len(docs) {
			n = len(docs)
		}
		if err := c.postUpdate(ctx, updateURL, docs[:n]); err != nil {
			attempts++
			if attempts >= UpdateAttempts {
				return docs, fmt.Errorf("update gave up after %d attempts: %w", attempts, err)
			}
			if batch/2 >= UpdateBatchFloor {
				batch /= 2
			}
			c.l.Warnf(ctx, "solr: update batch of %d failed, retrying with %d: %v", n, batch, err)
			continue
		}

		docs = docs[n:]
		batch = UpdateBatch
		attempts = 0
	}
	return nil, nil
}

func (c *implClient) postUpdate(ctx context.Context, updateURL string, docs []map[string]any) error {
	body, status, err := c.httpClient.Post(ctx, updateURL, docs, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return checkStatus(status, body)
}
