package photos

import (
	"context"
	"time"

	"elemex/internal/elements"
	"elemex/internal/progress"
)

// Prefetch checks photo availability for every element in the dataset and
// records the results. Individual failures only mark the element
// unavailable; the walk itself never aborts early except on context
// cancellation.
func (c *Client) Prefetch(ctx context.Context, ds *elements.Dataset, store *Store, rep progress.Reporter) (available int, err error) {
	list := ds.Elements()
	if rep != nil {
		rep.Start(len(list), "Checking element photos")
		defer rep.Finish()
	}

	for i, e := range list {
		if err := ctx.Err(); err != nil {
			return available, err
		}

		resolved := c.Resolve(ctx, e.Name)
		ok := resolved != PlaceholderURL
		if ok {
			available++
		}

		if store != nil {
			if err := store.Record(ctx, Status{
				Number:    e.Number,
				Name:      e.Name,
				URL:       resolved,
				Available: ok,
				CheckedAt: time.Now().UTC(),
			}); err != nil {
				return available, err
			}
		}

		if rep != nil {
			rep.Update(i+1, e.Name)
		}
	}
	return available, nil
}
