package webapi

import (
	"context"
	"strconv"
)

const (
	// pageLimit is the page size of the first paged request.
	pageLimit = 50

	// pagedItemsLimit caps the number of items loadAllPages collects.
	// Longer result sets (huge playlists, libraries) are truncated.
	pagedItemsLimit = 200
)

// loadAllPages sends r repeatedly with limit/offset parameters and
// returns the aggregated items, in server order, up to pagedItemsLimit.
//
// The step size is taken from each page's echoed limit and offset, so the
// server's pagination convention governs it. Use with GET requests.
func loadAllPages[T any](ctx context.Context, c *Client, r *Request) ([]T, error) {
	results := make([]T, 0)
	limit := pageLimit
	offset := 0

	for {
		req := r.clone().
			Param("limit", strconv.Itoa(limit)).
			Param("offset", strconv.Itoa(offset))

		page, err := load[Page[T]](ctx, c, req)
		if err != nil {
			return nil, err
		}

		results = append(results, page.Items...)

		// An empty page would never make progress.
		if len(page.Items) == 0 {
			break
		}
		if page.Total > len(results) && len(results) < pagedItemsLimit {
			limit = page.Limit
			offset = page.Offset + page.Limit
		} else {
			break
		}
	}

	if len(results) > pagedItemsLimit {
		results = results[:pagedItemsLimit]
	}
	return results, nil
}
