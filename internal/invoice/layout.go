package invoice

import "fmt"

// Plan assigns line-item rows to pages. Every page repeats the table
// header; only the last page carries the summary block, so the per-page
// capacity is computed with the summary reserved on each of them.
type Plan struct {
	RowsPerPage int
	PageCount   int
	itemCount   int
}

// PlanLayout computes the pagination for itemCount rows given the page
// content height, the header row height, the estimated item row height
// and the total height of the summary block. All heights share one unit
// (the composer uses millimetres).
func PlanLayout(contentHeight, headerHeight, rowHeight, summaryHeight float64, itemCount int) (Plan, error) {
	if rowHeight <= 0 {
		return Plan{}, fmt.Errorf("%w: row height %.2f", ErrLayoutOverflow, rowHeight)
	}

	maxItems := int((contentHeight - headerHeight - summaryHeight) / rowHeight)
	if maxItems <= 0 {
		return Plan{}, fmt.Errorf("%w: capacity %d rows per page", ErrLayoutOverflow, maxItems)
	}

	pages := 1
	if itemCount > maxItems {
		pages = (itemCount + maxItems - 1) / maxItems
	}

	return Plan{RowsPerPage: maxItems, PageCount: pages, itemCount: itemCount}, nil
}

// Rows returns the half-open item index range [start, end) assigned to
// the given 1-based page.
func (p Plan) Rows(page int) (start, end int) {
	start = (page - 1) * p.RowsPerPage
	end = start + p.RowsPerPage
	if end > p.itemCount {
		end = p.itemCount
	}
	return start, end
}

// IsLastPage reports whether the given 1-based page is the final one,
// the only page that renders the summary block and the payment slip.
func (p Plan) IsLastPage(page int) bool {
	return page == p.PageCount
}
