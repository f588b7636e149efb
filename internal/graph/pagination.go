package graph

const (
	defaultPage  int32 = 1
	defaultLimit int32 = 10
)

type pageInfo struct {
	currentPage     int32
	totalPages      int32
	totalItems      int32
	hasNextPage     bool
	hasPreviousPage bool
}

func normalizePagination(p *PaginationInput) (page, limit int32) {
	page, limit = defaultPage, defaultLimit
	if p != nil {
		if p.Page > 0 {
			page = p.Page
		}
		if p.Limit > 0 {
			limit = p.Limit
		}
	}
	return page, limit
}

// paginate slices one page out of the already filtered and sorted items.
// Pages are 1-indexed; the page info is computed from the total filtered
// count.
func paginate[T any](items []T, p *PaginationInput) ([]T, pageInfo) {
	page, limit := normalizePagination(p)

	totalItems := int32(len(items))
	totalPages := (totalItems + limit - 1) / limit

	offset := (page - 1) * limit
	start := offset
	if start > totalItems {
		start = totalItems
	}
	end := offset + limit
	if end > totalItems {
		end = totalItems
	}

	return items[start:end], pageInfo{
		currentPage:     page,
		totalPages:      totalPages,
		totalItems:      totalItems,
		hasNextPage:     page < totalPages,
		hasPreviousPage: page > 1,
	}
}

// PaginationInfoResolver resolves the PaginationInfo type.
type PaginationInfoResolver struct {
	info pageInfo
}

func (p *PaginationInfoResolver) CurrentPage() int32   { return p.info.currentPage }
func (p *PaginationInfoResolver) TotalPages() int32    { return p.info.totalPages }
func (p *PaginationInfoResolver) TotalItems() int32    { return p.info.totalItems }
func (p *PaginationInfoResolver) HasNextPage() bool    { return p.info.hasNextPage }
func (p *PaginationInfoResolver) HasPreviousPage() bool {
	return p.info.hasPreviousPage
}
