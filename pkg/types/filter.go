package types

// Filter - параметры списка из query-строки.
//
//	/api/assets?page=2&limit=10&sortBy=name&sortOrder=asc&search=bomba&status=active&type=pump,press
type Filter struct {
	Search    string                 `json:"search,omitempty"`
	SortBy    string                 `json:"sortBy,omitempty"`
	SortOrder string                 `json:"sortOrder,omitempty"`
	Filter    map[string]interface{} `json:"filter,omitempty"`
	Limit     int                    `json:"limit"`
	Offset    int                    `json:"offset"`
	Page      int                    `json:"page"`
}

// Pagination - метаданные списка.
type Pagination struct {
	Total      uint64 `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
}

func NewPagination(total uint64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
