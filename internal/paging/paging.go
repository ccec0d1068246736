package paging

// Info describes one page of a larger result set.
type Info struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Compute derives navigation flags from a total row count. Inputs are
// pre-validated (total >= 0, page >= 1, 1 <= limit <= 50). totalPages is
// 0 when the result set is empty.
func Compute(total, page, limit int) Info {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Info{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
