package domain

// CutoffRecord mirrors one row of the read-only cutoffs table. The chatbot
// never writes this table; cmd/cutoffs loads it from published sheets.
type CutoffRecord struct {
	CollegeName       string  `json:"college_name"`
	BranchCode        string  `json:"branch_code"`
	CategoryCode      string  `json:"category_code"`
	ClosingPercentile float64 `json:"closing_percentile"`
	Year              int     `json:"year"`
}
