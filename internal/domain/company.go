package domain

import "sort"

// CompanyInput is one row of the input sheet. Index is the 0-based row order
// and is used to put results back in input order after concurrent processing.
type CompanyInput struct {
	Index int
	Name  string
}

// CompanyResult is everything discovered for one company.
//
// Absent URLs are "" and their validity flags stay false. CareersPage is only
// set when Website is set, and Jobs is only non-empty when CareersPage is set.
type CompanyResult struct {
	Index        int          `json:"index"`
	Name         string       `json:"name"`
	Website      string       `json:"website"`
	WebsiteValid bool         `json:"websiteValid"`
	CareersPage  string       `json:"careersPage"`
	CareersValid bool         `json:"careersValid"`
	Jobs         []JobPosting `json:"jobs"`
}

// NewCompanyResult returns the all-absent result for a company.
func NewCompanyResult(in CompanyInput) CompanyResult {
	return CompanyResult{
		Index: in.Index,
		Name:  in.Name,
		Jobs:  []JobPosting{},
	}
}

func (r CompanyResult) ValidJobs() int {
	n := 0
	for _, j := range r.Jobs {
		if j.Valid {
			n++
		}
	}
	return n
}

// SortByIndex puts results back in input order. Equal indexes keep their
// relative order.
func SortByIndex(rs []CompanyResult) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Index < rs[j].Index })
}
