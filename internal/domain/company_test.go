package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByIndex(t *testing.T) {
	rs := []CompanyResult{
		{Index: 2, Name: "C"},
		{Index: 0, Name: "A"},
		{Index: 1, Name: "B1"},
		{Index: 1, Name: "B2"},
	}

	SortByIndex(rs)

	var names []string
	for _, r := range rs {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"A", "B1", "B2", "C"}, names)
}

func TestNewCompanyResult_AllAbsent(t *testing.T) {
	r := NewCompanyResult(CompanyInput{Index: 3, Name: "Acme"})

	assert.Equal(t, 3, r.Index)
	assert.Empty(t, r.Website)
	assert.NotNil(t, r.Jobs)
	assert.Zero(t, r.ValidJobs())
}
