package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPrincipalScopeIssue(t *testing.T) {
	btechBranches := []string{"CSE", "ECE", "Mechanical"}

	tests := []struct {
		name     string
		courses  []string
		branch   *string
		branches []string
		wantOK   bool
	}{
		{"no branch pin always fine", []string{"B.Tech", "MBA"}, nil, nil, true},
		{"empty branch treated as unpinned", []string{"B.Tech", "MBA"}, strPtr(""), nil, true},
		{"branch with zero courses rejected", nil, strPtr("CSE"), nil, false},
		{"branch with two courses rejected", []string{"B.Tech", "MBA"}, strPtr("CSE"), nil, false},
		{"branch of the single course accepted", []string{"B.Tech"}, strPtr("ECE"), btechBranches, true},
		{"branch of another course rejected", []string{"B.Tech"}, strPtr("Finance"), btechBranches, false},
		{"single course with no branches rejects any pin", []string{"MBA"}, strPtr("Finance"), nil, false},
		{"branch match is case sensitive", []string{"B.Tech"}, strPtr("cse"), btechBranches, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue := principalScopeIssue(tt.courses, tt.branch, tt.branches)
			if tt.wantOK {
				assert.Empty(t, issue)
			} else {
				assert.NotEmpty(t, issue)
			}
		})
	}
}
