package model

import (
	"testing"

	"github.com/lib/pq"
)

func TestCourseHasBranch(t *testing.T) {
	cse := CourseModel{
		CourseName:     "B.Tech",
		CourseBranches: pq.StringArray{"CSE", "ECE", "MECH"},
	}

	for _, b := range cse.CourseBranches {
		if !cse.HasBranch(b) {
			t.Fatalf("HasBranch(%q) = false for a listed branch", b)
		}
	}
	if cse.HasBranch("CIVIL") {
		t.Fatal("HasBranch must reject branches outside the course")
	}
	if cse.HasBranch("cse") {
		t.Fatal("branch comparison is exact, not case-folded")
	}
}
