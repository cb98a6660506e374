package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleResource() *Resource {
	return &Resource{
		Title:    "DBMS – CSE – 3rd Year – 2024",
		Subject:  "DBMS",
		Type:     ResourceTypePaper,
		Branch:   "CSE",
		Year:     "3rd Year",
		Semester: "Semester 5",
		ExamType: "Semester Final",
	}
}

func TestBuildResourcePredicate(t *testing.T) {
	t.Run("absent parameters impose nothing", func(t *testing.T) {
		pred := BuildResourcePredicate(ResourceFilter{})
		assert.Equal(t, ResourcePredicate{}, pred)
		assert.True(t, pred.Matches(sampleResource()))
	})

	t.Run("empty values are treated as absent", func(t *testing.T) {
		pred := BuildResourcePredicate(ResourceFilter{Q: strPtr(""), Branch: strPtr("")})
		assert.Equal(t, ResourcePredicate{}, pred)
	})

	t.Run("every supplied parameter is carried", func(t *testing.T) {
		pred := BuildResourcePredicate(ResourceFilter{
			Q:        strPtr("os"),
			Branch:   strPtr("CSE"),
			Year:     strPtr("2nd Year"),
			Sem:      strPtr("Semester 3"),
			ExamType: strPtr("Mid Exam"),
		})
		assert.Equal(t, ResourcePredicate{
			Branch:   "CSE",
			Year:     "2nd Year",
			Semester: "Semester 3",
			ExamType: "Mid Exam",
			Search:   "os",
		}, pred)
	})
}

func TestResourcePredicate_Matches(t *testing.T) {
	tests := []struct {
		name string
		pred ResourcePredicate
		want bool
	}{
		{"zero predicate", ResourcePredicate{}, true},
		{"type match", ResourcePredicate{Type: ResourceTypePaper}, true},
		{"type mismatch", ResourcePredicate{Type: ResourceTypeNote}, false},
		{"branch exact", ResourcePredicate{Branch: "CSE"}, true},
		{"branch is case sensitive", ResourcePredicate{Branch: "cse"}, false},
		{"year mismatch", ResourcePredicate{Year: "2nd Year"}, false},
		{"semester match", ResourcePredicate{Semester: "Semester 5"}, true},
		{"exam type mismatch", ResourcePredicate{ExamType: "Mid Exam"}, false},
		{"subject ignores case", ResourcePredicate{Subject: "dbms"}, true},
		{"subject must match whole field", ResourcePredicate{Subject: "DB"}, false},
		{"search in title ignoring case", ResourcePredicate{Search: "dbms – cse"}, true},
		{"search in semester", ResourcePredicate{Search: "semester 5"}, true},
		{"search in year", ResourcePredicate{Search: "3RD"}, true},
		{"search does not look at exam type", ResourcePredicate{Search: "Final"}, false},
		{"search metacharacters are literal", ResourcePredicate{Search: "D.MS"}, false},
		{"search and branch combined", ResourcePredicate{Search: "dbms", Branch: "ECE"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred.Matches(sampleResource()))
		})
	}

	assert.False(t, ResourcePredicate{}.Matches(nil))
}

func TestResourcePredicate_Narrowing(t *testing.T) {
	base := BuildResourcePredicate(ResourceFilter{Branch: strPtr("ECE"), Q: strPtr("dbms")})

	byBranch := base.WithBranch("CSE")
	assert.Equal(t, "CSE", byBranch.Branch)
	assert.Equal(t, "ECE", base.Branch, "narrowing returns a copy")
	assert.True(t, byBranch.Matches(sampleResource()))

	bySubject := BuildResourcePredicate(ResourceFilter{}).WithSubject("dBmS").WithType(ResourceTypePaper)
	assert.True(t, bySubject.Matches(sampleResource()))
}

func TestResourceFilter_Values(t *testing.T) {
	values := ResourceFilter{Q: strPtr("os"), ExamType: strPtr("Mid Exam")}.Values()
	assert.Equal(t, FilterValues{Q: "os", ExamType: "Mid Exam"}, values)
}

func TestResourceType_IsValid(t *testing.T) {
	assert.True(t, ResourceTypePaper.IsValid())
	assert.True(t, ResourceTypeNote.IsValid())
	assert.False(t, ResourceType("book").IsValid())
	assert.False(t, ResourceType("").IsValid())
}
