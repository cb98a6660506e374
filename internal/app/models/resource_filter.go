package models

import "strings"

// ResourceFilter holds the optional catalog query parameters.
// A nil field means the parameter was not supplied at all.
type ResourceFilter struct {
	Q        *string
	Branch   *string
	Year     *string
	Sem      *string
	ExamType *string
}

// Values returns the filter as plain strings, absent parameters as "".
func (f ResourceFilter) Values() FilterValues {
	return FilterValues{
		Q:        deref(f.Q),
		Branch:   deref(f.Branch),
		Year:     deref(f.Year),
		Sem:      deref(f.Sem),
		ExamType: deref(f.ExamType),
	}
}

// FilterValues echoes the active filters back to clients
type FilterValues struct {
	Q        string `json:"q"`
	Branch   string `json:"branch"`
	Year     string `json:"year"`
	Sem      string `json:"sem"`
	ExamType string `json:"examType"`
}

// ResourcePredicate is a declarative condition over Resource fields.
// Every non-empty equality field must match exactly; a non-empty Search must
// match case-insensitively as a substring of at least one of title, subject,
// branch, year or semester. The zero value matches everything.
type ResourcePredicate struct {
	Type     ResourceType
	Branch   string
	Year     string
	Semester string
	ExamType string
	Search   string
	// Subject is compared case-insensitively but must match the whole field
	Subject string
}

// BuildResourcePredicate turns the optional query parameters into a predicate.
func BuildResourcePredicate(filter ResourceFilter) ResourcePredicate {
	return ResourcePredicate{
		Branch:   deref(filter.Branch),
		Year:     deref(filter.Year),
		Semester: deref(filter.Sem),
		ExamType: deref(filter.ExamType),
		Search:   deref(filter.Q),
	}
}

// WithType narrows the predicate to one resource type
func (p ResourcePredicate) WithType(t ResourceType) ResourcePredicate {
	p.Type = t
	return p
}

// WithBranch replaces any branch constraint with an exact match on branch
func (p ResourcePredicate) WithBranch(branch string) ResourcePredicate {
	p.Branch = branch
	return p
}

// WithSubject requires a case-insensitive exact match on subject
func (p ResourcePredicate) WithSubject(subject string) ResourcePredicate {
	p.Subject = subject
	return p
}

// Matches evaluates the predicate against a single resource
func (p ResourcePredicate) Matches(r *Resource) bool {
	if r == nil {
		return false
	}
	if p.Type != "" && r.Type != p.Type {
		return false
	}
	if p.Branch != "" && r.Branch != p.Branch {
		return false
	}
	if p.Year != "" && r.Year != p.Year {
		return false
	}
	if p.Semester != "" && r.Semester != p.Semester {
		return false
	}
	if p.ExamType != "" && r.ExamType != p.ExamType {
		return false
	}
	if p.Subject != "" && !strings.EqualFold(r.Subject, p.Subject) {
		return false
	}
	if p.Search == "" {
		return true
	}

	needle := strings.ToLower(p.Search)
	for _, field := range []string{r.Title, r.Subject, r.Branch, r.Year, r.Semester} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SortField names a sortable Resource column
type SortField string

// Sortable fields
const (
	SortByCreatedAt SortField = "createdAt"
	SortByDownloads SortField = "downloads"
	SortByTitle     SortField = "title"
)

// SortSpec orders catalog queries. Ties are broken by id in the same direction.
type SortSpec struct {
	Field      SortField
	Descending bool
}

// DefaultSort is newest first
var DefaultSort = SortSpec{Field: SortByCreatedAt, Descending: true}

// MostDownloaded orders by download count, highest first
var MostDownloaded = SortSpec{Field: SortByDownloads, Descending: true}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
