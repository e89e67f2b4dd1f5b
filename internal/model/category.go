package model

// Plan category names as they appear in the dictionary table. Matched
// exactly; ingestion rejects anything else it cannot resolve.
const (
	CategoryIssuance   = "видача"
	CategoryCollection = "збір"
)

type Category struct {
	ID   int64
	Name string
}

// IsPlanCategory reports whether name is one of the two well-known plan
// categories.
func IsPlanCategory(name string) bool {
	return name == CategoryIssuance || name == CategoryCollection
}
