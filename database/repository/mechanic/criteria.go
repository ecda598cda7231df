package mechanicRepo

import (
	"regexp"
	"slices"
	"strings"

	"github.com/Mareeswari-2005/Sara-The-road-assist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchCriteria describes a mechanic search.
//
// Service and City form the base filter. Terms (or Raw, when no term
// survived sanitizing) form the free-text part: a record matches when any
// term is a case-insensitive substring of name, address, city or street, or
// when its services contain a term exactly.
type SearchCriteria struct {
	Service string
	City    string
	Terms   []string
	Raw     string
}

// HasText reports whether the criteria carry a free-text part.
func (c SearchCriteria) HasText() bool {
	return len(c.Terms) > 0 || c.Raw != ""
}

func (c SearchCriteria) patterns() []string {
	if len(c.Terms) > 0 {
		return c.Terms
	}
	return []string{c.Raw}
}

// Matches evaluates the criteria against a single record.
func (c SearchCriteria) Matches(m models.Mechanic) bool {
	if c.Service != "" && !slices.Contains(m.Services, c.Service) {
		return false
	}
	if c.City != "" && !containsFold(m.City, c.City) {
		return false
	}
	if !c.HasText() {
		return true
	}
	for _, p := range c.patterns() {
		for _, field := range []string{m.Name, m.Address, m.City, m.Street} {
			if containsFold(field, p) {
				return true
			}
		}
	}
	for _, t := range c.Terms {
		if slices.Contains(m.Services, t) {
			return true
		}
	}
	return false
}

// Filter renders the criteria as a MongoDB query document.
func (c SearchCriteria) Filter() bson.M {
	filter := bson.M{}
	if c.Service != "" {
		filter["services"] = c.Service
	}
	if c.City != "" {
		filter["city"] = insensitive(regexp.QuoteMeta(c.City))
	}
	if !c.HasText() {
		return filter
	}

	quoted := make([]string, 0, len(c.patterns()))
	for _, p := range c.patterns() {
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	regex := insensitive(strings.Join(quoted, "|"))

	terms := bson.A{}
	for _, t := range c.Terms {
		terms = append(terms, t)
	}
	filter["$or"] = bson.A{
		bson.M{"name": regex},
		bson.M{"address": regex},
		bson.M{"city": regex},
		bson.M{"street": regex},
		bson.M{"services": bson.M{"$in": terms}},
	}
	return filter
}

func insensitive(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
