package fieldmap

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Field returns the API field name for a logical field of object: the
// configured override, else the built-in default, else logical unchanged.
func (c *Config) Field(object, logical string) string {
	if c != nil {
		if api, ok := c.FieldMap[object][logical]; ok && api != "" {
			return api
		}
	}
	if api, ok := defaultFields[object][logical]; ok {
		return api
	}
	return logical
}

// Value returns the picklist value for a logical label in category, or the
// label unchanged when no mapping is configured.
func (c *Config) Value(category, logical string) string {
	if c == nil {
		return logical
	}
	values := c.Stages[category]
	if len(values) == 0 {
		return logical
	}

	if v, ok := values[logical]; ok {
		return v
	}
	if !caseInsensitive[category] {
		return logical
	}

	if v, ok := values[strings.ToLower(logical)]; ok {
		return v
	}
	// Sorted so that keys differing only by case resolve the same way every run.
	keys := lo.Keys(values)
	sort.Strings(keys)
	for _, k := range keys {
		if strings.EqualFold(k, logical) {
			return values[k]
		}
	}
	return logical
}
