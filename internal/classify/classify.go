// Package classify maps the free-text fields that come in on spreadsheet
// rows (descriptions, cost elements, vessel and facility names) onto the
// closed category sets the aggregators report against. Explicit values from
// the upload always win; keyword matching is the fallback, with the keyword
// tables held in refdata rather than inline.
package classify

import (
	"strings"

	"github.com/gulfops/vesselmetrics/internal/domain/models"
	"github.com/gulfops/vesselmetrics/internal/refdata"
)

// Classifier answers classification queries against a loaded set of
// reference tables. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	tables     *refdata.Tables
	stripSet   map[string]struct{}
	aliases    map[string]string
	canonicals map[string]struct{}
}

// NewClassifier precomputes lookup maps from the reference tables.
func NewClassifier(tables *refdata.Tables) *Classifier {
	c := &Classifier{
		tables:     tables,
		stripSet:   make(map[string]struct{}, len(tables.LocationStripTokens)),
		aliases:    make(map[string]string),
		canonicals: make(map[string]struct{}, len(tables.Facilities)),
	}
	for _, tok := range tables.LocationStripTokens {
		c.stripSet[strings.ToLower(strings.TrimSpace(tok))] = struct{}{}
	}
	for _, f := range tables.Facilities {
		canonical := strings.ToLower(strings.TrimSpace(f.Canonical))
		c.canonicals[canonical] = struct{}{}
		for _, alias := range f.Aliases {
			c.aliases[strings.ToLower(strings.TrimSpace(alias))] = canonical
		}
	}
	return c
}

// ProjectType resolves a cost line to its project classification. An explicit
// enum value wins unchanged; otherwise the ordered keyword groups are scanned
// over the concatenated free-text fields, first match wins, and everything
// unmatched lands in Other.
func (c *Classifier) ProjectType(description, costElement, lcNumber string, explicit models.ProjectType) models.ProjectType {
	if models.KnownProjectType(explicit) {
		return explicit
	}

	haystack := strings.ToLower(description + " " + costElement + " " + lcNumber)
	for _, group := range c.tables.ProjectKeywords {
		for _, kw := range group.Keywords {
			if kw != "" && strings.Contains(haystack, kw) {
				return models.ProjectType(group.Type)
			}
		}
	}
	return models.ProjectOther
}

// VesselType buckets a vessel by name keywords, defaulting to "Other".
func (c *Classifier) VesselType(name string) string {
	lowered := strings.ToLower(name)
	for _, rule := range c.tables.VesselClasses {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lowered, kw) {
				return rule.Type
			}
		}
	}
	return "Other"
}

// Fluid classifies a bulk action into a fluid family. The upload's explicit
// flags win; the keyword table is the fallback.
func (c *Classifier) Fluid(a models.BulkAction) models.FluidFamily {
	if a.IsDrillingFluid {
		return models.FluidDrilling
	}
	if a.IsCompletionFluid {
		return models.FluidCompletion
	}

	haystack := strings.ToLower(a.BulkType + " " + a.BulkDescription + " " + a.FluidSpecificType)
	for _, group := range c.tables.FluidKeywords {
		for _, kw := range group.Keywords {
			if kw != "" && strings.Contains(haystack, kw) {
				return models.FluidFamily(group.Family)
			}
		}
	}
	return models.FluidNone
}
