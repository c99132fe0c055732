package catalog

import (
	"testing"
)

func TestAll_CatalogIsWellFormed(t *testing.T) {
	templates := All()
	if len(templates) == 0 {
		t.Fatal("catalog is empty")
	}

	validCategories := map[Category]bool{
		CategoryLeadGen: true, CategoryProductLaunch: true, CategoryWebinar: true,
		CategoryEcommerce: true, CategoryMembership: true, CategorySummit: true,
	}
	validComplexities := map[Complexity]bool{
		ComplexitySimple: true, ComplexityMedium: true, ComplexityAdvanced: true,
	}

	seen := make(map[string]bool)
	for _, tmpl := range templates {
		if tmpl.ID == "" {
			t.Error("template with empty id")
		}
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true

		if !validCategories[tmpl.Category] {
			t.Errorf("%s: invalid category %q", tmpl.ID, tmpl.Category)
		}
		if !validComplexities[tmpl.Complexity] {
			t.Errorf("%s: invalid complexity %q", tmpl.ID, tmpl.Complexity)
		}
		if tmpl.ConversionRate < 10 || tmpl.ConversionRate > 60 {
			t.Errorf("%s: conversion rate %d outside 10-60", tmpl.ID, tmpl.ConversionRate)
		}
		if _, ok := SetupMinutes(tmpl.EstimatedSetupTime); !ok {
			t.Errorf("%s: unparseable setup time %q", tmpl.ID, tmpl.EstimatedSetupTime)
		}
		if len(tmpl.Tags) == 0 {
			t.Errorf("%s: no tags", tmpl.ID)
		}
		if len(tmpl.SuggestedFor) < 2 {
			t.Errorf("%s: fewer than 2 suggested use cases", tmpl.ID)
		}
		if len(tmpl.Steps) == 0 {
			t.Errorf("%s: no steps", tmpl.ID)
		}
	}
}

func TestAll_EveryCategoryRepresented(t *testing.T) {
	counts := make(map[Category]int)
	for _, tmpl := range All() {
		counts[tmpl.Category]++
	}
	for _, c := range []Category{
		CategoryLeadGen, CategoryProductLaunch, CategoryWebinar,
		CategoryEcommerce, CategoryMembership, CategorySummit,
	} {
		if counts[c] == 0 {
			t.Errorf("no templates in category %q", c)
		}
	}
}
