package rules

import (
	"strings"

	"golang.org/x/text/cases"
)

// Rule is one reachable (extension, category, subcategory) triple.
type Rule struct {
	Extension   string
	Category    Category
	Subcategory Subcategory
}

type tableIndex struct {
	categories    map[string]Category
	subcategories map[Category]map[string]Subcategory
}

var index = buildIndex(families)

func buildIndex(table []Family) tableIndex {
	idx := tableIndex{
		categories:    make(map[string]Category),
		subcategories: make(map[Category]map[string]Subcategory),
	}
	for _, family := range table {
		for _, ext := range family.Extensions {
			key := Normalize(ext)
			if _, taken := idx.categories[key]; !taken {
				idx.categories[key] = family.Category
			}
		}
		subs := make(map[string]Subcategory)
		for _, sub := range family.Subcategories {
			for _, ext := range sub.Extensions {
				key := Normalize(ext)
				if _, taken := subs[key]; !taken {
					subs[key] = sub.Name
				}
			}
		}
		idx.subcategories[family.Category] = subs
	}
	return idx
}

// Normalize folds ext to the lookup form used by the table: Unicode
// case-folded with exactly one leading dot. Empty input stays empty.
// Whitespace is part of the extension and is kept.
func Normalize(ext string) string {
	if ext == "" || ext == "." {
		return ""
	}
	folded := cases.Fold().String(ext)
	if !strings.HasPrefix(folded, ".") {
		folded = "." + folded
	}
	return folded
}

// CategoryOf returns the category for ext. Lookup is total: unknown and empty
// extensions map to Uncategorized.
func CategoryOf(ext string) Category {
	key := Normalize(ext)
	if key == "" {
		return Uncategorized
	}
	if cat, ok := index.categories[key]; ok {
		return cat
	}
	return Uncategorized
}

// SubcategoryOf looks up ext inside the subcategory partition of cat. The
// catch-all category never has subcategories.
func SubcategoryOf(cat Category, ext string) (Subcategory, bool) {
	if cat == Uncategorized {
		return "", false
	}
	subs, ok := index.subcategories[cat]
	if !ok {
		return "", false
	}
	sub, ok := subs[Normalize(ext)]
	return sub, ok
}

// Categories returns every category in table order with the catch-all last.
func Categories() []Category {
	out := make([]Category, 0, len(families)+1)
	for _, family := range families {
		out = append(out, family.Category)
	}
	return append(out, Uncategorized)
}

// Families returns a deep copy of the rule table in evaluation order.
func Families() []Family {
	out := make([]Family, len(families))
	for i, family := range families {
		cp := Family{
			Category:      family.Category,
			Extensions:    append([]string(nil), family.Extensions...),
			Subcategories: make([]SubcategoryRule, len(family.Subcategories)),
		}
		for j, sub := range family.Subcategories {
			cp.Subcategories[j] = SubcategoryRule{Name: sub.Name, Extensions: append([]string(nil), sub.Extensions...)}
		}
		out[i] = cp
	}
	return out
}

// All flattens the table into the rules that lookups can actually produce.
// Extensions shadowed by an earlier family are omitted.
func All() []Rule {
	var out []Rule
	for _, family := range families {
		for _, ext := range family.Extensions {
			key := Normalize(ext)
			if index.categories[key] != family.Category {
				continue
			}
			sub, _ := SubcategoryOf(family.Category, key)
			out = append(out, Rule{Extension: key, Category: family.Category, Subcategory: sub})
		}
	}
	return out
}
