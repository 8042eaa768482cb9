// Package rules holds the fixed extension table used to classify files.
//
// The table is an ordered list of families. Each family owns a category, the
// extensions that belong to it and an optional subcategory partition of those
// extensions. Families are evaluated in order and the first family that lists
// an extension wins, so extensions shared by several families (.json, .xml)
// always resolve to the same category. The table is immutable; there is no
// way to register additional rules at runtime.
package rules
