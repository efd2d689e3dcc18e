// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentTemplate is the predicate function for documenttemplate builders.
type DocumentTemplate func(*sql.Selector)

// FilingRule is the predicate function for filingrule builders.
type FilingRule func(*sql.Selector)

// ProcessJob is the predicate function for processjob builders.
type ProcessJob func(*sql.Selector)
