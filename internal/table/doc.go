// Package table extracts statistics tables from a yearly page.
//
// Each boxed table is consumed in a single left-to-right, top-to-bottom scan
// with no backtracking. The scan carries explicit state between rows: the
// identity tokens gathered so far, the expected column count declared by a
// header colspan, the resolved column names, and the pending rowspan carries.
//
// Table identity is inferred from free-text header fragments, since the pages
// carry no machine-readable tag for what a table is. Tables that never yield
// an identity, a column set, and at least one record are dropped silently.
package table
