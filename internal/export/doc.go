// Package export writes the flattened output tables to CSV files. It owns
// output-directory handling (home expansion, creation) and the
// union-of-columns serialization: records in one table may disagree on
// columns, and the writer reconciles them against the table's declared order.
package export
