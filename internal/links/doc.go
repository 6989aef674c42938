// Package links turns the raw anchors of the Baseball Almanac year-menu page
// into validated yearly-page links.
//
// Only hrefs matching the yr<YYYY><a|n>.shtml path pattern are kept. The
// American League code ("a") is rejected for years before 1901 regardless of
// the requested filter, since the league did not exist before then under this
// data source's convention.
package links
