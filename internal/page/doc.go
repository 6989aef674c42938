// Package page models one fetched Baseball Almanac yearly page.
//
// A Document wraps a single parsed HTML tree and exposes it both as a goquery
// document for CSS selection and as the raw x/net/html node for XPath lookups
// via htmlquery. Absence of any element on the page is treated as "feature
// absent", never as an error: the header parser reports no context and the
// events extractor returns an empty block.
package page
