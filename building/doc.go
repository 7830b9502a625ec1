// Package building maps campus building names to graph nodes.
//
// A Registry is built once from (name, node) entries and is read-only
// afterwards, so it can be shared by concurrent requests.
//
//   - Lookup resolves a name by exact, case-sensitive match. When a name is
//     listed twice the first entry wins.
//   - NameAt answers "is this node a building?" for instruction synthesis.
//   - Nearest finds the closest building to a coordinate using a k-d tree
//     over unit-sphere positions, where chord order equals great-circle order.
//   - Names and WithPrefix list names in case-insensitive order from a B-tree,
//     for listings and autocomplete.
package building
