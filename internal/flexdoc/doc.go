// Package flexdoc reads layout documents and writes layout results.
//
// A document is YAML: the size of the container, an optional snapping
// scale and a tree of nodes whose keys mirror layout.Style. Parse decodes
// and Build validates, producing a layout.Node tree whose nodes carry their
// document IDs. Errors name the offending node by its path and key, for
// example "root.children[2]: basis: ...".
package flexdoc
