// Package outline extracts the addressable article units from a markdown
// document's heading structure.
//
// A document contributes one item per ### heading. The enclosing # and ##
// headings provide the item's category context; documents without them fall
// back to fixed placeholder labels. Extraction is a single forward pass and is
// deterministic: the same document always yields the same item sequence.
package outline
