// Package normalisers provides the text transformations applied to a
// challenge CSV. Each sub-package implements one driven port:
//
//   - csvline: LineNormaliser, strips BOMs, quotes and field whitespace
//   - header: HeaderCanonicaliser, inserts or rewrites the header line
package normalisers
