// Package curate extracts structured metadata from raw HTML documents and
// curates it into a normalized content record for syndication and indexing
// consumers. It surfaces embedded JSON-LD blocks, Open Graph and Twitter
// Card metadata, page meta tags and a single curated title.
//
// Content flows through a Pipeline of stateless Transformers. Each stage
// accretes a capability onto the content value: GovernedContent becomes
// QueryableHTMLContent, then CuratableContent, and optionally
// ReadableContent. Consumers narrow the opaque Content with the Is* guards.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, lingua/).
package curate
