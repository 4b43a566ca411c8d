// Package cleaner defines the stages an HTML document passes through on its
// way to plain text. Each stage takes markup in and hands markup (or text)
// to the next one.
package cleaner

// Cleaner transforms HTML content. The lists stage, for example, replaces
// every ol and ul with its plain-text outline.
type Cleaner interface {
	// Clean transforms the input HTML.
	// The output format depends on the implementation (html or plain text).
	Clean(html string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
