package mock

import "github.com/fwojciec/curate"

var _ curate.Converter = (*Converter)(nil)

// Converter is a mock implementation of curate.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
