package mock

import "github.com/seihin/faqgen"

var _ faqgen.Converter = (*Converter)(nil)

// Converter is a mock implementation of faqgen.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
