// Package prompt renders the instruction template for one exchange.
package prompt

import "fmt"

// Request carries the two values substituted into Template.
type Request struct {
	History string
	Input   string
}

// Render returns Template with the history and input filled in. Both values
// are inserted verbatim.
func Render(req Request) string {
	return fmt.Sprintf(Template, req.History, req.Input)
}
