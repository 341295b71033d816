package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal. When the terminal renderer is
// not available, md is printed as is.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
