package main

import "fmt"

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	md, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, deps.Renderer.RenderHTML(md))
	return nil
}
