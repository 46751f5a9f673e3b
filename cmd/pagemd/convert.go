package main

import "fmt"

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	html, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	md, err := deps.Converter.Convert(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, md)
	return nil
}
