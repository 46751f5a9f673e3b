package main

import "fmt"

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := deps.Server
	s.Addr = c.Addr
	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()
	return s.Close()
}
