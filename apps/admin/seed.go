package main

import "context"

// seed loads the default course catalog. It is a no-op when courses exist.
func (cli *commandLine) seed() error {
	return cli.courseSvc.Seed(context.Background())
}
