package main

import (
	"fmt"
	"os"

	"github.com/iaminfinityiq/architect/pkg/driver"
)

func runFixtures(args []string) int {
	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}
	passed, failed := 0, 0
	for _, dir := range dirs {
		fixtures, err := driver.LoadFixtures(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		for _, fixture := range fixtures {
			outcome := fixture.Run()
			fmt.Fprintln(os.Stdout, outcome.Summary())
			if outcome.Passed {
				passed++
			} else {
				failed++
			}
		}
	}
	fmt.Fprintf(os.Stdout, "%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}
