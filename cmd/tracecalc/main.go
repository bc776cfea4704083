// Command tracecalc evaluates integer arithmetic expressions and prints every
// step of the reduction.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
