// Command woql parses queries written in the call syntax and prints them.
//
//	woql parse query.woql --format yaml
//	echo 'triple($A, "p", $B)' | woql vars
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
