// Codegen prints the access code for each email given on the command line.
// Useful for handing a code to a visitor without starting the server.
package main

import (
	"fmt"
	"os"

	"portfolio-site/server/internal/accesscode"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: codegen <email> [email ...]")
		os.Exit(2)
	}
	for _, email := range os.Args[1:] {
		fmt.Printf("%s\t%s\n", email, accesscode.Compute(email))
	}
}
