// FILE: msglog/src/cmd/msglog/main.go
package main

import (
	"errors"
	"os"
)

func main() {
	InitOutputHandler(hasQuietFlag(os.Args[1:]))

	router := NewCommandRouter(os.Stdout)
	if err := router.Route(os.Args[1:]); err != nil {
		code := 1
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			code = exitErr.code
		}
		FatalError(code, "Error: %v\n", err)
	}
}

// hasQuietFlag finds -q/--quiet before flags are parsed so early errors respect it
func hasQuietFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-q", "--quiet", "-quiet", "-q=true", "--quiet=true":
			return true
		}
	}
	return false
}
