// Where: cmd/vcdbrand/main.go
// What: CLI entrypoint.
// Why: Execute vcdbrand commands with configured dependencies.
package main

import (
	"os"

	"github.com/vcdtools/vcdbrand/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], buildDependencies()))
}
