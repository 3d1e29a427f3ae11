// cmd/asenrich/main.go
package main

import (
	"asenrich/internal/app"
	"asenrich/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
