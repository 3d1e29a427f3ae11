// cmd/asunblocks/main.go
package main

import (
	"asenrich/internal/appshell"
	"asenrich/internal/unblockapp"
)

func main() {
	appshell.Main(unblockapp.RunContext)
}
