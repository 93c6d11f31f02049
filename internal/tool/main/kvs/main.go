package main

import (
	"context"
	"os"

	"github.com/allen1211/kvput/internal/tool"
)

func main() {
	os.Exit(tool.RunBulk(context.Background(), os.Args[1:], os.Stdout, os.Stderr, tool.DialStore))
}
