// Command attrq sorts, filters, and views JSON files of attribute
// records.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
