package main

import (
	"github.com/gomdp/gomdp/examples"
)

func main() {
	examples.Chain()
}
