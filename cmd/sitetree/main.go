// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// SiteTree is a tool to build perfect phylogenies
// from binary character matrices
// under the infinite sites model.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/cmd/sitetree/mtx"
	"github.com/js-arias/sitetree/cmd/sitetree/tree"
)

var app = &command.Command{
	Usage: "sitetree <command> [<argument>...]",
	Short: "a tool to build perfect phylogenies",
}

func init() {
	app.Add(mtx.Command)
	app.Add(tree.Command)
}

func main() {
	app.Main()
}
