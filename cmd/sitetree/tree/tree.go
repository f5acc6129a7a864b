// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree is a metapackage for commands
// that dealt with perfect phylogenies.
package tree

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/cmd/sitetree/tree/build"
	"github.com/js-arias/sitetree/cmd/sitetree/tree/dot"
	"github.com/js-arias/sitetree/cmd/sitetree/tree/draw"
	"github.com/js-arias/sitetree/cmd/sitetree/tree/export"
	"github.com/js-arias/sitetree/cmd/sitetree/tree/list"
	"github.com/js-arias/sitetree/cmd/sitetree/tree/terms"
)

var Command = &command.Command{
	Usage: "tree <command> [<argument>...]",
	Short: "commands for perfect phylogenies",
}

func init() {
	Command.Add(build.Command)
	Command.Add(dot.Command)
	Command.Add(draw.Command)
	Command.Add(export.Command)
	Command.Add(list.Command)
	Command.Add(terms.Command)
}
