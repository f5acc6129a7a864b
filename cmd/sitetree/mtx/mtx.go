// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mtx is a metapackage for commands
// that dealt with binary character matrices.
package mtx

import (
	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/cmd/sitetree/mtx/add"
	"github.com/js-arias/sitetree/cmd/sitetree/mtx/check"
	"github.com/js-arias/sitetree/cmd/sitetree/mtx/list"
	"github.com/js-arias/sitetree/cmd/sitetree/mtx/plot"
	"github.com/js-arias/sitetree/cmd/sitetree/mtx/sortcmd"
)

var Command = &command.Command{
	Usage: "mtx <command> [<argument>...]",
	Short: "commands for binary character matrices",
}

func init() {
	Command.Add(add.Command)
	Command.Add(check.Command)
	Command.Add(list.Command)
	Command.Add(plot.Command)
	Command.Add(sortcmd.Command)
}
