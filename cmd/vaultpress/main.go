package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/vaultpress/cmd/vaultpress/commands"
	"git.home.luguber.info/inful/vaultpress/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("vaultpress"),
		kong.Description("Convert Obsidian markdown notes into Hugo page bundles"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
