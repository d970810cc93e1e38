package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/lumeapp/lumebuild/cmd/lumebuild/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug   bool `help:"Enable debug mode."`
		Version kong.VersionFlag
		Build   commands.BuildCmd `cmd:"" help:"Compose build profiles and bundle all targets"`
		Plan    commands.PlanCmd  `cmd:"" help:"Compose build profiles and print the plan without bundling"`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
