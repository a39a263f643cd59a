package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/voidvault/voidvault-cli/internal/buildinfo"
	"github.com/voidvault/voidvault-cli/internal/client/cli"
	"github.com/voidvault/voidvault-cli/internal/client/config"
	"github.com/voidvault/voidvault-cli/internal/flagx"
)

// focusedPost extracts the -p flag, which deep-links straight into one
// post after sign-in.
func focusedPost() string {
	var postID string

	args := flagx.FilterArgs(os.Args[1:], []string{"-p"})

	fs := flag.NewFlagSet("post", flag.ContinueOnError)
	fs.StringVar(&postID, "p", "", "open this post id after start")
	_ = fs.Parse(args)

	return postID
}

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx, focusedPost())
}
