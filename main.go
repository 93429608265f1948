package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/MixinNetwork/canvas/config"
	"github.com/MixinNetwork/canvas/store"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bp := flag.String("d", "", "database directory path, overrides the configuration")
	cp := flag.String("c", "~/.canvas/registry/config.toml", "configuration file path")
	flag.Parse()

	conf, err := config.Setup(expandHome(*cp))
	if err != nil {
		panic(err)
	}
	if *bp == "" {
		*bp = conf.Store.Dir
	}

	db, err := store.OpenBadger(ctx, expandHome(*bp))
	if err != nil {
		panic(err)
	}

	app, err := NewApp(db, conf)
	if err == nil {
		err = app.Run(os.Stdout, flag.Args())
	}
	db.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	usr, err := user.Current()
	if err != nil {
		panic(err)
	}
	return filepath.Join(usr.HomeDir, p[2:])
}
