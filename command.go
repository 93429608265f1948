package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MixinNetwork/canvas/config"
	"github.com/MixinNetwork/canvas/nft"
)

const usage = `usage: canvas [-d dir] [-c config] <command> [args]

commands:
  mint721 -owner ADDR -name NAME [-ipfs HASH] [-s3 KEY]
  mint1155 -owner ADDR -name NAME -amount N [-ipfs HASH] [-s3 KEY]
  batch1155 -owner ADDR NAME:N [NAME:N ...]
  uri 721|1155 ID
  owner 721|1155 NAME
  id 721|1155 NAME
  isown 721|1155 ADDR NAME
  names 721|1155
  supply
  receipts [-limit N] 721|1155
  metadata -name NAME [-description D] [-image URL] [-point N] [-level N]`

type App struct {
	collectible *nft.CollectibleRegistry
	fungible    *nft.FungibleRegistry
	external    string
}

func NewApp(store nft.Store, conf *config.Configuration) (*App, error) {
	clock, err := nft.NewClock(store)
	if err != nil {
		return nil, err
	}
	resolver := conf.Resolver()
	return &App{
		collectible: nft.NewCollectibleRegistry(store, clock, resolver),
		fungible:    nft.NewFungibleRegistry(store, clock, resolver),
		external:    conf.URI.External,
	}, nil
}

func (app *App) Run(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "mint721":
		return app.mint721(w, args)
	case "mint1155":
		return app.mint1155(w, args)
	case "batch1155":
		return app.batch1155(w, args)
	case "uri":
		return app.uri(w, args)
	case "owner":
		return app.owner(w, args)
	case "id":
		return app.tokenId(w, args)
	case "isown":
		return app.isOwn(w, args)
	case "names":
		return app.names(w, args)
	case "supply":
		supply, err := app.collectible.CurrentSupply()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, supply)
		return nil
	case "receipts":
		return app.receipts(w, args)
	case "metadata":
		return app.metadata(w, args)
	}
	return fmt.Errorf("unknown command %s\n%s", cmd, usage)
}

func (app *App) registry(kind string) (nft.Registry, error) {
	switch kind {
	case "721":
		return app.collectible, nil
	case "1155":
		return app.fungible, nil
	}
	return nil, fmt.Errorf("unknown registry %s", kind)
}

type mintFlags struct {
	fs    *flag.FlagSet
	owner *string
	name  *string
	ipfs  *string
	s3    *string
}

func newMintFlags(cmd string) *mintFlags {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &mintFlags{
		fs:    fs,
		owner: fs.String("owner", "", "owner address"),
		name:  fs.String("name", "", "token name"),
		ipfs:  fs.String("ipfs", "", "metadata content hash"),
		s3:    fs.String("s3", "", "metadata hosted path"),
	}
}

func (mf *mintFlags) parse(args []string) (nft.Address, nft.Location, error) {
	err := mf.fs.Parse(args)
	if err != nil {
		return nft.ZeroAddress, nft.Location{}, err
	}
	owner, err := nft.ParseAddress(*mf.owner)
	if err != nil {
		return nft.ZeroAddress, nft.Location{}, err
	}
	loc := nft.Location{ContentHash: *mf.ipfs, HostedPath: *mf.s3}
	if loc.ContentHash != "" {
		err = nft.ValidateContentHash(loc.ContentHash)
	}
	return owner, loc, err
}

func (app *App) mint721(w io.Writer, args []string) error {
	mf := newMintFlags("mint721")
	owner, loc, err := mf.parse(args)
	if err != nil {
		return err
	}
	it, err := app.collectible.Mint(owner, *mf.name, loc)
	if err != nil {
		return err
	}
	return app.printItem(w, app.collectible, it)
}

func (app *App) mint1155(w io.Writer, args []string) error {
	mf := newMintFlags("mint1155")
	amount := mf.fs.Uint64("amount", 1, "token quantity")
	owner, loc, err := mf.parse(args)
	if err != nil {
		return err
	}
	it, err := app.fungible.Mint(owner, *mf.name, *amount, loc)
	if err != nil {
		return err
	}
	return app.printItem(w, app.fungible, it)
}

func (app *App) batch1155(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("batch1155", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	ownerFlag := fs.String("owner", "", "owner address")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	owner, err := nft.ParseAddress(*ownerFlag)
	if err != nil {
		return err
	}

	var names []string
	var quantities []uint64
	for _, arg := range fs.Args() {
		i := strings.LastIndex(arg, ":")
		if i <= 0 {
			return fmt.Errorf("invalid batch entry %s", arg)
		}
		q, err := strconv.ParseUint(arg[i+1:], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid batch entry %s", arg)
		}
		names = append(names, arg[:i])
		quantities = append(quantities, q)
	}
	items, err := app.fungible.MintBatch(owner, names, quantities)
	if err != nil {
		return err
	}
	for _, it := range items {
		err = app.printItem(w, app.fungible, it)
		if err != nil {
			return err
		}
	}
	return nil
}

func (app *App) printItem(w io.Writer, r nft.Registry, it *nft.Item) error {
	uri, err := r.URI(it.Id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d %s %d %s\n", it.Id, it.Name, it.Quantity, uri)
	return nil
}

func (app *App) uri(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: uri 721|1155 ID")
	}
	r, err := app.registry(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", args[1])
	}
	uri, err := r.URI(id)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, uri)
	return nil
}

func (app *App) owner(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: owner 721|1155 NAME")
	}
	r, err := app.registry(args[0])
	if err != nil {
		return err
	}
	owner, err := r.OwnerAddressOf(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, owner)
	return nil
}

func (app *App) tokenId(w io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: id 721|1155 NAME")
	}
	r, err := app.registry(args[0])
	if err != nil {
		return err
	}
	id, err := r.TokenIdOf(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, id)
	return nil
}

func (app *App) isOwn(w io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: isown 721|1155 ADDR NAME")
	}
	r, err := app.registry(args[0])
	if err != nil {
		return err
	}
	owner, err := nft.ParseAddress(args[1])
	if err != nil {
		return err
	}
	own, err := r.IsOwn(owner, args[2])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, own)
	return nil
}

func (app *App) names(w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: names 721|1155")
	}
	r, err := app.registry(args[0])
	if err != nil {
		return err
	}
	names, err := r.UsedTokenNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}

func (app *App) receipts(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("receipts", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", 0, "maximum receipts, 0 for all")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: receipts [-limit N] 721|1155")
	}
	r, err := app.registry(fs.Arg(0))
	if err != nil {
		return err
	}
	receipts, err := r.Receipts(*limit)
	if err != nil {
		return err
	}
	for _, rc := range receipts {
		ids := make([]string, len(rc.Ids))
		for i, id := range rc.Ids {
			ids[i] = strconv.FormatUint(id, 10)
		}
		fmt.Fprintf(w, "%s %s %s\n", rc.TraceId, rc.Owner, strings.Join(ids, ","))
	}
	return nil
}

func (app *App) metadata(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("metadata", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "token name")
	description := fs.String("description", "nft from canvas-nft-server", "description")
	image := fs.String("image", "", "image url")
	point := fs.Int("point", 0, "point attribute")
	level := fs.Int("level", 0, "level attribute")
	err := fs.Parse(args)
	if err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("usage: metadata -name NAME")
	}
	m := nft.NewMetadata(app.external, *name, *description, *image, *point, *level)
	fmt.Fprintln(w, string(m.Marshal()))
	return nil
}
