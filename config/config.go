package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/MixinNetwork/canvas/nft"
	"github.com/pelletier/go-toml"
)

const DefaultStoreDir = "~/.canvas/registry/data"

type Configuration struct {
	Store StoreConfiguration `toml:"store"`
	URI   URIConfiguration   `toml:"uri"`
}

type StoreConfiguration struct {
	Dir string `toml:"dir"`
}

type URIConfiguration struct {
	Gateway  string `toml:"gateway"`
	Hosted   string `toml:"hosted"`
	External string `toml:"external"`
}

// Setup reads the TOML file at path, a missing file means all defaults.
func Setup(path string) (*Configuration, error) {
	var conf Configuration
	f, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return conf.withDefaults()
	} else if err != nil {
		return nil, err
	}
	err = toml.Unmarshal(f, &conf)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return conf.withDefaults()
}

func (conf *Configuration) Resolver() *nft.Resolver {
	return &nft.Resolver{
		GatewayBase: conf.URI.Gateway,
		HostedBase:  conf.URI.Hosted,
	}
}

func (conf *Configuration) withDefaults() (*Configuration, error) {
	if conf.Store.Dir == "" {
		conf.Store.Dir = DefaultStoreDir
	}
	if conf.URI.Gateway == "" {
		conf.URI.Gateway = nft.DefaultGatewayBase
	}
	if conf.URI.Hosted == "" {
		conf.URI.Hosted = nft.DefaultHostedBase
	}
	if conf.URI.External == "" {
		conf.URI.External = nft.DefaultExternalBase
	}
	for _, base := range []string{conf.URI.Gateway, conf.URI.Hosted, conf.URI.External} {
		if !strings.HasPrefix(base, "https://") && !strings.HasPrefix(base, "http://") {
			return nil, fmt.Errorf("invalid uri base %s", base)
		}
		if !strings.HasSuffix(base, "/") {
			return nil, fmt.Errorf("uri base %s must end with /", base)
		}
	}
	return conf, nil
}
