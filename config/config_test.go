package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MixinNetwork/canvas/nft"
	"github.com/stretchr/testify/require"
)

func TestSetupMissingFile(t *testing.T) {
	require := require.New(t)

	conf, err := Setup(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(err)
	require.Equal(DefaultStoreDir, conf.Store.Dir)
	require.Equal(nft.DefaultGatewayBase, conf.URI.Gateway)
	require.Equal(nft.DefaultHostedBase, conf.URI.Hosted)
	require.Equal(nft.DefaultExternalBase, conf.URI.External)
	require.Equal(nft.DefaultResolver(), conf.Resolver())
}

func TestSetupFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[store]
dir = "/var/lib/canvas"

[uri]
gateway = "https://gateway.example/ipfs/"
`
	require.NoError(os.WriteFile(path, []byte(data), 0600))

	conf, err := Setup(path)
	require.NoError(err)
	require.Equal("/var/lib/canvas", conf.Store.Dir)
	require.Equal("https://gateway.example/ipfs/", conf.URI.Gateway)
	require.Equal(nft.DefaultHostedBase, conf.URI.Hosted)

	it := &nft.Item{Name: "A", Location: nft.Location{ContentHash: "Qm"}}
	require.Equal("https://gateway.example/ipfs/Qm", conf.Resolver().Resolve(nft.CategoryCollectible, it))
}

func TestSetupInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"syntax":   "[uri\ngateway = ",
		"scheme":   "[uri]\nhosted = \"ftp://bucket/\"\n",
		"trailing": "[uri]\nexternal = \"https://example.com\"\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0600))
			_, err := Setup(path)
			require.Error(t, err)
		})
	}
}
