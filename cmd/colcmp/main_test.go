package main

import (
	"bytes"
	"testing"

	"github.com/spirit-labs/colcmp/conf"
	"github.com/spirit-labs/colcmp/types"
	"github.com/stretchr/testify/require"
)

func TestParseConfigFile(t *testing.T) {
	r := &runner{}
	cfg, err := r.loadConfig([]string{"--config", "testdata/config.hcl", "--table", "testdata/orders.json",
		"--expr", "qty = 3"})
	require.NoError(t, err)

	expected := conf.Config{
		NullHandlingEnabled:       types.AddressOf(true),
		DictionaryFastPathEnabled: types.AddressOf(false),
		MaxBlockRows:              (*conf.ParseableInt)(types.AddressOf(2)),
		MaxConcurrentSegments:     types.AddressOf(2),
		ExpressionCacheSize:       types.AddressOf(50),
		DecimalPrecision:          types.AddressOf(conf.DefaultDecimalPrecision),
		DecimalScale:              types.AddressOf(conf.DefaultDecimalScale),
	}
	require.Equal(t, expected, cfg.Kernel)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, []string{"testdata/orders.json"}, cfg.Table)
}

func TestFlagsWithoutConfigFile(t *testing.T) {
	r := &runner{}
	cfg, err := r.loadConfig([]string{"--table", "testdata/orders.json", "--expr", "id > 1",
		"--dictionary-fast-path-enabled=false"})
	require.NoError(t, err)
	require.False(t, *cfg.Kernel.DictionaryFastPathEnabled)
	require.Equal(t, conf.DefaultExpressionCacheSize, *cfg.Kernel.ExpressionCacheSize)
}

func TestExpressionOrShellRequired(t *testing.T) {
	r := &runner{}
	_, err := r.loadConfig([]string{"--table", "testdata/orders.json"})
	require.Error(t, err)
}

func TestEvaluateExpression(t *testing.T) {
	out := &bytes.Buffer{}
	r := &runner{out: out}
	cfg, err := r.loadConfig([]string{"--config", "testdata/config.hcl", "--table", "testdata/orders.json",
		"--expr", "status != 'closed'"})
	require.NoError(t, err)
	require.NoError(t, r.run(cfg))

	require.Len(t, r.segments, 1)
	require.Len(t, r.segments[0].Blocks, 2)
	output := out.String()
	require.Contains(t, output, "orders: status != 'closed' (2 of 3 rows)")
	require.Contains(t, output, "0\t1\n1\t0\n2\t1\tnull operand\n")
}

func TestEvaluateInvalidExpression(t *testing.T) {
	r := &runner{out: &bytes.Buffer{}}
	cfg, err := r.loadConfig([]string{"--table", "testdata/orders.json", "--expr", "qty = X'01'"})
	require.NoError(t, err)
	require.Error(t, r.run(cfg))
}
