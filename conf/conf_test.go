// Copyright 2024 The Tektite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conf

import (
	"testing"

	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
	"github.com/stretchr/testify/require"
)

type configPair struct {
	errMsg string
	conf   Config
}

func invalidMaxBlockRowsConf() Config {
	cnf := validConf()
	cnf.MaxBlockRows = (*ParseableInt)(types.AddressOf(0))
	return cnf
}

func invalidMaxConcurrentSegmentsConf() Config {
	cnf := validConf()
	cnf.MaxConcurrentSegments = types.AddressOf(-1)
	return cnf
}

func invalidExpressionCacheSizeConf() Config {
	cnf := validConf()
	cnf.ExpressionCacheSize = types.AddressOf(0)
	return cnf
}

func invalidDecimalPrecisionConf() Config {
	cnf := validConf()
	cnf.DecimalPrecision = types.AddressOf(39)
	return cnf
}

func invalidDecimalScaleConf() Config {
	cnf := validConf()
	cnf.DecimalScale = types.AddressOf(-1)
	return cnf
}

func decimalScaleGreaterThanPrecisionConf() Config {
	cnf := validConf()
	cnf.DecimalPrecision = types.AddressOf(4)
	cnf.DecimalScale = types.AddressOf(5)
	return cnf
}

var invalidConfigs = []configPair{
	{"invalid configuration: max-block-rows must be > 0", invalidMaxBlockRowsConf()},
	{"invalid configuration: max-concurrent-segments must be >= 0", invalidMaxConcurrentSegmentsConf()},
	{"invalid configuration: expression-cache-size must be > 0", invalidExpressionCacheSizeConf()},
	{"invalid configuration: decimal-precision must be between 1 and 38", invalidDecimalPrecisionConf()},
	{"invalid configuration: decimal-scale must be >= 0", invalidDecimalScaleConf()},
	{"invalid configuration: decimal-scale must be <= decimal-precision", decimalScaleGreaterThanPrecisionConf()},
}

func TestValidate(t *testing.T) {
	for _, cp := range invalidConfigs {
		err := cp.conf.Validate()
		require.Error(t, err, "Didn't get error, expected: %s", cp.errMsg)
		var kerr errors.KernelError
		require.True(t, errors.As(err, &kerr))
		require.Equal(t, errors.InvalidConfiguration, kerr.Code)
		require.Equal(t, cp.errMsg, kerr.Msg)
	}
}

func TestValidConf(t *testing.T) {
	cnf := validConf()
	require.NoError(t, cnf.Validate())
}

func TestApplyDefaults(t *testing.T) {
	cnf := Config{}
	cnf.ApplyDefaults()
	require.True(t, *cnf.NullHandlingEnabled)
	require.True(t, *cnf.DictionaryFastPathEnabled)
	require.Equal(t, DefaultMaxBlockRows, int(*cnf.MaxBlockRows))
	require.Equal(t, DefaultMaxConcurrentSegments, *cnf.MaxConcurrentSegments)
	require.Equal(t, DefaultExpressionCacheSize, *cnf.ExpressionCacheSize)
	require.Equal(t, DefaultDecimalPrecision, *cnf.DecimalPrecision)
	require.Equal(t, DefaultDecimalScale, *cnf.DecimalScale)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cnf := Config{
		NullHandlingEnabled: types.AddressOf(false),
		MaxBlockRows:        (*ParseableInt)(types.AddressOf(7)),
	}
	cnf.ApplyDefaults()
	require.False(t, *cnf.NullHandlingEnabled)
	require.Equal(t, 7, int(*cnf.MaxBlockRows))
}

func TestParseableInt(t *testing.T) {
	var p ParseableInt
	require.NoError(t, p.UnmarshalText([]byte("9000000000")))
	require.Equal(t, ParseableInt(9000000000), p)
	require.Error(t, p.UnmarshalText([]byte("lots")))
}

func validConf() Config {
	conf := Config{
		MaxConcurrentSegments: types.AddressOf(4),
	}
	conf.ApplyDefaults()
	return conf
}
