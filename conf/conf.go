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
	"strconv"

	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
)

const (
	DefaultNullHandlingEnabled       = true
	DefaultDictionaryFastPathEnabled = true
	DefaultMaxBlockRows              = 10000
	DefaultMaxConcurrentSegments     = 8
	DefaultExpressionCacheSize       = 1000
	DefaultDecimalPrecision          = types.DefaultDecimalPrecision
	DefaultDecimalScale              = types.DefaultDecimalScale

	// MaxDecimalPrecision is the widest precision a decimal128 can hold
	MaxDecimalPrecision = 38
)

type Config struct {
	NullHandlingEnabled       *bool         `help:"Set to false to treat every column value as non-null when evaluating" name:"null-handling-enabled"`
	DictionaryFastPathEnabled *bool         `help:"Set to false to always decode dictionary encoded columns instead of evaluating comparisons on dictionary ids" name:"dictionary-fast-path-enabled"`
	MaxBlockRows              *ParseableInt `help:"Maximum number of rows in a block when building segments" name:"max-block-rows"`
	MaxConcurrentSegments     *int          `help:"Maximum number of segments evaluated concurrently by a query" name:"max-concurrent-segments"`
	ExpressionCacheSize       *int          `help:"Maximum number of parsed expressions kept in the expression cache" name:"expression-cache-size"`
	DecimalPrecision          *int          `help:"Precision of BIG_DECIMAL columns when they are built from fixtures" name:"decimal-precision"`
	DecimalScale              *int          `help:"Scale of BIG_DECIMAL columns when they are built from fixtures" name:"decimal-scale"`
}

type ParseableInt int

// UnmarshalText Kong uses default Json Unmarshalling which unmarshalls numbers as float64 which can result in loss of
// precision, this ensures large int fields are parsed correctly. The field needs to be quoted as a string in the config
func (p *ParseableInt) UnmarshalText(text []byte) error {
	i, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return err
	}
	*p = ParseableInt(i)
	return nil
}

func (c *Config) ApplyDefaults() {
	if c.NullHandlingEnabled == nil {
		c.NullHandlingEnabled = types.AddressOf(DefaultNullHandlingEnabled)
	}
	if c.DictionaryFastPathEnabled == nil {
		c.DictionaryFastPathEnabled = types.AddressOf(DefaultDictionaryFastPathEnabled)
	}
	if c.MaxBlockRows == nil {
		c.MaxBlockRows = (*ParseableInt)(types.AddressOf(DefaultMaxBlockRows))
	}
	if c.MaxConcurrentSegments == nil || *c.MaxConcurrentSegments == 0 {
		c.MaxConcurrentSegments = types.AddressOf(DefaultMaxConcurrentSegments)
	}
	if c.ExpressionCacheSize == nil {
		c.ExpressionCacheSize = types.AddressOf(DefaultExpressionCacheSize)
	}
	if c.DecimalPrecision == nil {
		c.DecimalPrecision = types.AddressOf(DefaultDecimalPrecision)
	}
	if c.DecimalScale == nil {
		c.DecimalScale = types.AddressOf(DefaultDecimalScale)
	}
}

func (c *Config) Validate() error {
	if c.MaxBlockRows != nil && *c.MaxBlockRows <= 0 {
		return errors.NewInvalidConfigurationError("max-block-rows must be > 0")
	}
	if c.MaxConcurrentSegments != nil && *c.MaxConcurrentSegments < 0 {
		return errors.NewInvalidConfigurationError("max-concurrent-segments must be >= 0")
	}
	if c.ExpressionCacheSize != nil && *c.ExpressionCacheSize <= 0 {
		return errors.NewInvalidConfigurationError("expression-cache-size must be > 0")
	}
	if c.DecimalPrecision != nil && (*c.DecimalPrecision < 1 || *c.DecimalPrecision > MaxDecimalPrecision) {
		return errors.NewInvalidConfigurationError("decimal-precision must be between 1 and 38")
	}
	if c.DecimalScale != nil && *c.DecimalScale < 0 {
		return errors.NewInvalidConfigurationError("decimal-scale must be >= 0")
	}
	if c.DecimalPrecision != nil && c.DecimalScale != nil && *c.DecimalScale > *c.DecimalPrecision {
		return errors.NewInvalidConfigurationError("decimal-scale must be <= decimal-precision")
	}
	return nil
}

// NewDefaultConfig returns a config with all defaults applied.
func NewDefaultConfig() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}
