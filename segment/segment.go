package segment

import (
	"github.com/spirit-labs/colcmp/block"
	"github.com/spirit-labs/colcmp/dictionary"
	"github.com/spirit-labs/colcmp/transform"
)

// Segment is an immutable set of blocks with the same schema. Dictionary encoded columns use one dictionary for the
// whole segment, so a comparison bound against the segment's column contexts can be evaluated on any of its blocks.
type Segment struct {
	Name         string
	Schema       *block.Schema
	Dictionaries map[string]dictionary.Dictionary
	Blocks       []*block.Block
}

// ColumnContexts describes the columns of the segment for binding expressions.
func (s *Segment) ColumnContexts() map[string]transform.ColumnContext {
	names := s.Schema.ColumnNames()
	dataTypes := s.Schema.DataTypes()
	contexts := make(map[string]transform.ColumnContext, len(names))
	for i, name := range names {
		contexts[name] = transform.ColumnContext{
			DataType:    dataTypes[i],
			SingleValue: s.Schema.IsSingleValue(i),
			Dictionary:  s.Dictionaries[name],
		}
	}
	return contexts
}

func (s *Segment) RowCount() int {
	count := 0
	for _, blk := range s.Blocks {
		count += blk.RowCount
	}
	return count
}
