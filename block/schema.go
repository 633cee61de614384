package block

import (
	"strings"

	"github.com/spirit-labs/colcmp/types"
)

type Schema struct {
	columnNames []string
	dataTypes   []types.DataType
	singleValue []bool
}

// NewSchema creates a schema where every column is single-valued.
func NewSchema(columnNames []string, dataTypes []types.DataType) *Schema {
	singleValue := make([]bool, len(columnNames))
	for i := range singleValue {
		singleValue[i] = true
	}
	return NewSchemaWithValueKinds(columnNames, dataTypes, singleValue)
}

func NewSchemaWithValueKinds(columnNames []string, dataTypes []types.DataType, singleValue []bool) *Schema {
	if len(columnNames) != len(dataTypes) || len(columnNames) != len(singleValue) {
		panic("columnNames, dataTypes and singleValue must be same length")
	}
	return &Schema{
		columnNames: columnNames,
		dataTypes:   dataTypes,
		singleValue: singleValue,
	}
}

func (s *Schema) ColumnNames() []string {
	return s.columnNames
}

func (s *Schema) DataTypes() []types.DataType {
	return s.dataTypes
}

func (s *Schema) IsSingleValue(colIndex int) bool {
	return s.singleValue[colIndex]
}

// ColumnIndex returns the index of the named column, or -1.
func (s *Schema) ColumnIndex(name string) int {
	for i, colName := range s.columnNames {
		if colName == name {
			return i
		}
	}
	return -1
}

func (s *Schema) String() string {
	sb := strings.Builder{}
	for i, colName := range s.columnNames {
		sb.WriteString(colName)
		sb.WriteString(": ")
		sb.WriteString(s.dataTypes[i].String())
		if !s.singleValue[i] {
			sb.WriteString("[]")
		}
		if i != len(s.columnNames)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}
