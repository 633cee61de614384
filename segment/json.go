package segment

import (
	"github.com/spirit-labs/colcmp/conf"
	"github.com/spirit-labs/colcmp/errors"
	"github.com/spirit-labs/colcmp/types"
	"github.com/tidwall/gjson"
)

// LoadJSON builds a segment from a JSON document of the form:
//
//	{
//	  "name": "orders",
//	  "columns": [
//	    {"name": "id", "type": "LONG"},
//	    {"name": "status", "type": "STRING", "dictionary": "sorted"}
//	  ],
//	  "rows": [[1, "open"], [2, null]]
//	}
//
// Numbers are parsed from their JSON text so LONG and BIG_DECIMAL values keep their precision. BYTES values are hex
// strings. Values of STRING and JSON columns that are not JSON strings are stored as their JSON text.
func LoadJSON(data []byte, cfg conf.Config) (*Segment, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.NewArgumentErrorf("segment is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	name := doc.Get("name").String()
	if name == "" {
		return nil, errors.NewArgumentErrorf("segment has no name")
	}
	columnsRes := doc.Get("columns")
	if !columnsRes.IsArray() || len(columnsRes.Array()) == 0 {
		return nil, errors.NewArgumentErrorf("segment '%s' has no columns", name)
	}
	var columns []ColumnDefinition
	for _, c := range columnsRes.Array() {
		colName := c.Get("name").String()
		if colName == "" {
			return nil, errors.NewArgumentErrorf("segment '%s' has a column with no name", name)
		}
		dataType, err := types.ParseDataType(c.Get("type").String())
		if err != nil {
			return nil, errors.NewArgumentErrorf("column '%s': %v", colName, err)
		}
		encoding, err := ParseEncoding(c.Get("dictionary").String())
		if err != nil {
			return nil, err
		}
		columns = append(columns, ColumnDefinition{Name: colName, DataType: dataType, Encoding: encoding})
	}
	builder, err := NewBuilder(name, columns, cfg)
	if err != nil {
		return nil, err
	}
	for rowIndex, rowRes := range doc.Get("rows").Array() {
		if !rowRes.IsArray() {
			return nil, errors.NewArgumentErrorf("row %d of segment '%s' is not an array", rowIndex, name)
		}
		cells := rowRes.Array()
		row := make([]any, len(cells))
		for i, cell := range cells {
			if i < len(columns) {
				row[i] = jsonValue(columns[i].DataType.StoredType(), cell)
			}
		}
		if err := builder.AddRow(row); err != nil {
			return nil, errors.NewArgumentErrorf("row %d of segment '%s': %v", rowIndex, name, err)
		}
	}
	return builder.Build()
}

func jsonValue(storedType types.StoredType, res gjson.Result) any {
	switch res.Type {
	case gjson.Null:
		return nil
	case gjson.String:
		return res.Str
	case gjson.True, gjson.False:
		if storedType == types.StoredTypeString {
			return res.Raw
		}
		return res.Bool()
	default:
		// numbers and nested JSON
		return res.Raw
	}
}
