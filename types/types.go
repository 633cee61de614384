package types

import (
	"strings"

	"github.com/pkg/errors"
)

// StoredType is the physical representation of a column's values as seen by the evaluation kernel.
type StoredType int

const (
	StoredTypeInt StoredType = iota + 1
	StoredTypeLong
	StoredTypeFloat
	StoredTypeDouble
	StoredTypeBigDecimal
	StoredTypeString
	StoredTypeBytes
	// StoredTypeUnknown is used when no value of a determinable type exists, e.g. a NULL literal
	StoredTypeUnknown
)

func (s StoredType) String() string {
	switch s {
	case StoredTypeInt:
		return "INT"
	case StoredTypeLong:
		return "LONG"
	case StoredTypeFloat:
		return "FLOAT"
	case StoredTypeDouble:
		return "DOUBLE"
	case StoredTypeBigDecimal:
		return "BIG_DECIMAL"
	case StoredTypeString:
		return "STRING"
	case StoredTypeBytes:
		return "BYTES"
	case StoredTypeUnknown:
		return "UNKNOWN"
	default:
		panic("unexpected stored type")
	}
}

func (s StoredType) IsNumeric() bool {
	switch s {
	case StoredTypeInt, StoredTypeLong, StoredTypeFloat, StoredTypeDouble, StoredTypeBigDecimal:
		return true
	default:
		return false
	}
}

// IsIntegral is true for the stored types whose literals need integer sanitization.
func (s StoredType) IsIntegral() bool {
	return s == StoredTypeInt || s == StoredTypeLong
}

// DataType is the declared type of a column or expression. Several data types share a stored type.
type DataType int

const (
	DataTypeInt DataType = iota + 1
	DataTypeLong
	DataTypeFloat
	DataTypeDouble
	DataTypeBigDecimal
	DataTypeBoolean
	DataTypeTimestamp
	DataTypeString
	DataTypeJSON
	DataTypeBytes
	DataTypeUnknown
)

var dataTypeNames = map[DataType]string{
	DataTypeInt:        "INT",
	DataTypeLong:       "LONG",
	DataTypeFloat:      "FLOAT",
	DataTypeDouble:     "DOUBLE",
	DataTypeBigDecimal: "BIG_DECIMAL",
	DataTypeBoolean:    "BOOLEAN",
	DataTypeTimestamp:  "TIMESTAMP",
	DataTypeString:     "STRING",
	DataTypeJSON:       "JSON",
	DataTypeBytes:      "BYTES",
	DataTypeUnknown:    "UNKNOWN",
}

func (d DataType) String() string {
	name, ok := dataTypeNames[d]
	if !ok {
		panic("unexpected data type")
	}
	return name
}

func (d DataType) StoredType() StoredType {
	switch d {
	case DataTypeInt, DataTypeBoolean:
		return StoredTypeInt
	case DataTypeLong, DataTypeTimestamp:
		return StoredTypeLong
	case DataTypeFloat:
		return StoredTypeFloat
	case DataTypeDouble:
		return StoredTypeDouble
	case DataTypeBigDecimal:
		return StoredTypeBigDecimal
	case DataTypeString, DataTypeJSON:
		return StoredTypeString
	case DataTypeBytes:
		return StoredTypeBytes
	case DataTypeUnknown:
		return StoredTypeUnknown
	default:
		panic("unexpected data type")
	}
}

// ParseDataType accepts the upper or lower case name of a data type, e.g. "big_decimal" or "INT".
func ParseDataType(s string) (DataType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for dt, name := range dataTypeNames {
		if name == upper {
			return dt, nil
		}
	}
	return 0, errors.Errorf("invalid data type '%s'", s)
}

func ParseStoredType(s string) (StoredType, error) {
	dt, err := ParseDataType(s)
	if err != nil {
		return 0, err
	}
	if dt.StoredType().String() != strings.ToUpper(strings.TrimSpace(s)) {
		return 0, errors.Errorf("'%s' is not a stored type", s)
	}
	return dt.StoredType(), nil
}
