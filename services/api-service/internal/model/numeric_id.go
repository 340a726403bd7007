package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// NumericID is an integer identifier that older documents stored as an
// int32, int64, double or numeric string. It always decodes to an int64.
type NumericID int64

// ParseNumericID parses a decimal identifier such as "42".
func ParseNumericID(s string) (NumericID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return NumericID(n), nil
}

func (n *NumericID) UnmarshalBSONValue(typ byte, data []byte) error {
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}

	switch rv.Type {
	case bson.TypeInt32:
		*n = NumericID(rv.Int32())
	case bson.TypeInt64:
		*n = NumericID(rv.Int64())
	case bson.TypeDouble:
		f := rv.Double()
		if f != math.Trunc(f) {
			return fmt.Errorf("numeric id %v is not an integer", f)
		}
		*n = NumericID(int64(f))
	case bson.TypeString:
		parsed, err := ParseNumericID(rv.StringValue())
		if err != nil {
			return fmt.Errorf("numeric id %q: %w", rv.StringValue(), err)
		}
		*n = parsed
	case bson.TypeNull, bson.TypeUndefined:
		*n = 0
	default:
		return fmt.Errorf("cannot decode %s into a numeric id", rv.Type)
	}

	return nil
}

func (n *NumericID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("numeric id %v is not an integer", v)
		}
		*n = NumericID(int64(v))
	case string:
		parsed, err := ParseNumericID(v)
		if err != nil {
			return fmt.Errorf("numeric id %q: %w", v, err)
		}
		*n = parsed
	case nil:
		*n = 0
	default:
		return fmt.Errorf("cannot decode %T into a numeric id", raw)
	}

	return nil
}
