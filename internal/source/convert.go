package source

// convert.go normalizes the values pgx produces for a scanned row into the
// scalar set the table engine understands: string, float64, int64, bool,
// time.Time, or nil. pgx returns most types natively but leaves numerics
// and UUIDs in driver representations.

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// normalizeValue converts one result-set value into an engine scalar.
// Invalid (NULL) driver values normalize to nil so missing data sorts and
// exports uniformly.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil

	case string, bool, int64, float64, time.Time:
		return val

	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case float32:
		return float64(val)

	case pgtype.Numeric:
		if !val.Valid {
			return nil
		}
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64

	case pgtype.Text:
		if !val.Valid {
			return nil
		}
		return val.String

	case pgtype.Date:
		if !val.Valid {
			return nil
		}
		return val.Time

	case pgtype.Timestamptz:
		if !val.Valid {
			return nil
		}
		return val.Time

	case pgtype.Bool:
		if !val.Valid {
			return nil
		}
		return val.Bool

	case [16]byte:
		return uuid.UUID(val).String()

	case *big.Int:
		if val == nil {
			return nil
		}
		f, _ := new(big.Float).SetInt(val).Float64()
		return f

	default:
		return val
	}
}
