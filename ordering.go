package numpager

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Direction is the sort direction of the paged dataset.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

func (d Direction) Valid() bool {
	return d == DirectionASC || d == DirectionDESC
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case DirectionASC:
		return DirectionDESC
	case DirectionDESC:
		return DirectionASC
	default:
		panic(fmt.Errorf("cannot reverse direction '%s'", d))
	}
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}

	ColumnAlias = string

	// ColumnMapping maps sort keys accepted from clients to column names.
	// Qualify the column names when a bare one would be ambiguous in a join.
	ColumnMapping = map[ColumnAlias]string
)

var _columnNameCharset = append([]rune("_.'`\""), lo.AlphanumericCharset...)

func (o OrderBy) validate() error {
	if !o.Direction.Valid() {
		return fmt.Errorf("invalid ordering direction '%s'", o.Direction)
	}

	// Column names end up in raw SQL.
	if o.Column == "" || !lo.Every(_columnNameCharset, []rune(o.Column)) {
		return fmt.Errorf("ordering column name contains forbidden symbols '%s'", o.Column)
	}

	return nil
}

// ToSQL renders the orderings as "a ASC, b DESC".
func (o Orderings) ToSQL() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	}), ", ")
}

// Apply adds ORDER BY to a gorm query. Empty orderings leave the query as is.
func (o Orderings) Apply(db *gorm.DB) *gorm.DB {
	if len(o) == 0 {
		return db
	}

	return db.Order(o.ToSQL())
}

// validate accepts an empty list: offset paging works without ORDER BY,
// although the page contents are then up to the database.
func (o Orderings) validate() error {
	for _, ordering := range o {
		if err := ordering.validate(); err != nil {
			return err
		}
	}

	return nil
}

// ParseSort builds Orderings from strings like "created_at desc". Sort keys
// are resolved through columnMapping; an unknown key yields an error naming
// the closest known key.
func ParseSort(sortStrings []string, columnMapping ColumnMapping) (Orderings, error) {
	ret := make(Orderings, 0, len(sortStrings))
	aliases := lo.Keys(columnMapping)

	for _, s := range sortStrings {
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, fmt.Errorf("invalid ordering string format '%s'", s)
		}

		direction := Direction(strings.ToUpper(fields[1]))
		if !direction.Valid() {
			return nil, fmt.Errorf("invalid ordering direction '%s'", fields[1])
		}

		column, ok := columnMapping[fields[0]]
		if !ok || column == "" {
			return nil, fmt.Errorf("invalid sort key '%s'. closest: '%s'", fields[0], closestAlias(fields[0], aliases))
		}

		ret = append(ret, OrderBy{Column: column, Direction: direction})
	}

	return ret, nil
}

func closestAlias(input ColumnAlias, aliases []ColumnAlias) ColumnAlias {
	minDist := math.MaxInt
	closest := ""

	for _, alias := range aliases {
		dist := levenshtein([]rune(alias), []rune(input))
		// Ties resolve lexicographically, map key order is random.
		if dist < minDist || (dist == minDist && alias < closest) {
			minDist = dist
			closest = alias
		}
	}

	return closest
}

// levenshtein is the classic edit distance over two rows.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := lo.Ternary(a[i-1] == b[j-1], 0, 1)
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	return min(a, b, c)
}
