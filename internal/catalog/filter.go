package catalog

import (
	"fmt"
	"strings"
)

// Filter holds the optional admin listing predicates. Zero value matches
// everything.
type Filter struct {
	CategoryID *int64
	Status     *Status
}

// Where composes the predicates present in the filter into a WHERE
// clause, numbering placeholders from firstArg. An empty filter yields
// an empty clause.
func (f Filter) Where(firstArg int) (string, []any) {
	var preds []string
	var args []any
	n := firstArg
	if f.CategoryID != nil {
		preds = append(preds, fmt.Sprintf("category_id = $%d", n))
		args = append(args, *f.CategoryID)
		n++
	}
	if f.Status != nil {
		preds = append(preds, fmt.Sprintf("status = $%d", n))
		args = append(args, string(*f.Status))
		n++
	}
	if len(preds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(preds, " AND "), args
}
