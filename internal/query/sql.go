package query

import (
	"fmt"
	"strings"
)

// Where renders predicates into a SQL fragment with $n placeholders and the
// matching argument list. It returns an empty fragment when there is nothing
// to constrain. Placeholders start at $1; callers appending their own
// arguments continue from len(args)+1.
func Where(preds []Predicate) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	for _, p := range preds {
		switch p := p.(type) {
		case Range:
			if p.Min != 0 {
				args = append(args, p.Min)
				clauses = append(clauses, fmt.Sprintf("%s >= $%d", p.Field, len(args)))
			}
			if p.Max != 0 {
				args = append(args, p.Max)
				clauses = append(clauses, fmt.Sprintf("%s <= $%d", p.Field, len(args)))
			}
		case Substring:
			args = append(args, "%"+p.Text+"%")
			clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", p.Field, len(args)))
		case Match:
			args = append(args, p.Text)
			clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", p.Field, len(args)))
		case Equals:
			args = append(args, p.Value)
			clauses = append(clauses, fmt.Sprintf("%s = $%d", p.Field, len(args)))
		}
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
