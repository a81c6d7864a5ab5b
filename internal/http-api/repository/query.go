package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into an ILIKE pattern matching it as a literal substring.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// orderBy applies the column registered for sort, then id as tie-breaker.
func orderBy(db *gorm.DB, columns map[string]clause.Column, table, sort string, desc bool) (*gorm.DB, error) {
	col, ok := columns[sort]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field %q", sort)
	}
	return db.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: col, Desc: desc},
		{Column: clause.Column{Table: table, Name: "id"}, Desc: desc},
	}}), nil
}

// anyILike builds "(a ILIKE ? OR b ILIKE ? ...)" with the same pattern for every column.
func anyILike(columns []string, pattern string) (string, []interface{}) {
	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		clauses = append(clauses, c+" ILIKE ?")
		args = append(args, pattern)
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}
