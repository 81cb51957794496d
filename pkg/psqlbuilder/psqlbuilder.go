// Package psqlbuilder expõe os builders do squirrel já configurados
// com placeholders no formato do PostgreSQL ($1, $2, ...).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select cria um SELECT builder com placeholders $N
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert cria um INSERT builder com placeholders $N
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update cria um UPDATE builder com placeholders $N
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete cria um DELETE builder com placeholders $N
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
