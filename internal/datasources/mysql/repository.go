package mysql

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/huandu/go-sqlbuilder"
	"github.com/recipehub/recipe-hub-backend/internal/datasources"
)

var _ datasources.UserRepository = (*Repository)(nil)
var _ datasources.RecipeRepository = (*Repository)(nil)
var _ datasources.CommentRepository = (*Repository)(nil)
var _ datasources.RatingRepository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const mysqlErrDuplicateEntry = 1062

// isDuplicateKey reports whether err is a violation of the named unique key.
func isDuplicateKey(err error, keyName string) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlErrDuplicateEntry {
		return false
	}
	// Error 1062 messages end with "for key '<table>.<key_name>'".
	return keyName == "" || strings.Contains(mysqlErr.Message, keyName)
}

func newSelect(cols ...string) *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.NewSelectBuilder()
	sb.Select(cols...)
	return sb
}

func newInsert(table string, cols ...string) *sqlbuilder.InsertBuilder {
	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto(table)
	ib.Cols(cols...)
	return ib
}
