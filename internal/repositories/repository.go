package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/fiton/internal/logger"
)

// TxGetter returns the request-scoped transaction, or nil when none is open.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, getTx TxGetter) sqlx.ExtContext {
	if getTx != nil {
		if tx := getTx(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs the query on a single line together with its args, result and error.
func logQuery(ctx context.Context, query string, args []any, result any, err error) {
	logger.FromContext(ctx).Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
