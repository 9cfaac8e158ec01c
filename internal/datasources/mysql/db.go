package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// parseTime makes DATETIME columns scan into time.Time; utf8mb4 keeps
// recipe text and comments intact beyond the BMP.
const driverParamStr string = "?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci"

func Connect(ctx context.Context, uri string) (*sql.DB, error) {
	db, err := sql.Open("mysql", uri+driverParamStr)
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL DB: %w", err)
	}

	// Recipe reads fan out into comment and user-rating queries, so the pool
	// holds more connections than request workers alone would need.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("checking MySQL DB connection: %w", err)
	}

	return db, nil
}
