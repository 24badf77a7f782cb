// internal/db/db.go
package db

import (
    "database/sql"
    "fmt"
    "log"
    "os"

    _ "github.com/lib/pq"
)

// Init opens the Postgres connection shared by the server and worker.
func Init() *sql.DB {
    dsn := dsnFromEnv()

    conn, err := sql.Open("postgres", dsn)
    if err != nil {
        log.Fatalf("failed to connect to DB: %v", err)
    }

    if err = conn.Ping(); err != nil {
        log.Fatalf("failed to ping DB: %v", err)
    }

    log.Println("✅ Connected to database")
    return conn
}

// dsnFromEnv builds the connection string. DATABASE_URL wins when set,
// otherwise the discrete DB_* variables are assembled with local defaults.
func dsnFromEnv() string {
    if url := os.Getenv("DATABASE_URL"); url != "" {
        return url
    }

    user := getenv("DB_USER", "postgres")
    pass := getenv("DB_PASSWORD", "postgres")
    host := getenv("DB_HOST", "localhost")
    port := getenv("DB_PORT", "5432")
    name := getenv("DB_NAME", "adleopard")

    return fmt.Sprintf(
        "postgres://%s:%s@%s:%s/%s?sslmode=disable",
        user, pass, host, port, name,
    )
}

func getenv(key, fallback string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return fallback
}
