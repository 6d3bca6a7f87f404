// internal/service/keepalive.go
package service

import (
    "database/sql"
    "log"
    "time"
)

// KeepAlive pings the store on a fixed interval so a hosted backend stays
// warm. It never touches contact data; ping failures are logged and
// otherwise ignored. Started once at process init, stopped on shutdown.
type KeepAlive struct {
    DB       *sql.DB
    Interval time.Duration

    stop chan struct{}
    done chan struct{}
}

func NewKeepAlive(db *sql.DB, interval time.Duration) *KeepAlive {
    if interval <= 0 {
        interval = 10 * time.Minute
    }
    return &KeepAlive{
        DB:       db,
        Interval: interval,
        stop:     make(chan struct{}),
        done:     make(chan struct{}),
    }
}

func (k *KeepAlive) Start() {
    go func() {
        defer close(k.done)
        ticker := time.NewTicker(k.Interval)
        defer ticker.Stop()
        for {
            select {
            case <-ticker.C:
                var one int
                if err := k.DB.QueryRow(`SELECT 1`).Scan(&one); err != nil {
                    log.Println("⚠️ keep-alive ping failed:", err)
                }
            case <-k.stop:
                return
            }
        }
    }()
}

// Stop halts the pinger and waits for the goroutine to exit.
func (k *KeepAlive) Stop() {
    close(k.stop)
    <-k.done
}
