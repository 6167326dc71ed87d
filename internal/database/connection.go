package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the package logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// Delays between connection attempts, one attempt more than delays
var retryDelays = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}

// InitDatabase opens the configured store, retrying while it is unreachable.
// An unsupported driver fails immediately.
func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	driver := strings.ToLower(cfg.Driver)
	dialector, err := openDialector(driver, cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("config", cfg.String()).Info("Initializing database connection")

	attempts := len(retryDelays) + 1
	for attempt := 1; ; attempt++ {
		db, connErr := connect(dialector)
		if connErr == nil {
			log.WithFields(logrus.Fields{"db_driver": driver, "attempt": attempt}).Info("Database initialized successfully")
			return db, nil
		}
		if attempt == attempts {
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, connErr)
		}

		delay := retryDelays[attempt-1]
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
			"error":   connErr.Error(),
		}).Warn("Database connection attempt failed, retrying")
		time.Sleep(delay)
	}
}

// connect opens, pings and sizes the pool of a single connection attempt
func connect(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Ping(db); err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	configureConnectionPool(sqlDB)
	return db, nil
}

func openDialector(driver string, cfg DatabaseConfig) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres, "postgresql":
		log.WithField("dsn_host", cfg.Host).Debug("Connecting to PostgreSQL")
		return postgres.Open(cfg.DSN()), nil
	case DriverSQLite, "":
		log.WithField("db_path", cfg.Path).Debug("Connecting to SQLite")
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", cfg.Driver)
	}
}

// configureConnectionPool sets up connection pool parameters
func configureConnectionPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	log.WithFields(logrus.Fields{
		"max_open_conns":    25,
		"max_idle_conns":    5,
		"conn_max_lifetime": "5m",
	}).Debug("Connection pool configured")
}

// Ping checks that the database behind db is reachable
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
