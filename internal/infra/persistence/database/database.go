// Package database connects to the relational store through GORM and implements
// the domain repositories on top of it.
package database

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"collegeblog/config"
	"collegeblog/internal/domain/lifecycle"
	"collegeblog/internal/errors"
	"collegeblog/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the connection pool described by the database config section.
func New(params Params) (*gorm.DB, error) {
	dbCfg := params.Config.Database
	if dbCfg == nil || dbCfg.DSN == "" {
		return nil, errors.New("database dsn must be provided")
	}

	dialector, err := openDialector(dbCfg.Driver, dbCfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		// Statements are never grouped into transactions; each store call stands alone.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s connection", dbCfg.Driver)
	}

	if err := registerReplicas(db, dbCfg); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}
	configurePool(sqlDB, dbCfg)

	if dbCfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", dbCfg.Driver)
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the users, blogs, comments and likes tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, errors.Errorf("unsupported database driver: %q", driver)
	}
}

// registerReplicas routes plain reads to the configured replicas. Reads that feed a
// subsequent write pin themselves to the primary with dbresolver.Write.
func registerReplicas(db *gorm.DB, dbCfg *config.DatabaseConfig) error {
	if len(dbCfg.Replicas) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(dbCfg.Replicas))
	for _, dsn := range dbCfg.Replicas {
		dialector, err := openDialector(dbCfg.Driver, dsn)
		if err != nil {
			return err
		}
		replicas = append(replicas, dialector)
	}

	resolver := dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})
	if dbCfg.MaxOpenConns > 0 {
		resolver = resolver.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		resolver = resolver.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		resolver = resolver.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}

	if err := db.Use(resolver); err != nil {
		return errors.Wrap(err, "failed to register read replicas")
	}

	return nil
}

func configurePool(sqlDB *sql.DB, dbCfg *config.DatabaseConfig) {
	if dbCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(dbCfg.MaxOpenConns)
	}
	if dbCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(dbCfg.MaxIdleConns)
	}
	if dbCfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(dbCfg.ConnMaxLifetime)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Connection pool wait",
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			)
		}
	}
}
