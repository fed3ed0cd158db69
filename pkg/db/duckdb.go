package db

import (
	"context"
	"database/sql"
	"sync"

	"writing-dashboard/config"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var duckDB *sql.DB
var duckDBOnce sync.Once

// Open 打开一个 duckdb 连接，DBPath 为空时使用内存库
func Open(ctx context.Context, cfg *config.DuckDBConfig) (*sql.DB, error) {
	conn, err := sql.Open("duckdb", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "连接 duckdb 失败")
	}

	// 测试连接
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "duckdb 连接测试失败")
	}
	return conn, nil
}

// InitDuckDB 初始化全局 duckdb 连接
func InitDuckDB(cfg *config.DuckDBConfig) error {
	var err error
	duckDBOnce.Do(func() {
		duckDB, err = Open(context.Background(), cfg)
		if err != nil {
			zap.S().Errorf("初始化 duckdb 失败: %v", err)
			return
		}

		zap.S().Debug("duckdb 初始化完成...")
	})
	return err
}

// GetDuckDB 获取 DuckDB 连接
func GetDuckDB() *sql.DB {
	return duckDB
}

// GetDuckDBWithContext 获取带上下文的 DuckDB 连接
func GetDuckDBWithContext(ctx context.Context) *sql.DB {
	return duckDB
}

// CloseDuckDB 关闭全局连接
func CloseDuckDB() error {
	if duckDB == nil {
		return nil
	}
	return duckDB.Close()
}
