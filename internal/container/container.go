// Package container holds the app-level singletons constructed in main and
// shared with the router during module wiring. Business logic never reads
// from here; dependencies are passed in explicitly.
package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"users-api/config"
	"users-api/pkg/timefmt"
)

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	timeFmt     *timefmt.Formatter
)

func SetConfig(c *config.Config)            { cfg = c }
func GetConfig() *config.Config             { return cfg }
func SetLogger(l *logrus.Logger)            { logger = l }
func GetLogger() *logrus.Logger             { return logger }
func SetPGPool(p *pgxpool.Pool)             { pgPool = p }
func GetPGPool() *pgxpool.Pool              { return pgPool }
func SetRedis(r *redis.Client)              { redisClient = r }
func GetRedis() *redis.Client               { return redisClient }
func SetTimeFormatter(f *timefmt.Formatter) { timeFmt = f }
func GetTimeFormatter() *timefmt.Formatter  { return timeFmt }
