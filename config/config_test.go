package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	env := `ENVIRONMENT=production
SERVER_PORT=8080
DB_HOST=db.internal
DB_PORT=3306
DB_USER=regret
DB_PASSWORD=secret
DB_NAME=regretnote
REDIS_HOST=cache.internal
REDIS_PORT=6379
REDIS_DB=2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	conf, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "production", conf.Environment)
	assert.Equal(t, "8080", conf.ServerPort)
	assert.Equal(t, 2, conf.RedisDB)
	assert.Equal(t, "regret:secret@tcp(db.internal:3306)/regretnote?charset=utf8mb4&parseTime=True&loc=Local",
		conf.GetDBConnString())
	assert.Equal(t, "cache.internal:6379", conf.GetRedisConnString())
}
