package database

import (
	"testing"

	"github.com/localnerve/guardroster/internal/config"
	"github.com/localnerve/guardroster/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector_Unsupported(t *testing.T) {
	_, err := Dialector(&config.Config{DBType: "oracle"})
	assert.EqualError(t, err, "unsupported database type: oracle")
}

func TestDialector_Names(t *testing.T) {
	cases := map[string]string{
		"mysql":     "mysql",
		"mariadb":   "mysql",
		"postgres":  "postgres",
		"sqlite":    "sqlite",
		"sqlite3":   "sqlite",
		"sqlserver": "sqlserver",
	}
	for dbType, name := range cases {
		d, err := Dialector(&config.Config{DBType: dbType, DBDatabase: "guards"})
		require.NoError(t, err, dbType)
		assert.Equal(t, name, d.Name(), dbType)
	}
}

func TestConnect_SQLiteMemory(t *testing.T) {
	db, err := Connect(&config.Config{DBType: "sqlite", DBDatabase: ":memory:", Env: "prod"}, nil)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, AutoMigrate(db))
	for _, table := range []string{"guards", "inspections", "exercises", "users"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, db.Create(&models.Guard{ID: "g1", FirstName: "דוד", LastName: "כהן"}).Error)
	var count int64
	require.NoError(t, db.Model(&models.Guard{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
