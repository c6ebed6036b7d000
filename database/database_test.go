package database

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	config "github.com/jgrivera/fruition/configs"
	"github.com/jgrivera/fruition/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectAndMigrateSQLite(t *testing.T) {
	db, err := Connect(&config.Config{DBDriver: config.DriverSQLite, DatabaseURL: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.Badge{}))

	columns, err := db.Migrator().ColumnTypes(&models.Badge{})
	require.NoError(t, err)
	var nameType string
	for _, column := range columns {
		if column.Name() == "name" {
			nameType = column.DatabaseTypeName()
		}
	}
	assert.True(t, strings.EqualFold("text", nameType), "name column type %q", nameType)

	badge := models.Badge{Name: "Example badge"}
	require.NoError(t, db.Create(&badge).Error)
	assert.NotEqual(t, uuid.Nil, badge.ID)

	var stored models.Badge
	require.NoError(t, db.First(&stored, "id = ?", badge.ID).Error)
	assert.Equal(t, badge.ID, stored.ID)
	assert.Equal(t, "Example badge", stored.Name)
}

func TestConnectRejectsMemoryDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: config.DriverMemory})
	assert.Error(t, err)
}
