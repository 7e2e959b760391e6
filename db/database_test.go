package db

import (
	"testing"

	"helio_platform_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrate(t *testing.T) {
	t.Run("Nil connection", func(t *testing.T) {
		assert.Error(t, Migrate(nil))
	})

	t.Run("Builds the platform schema", func(t *testing.T) {
		conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		assert.NoError(t, err)

		assert.NoError(t, Migrate(conn))

		migrator := conn.Migrator()
		assert.True(t, migrator.HasTable(&models.User{}))
		assert.True(t, migrator.HasTable(&models.Post{}))
		// The join rows must carry the tag name snapshot
		assert.True(t, migrator.HasColumn(&models.PostTag{}, "tag_name"))
	})
}
