package audit

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/BruksfildServices01/service-scheduler/internal/db"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

func TestLogger_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := dbpkg.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	id := uint(42)
	ev := Event{
		RequestID: "logger-test",
		Action:    "realizaragserv_deleted",
		Entity:    "scheduling_request",
		EntityID:  &id,
	}
	require.NoError(t, New(db).Log(ev))

	var row models.AuditLog
	require.NoError(t, db.Where("request_id = ?", "logger-test").Order("id DESC").First(&row).Error)
	assert.Equal(t, "realizaragserv_deleted", row.Action)
	assert.Equal(t, uint(42), *row.EntityID)
}
