package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	dbpkg "github.com/BruksfildServices01/service-scheduler/internal/db"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

// ======================================================
// SQL
// ======================================================

func TestBuildListSQL(t *testing.T) {
	query, args, err := BuildListSQL("realizaragserv")
	require.NoError(t, err)

	assert.Contains(t, query, "st.name AS service_type_name")
	assert.Contains(t, query, "FROM scheduling_requests r JOIN service_types st ON st.id = r.service_type_id")
	assert.Contains(t, query, "WHERE r.resource = ?")
	assert.Contains(t, query, "ORDER BY r.requester_name ASC, r.id ASC")
	assert.Equal(t, []any{"realizaragserv"}, args)
}

func TestBuildSearchSQL_EscapesWildcards(t *testing.T) {
	query, args, err := BuildSearchSQL("agendamentos", "50%_off")
	require.NoError(t, err)

	assert.Contains(t, query, "r.resource = ? AND r.requester_name LIKE ?")
	assert.Equal(t, []any{"agendamentos", `%50\%\_off%`}, args)
}

func TestColumnsMatchSchema(t *testing.T) {
	cache := &sync.Map{}

	reqSchema, err := schema.Parse(&models.SchedulingRequest{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "scheduling_requests", reqSchema.Table)

	for _, col := range writableColumns {
		assert.Contains(t, reqSchema.FieldsByDBName, col)
	}
	assert.Contains(t, reqSchema.FieldsByDBName, "resource")

	rowSchema, err := schema.Parse(&dto.SchedulingRequestListDTO{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Contains(t, rowSchema.FieldsByDBName, "service_type_name")
}

// ======================================================
// CONTRACT (memória sempre, PostgreSQL com TEST_DATABASE_URL)
// ======================================================

func TestMemoryRepository_Contract(t *testing.T) {
	runRepositoryContract(t, NewSchedulingMemoryRepository())
}

func TestGormRepository_Contract(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := dbpkg.Open(dsn)
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	runRepositoryContract(t, NewSchedulingGormRepository(db))
}

func newRequest(resource, name string, typeID uint) *models.SchedulingRequest {
	return &models.SchedulingRequest{
		Resource:         resource,
		RequesterName:    name,
		RequesterTaxID:   "12345678901",
		RequesterContact: "(11) 91234-5678",
		Address:          "Rua das Flores",
		Neighborhood:     "Centro",
		StreetNumber:     "10",
		ServiceTypeID:    typeID,
		Date:             time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		StartTime:        "09:30",
		Description:      "Troca de chuveiro",
	}
}

func names(rows []dto.SchedulingRequestListDTO) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.RequesterName)
	}
	return out
}

func runRepositoryContract(t *testing.T, repo domain.Repository) {
	ctx := context.Background()
	suffix := uuid.NewString()[:8]
	resource := "contract_" + suffix
	other := "other_" + suffix

	// -------- service types --------
	st := &models.ServiceType{Name: "Elétrica " + suffix}
	require.NoError(t, repo.CreateServiceType(ctx, st))
	require.NotZero(t, st.ID)

	err := repo.CreateServiceType(ctx, &models.ServiceType{Name: st.Name})
	assert.True(t, httperr.IsUniqueViolation(err), "duplicate name: %v", err)

	ok, err := repo.ServiceTypeExists(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ServiceTypeExists(ctx, st.ID+1_000_000)
	require.NoError(t, err)
	assert.False(t, ok)

	types, err := repo.ListServiceTypes(ctx)
	require.NoError(t, err)
	var typeNames []string
	for _, tp := range types {
		typeNames = append(typeNames, tp.Name)
	}
	assert.Contains(t, typeNames, st.Name)

	// -------- create --------
	maria := newRequest(resource, "Maria Silva", st.ID)
	require.NoError(t, repo.CreateRequest(ctx, maria))
	require.NotZero(t, maria.ID)

	for _, name := range []string{"João Souza", "100% Jo_ao"} {
		require.NoError(t, repo.CreateRequest(ctx, newRequest(resource, name, st.ID)))
	}
	ghost := newRequest(other, "Maria Outra", st.ID)
	require.NoError(t, repo.CreateRequest(ctx, ghost))

	err = repo.CreateRequest(ctx, newRequest(resource, "Sem Tipo", st.ID+1_000_000))
	assert.True(t, httperr.IsForeignKeyViolation(err), "missing type: %v", err)

	// -------- list --------
	rows, err := repo.ListRequests(ctx, resource)
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Jo_ao", "João Souza", "Maria Silva"}, names(rows))
	assert.Equal(t, st.Name, rows[2].ServiceTypeName)
	assert.Equal(t, st.ID, rows[2].ServiceTypeID)
	assert.Equal(t, "2026-11-20", timezone.FormatDate(rows[2].Date))

	// -------- search --------
	rows, err = repo.SearchRequests(ctx, resource, "Jo")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Jo_ao", "João Souza"}, names(rows))

	rows, err = repo.SearchRequests(ctx, resource, "jo")
	require.NoError(t, err)
	assert.Empty(t, rows)

	for _, term := range []string{"%", "_", "0% J"} {
		rows, err = repo.SearchRequests(ctx, resource, term)
		require.NoError(t, err)
		assert.Equal(t, []string{"100% Jo_ao"}, names(rows), "term %q", term)
	}

	rows, err = repo.SearchRequests(ctx, resource, "Maria")
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Silva"}, names(rows))

	// -------- get --------
	got, err := repo.GetRequest(ctx, resource, maria.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ServiceType)
	assert.Equal(t, st.Name, got.ServiceType.Name)
	assert.Equal(t, "12345678901", got.RequesterTaxID)

	_, err = repo.GetRequest(ctx, resource, ghost.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// -------- update --------
	got.RequesterName = "Maria Souza"
	got.StartTime = "10:00"
	got.StreetNumber = ""
	got.ServiceType = nil
	require.NoError(t, repo.UpdateRequest(ctx, got))

	again, err := repo.GetRequest(ctx, resource, maria.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", again.RequesterName)
	assert.Equal(t, "10:00", again.StartTime)
	assert.Equal(t, "", again.StreetNumber)

	broken := *again
	broken.ServiceType = nil
	broken.ServiceTypeID = st.ID + 1_000_000
	err = repo.UpdateRequest(ctx, &broken)
	assert.True(t, httperr.IsForeignKeyViolation(err), "missing type: %v", err)

	missing := newRequest(resource, "Ninguém", st.ID)
	missing.ID = ghost.ID + 1_000_000
	assert.ErrorIs(t, repo.UpdateRequest(ctx, missing), gorm.ErrRecordNotFound)

	foreign := *ghost
	foreign.Resource = resource
	assert.ErrorIs(t, repo.UpdateRequest(ctx, &foreign), gorm.ErrRecordNotFound)

	// -------- delete --------
	require.NoError(t, repo.DeleteRequest(ctx, resource, maria.ID))
	_, err = repo.GetRequest(ctx, resource, maria.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteRequest(ctx, resource, maria.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.DeleteRequest(ctx, resource, ghost.ID), gorm.ErrRecordNotFound)

	rows, err = repo.ListRequests(ctx, resource)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.ListRequests(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Outra"}, names(rows))
}
