package repository

import (
	"context"
	"log"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/scheduling"
	"github.com/BruksfildServices01/service-scheduler/internal/dto"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
)

// colunas gravadas por create/update; Select força também os valores zero
var writableColumns = []string{
	"requester_name",
	"requester_tax_id",
	"requester_contact",
	"address",
	"neighborhood",
	"street_number",
	"service_type_id",
	"date",
	"start_time",
	"end_time",
	"description",
}

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// List / Search (squirrel → gorm Raw)
// --------------------------------------------------

func listQuery(resource string) sq.SelectBuilder {
	return sq.Select(
		"r.id",
		"r.requester_name",
		"r.requester_tax_id",
		"r.requester_contact",
		"r.date",
		"r.start_time",
		"r.end_time",
		"r.description",
		"r.service_type_id",
		"st.name AS service_type_name",
	).
		From("scheduling_requests r").
		Join("service_types st ON st.id = r.service_type_id").
		Where(sq.Eq{"r.resource": resource}).
		OrderBy("r.requester_name ASC", "r.id ASC")
}

// BuildListSQL monta a listagem com join no tipo de serviço.
func BuildListSQL(resource string) (string, []any, error) {
	return listQuery(resource).ToSql()
}

// BuildSearchSQL monta a busca por substring do nome; curingas do termo
// são escapados.
func BuildSearchSQL(resource, term string) (string, []any, error) {
	return listQuery(resource).
		Where(sq.Like{"r.requester_name": domain.ContainsPattern(term)}).
		ToSql()
}

func (r *SchedulingGormRepository) ListRequests(
	ctx context.Context,
	resource string,
) ([]dto.SchedulingRequestListDTO, error) {

	query, args, err := BuildListSQL(resource)
	if err != nil {
		return nil, err
	}

	var rows []dto.SchedulingRequestListDTO
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SchedulingGormRepository) SearchRequests(
	ctx context.Context,
	resource string,
	term string,
) ([]dto.SchedulingRequestListDTO, error) {

	query, args, err := BuildSearchSQL(resource, term)
	if err != nil {
		return nil, err
	}

	var rows []dto.SchedulingRequestListDTO
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// CRUD
// --------------------------------------------------

func (r *SchedulingGormRepository) GetRequest(
	ctx context.Context,
	resource string,
	id uint,
) (*models.SchedulingRequest, error) {

	var req models.SchedulingRequest
	if err := r.db.WithContext(ctx).
		Preload("ServiceType").
		Where("id = ? AND resource = ?", id, resource).
		First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *SchedulingGormRepository) CreateRequest(
	ctx context.Context,
	req *models.SchedulingRequest,
) error {
	return r.db.WithContext(ctx).
		Omit("ServiceType").
		Create(req).Error
}

func (r *SchedulingGormRepository) UpdateRequest(
	ctx context.Context,
	req *models.SchedulingRequest,
) error {

	log.Printf("atualizando %s id=%d", req.Resource, req.ID)

	res := r.db.WithContext(ctx).
		Model(&models.SchedulingRequest{}).
		Where("id = ? AND resource = ?", req.ID, req.Resource).
		Select(writableColumns).
		Updates(req)

	if res.Error != nil {
		log.Printf("erro ao atualizar %s id=%d: %v", req.Resource, req.ID, res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	log.Printf("atualização de %s id=%d realizada com sucesso", req.Resource, req.ID)
	return nil
}

func (r *SchedulingGormRepository) DeleteRequest(
	ctx context.Context,
	resource string,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND resource = ?", id, resource).
		Delete(&models.SchedulingRequest{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Service types
// --------------------------------------------------

func (r *SchedulingGormRepository) ListServiceTypes(
	ctx context.Context,
) ([]models.ServiceType, error) {

	var types []models.ServiceType
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *SchedulingGormRepository) CreateServiceType(
	ctx context.Context,
	st *models.ServiceType,
) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *SchedulingGormRepository) ServiceTypeExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceType{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
