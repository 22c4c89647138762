package repositories

import (
	"time"

	"github.com/appinventory/database"
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

var deploymentSortColumns = map[string]string{
	"deploymentDate": "deployment_date",
	"createdAt":      "created_at",
}

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct{}

// NewDeploymentRepository creates a new deployment repository instance
func NewDeploymentRepository() *DeploymentRepository {
	return &DeploymentRepository{}
}

func deploymentPreloads() []string {
	return []string{"Application.BusinessUnit", "Version", "Environment"}
}

// FindByID retrieves a deployment with its application, version and
// environment
func (r *DeploymentRepository) FindByID(id string) (models.Deployment, error) {
	var deployment models.Deployment
	query := database.DB
	for _, preload := range deploymentPreloads() {
		query = query.Preload(preload)
	}
	result := query.First(&deployment, "id = ?", id)
	return deployment, result.Error
}

// Search retrieves a page of deployments matching the optional application,
// environment, version and date-range filters. Both date bounds are
// inclusive and independently optional.
func (r *DeploymentRepository) Search(applicationID, environmentID, versionID *string, dateFrom, dateTo *time.Time, req dto.PageRequest) ([]models.Deployment, int64, error) {
	var deployments []models.Deployment
	var total int64

	base := database.DB.Model(&models.Deployment{})
	if applicationID != nil {
		base = base.Where("application_id = ?", *applicationID)
	}
	if environmentID != nil {
		base = base.Where("environment_id = ?", *environmentID)
	}
	if versionID != nil {
		base = base.Where("version_id = ?", *versionID)
	}
	if dateFrom != nil {
		base = base.Where("deployment_date >= ?", *dateFrom)
	}
	if dateTo != nil {
		base = base.Where("deployment_date <= ?", *dateTo)
	}

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, preload := range deploymentPreloads() {
		base = base.Preload(preload)
	}
	result := base.
		Order(req.Order(deploymentSortColumns, "deployment_date")).
		Offset(req.Offset()).Limit(req.Size).
		Find(&deployments)
	return deployments, total, result.Error
}

// FindCurrentState returns the most recent deployment per distinct
// (application, environment) pair, optionally narrowed to one application or
// environment. Evaluated as a single set-based query so concurrent inserts
// cannot produce read skew; ties on deployment_date break toward the highest
// id.
func (r *DeploymentRepository) FindCurrentState(applicationID, environmentID *string) ([]models.Deployment, error) {
	var deployments []models.Deployment

	query := database.DB.Model(&models.Deployment{}).
		Where(`NOT EXISTS (
			SELECT 1 FROM deployments newer
			WHERE newer.application_id = deployments.application_id
			  AND newer.environment_id = deployments.environment_id
			  AND (newer.deployment_date > deployments.deployment_date
			       OR (newer.deployment_date = deployments.deployment_date AND newer.id > deployments.id))
		)`)
	if applicationID != nil {
		query = query.Where("application_id = ?", *applicationID)
	}
	if environmentID != nil {
		query = query.Where("environment_id = ?", *environmentID)
	}

	for _, preload := range deploymentPreloads() {
		query = query.Preload(preload)
	}
	result := query.Order("deployment_date DESC").Find(&deployments)
	return deployments, result.Error
}

// Create inserts a new deployment into the database
func (r *DeploymentRepository) Create(deployment models.Deployment) (models.Deployment, error) {
	result := database.DB.Create(&deployment)
	return deployment, result.Error
}
