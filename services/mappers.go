package services

import (
	"github.com/appinventory/dto"
	"github.com/appinventory/models"
)

// Response mappers shared across services. Summaries assume the relation was
// preloaded by the repository.

func mapBusinessUnitResponse(unit models.BusinessUnit) dto.BusinessUnitResponse {
	return dto.BusinessUnitResponse{
		ID:          unit.ID,
		Name:        unit.Name,
		Description: unit.Description,
		CreatedAt:   unit.CreatedAt,
		UpdatedAt:   unit.UpdatedAt,
	}
}

func mapApplicationResponse(application models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          application.ID,
		Name:        application.Name,
		Description: application.Description,
		Status:      application.Status,
		BusinessUnit: dto.BusinessUnitSummary{
			ID:   application.BusinessUnit.ID,
			Name: application.BusinessUnit.Name,
		},
		EndOfLifeDate:    application.EndOfLifeDate,
		EndOfSupportDate: application.EndOfSupportDate,
		CreatedAt:        application.CreatedAt,
		UpdatedAt:        application.UpdatedAt,
	}
}

func mapApplicationSummary(application models.Application) dto.ApplicationSummary {
	return dto.ApplicationSummary{
		ID:               application.ID,
		Name:             application.Name,
		Status:           application.Status,
		BusinessUnitName: application.BusinessUnit.Name,
	}
}

func mapVersionResponse(version models.Version) dto.VersionResponse {
	return dto.VersionResponse{
		ID:                version.ID,
		ApplicationID:     version.ApplicationID,
		ApplicationName:   version.Application.Name,
		VersionIdentifier: version.VersionIdentifier,
		ExternalReference: version.ExternalReference,
		ReleaseDate:       version.ReleaseDate,
		EndOfLifeDate:     version.EndOfLifeDate,
		CreatedAt:         version.CreatedAt,
		UpdatedAt:         version.UpdatedAt,
	}
}

func mapVersionSummary(version models.Version) dto.VersionSummary {
	return dto.VersionSummary{
		ID:                version.ID,
		VersionIdentifier: version.VersionIdentifier,
		ReleaseDate:       version.ReleaseDate,
	}
}

func mapEnvironmentResponse(environment models.Environment) dto.EnvironmentResponse {
	return dto.EnvironmentResponse{
		ID:               environment.ID,
		Name:             environment.Name,
		Description:      environment.Description,
		IsProduction:     environment.IsProduction,
		CriticalityLevel: environment.CriticalityLevel,
		CreatedAt:        environment.CreatedAt,
		UpdatedAt:        environment.UpdatedAt,
	}
}

func mapEnvironmentSummary(environment models.Environment) dto.EnvironmentSummary {
	return dto.EnvironmentSummary{
		ID:           environment.ID,
		Name:         environment.Name,
		IsProduction: environment.IsProduction,
	}
}

func mapPersonResponse(person models.Person) dto.PersonResponse {
	return dto.PersonResponse{
		ID:        person.ID,
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Email:     person.Email,
		Phone:     person.Phone,
		CreatedAt: person.CreatedAt,
		UpdatedAt: person.UpdatedAt,
	}
}

func mapContactRoleResponse(role models.ContactRole) dto.ContactRoleResponse {
	return dto.ContactRoleResponse{
		ID:          role.ID,
		RoleName:    role.RoleName,
		Description: role.Description,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

func mapContactResponse(contact models.Contact) dto.ContactResponse {
	persons := make([]dto.PersonInContactResponse, 0, len(contact.ContactPersons))
	for _, cp := range contact.ContactPersons {
		persons = append(persons, dto.PersonInContactResponse{
			Person:    mapPersonResponse(cp.Person),
			IsPrimary: cp.IsPrimary,
		})
	}
	return dto.ContactResponse{
		ID:          contact.ID,
		ContactRole: mapContactRoleResponse(contact.ContactRole),
		Persons:     persons,
		CreatedAt:   contact.CreatedAt,
		UpdatedAt:   contact.UpdatedAt,
	}
}

func mapDependencyTypeResponse(dependencyType models.DependencyType) dto.DependencyTypeResponse {
	return dto.DependencyTypeResponse{
		ID:          dependencyType.ID,
		TypeName:    dependencyType.TypeName,
		Description: dependencyType.Description,
		IsCustom:    dependencyType.IsCustom,
		CreatedAt:   dependencyType.CreatedAt,
		UpdatedAt:   dependencyType.UpdatedAt,
	}
}

func mapDeploymentResponse(deployment models.Deployment) dto.DeploymentResponse {
	return dto.DeploymentResponse{
		ID:             deployment.ID,
		Application:    mapApplicationSummary(deployment.Application),
		Version:        mapVersionSummary(deployment.Version),
		Environment:    mapEnvironmentSummary(deployment.Environment),
		DeploymentDate: deployment.DeploymentDate,
		DeployedBy:     deployment.DeployedBy,
		Notes:          deployment.Notes,
		CreatedAt:      deployment.CreatedAt,
	}
}

func mapCurrentStateResponse(deployment models.Deployment) dto.CurrentDeploymentStateResponse {
	return dto.CurrentDeploymentStateResponse{
		Application:    mapApplicationSummary(deployment.Application),
		Environment:    mapEnvironmentSummary(deployment.Environment),
		Version:        mapVersionSummary(deployment.Version),
		DeploymentDate: deployment.DeploymentDate,
		DeployedBy:     deployment.DeployedBy,
	}
}

func mapUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
