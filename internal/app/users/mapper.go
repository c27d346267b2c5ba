package users

import (
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/dto"
)

// The credential is locally owned, so unlike the foreign substructures of the
// other families it survives both mapping directions.

func toDTO(u *domain.User) *dto.UserDTO {
	return &dto.UserDTO{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		ImageURL:  u.ImageURL,
		Email:     u.Email,
		Phone:     u.Phone,
		Credential: &dto.CredentialDTO{
			CredentialID: u.Credential.CredentialID,
			Username:     u.Credential.Username,
			Password:     u.Credential.Password,
			IsEnabled:    u.Credential.IsEnabled,
		},
	}
}

func toRecord(d *dto.UserDTO) *domain.User {
	user := &domain.User{
		UserID:    d.UserID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		ImageURL:  d.ImageURL,
		Email:     d.Email,
		Phone:     d.Phone,
	}
	if d.Credential != nil {
		user.Credential = domain.Credential{
			CredentialID: d.Credential.CredentialID,
			Username:     d.Credential.Username,
			Password:     d.Credential.Password,
			IsEnabled:    d.Credential.IsEnabled,
		}
	}
	return user
}
