package queries

import (
	"github.com/google/uuid"
)

// AddonView represents an active add-on as listed to booking clients
type AddonView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	BasePrice   string    `json:"base_price"`
	Description string    `json:"description"`
}

type StorageUnitView struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// CustomerRoleView is the phone lookup result used by the login screen
type CustomerRoleView struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profile_picture"`
}
