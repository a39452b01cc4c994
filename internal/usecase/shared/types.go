package shared

import (
	"storezee/internal/domain/booking"

	"github.com/google/uuid"
)

type AddonSnapshot struct {
	ID        uuid.UUID
	Name      string
	UnitPrice booking.Money
}

type CustomerSnapshot struct {
	ID             uuid.UUID
	FullName       string
	Email          string
	Phone          string
	Role           string
	ProfilePicture string
}
