package converter

import (
	"storezee/internal/domain/booking"
	sqlc "storezee/internal/infra/sqlc/generated"
	"storezee/internal/pkg/errs"
	"storezee/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func CustomerToInsertParams(c *booking.Customer) sqlc.InsertCustomerParams {
	lat, lng := coordinatesToPgtype(c.Coordinates())
	return sqlc.InsertCustomerParams{
		ID:                   c.ID(),
		CreatedAt:            pgconv.TimeToPgtype(c.CreatedAt()),
		FullName:             c.FullName(),
		Email:                c.Email().Value(),
		Phone:                c.Phone().Value(),
		Role:                 c.Role(),
		Latitude:             lat,
		Longitude:            lng,
		ProfilePicture:       c.ProfilePicture(),
		IsVerified:           c.Verified(),
		CityName:             pgconv.NullableTextToPgtype(c.CityName()),
		IdentificationNumber: pgconv.TextToPgtype(c.IdentificationNumber()),
	}
}

func DocumentToInsertParams(id int64, d *booking.IdentityDocument) sqlc.InsertUserDocumentParams {
	return sqlc.InsertUserDocumentParams{
		ID:           id,
		OriginalName: d.OriginalName(),
		ImghippoUrl:  d.Reference(),
		CreatedAt:    pgconv.TimeToPgtype(d.CreatedAt()),
		UserID:       d.CustomerID(),
	}
}

func BookingToInsertParams(b *booking.Booking) (sqlc.InsertStorageBookingParams, error) {
	images, err := b.PhotoReferencesJSON()
	if err != nil {
		return sqlc.InsertStorageBookingParams{}, errs.Wrap(err, "failed to encode photo references")
	}

	lat, lng := coordinatesToPgtype(b.Coordinates())
	return sqlc.InsertStorageBookingParams{
		ID:            b.ID(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		BookingCode:   b.Code(),
		BookingType:   b.Kind(),
		StartTime:     pgconv.TimeToPgtype(b.StartTime()),
		EndTime:       pgconv.TimeToPgtype(b.EndTime()),
		Status:        b.Status(),
		PrimaryPhoto:  b.PrimaryPhoto(),
		Latitude:      lat,
		Longitude:     lng,
		Location:      b.Location(),
		Remark:        b.Remark(),
		StorageUnitID: b.StorageUnitID(),
		CustomerID:    b.CustomerID(),
		Amount:        pgconv.NumericFromMinorUnits(b.Amount().Minor()),
		LuggageImages: images,
		LastUpdatedBy: b.LastUpdatedBy(),
		PaymentStatus: b.PaymentStatus(),
		// #nosec G115 -- duration is bounded to [1,720]
		BookedTime: int32(b.Duration().Hours()),
	}, nil
}

func AddonAssociationToInsertParams(a *booking.AddonAssociation) sqlc.InsertBookingAddonParams {
	addonID := pgtype.UUID{Valid: false}
	if id := a.AddonID(); id != nil {
		addonID = pgconv.UUIDToPgtype(*id)
	}
	return sqlc.InsertBookingAddonParams{
		ID:         a.ID(),
		CreatedAt:  pgconv.TimeToPgtype(a.CreatedAt()),
		AddonID:    addonID,
		BookingID:  a.BookingID(),
		AddonToken: a.Token(),
	}
}

func coordinatesToPgtype(c *booking.Coordinates) (pgtype.Float8, pgtype.Float8) {
	if c == nil {
		return pgtype.Float8{}, pgtype.Float8{}
	}
	lat, lng := c.Latitude(), c.Longitude()
	return pgconv.Float8PtrToPgtype(&lat), pgconv.Float8PtrToPgtype(&lng)
}
