package courier

import (
	"delivery/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:         c.ID,
		UserID:     c.UserID,
		FullName:   c.FullName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Experience: c.Experience,
		Transport:  entities.CourierTransportType(c.Transport),
		Available:  c.Available,
		Motivation: c.Motivation,
		IDDocument: entities.FileRef{
			URL:       c.IDDocumentURL,
			StorageID: c.IDDocumentStorageID,
		},
		DrivingLicense: entities.FileRef{
			URL:       c.DrivingLicenseURL,
			StorageID: c.DrivingLicenseStorageID,
		},
		ProfilePicture: entities.FileRef{
			URL:       c.ProfilePictureURL,
			StorageID: c.ProfilePictureStorageID,
		},
		Status:        entities.CourierStatusType(c.Status),
		DeliveryCount: c.DeliveryCount,
		RatingSum:     c.RatingSum,
		RatingCount:   c.RatingCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}
