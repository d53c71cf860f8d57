package courier

import "time"

type CourierDB struct {
	ID                      int64
	UserID                  *int64
	FullName                string
	Email                   string
	Phone                   string
	Address                 string
	Experience              string
	Transport               string
	Available               bool
	Motivation              string
	IDDocumentURL           string
	IDDocumentStorageID     string
	DrivingLicenseURL       string
	DrivingLicenseStorageID string
	ProfilePictureURL       string
	ProfilePictureStorageID string
	Status                  string
	DeliveryCount           int64
	RatingSum               float64
	RatingCount             int64
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
