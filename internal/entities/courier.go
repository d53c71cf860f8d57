package entities

import "time"

// DefaultCourierRating показывается пока по курьеру нет ни одного отзыва.
const DefaultCourierRating = 4.8

type Courier struct {
	ID             int64
	UserID         *int64
	FullName       string
	Email          string
	Phone          string
	Address        string
	Experience     string
	Transport      CourierTransportType
	Available      bool
	Motivation     string
	IDDocument     FileRef
	DrivingLicense FileRef
	ProfilePicture FileRef
	Status         CourierStatusType
	DeliveryCount  int64
	RatingSum      float64
	RatingCount    int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Rating - средний рейтинг по всем отзывам, считается из двух счетчиков.
func (c *Courier) Rating() float64 {
	if c.RatingCount == 0 {
		return DefaultCourierRating
	}
	return c.RatingSum / float64(c.RatingCount)
}

// FileRef - файл во внешнем хранилище: публичный URL и ID для удаления.
type FileRef struct {
	URL       string
	StorageID string
}

// FileUpload - содержимое файла до отправки во внешнее хранилище.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// ApplicationFiles - три обязательных документа заявки курьера.
type ApplicationFiles struct {
	IDDocument     FileUpload
	DrivingLicense FileUpload
	ProfilePicture FileUpload
}

type CourierTransportType string

const (
	Bicycle    CourierTransportType = "bicycle"
	Motorcycle CourierTransportType = "motorcycle"
	Car        CourierTransportType = "car"
	Van        CourierTransportType = "van"
)

func (t CourierTransportType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	// CourierActive присваивается при одобрении заявки.
	CourierActive  CourierStatusType = "ACTIVE"
	CourierApplied CourierStatusType = ""
)

func (t CourierStatusType) String() string {
	return string(t)
}

// CourierCollection различает заявки и действующих курьеров.
type CourierCollection string

const (
	CollectionApplicants CourierCollection = "coursiers"
	CollectionActive     CourierCollection = "truecoursiers"
)

type CourierModify struct {
	ID         *int64
	UserID     *int64
	FullName   *string
	Email      *string
	Phone      *string
	Address    *string
	Experience *string
	Transport  *CourierTransportType
	Available  *bool
	Motivation *string
}

// CourierPublic - публичная проекция действующего курьера для витрины.
type CourierPublic struct {
	ID             int64
	FullName       string
	ProfilePicture string
	Transport      CourierTransportType
	Rating         float64
	DeliveryCount  int64
}
