package user

import (
	"delivery/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	result := entities.User{
		ID:            u.ID,
		Email:         u.Email,
		Phone:         u.Phone,
		FullName:      u.FullName,
		PasswordHash:  u.PasswordHash,
		Role:          entities.UserRoleType(u.Role),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if u.PushToken != nil {
		result.PushToken = *u.PushToken
	}
	if u.GoogleID != nil {
		result.GoogleID = *u.GoogleID
	}
	return &result
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
