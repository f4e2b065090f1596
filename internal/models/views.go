package models

import "time"

// UserView is the read-optimised projection of a user.
// It is the only user shape that crosses the API boundary; the password
// hash and PIN never leave the write model.
type UserView struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dateOfBirth"`
	IDCardURL   string    `json:"idCardUrl,omitempty"`
	Category    string    `json:"accountType"`
	Role        string    `json:"role"`
	IsApproved  bool      `json:"isApproved"`
	IsBanned    bool      `json:"isBanned"`
	BankID      string    `json:"ubsId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToView strips the credential fields from a user.
func (u *User) ToView() *UserView {
	return &UserView{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DateOfBirth: u.DateOfBirth,
		IDCardURL:   u.IDCardURL,
		Category:    u.Category,
		Role:        u.Role,
		IsApproved:  u.IsApproved,
		IsBanned:    u.IsBanned,
		BankID:      u.BankID,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
