package dto

import "github.com/harentsoaR/contact-directory/internal/models"

// ContactRequest is the body of create and update calls. Update replaces
// every attribute, so omitted optional fields are cleared.
type ContactRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	PersonalEmail string `json:"personalemail"`
	Phone         StringOrNumber `json:"phone" validate:"required"`
	Year          StringOrNumber `json:"year"`
	Address       string `json:"address" validate:"required"`
	Domain        string `json:"domain"`
	Department    string `json:"department" validate:"required"`
	GitHub        string `json:"github"`
	LinkedIn      string `json:"linkedin"`
	LeetCode      string `json:"leetcode"`
	HackerRank    string `json:"hackerrank"`
}

// ToContact builds the stored record for id.
func (r *ContactRequest) ToContact(id string) *models.Contact {
	return &models.Contact{
		ID:            id,
		Name:          r.Name,
		Email:         r.Email,
		PersonalEmail: r.PersonalEmail,
		Phone:         string(r.Phone),
		Year:          string(r.Year),
		Address:       r.Address,
		Domain:        r.Domain,
		Department:    r.Department,
		GitHub:        r.GitHub,
		LinkedIn:      r.LinkedIn,
		LeetCode:      r.LeetCode,
		HackerRank:    r.HackerRank,
	}
}

// ContactCreatedResponse is returned by the create routes.
type ContactCreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
