// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Contact is a single address-book entry owned by exactly one user.
// Optional columns are pointers so that NULL survives the round trip.
type Contact struct {
	// ID is the server-assigned identifier of the contact.
	ID int64 `json:"id"`

	// Username is the owner of the contact. It is always taken from the
	// authenticated user, never from the request body.
	Username string `json:"-"`

	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactUpdate is a typed patch for a contact row.
// Only non-nil fields are written; the row is matched by ID and Username.
type ContactUpdate struct {
	ID       int64
	Username string

	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
}

// IsEmpty reports whether the patch changes nothing.
func (c ContactUpdate) IsEmpty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Phone == nil && c.Email == nil
}

// CreateContactRequest is the body of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitnil,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitnil,min=1,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitnil,min=1,max=50,email"`
}

// UpdateContactRequest is the body of PATCH /api/contacts/{id}.
// ID is always overwritten with the path parameter.
type UpdateContactRequest struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	FirstName *string `json:"first_name,omitempty" validate:"omitnil,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitnil,min=1,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitnil,min=1,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitnil,min=1,max=50,email"`
}

// ContactResponse is the public projection of a contact.
type ContactResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// NewContactResponse projects c onto its public fields.
func NewContactResponse(c Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
