package request

// Guest status is not accepted here: it is derived from the guest's
// active bookings by the status synchronizer.

type CreateGuestRequest struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,max=30"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=300"`
	TaxID     *string `json:"tax_id,omitempty" validate:"omitempty,max=30"`
}

type UpdateGuestRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address   *string `json:"address,omitempty" validate:"omitempty,max=300"`
	TaxID     *string `json:"tax_id,omitempty" validate:"omitempty,max=30"`
}
