package dto

// CreateUserRequest is the POST /users body.
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,max=100" example:"Asha Raman"`
	Email     string `json:"email" validate:"required,email,max=100" example:"asha@college.edu"`
	Password  string `json:"password" validate:"required,min=8" example:"s3cretpass"`
	Role      string `json:"role" validate:"required,oneof=ADMIN STAFF" example:"STAFF"`
	CreatedBy string `json:"createdBy" example:"admin"`
}

// UpdateUserRequest is the PUT /users/{userId} body. An empty password
// keeps the stored hash.
type UpdateUserRequest struct {
	Name      string `json:"name" validate:"required,max=100" example:"Asha Raman"`
	Email     string `json:"email" validate:"required,email,max=100" example:"asha@college.edu"`
	Password  string `json:"password" validate:"omitempty,min=8" example:"n3wsecret"`
	Role      string `json:"role" validate:"required,oneof=ADMIN STAFF" example:"STAFF"`
	IsActive  string `json:"isActive" validate:"required,yesno" example:"YES"`
	UpdatedBy string `json:"updatedBy" example:"admin"`
}
