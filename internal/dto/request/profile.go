package request

// UpdateProfileRequest carries optional patches. Fields that fail their rule
// are ignored, not rejected.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	Gender *string `json:"gender,omitempty"`
}
