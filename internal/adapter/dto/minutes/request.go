package minutes

// GenerateRequest are the user-facing parameters for one minutes generation.
// The transcript itself arrives either as an uploaded file (multipart field
// "file") or as pasted text in Transcript. Length bounds mirror the UI
// slider ranges: max 50-400 default 180, min 10-100 default 30.
type GenerateRequest struct {
	Transcript   string `form:"transcript" json:"transcript"`
	Participants string `form:"participants" json:"participants"`
	Model        string `form:"model" json:"model" validate:"required,oneof=facebook/bart-large-cnn t5-small"`
	MaxLength    int    `form:"max_length" json:"max_length" validate:"required,min=50,max=400"`
	MinLength    int    `form:"min_length" json:"min_length" validate:"required,min=10,max=100,ltefield=MaxLength"`
	ModelSize    string `form:"model_size" json:"model_size" validate:"omitempty,oneof=best nano"`
}

// ApplyDefaults fills unset parameters with the documented defaults
func (r *GenerateRequest) ApplyDefaults(model string, maxLength, minLength int) {
	if r.Model == "" {
		r.Model = model
	}
	if r.MaxLength == 0 {
		r.MaxLength = maxLength
	}
	if r.MinLength == 0 {
		r.MinLength = minLength
	}
}
