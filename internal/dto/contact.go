package dto

// ContactSubmissionRequest is the public contact form payload. Format
// and length rules are enforced here; the handler additionally trims
// whitespace before validation.
type ContactSubmissionRequest struct {
	Name    string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Company string `json:"company" validate:"omitempty,max=200"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" binding:"required" validate:"required,min=10,max=5000"`
	Source  string `json:"source" validate:"omitempty,max=100"`
}

// UpdateContactRequest moves a submission through the admin workflow.
type UpdateContactRequest struct {
	Status *string `json:"status" validate:"omitempty,is-contact-status"`
}

func (r *UpdateContactRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}
