package email

// Provider sends email on behalf of the site.
type Provider interface {
	// Send sends a plain message
	Send(email *Email) error

	// SendWithTemplate renders the named template into the HTML body
	// and sends the message
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration
	Validate() error

	// Close releases any provider resources
	Close() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
