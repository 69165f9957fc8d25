package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// TemplateManager implements TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// ContactNotificationTemplate is the mail sent to the site owner when
// the public contact form is submitted.
const ContactNotificationTemplate = `<html>
<body>
<h2>New contact form submission</h2>
<table>
<tr><td><b>Name</b></td><td>{{.Name}}</td></tr>
<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
{{if .Phone}}<tr><td><b>Phone</b></td><td>{{.Phone}}</td></tr>{{end}}
{{if .Company}}<tr><td><b>Company</b></td><td>{{.Company}}</td></tr>{{end}}
<tr><td><b>Subject</b></td><td>{{.Subject}}</td></tr>
</table>
<p>{{.Message}}</p>
</body>
</html>`

// NewTemplateManager returns a manager preloaded with the built-in
// templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.AddTemplate("contact_notification", ContactNotificationTemplate); err != nil {
		panic(err)
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
