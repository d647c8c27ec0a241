package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

const (
	TemplateWelcome = "welcome"
)

var welcomeHTML = template.Must(template.New("welcome").Parse(`
<html>
  <body style="font-family: sans-serif; color: #333;">
    <h2>Welcome to CafeHub, {{.Name}}!</h2>
    <p>Your account is ready. Log in to add your favourite cafes and leave
    comments for other coffee people.</p>
  </body>
</html>
`))

// Render produces subject/text/html for a named template. Unknown template
// names are an error so the worker can dead-letter the job instead of
// sending something half-baked.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateWelcome:
		displayName, _ := data["Name"].(string)
		if displayName == "" {
			displayName = "there"
		}
		var buf bytes.Buffer
		if err = welcomeHTML.Execute(&buf, map[string]string{"Name": displayName}); err != nil {
			return "", "", "", err
		}
		subject = "Welcome to CafeHub"
		text = fmt.Sprintf("Welcome to CafeHub, %s! Your account is ready.", displayName)
		html = buf.String()
		return subject, text, html, nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
