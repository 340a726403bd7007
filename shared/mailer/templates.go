package mailer

import (
	"bytes"
	"html/template"
	"time"
)

var passwordResetTemplate = template.Must(template.New("password_reset").Parse(`
<p>Hi {{.Name}},</p>
<p>We received a request to reset the password for your StreamHub account.</p>
<p>If you made this request, please click the link below to choose a new password:</p>

<p><a href="{{.Link}}">{{.Link}}</a></p>

<p>This link will expire in {{.ExpiresIn}}.</p>
<p>If you did not request a password reset, you can safely ignore this email.</p>

<p>The StreamHub Team</p>
`))

// PasswordResetData is the data rendered into the password reset email.
type PasswordResetData struct {
	Name      string
	Link      string
	ExpiresIn time.Duration
}

// RenderPasswordReset renders the password reset email body.
func RenderPasswordReset(data PasswordResetData) (string, error) {
	var buf bytes.Buffer
	if err := passwordResetTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
