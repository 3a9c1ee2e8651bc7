package mail

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/aussiebroadwan/accounts/pkg/cryptox"
)

var (
	verifyEmailTmpl = template.Must(template.New("verify-email").Parse(
		`Hi,

Your email verification code is:

    {{.PIN}}

Enter it within the next {{.TTL}} to confirm this address. If you did not
create an account, you can ignore this message.
`))

	magicLinkTmpl = template.Must(template.New("magic-link").Parse(
		`Hi,

Use the link below to sign in. It is valid for {{.TTL}} and works once:

    {{.Link}}

If you did not request this, no action is needed.
`))

	resetPasswordTmpl = template.Must(template.New("reset-password").Parse(
		`Hi,

A password reset was requested for your account. Use the link below within
{{.TTL}} to choose a new password:

    {{.Link}}

If you did not request a reset, your password is unchanged and you can
ignore this message.
`))
)

// VerifyEmailMessage renders the verification PIN email. The PIN is shown
// grouped for readability; the recipient may type it with or without the
// hyphen.
func VerifyEmailMessage(to, pin string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Confirm your email address",
		Body: render(verifyEmailTmpl, map[string]any{
			"PIN": cryptox.FormatPIN(pin),
			"TTL": humanTTL(ttl),
		}),
	}
}

// MagicLinkMessage renders the one-time sign-in link email.
func MagicLinkMessage(to, link string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Your sign-in link",
		Body: render(magicLinkTmpl, map[string]any{
			"Link": link,
			"TTL":  humanTTL(ttl),
		}),
	}
}

// PasswordResetMessage renders the password reset link email.
func PasswordResetMessage(to, link string, ttl time.Duration) Message {
	return Message{
		To:      to,
		Subject: "Reset your password",
		Body: render(resetPasswordTmpl, map[string]any{
			"Link": link,
			"TTL":  humanTTL(ttl),
		}),
	}
}

func render(t *template.Template, data any) string {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		// Templates are parsed at init and data is always a map; an execute
		// failure here is a programming error.
		panic(err)
	}
	return sb.String()
}

func humanTTL(ttl time.Duration) string {
	switch {
	case ttl >= 48*time.Hour && ttl%(24*time.Hour) == 0:
		return fmt.Sprintf("%d days", int(ttl.Hours())/24)
	case ttl >= time.Hour && ttl%time.Hour == 0:
		h := int(ttl.Hours())
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case ttl >= time.Minute:
		m := int(ttl.Minutes())
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	default:
		return ttl.String()
	}
}
