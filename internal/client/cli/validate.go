package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/pocketauth/internal/i18n"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func validateEmail(tr *i18n.Translator, email string) string {
	if strings.TrimSpace(email) == "" {
		return tr.Tf("validation.required", map[string]any{"Field": tr.T("common.email")})
	}
	if !emailPattern.MatchString(email) {
		return tr.T("validation.email_invalid")
	}
	return ""
}

func validatePassword(tr *i18n.Translator, password []byte) string {
	if len(password) == 0 {
		return tr.Tf("validation.required", map[string]any{"Field": tr.T("common.password")})
	}
	if utf8.RuneCount(password) < minPasswordLen {
		return tr.T("validation.password_length")
	}
	return ""
}

// validateLogin returns one message per invalid field, in form order.
func validateLogin(tr *i18n.Translator, email string, password []byte) []string {
	return collect(
		validateEmail(tr, email),
		validatePassword(tr, password),
	)
}

func validateSignup(tr *i18n.Translator, name, email string, password, confirm []byte) []string {
	var nameMsg, confirmMsg string
	if strings.TrimSpace(name) == "" {
		nameMsg = tr.Tf("validation.required", map[string]any{"Field": tr.T("common.full_name")})
	}
	switch {
	case len(confirm) == 0:
		confirmMsg = tr.Tf("validation.required", map[string]any{"Field": tr.T("common.confirm_password")})
	case string(confirm) != string(password):
		confirmMsg = tr.T("validation.password_mismatch")
	}
	return collect(
		nameMsg,
		validateEmail(tr, email),
		validatePassword(tr, password),
		confirmMsg,
	)
}

func collect(msgs ...string) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}
