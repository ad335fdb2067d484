package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be at most {param}",
		"min":         "{field} must be at least {param}",
		"email":       "{field} must be a valid email address",
		"e164":        "{field} must be a phone number in E.164 format",
		"alphanum":    "{field} must contain only letters and numbers",
		"uuid":        "{field} must be a valid UUID",
		"url":         "{field} must be a valid URL",
		"nefield":     "{field} must differ from {param}",
		"datetime":    "{field} must match the format {param}",
		"mimetypes":   "{field} must be one of {param}",
		"maxfilesize": "{field} must not exceed {param} MB",
	}
)

// message renders the first failed rule that has a template.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		tmpl := messages[valErr.Tag()]
		if tmpl == "" {
			continue
		}

		return strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(tmpl)
	}

	return valErrors.Error()
}
