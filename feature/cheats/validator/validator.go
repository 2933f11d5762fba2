package validator

import (
	"fmt"
	"regexp"
	"strings"

	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
)

const maxFieldLength = 255

// Validator checks and normalizes cheat-code input against the type
// registry. It holds no state beyond the registry reference; both Validate
// and Sanitize consult the registry at call time, so a registry mutation
// between the two calls is an accepted benign race.
type Validator struct {
	registry *registry.Registry
}

// New creates a Validator bound to a registry instance.
func New(reg *registry.Registry) *Validator {
	return &Validator{registry: reg}
}

// Validate returns the complete field->message map for the input. An empty
// map means the input is acceptable. Validation never mutates the input;
// callers run Sanitize separately before persisting.
func (v *Validator) Validate(in models.Input) map[string]string {
	errors := make(map[string]string)

	if in.Name == "" {
		errors["name"] = "Cheat code name is required"
	} else if len(in.Name) > maxFieldLength {
		errors["name"] = "Cheat code name must be 255 characters or less"
	}

	if in.Code == "" {
		errors["code"] = "Cheat code is required"
	} else if len(in.Code) > maxFieldLength {
		errors["code"] = "Cheat code must be 255 characters or less"
	}

	if in.Type == "" {
		errors["type"] = "Cheat code type is required"
	} else if !v.registry.Has(in.Type) {
		errors["type"] = fmt.Sprintf("Invalid cheat code type. Must be one of: %s",
			strings.Join(v.registry.ListIDs(), ", "))
	}

	// Format validation runs only when code and type passed their own checks.
	if errors["code"] == "" && errors["type"] == "" {
		if msg := v.ValidateFormat(in.Code, in.Type); msg != "" {
			errors["code"] = msg
		}
	}

	for field, msg := range errors {
		if msg == "" {
			delete(errors, field)
		}
	}
	return errors
}

// ValidateFormat checks a code against its type's pattern and returns an
// error message, or "" when the code is well formed. Spaces are stripped
// before matching; they are formatting, not content.
func (v *Validator) ValidateFormat(code, typeID string) string {
	clean := strings.ReplaceAll(code, " ", "")

	if typeID == "raw" {
		if clean == "" {
			return "Raw code cannot be empty"
		}
		return ""
	}

	pattern := v.registry.PatternFor(typeID)
	re, err := regexp.Compile(pattern)
	if err != nil || !re.MatchString(clean) {
		return v.formatMessage(typeID)
	}
	return ""
}

// formatMessage names the type in the mismatch error: the registered
// format hint when one exists, otherwise a generic message with the
// display name (or the capitalized id if the type has since been removed).
func (v *Validator) formatMessage(typeID string) string {
	if t, ok := v.registry.Get(typeID); ok {
		if t.FormatHint != "" {
			return t.FormatHint
		}
		return t.Name + " codes must match the required format"
	}
	return capitalize(typeID) + " codes must match the required format"
}

// Sanitize normalizes raw input into its canonical, storage-ready shape:
// trimmed name/code/description and a lower-cased type that falls back to
// raw when it is not a live registry id.
func (v *Validator) Sanitize(in models.Input) models.Input {
	out := models.Input{
		Name:        strings.TrimSpace(in.Name),
		Code:        strings.TrimSpace(in.Code),
		Description: strings.TrimSpace(in.Description),
	}

	typeID := strings.ToLower(strings.TrimSpace(in.Type))
	if typeID == "" || !v.registry.Has(typeID) {
		typeID = "raw"
	}
	out.Type = typeID
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
