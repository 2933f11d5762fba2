package validator_test

import (
	"path/filepath"
	"strings"
	"testing"

	"cheatvault/core/fsys"
	"cheatvault/feature/cheats/models"
	"cheatvault/feature/cheats/registry"
	"cheatvault/feature/cheats/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newValidator(t *testing.T) (*validator.Validator, *registry.Registry) {
	t.Helper()
	reg := registry.New(filepath.Join(t.TempDir(), "cheat_types.json"), fsys.NewLocal(), zap.NewNop())
	require.NoError(t, reg.Load())
	require.NoError(t, reg.SeedDefaults())
	return validator.New(reg), reg
}

func TestValidateValidData(t *testing.T) {
	v, _ := newValidator(t)

	errs := v.Validate(models.Input{
		Name:        "Infinite Lives",
		Code:        "ABCD-1234",
		Description: "Gives the player infinite lives",
		Type:        "game_genie",
	})
	assert.Empty(t, errs)
}

func TestValidateMissingRequiredFields(t *testing.T) {
	v, _ := newValidator(t)

	errs := v.Validate(models.Input{Description: "Gives the player infinite lives"})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "code")
	assert.Contains(t, errs, "type")
}

func TestValidateFieldLength(t *testing.T) {
	v, _ := newValidator(t)

	long := strings.Repeat("x", 256)
	errs := v.Validate(models.Input{Name: long, Code: long, Type: "raw"})
	assert.Equal(t, "Cheat code name must be 255 characters or less", errs["name"])
	assert.Equal(t, "Cheat code must be 255 characters or less", errs["code"])
}

func TestValidateInvalidType(t *testing.T) {
	v, _ := newValidator(t)

	errs := v.Validate(models.Input{
		Name: "Infinite Lives",
		Code: "ABCD-1234",
		Type: "invalid_type",
	})
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs["type"], "Must be one of:")
	assert.Contains(t, errs["type"], "raw")
}

func TestValidateInvalidFormatAttachedToCode(t *testing.T) {
	v, _ := newValidator(t)

	errs := v.Validate(models.Input{
		Name: "Infinite Lives",
		Code: "ABCD123", // 7 characters, not a Game Genie shape
		Type: "game_genie",
	})
	assert.Contains(t, errs, "code")
	assert.NotContains(t, errs, "type")
}

func TestValidateFormatRaw(t *testing.T) {
	v, _ := newValidator(t)

	assert.Empty(t, v.ValidateFormat("any code", "raw"))
	assert.Equal(t, "Raw code cannot be empty", v.ValidateFormat("", "raw"))
	assert.Equal(t, "Raw code cannot be empty", v.ValidateFormat("   ", "raw"))
}

func TestValidateFormatGameGenie(t *testing.T) {
	v, _ := newValidator(t)
	want := "Game Genie codes must be 6-8 alphanumeric characters (A-Z, 0-9)"

	assert.Empty(t, v.ValidateFormat("ABCD-EFGH", "game_genie"))
	assert.Empty(t, v.ValidateFormat("ABCDEF", "game_genie"))
	assert.Empty(t, v.ValidateFormat("ABCDEFGH", "game_genie"))
	assert.Equal(t, want, v.ValidateFormat("ABCDE", "game_genie"))
	assert.Equal(t, want, v.ValidateFormat("ABCD123", "game_genie"))
	assert.Equal(t, want, v.ValidateFormat("ABCDEFGHI", "game_genie"))
}

func TestValidateFormatGameShark(t *testing.T) {
	v, _ := newValidator(t)
	want := "GameShark codes must be in format: XXXXXXXX or XXXXXXXX YYYYYYYY (hex digits)"

	assert.Empty(t, v.ValidateFormat("12345678", "gameshark"))
	assert.Empty(t, v.ValidateFormat("12345678 9ABCDEF0", "gameshark"))
	assert.Equal(t, want, v.ValidateFormat("1234567", "gameshark"))
	assert.Equal(t, want, v.ValidateFormat("123456789ABCDEF01", "gameshark"))
}

func TestValidateFormatCodeBreaker(t *testing.T) {
	v, _ := newValidator(t)
	want := "CodeBreaker codes must be 8-12 hex digits"

	assert.Empty(t, v.ValidateFormat("12345678", "codebreaker"))
	assert.Empty(t, v.ValidateFormat("123456789ABC", "codebreaker"))
	// The pattern tolerates up to 16 digits even though the documented
	// bound is 12.
	assert.Empty(t, v.ValidateFormat("123456789ABCDEF", "codebreaker"))
	assert.Equal(t, want, v.ValidateFormat("1234567", "codebreaker"))
}

func TestValidateFormatActionReplay(t *testing.T) {
	v, _ := newValidator(t)
	want := "Action Replay codes must be 8-16 hex digits"

	assert.Empty(t, v.ValidateFormat("12345678", "actionreplay"))
	assert.Empty(t, v.ValidateFormat("123456789ABCDEF0", "actionreplay"))
	assert.Equal(t, want, v.ValidateFormat("1234567", "actionreplay"))
	assert.Equal(t, want, v.ValidateFormat("123456789ABCDEF012345", "actionreplay"))
}

func TestValidateFormatRemovedTypeNamesCapitalizedID(t *testing.T) {
	v, reg := newValidator(t)
	require.NoError(t, reg.Remove("gameshark"))

	// The catch-all pattern takes over, so only an empty (stripped) code
	// can still mismatch; the message names the capitalized id.
	msg := v.ValidateFormat("  ", "gameshark")
	assert.Equal(t, "Gameshark codes must match the required format", msg)
	assert.Empty(t, v.ValidateFormat("anything", "gameshark"))
}

func TestSanitize(t *testing.T) {
	v, _ := newValidator(t)

	out := v.Sanitize(models.Input{
		Name:        "  Infinite Lives  ",
		Code:        "  ABCD-1234  ",
		Description: "  Gives the player infinite lives  ",
		Type:        "  GAME_GENIE  ",
	})
	assert.Equal(t, "Infinite Lives", out.Name)
	assert.Equal(t, "ABCD-1234", out.Code)
	assert.Equal(t, "Gives the player infinite lives", out.Description)
	assert.Equal(t, "game_genie", out.Type)
}

func TestSanitizeUnknownOrMissingTypeDefaultsToRaw(t *testing.T) {
	v, _ := newValidator(t)

	out := v.Sanitize(models.Input{Name: "n", Code: "c", Type: "made_up"})
	assert.Equal(t, "raw", out.Type)

	out = v.Sanitize(models.Input{Name: "n", Code: "c"})
	assert.Equal(t, "raw", out.Type)
}
