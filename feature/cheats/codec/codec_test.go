package codec_test

import (
	"testing"

	"cheatvault/feature/cheats/codec"

	"github.com/stretchr/testify/assert"
)

// typeSet is a static TypeSet for tests.
type typeSet map[string]struct{}

func (s typeSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

var knownTypes = typeSet{"raw": {}, "game_genie": {}, "gameshark": {}}

func TestParseSingleBlock(t *testing.T) {
	text := "# Name: Infinite Lives\n# Description: Never die\n# Type: game_genie\nABCD-1234\n"

	records := codec.Parse(text, knownTypes)
	assert.Equal(t, []codec.Record{{
		Name:        "Infinite Lives",
		Description: "Never die",
		Type:        "game_genie",
		Code:        "ABCD-1234",
	}}, records)
}

func TestParseMultipleBlocksKeepsOrder(t *testing.T) {
	text := "# Name: First\nAAAA-AAAA\n\n# Name: Second\nBBBB-BBBB\n\n# Name: Third\nCCCC-CCCC\n"

	records := codec.Parse(text, knownTypes)
	assert.Len(t, records, 3)
	assert.Equal(t, "First", records[0].Name)
	assert.Equal(t, "Second", records[1].Name)
	assert.Equal(t, "Third", records[2].Name)
}

func TestParseToleratesExtraBlankLines(t *testing.T) {
	text := "\n\n# Name: One\n\n\nAAAA\n\n\n\n# Name: Two\nBBBB\n\n"

	records := codec.Parse(text, knownTypes)
	assert.Len(t, records, 2)
	assert.Equal(t, "One", records[0].Name)
	assert.Equal(t, "AAAA", records[0].Code)
	assert.Equal(t, "Two", records[1].Name)
}

func TestParseLastCodeLineWins(t *testing.T) {
	text := "# Name: One\nAAAA\nBBBB\n"

	records := codec.Parse(text, knownTypes)
	assert.Len(t, records, 1)
	assert.Equal(t, "BBBB", records[0].Code)
}

func TestParseDefaultsAndRepairsType(t *testing.T) {
	// No type tag defaults to raw; an unknown tag is repaired to raw.
	text := "AAAA\n\n# Type: vanished_type\nBBBB\n\n# Type: GAME_GENIE\nCCCC\n"

	records := codec.Parse(text, knownTypes)
	assert.Len(t, records, 3)
	assert.Equal(t, "raw", records[0].Type)
	assert.Equal(t, "raw", records[1].Type)
	assert.Equal(t, "game_genie", records[2].Type)
}

func TestParseIgnoresUnknownCommentsAndEmptyInput(t *testing.T) {
	assert.Empty(t, codec.Parse("", knownTypes))
	assert.Empty(t, codec.Parse("\n\n# just a comment\n\n", knownTypes))

	records := codec.Parse("# some note\n# Name: Real\nAAAA\n", knownTypes)
	assert.Len(t, records, 1)
	assert.Equal(t, "Real", records[0].Name)
}

func TestSerializeSkipsEmptyMetadata(t *testing.T) {
	out := codec.Serialize([]codec.Record{{Type: "raw", Code: "AAAA"}})
	assert.Equal(t, "# Type: raw\nAAAA\n", out)

	out = codec.Serialize([]codec.Record{{Name: "N", Type: "raw", Code: "AAAA"}})
	assert.Equal(t, "# Name: N\n# Type: raw\nAAAA\n", out)
}

func TestSerializeEmptySequence(t *testing.T) {
	assert.Equal(t, "", codec.Serialize(nil))
	assert.Equal(t, "", codec.Serialize([]codec.Record{}))
}

func TestSerializeEndsWithSingleNewline(t *testing.T) {
	out := codec.Serialize([]codec.Record{
		{Name: "A", Type: "raw", Code: "AAAA"},
		{Name: "B", Type: "raw", Code: "BBBB"},
	})
	assert.Equal(t, "# Name: A\n# Type: raw\nAAAA\n\n# Name: B\n# Type: raw\nBBBB\n", out)
}

func TestRoundTrip(t *testing.T) {
	records := []codec.Record{
		{Name: "Infinite Lives", Description: "Never die", Type: "game_genie", Code: "ABCD-1234"},
		{Name: "Max Ammo", Type: "gameshark", Code: "12345678 9ABCDEF0"},
		{Type: "raw", Code: "XYZZY"},
	}

	reparsed := codec.Parse(codec.Serialize(records), knownTypes)
	assert.Equal(t, records, reparsed)
}
