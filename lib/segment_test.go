package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserID(t *testing.T) {
	assert.True(t, IsUserID("1001"))
	assert.True(t, IsUserID("0"))
	assert.True(t, IsUserID("١٢٣")) // Arabic-Indic digits
	assert.False(t, IsUserID(""))
	assert.False(t, IsUserID("10a1"))
	assert.False(t, IsUserID("-1"))
	assert.False(t, IsUserID("1.5"))
}

func TestTokenize_MixedWhitespace_ReturnsTokens(t *testing.T) {
	result := Tokenize("  1001\tAlice\n\nSmith \r\n 5551234   a@x.com ")
	assert.Equal(t, []string{"1001", "Alice", "Smith", "5551234", "a@x.com"}, result)
}

func TestTokenize_Empty_ReturnsEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" \n\t "))
}

func TestSanitizeFlags_Commas_ReplacedWithSemicolons(t *testing.T) {
	assert.Equal(t, "flag;with;commas", SanitizeFlags("flag,with,commas"))
	assert.Equal(t, ";;", SanitizeFlags(",,"))
	assert.Equal(t, "", SanitizeFlags(""))
	assert.Equal(t, "no commas", SanitizeFlags("no commas"))
}

func TestSegment_SingleRecordWithFlags_ReturnsOneRecord(t *testing.T) {
	_, result := Parse("1001 Alice Smith 5551234 a@x.com vip newsletter")
	assert.Equal(t, []Record{{"1001", "Alice", "Smith", "5551234", "a@x.com", "vip newsletter"}}, result)
}

func TestSegment_TwoRecordsNoFlags_FirstFlagsEmpty(t *testing.T) {
	_, result := Parse("1001 Alice Smith 5551234 a@x.com 1002 Bob Jones 5559999 b@x.com")
	assert.Equal(t, []Record{
		{"1001", "Alice", "Smith", "5551234", "a@x.com", ""},
		{"1002", "Bob", "Jones", "5559999", "b@x.com", ""},
	}, result)
}

func TestSegment_LeadingNoise_Skipped(t *testing.T) {
	tokens, result := Parse("noise 1001 Alice Smith 5551234 a@x.com")
	assert.Len(t, tokens, 6)
	assert.Equal(t, []Record{{"1001", "Alice", "Smith", "5551234", "a@x.com", ""}}, result)
}

func TestSegment_FlagsWithCommas_Sanitized(t *testing.T) {
	_, result := Parse("1001 Alice Smith 5551234 a@x.com flag,with,commas")
	assert.Len(t, result, 1)
	assert.Equal(t, "flag;with;commas", result[0].Flags)
}

func TestSegment_TooFewTokens_NoRecord(t *testing.T) {
	tokens, result := Parse("1001 Alice Smith 5551234")
	assert.Len(t, tokens, 4)
	assert.Empty(t, result)
}

func TestSegment_EmptyInput_NoRecord(t *testing.T) {
	tokens, result := Parse("")
	assert.Empty(t, tokens)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSegment_TrailingAnchorWithoutEnoughTokens_AbsorbedIntoFlags(t *testing.T) {
	// "1002" has only 3 tokens after it, so it is not an anchor and stays in the flags
	_, result := Parse("1001 Alice Smith 5551234 a@x.com vip 1002 Bob Jones 5559999")
	assert.Len(t, result, 1)
	assert.Equal(t, "vip 1002 Bob Jones 5559999", result[0].Flags)
}

func TestSegment_ShortAnchorWhileSeeking_StopsScan(t *testing.T) {
	// Noise then a digit token with only 3 followers: scan stops, nothing is emitted
	_, result := Parse("noise 1001 Alice Smith 5551234")
	assert.Empty(t, result)
}

func TestSegment_DigitFlagWithEnoughTokens_StartsNextRecord(t *testing.T) {
	_, result := Parse("1001 Alice Smith 5551234 a@x.com vip 42 x y z w")
	assert.Equal(t, []Record{
		{"1001", "Alice", "Smith", "5551234", "a@x.com", "vip"},
		{"42", "x", "y", "z", "w", ""},
	}, result)
}

func TestSegment_DigitInFixedField_KeptVerbatim(t *testing.T) {
	// The fixed fields are taken as they are, even when they are digits
	_, result := Parse("1001 2002 3003 4004 5005 6006")
	assert.Equal(t, []Record{{"1001", "2002", "3003", "4004", "5005", "6006"}}, result)
}

func TestSegment_ExactlyFourFollowers_IsAnchor(t *testing.T) {
	_, result := Parse("7 a b c d")
	assert.Equal(t, []Record{{"7", "a", "b", "c", "d", ""}}, result)
}

func TestSegment_CommaSplitAcrossTokens_JoinedThenSanitized(t *testing.T) {
	_, result := Parse("1001 Alice Smith 5551234 a@x.com , a, ,b")
	assert.Equal(t, "; a; ;b", result[0].Flags)
}

var propertyInputs = []string{
	"",
	"noise 1001 Alice Smith 5551234 a@x.com vip,gold newsletter 1002 Bob Jones 5559999 b@x.com 1003 C D",
	"x y 1 2 3 4 5 6 7 8 9 10 11 12 13",
	"1 a b c d 2 e f g h i,j 3 k l m n 4",
	"999 only three tokens",
	"a b c d e f g",
}

func TestSegment_Properties(t *testing.T) {
	for _, input := range propertyInputs {
		tokens, records := Parse(input)
		consumed := 0
		lastAnchorPos := -1
		for _, r := range records {
			// P2: anchor is all-digit
			assert.True(t, IsUserID(r.UserID), input)
			// P4: no comma in flags
			assert.NotContains(t, r.Flags, ",", input)
			consumed += 5
			if len(r.Flags) > 0 {
				consumed += len(strings.Split(r.Flags, " "))
			}
			// P3: anchors appear in input order (search from the last anchor position)
			pos := -1
			for i := lastAnchorPos + 1; i < len(tokens); i++ {
				if tokens[i] == r.UserID && i+FIXED_FIELDS < len(tokens) {
					pos = i
					break
				}
			}
			assert.Greater(t, pos, lastAnchorPos, input)
			lastAnchorPos = pos
		}
		// P1: no token is consumed twice
		assert.LessOrEqual(t, consumed, len(tokens), input)
	}
}

func TestSegment_LastAnchorShort_Dropped(t *testing.T) {
	// P5: the last digit token has only 2 followers and is not in any record's fixed fields
	tokens, records := Parse("noise 55 a b")
	assert.Len(t, tokens, 4)
	assert.Empty(t, records)
}
