package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/message"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(Language().String())

	SetLanguage()
	assert.Equal(message.MatchLanguage("en-US"), Language())
	assert.Equal("register 'a16' unknown", From("register '%v' unknown", "a16"))

	SetLanguage("en-GB")
	assert.Equal("line 7 'x'", From("line %d '%v'", 7, "x"))
}
