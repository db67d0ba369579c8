package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "deposits.xlsx",
		ExpectedFormat: "bank deposit export",
		Msg:            "unreadable workbook",
	}
	assert.Equal(t,
		"invalid format in file 'deposits.xlsx': unreadable workbook. Expected: bank deposit export",
		err.Error())
}

func TestParseError(t *testing.T) {
	inner := errors.New("invalid integer")
	err := &ParseError{
		Parser: "deposit",
		Field:  "amount",
		Value:  "abc",
		Err:    inner,
	}
	assert.Equal(t, "deposit: failed to parse amount='abc': invalid integer", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestMissingColumnError(t *testing.T) {
	err := &MissingColumnError{Column: "amount", Aliases: []string{"입금액", "입금금액"}}
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "입금액")
}
