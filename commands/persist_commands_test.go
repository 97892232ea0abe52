package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMacroCommand_StopsAtFirstError(t *testing.T) {
	var calls []string
	boom := errors.New("boom")

	macro := NewMacroCommand(
		FuncCommand(func() error { calls = append(calls, "a"); return nil }),
		FuncCommand(func() error { calls = append(calls, "b"); return boom }),
		FuncCommand(func() error { calls = append(calls, "c"); return nil }),
	)

	err := macro.Execute()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestBulkCommands_EmptyIsNoop(t *testing.T) {
	type row struct{ ID uint }
	assert.NoError(t, NewBulkCreateCommand[row](nil, nil, 10).Execute())
	assert.NoError(t, NewBulkSaveCommand[row](nil, nil, 10).Execute())
}

func TestBatchSizeOf(t *testing.T) {
	assert.Equal(t, 500, batchSizeOf(0))
	assert.Equal(t, 20, batchSizeOf(20))
}
