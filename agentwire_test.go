package agentwire

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentwire/core"
	"github.com/hupe1980/agentwire/wire"
)

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, CheckVersion(ProtocolVersion))

	err := CheckVersion("0.2.0")
	var mismatch *core.VersionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, ProtocolVersion, mismatch.Expected)
	assert.Equal(t, "0.2.0", mismatch.Actual)
}

func TestClientSendAndReceive(t *testing.T) {
	engineIn, clientOut := io.Pipe()
	clientIn, engineOut := io.Pipe()

	client := New(clientIn, clientOut)

	go func() {
		dec := wire.NewDecoder(engineIn)
		enc := wire.NewEncoder(engineOut)
		defer engineOut.Close()

		op, err := dec.ReadOp()
		if err != nil {
			return
		}
		input := op.(core.UserInput)
		taskID := core.NewTaskID()
		_ = enc.WriteEvent(core.TaskStarted{SubID: input.SubID, TaskID: taskID, Prompt: input.Prompt})
		_ = enc.WriteEvent(core.TaskComplete{SubID: input.SubID, TaskID: taskID, Result: core.TaskResult{
			TaskID: taskID, Success: true, Summary: "done",
		}})
	}()

	input := core.NewUserInput("hello")
	require.NoError(t, client.Send(input))

	var got []core.Event
	for e := range client.Events() {
		got = append(got, e)
	}

	require.Len(t, got, 2)
	assert.Equal(t, core.EventTypeTaskStarted, got[0].Type())
	assert.Equal(t, core.EventTypeTaskComplete, got[1].Type())
	for _, e := range got {
		assert.Equal(t, input.SubID, e.Submission())
	}
	assert.NoError(t, client.Err())
}

func TestClientSkipsBadEvents(t *testing.T) {
	var engineOut bytes.Buffer
	enc := wire.NewEncoder(&engineOut)
	sub := core.NewSubmissionID()
	require.NoError(t, enc.WriteEvent(core.TaskStarted{SubID: sub, TaskID: core.NewTaskID(), Prompt: "p"}))
	engineOut.WriteString(`{"type": "from_the_future", "sub_id": "s-x"}` + "\n")
	engineOut.WriteString("{garbled\n")
	require.NoError(t, enc.WriteEvent(core.TaskInterrupted{SubID: sub, TaskID: core.NewTaskID()}))

	client := New(&engineOut, io.Discard)

	var types []core.EventType
	for e := range client.Events() {
		types = append(types, e.Type())
	}

	assert.Equal(t, []core.EventType{core.EventTypeTaskStarted, core.EventTypeTaskInterrupted}, types)
	assert.NoError(t, client.Err())
}

func TestClientSkipsOversizedEvents(t *testing.T) {
	var engineOut bytes.Buffer
	enc := wire.NewEncoder(&engineOut)
	sub := core.NewSubmissionID()
	require.NoError(t, enc.WriteEvent(core.TaskStarted{SubID: sub, TaskID: core.NewTaskID(), Prompt: "p"}))
	engineOut.WriteString(`{"type": "agent_message", "sub_id": "s-x", "content": "` + strings.Repeat("x", 200*1024) + `"}` + "\n")
	require.NoError(t, enc.WriteEvent(core.TaskInterrupted{SubID: sub, TaskID: core.NewTaskID()}))

	client := New(&engineOut, io.Discard, func(o *Options) {
		o.MaxMessageSize = 128 * 1024
	})

	var types []core.EventType
	for e := range client.Events() {
		types = append(types, e.Type())
	}

	assert.Equal(t, []core.EventType{core.EventTypeTaskStarted, core.EventTypeTaskInterrupted}, types)
	assert.NoError(t, client.Err())
}
