package wire

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentwire/core"
	"github.com/hupe1980/agentwire/internal/testutil"
)

func TestOpRoundTrip(t *testing.T) {
	sub := core.NewSubmissionID()
	for _, op := range testutil.SampleOps(sub) {
		t.Run(string(op.Type()), func(t *testing.T) {
			data, err := EncodeOp(op)
			require.NoError(t, err)

			back, err := DecodeOp(data)
			require.NoError(t, err)
			assert.Equal(t, op, back)
		})
	}
}

func TestEventRoundTrip(t *testing.T) {
	sub := core.NewSubmissionID()
	for _, e := range testutil.SampleEvents(sub) {
		t.Run(string(e.Type()), func(t *testing.T) {
			data, err := EncodeEvent(e)
			require.NoError(t, err)

			back, err := DecodeEvent(data)
			require.NoError(t, err)
			assert.Equal(t, e, back)
		})
	}
}

func TestEncodeInjectsTypeTag(t *testing.T) {
	op := core.ApproveExec(core.NewCallID())
	data, err := EncodeOp(op)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.JSONEq(t, `"exec_approval"`, string(fields["type"]))
	assert.Contains(t, fields, "sub_id")
	assert.Contains(t, fields, "call_id")
	assert.Contains(t, fields, "approved")
}

func TestEncodeEventTagStability(t *testing.T) {
	e := core.TaskFailed{SubID: core.NewSubmissionID(), TaskID: core.NewTaskID(), Error: "boom"}
	data, err := EncodeEvent(e)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.JSONEq(t, `"task_failed"`, string(fields["type"]))
}

func TestDecodeOpUnknownTag(t *testing.T) {
	_, err := DecodeOp([]byte(`{"type": "teleport", "sub_id": "s-1"}`))

	var unknownErr *core.UnknownOperationError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "teleport", unknownErr.Type)
}

func TestDecodeEventUnknownTag(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type": "singularity", "sub_id": "s-1"}`))

	var unknownErr *core.UnknownEventError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "singularity", unknownErr.Type)
}

func TestDecodeMalformed(t *testing.T) {
	var decodeErr *core.DecodeError

	_, err := DecodeOp([]byte(`{not json`))
	assert.ErrorAs(t, err, &decodeErr)

	_, err = DecodeEvent([]byte(`[1, 2, 3]`))
	assert.ErrorAs(t, err, &decodeErr)

	// Parses but has no discriminant.
	_, err = DecodeOp([]byte(`{"sub_id": "s-1", "prompt": "hi"}`))
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeRejectsEmptySubmissionID(t *testing.T) {
	var subErr *core.InvalidSubmissionIDError

	_, err := DecodeOp([]byte(`{"type": "undo"}`))
	assert.ErrorAs(t, err, &subErr)

	_, err = DecodeOp([]byte(`{"type": "undo", "sub_id": ""}`))
	assert.ErrorAs(t, err, &subErr)

	_, err = DecodeEvent([]byte(`{"type": "task_interrupted", "task_id": "0b39a4e0-40ac-4c3e-9472-9716e0c61a13"}`))
	assert.ErrorAs(t, err, &subErr)
}

func TestEncodeRejectsEmptySubmissionID(t *testing.T) {
	var subErr *core.InvalidSubmissionIDError

	_, err := EncodeOp(core.Undo{})
	assert.ErrorAs(t, err, &subErr)

	_, err = EncodeEvent(core.Warning{Message: "x"})
	assert.ErrorAs(t, err, &subErr)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	raw := `{"type": "interrupt", "sub_id": "s-1", "added_in_v2": {"nested": true}}`
	op, err := DecodeOp([]byte(raw))
	require.NoError(t, err)

	interrupt, ok := op.(core.Interrupt)
	require.True(t, ok)
	assert.Equal(t, core.SubmissionIDFrom("s-1"), interrupt.Submission())
	assert.Nil(t, interrupt.TaskID)
}

func TestDecodeAppliesPayloadDefaults(t *testing.T) {
	// Absent granularity defaults to auto.
	op, err := DecodeOp([]byte(`{"type": "toggle_plan_mode", "sub_id": "s-1", "enabled": true}`))
	require.NoError(t, err)
	toggle := op.(core.TogglePlanMode)
	assert.Equal(t, core.GranularityAuto, toggle.Granularity)

	// Absent session config fields take the documented defaults.
	op, err = DecodeOp([]byte(`{"type": "configure_session", "sub_id": "s-2", "config": {}}`))
	require.NoError(t, err)
	cfg := op.(core.ConfigureSession).Config
	assert.Equal(t, core.ApprovalRiskBased, cfg.ApprovalMode)
	assert.True(t, cfg.Sandbox.Enabled)
	assert.Equal(t, 8, cfg.MaxParallelAgents)

	// Absent risk defaults to medium.
	e, err := DecodeEvent([]byte(`{"type": "approval_required", "sub_id": "s-3",
		"agent_id": "0b39a4e0-40ac-4c3e-9472-9716e0c61a13",
		"call_id": "11f6b2dd-7d25-45cc-bbd9-9332e26a4a79",
		"tool_name": "shell", "arguments": {}, "description": "run"}`))
	require.NoError(t, err)
	approval := e.(core.ApprovalRequired)
	assert.Equal(t, core.RiskMedium, approval.Risk)
}

func TestDecodeErrorIsNotChannelClosed(t *testing.T) {
	_, err := DecodeOp([]byte(`{broken`))
	assert.False(t, errors.Is(err, core.ErrChannelClosed))
}
