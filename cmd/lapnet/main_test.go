package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SeriesRC(t *testing.T) {
	in := strings.NewReader(`{
		"nodes": ["0", "1", "2"],
		"branches": [
			{"id": "V1", "from": "1", "to": "0", "type": "V", "value": 10},
			{"id": "R1", "from": "1", "to": "2", "type": "R", "value": 5},
			{"id": "C1", "from": "2", "to": "0", "type": "C", "value": 0.1}
		]
	}`)
	var out bytes.Buffer
	require.NoError(t, run(in, &out, false, 0, 0))

	var result successOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "20/(s^2 + 2*s)", result.Equations["V_C1"])
	assert.Equal(t, "10 - 10*exp(-2*t)", result.TimeDomain["V_C1"])
	assert.Equal(t, "2*exp(-2*t)", result.TimeDomain["I_R1"])
	assert.Empty(t, result.Plots)
}

func TestRun_EmptyInputRunsDemo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader("  \n"), &out, false, 0, 0))

	var result successOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Contains(t, result.Equations, "V_C1")
}

func TestRun_ErrorDocument(t *testing.T) {
	// Self-loop fails validation; the error document still goes to stdout.
	in := strings.NewReader(`{
		"nodes": ["0", "1"],
		"branches": [
			{"id": "R1", "from": "1", "to": "1", "type": "R", "value": 5}
		]
	}`)
	var out bytes.Buffer
	err := run(in, &out, false, 0, 0)
	require.Error(t, err)

	var result errorOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "error", result.Status)
	assert.True(t, strings.HasPrefix(result.Message, "ValidationError:"), result.Message)
}

func TestRun_BadJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("{nope"), &out, false, 0, 0)
	require.Error(t, err)

	var result errorOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, "error", result.Status)
	assert.True(t, strings.HasPrefix(result.Message, "InternalError:"), result.Message)
}

func TestRun_UnknownComponent(t *testing.T) {
	in := strings.NewReader(`{
		"nodes": ["0", "1"],
		"branches": [
			{"id": "X1", "from": "1", "to": "0", "type": "X", "value": 5}
		]
	}`)
	var out bytes.Buffer
	err := run(in, &out, false, 0, 0)
	require.Error(t, err)

	var result errorOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, strings.HasPrefix(result.Message, "UnsupportedComponentError:"), result.Message)
}
