package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/bastiangx/rephrase/pkg/annotate"
	"github.com/bastiangx/rephrase/pkg/engine"
	"github.com/bastiangx/rephrase/pkg/rules"
)

const testRules = `{
	"cat-to-dog": {
		"patterns": [{"LOWER": "cat"}],
		"suggestions": [[{"TEXT": "dog"}]],
		"test": {"positive": [], "negative": []},
		"description": "prefer dogs",
		"category": "pets"
	}
}`

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	set, err := rules.LoadJSON([]byte(testRules))
	require.NoError(t, err)
	eng, err := engine.New(set, engine.Options{Annotator: annotate.New()})
	require.NoError(t, err)
	return eng
}

// runServer feeds the encoded requests to a server and returns a decoder
// over everything it wrote, positioned after the ready signal.
func runServer(t *testing.T, maxSuggestions int, requests ...interface{}) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range requests {
		require.NoError(t, enc.Encode(req))
	}

	srv := NewServerWithIO(newTestEngine(t), &in, &out, maxSuggestions)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready map[string]string
	require.NoError(t, dec.Decode(&ready))
	require.Equal(t, "ready", ready["status"])
	return dec
}

func TestCheckRequest(t *testing.T) {
	dec := runServer(t, 24, CheckRequest{ID: "req_001", Text: "the cat sat down"})

	var resp CheckResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "req_001", resp.ID)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Matches, 1)

	m := resp.Matches[0]
	require.Equal(t, "cat-to-dog", m.RuleName)
	require.Equal(t, "pets", m.Category)
	require.Equal(t, "cat", m.Text)
	require.Equal(t, 4, m.Begin)
	require.Equal(t, 7, m.End)
	require.Equal(t, []string{"dog"}, m.Suggestions)
}

func TestCheckRequestNoMatches(t *testing.T) {
	dec := runServer(t, 24, CheckRequest{ID: "req_002", Text: "nothing to fix here"})

	var resp CheckResponse
	require.NoError(t, dec.Decode(&resp))
	require.Equal(t, "req_002", resp.ID)
	require.Equal(t, 0, resp.Count)
	require.Empty(t, resp.Matches)
}

func TestMissingIDGetsGenerated(t *testing.T) {
	dec := runServer(t, 24, CheckRequest{Text: "the cat sat down"})

	var resp CheckResponse
	require.NoError(t, dec.Decode(&resp))
	require.NotEmpty(t, resp.ID)
}

func TestEmptyTextIsAnError(t *testing.T) {
	dec := runServer(t, 24, CheckRequest{ID: "req_003"})

	var errResp CheckError
	require.NoError(t, dec.Decode(&errResp))
	require.Equal(t, "req_003", errResp.ID)
	require.Equal(t, 400, errResp.Code)
	require.NotEmpty(t, errResp.Error)
}

func TestSuggestionLimit(t *testing.T) {
	dec := runServer(t, 1, CheckRequest{ID: "req_004", Text: "the cat sat down"})

	var resp CheckResponse
	require.NoError(t, dec.Decode(&resp))
	require.Len(t, resp.Matches, 1)
	require.Len(t, resp.Matches[0].Suggestions, 1)
}

func TestSequentialRequests(t *testing.T) {
	dec := runServer(t, 24,
		CheckRequest{ID: "a", Text: "the cat sat down"},
		CheckRequest{ID: "b", Text: "all quiet"},
	)

	var first, second CheckResponse
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, "a", first.ID)
	require.Equal(t, 1, first.Count)
	require.Equal(t, "b", second.ID)
	require.Equal(t, 0, second.Count)
}
