/*
Package server implements msgpack IPC for the text correction engine.

The server provides a minimal interface for sentence checking using msgpack
serialization over stdin/stdout.

The protocol uses binary msgpack encoding. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout.
Each message contains an ID field plus the text to check. IDs left empty by
the client are filled in with a generated UUID so responses stay addressable.

Check requests use this structure:

	{"id": "req_001", "text": "She should of went to the store."}

The server responds with the matched spans and their ranked suggestions:

	{"id": "req_001", "m": [{"b": 10, "e": 23, "txt": "should of went",
	 "rule": "should-of", "s": ["should have gone"]}], "c": 1, "t": 2}

Response span bounds are byte offsets into the checked sentence, so editor
clients can splice replacements without retokenizing.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, reducing latency for
interactive checking while the user types.
*/
package server

// CheckRequest - minimal correction request
type CheckRequest struct {
	ID   string `msgpack:"id"`
	Text string `msgpack:"text"`
}

// MatchResult - one matched span with its suggestions
type MatchResult struct {
	Begin       int      `msgpack:"b"`
	End         int      `msgpack:"e"`
	Text        string   `msgpack:"txt"`
	RuleName    string   `msgpack:"rule"`
	Category    string   `msgpack:"cat,omitempty"`
	Description string   `msgpack:"desc,omitempty"`
	Suggestions []string `msgpack:"s"`
}

// CheckResponse - correction response
type CheckResponse struct {
	ID        string        `msgpack:"id"`
	Matches   []MatchResult `msgpack:"m"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// CheckError holds basic error information for failed requests
type CheckError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
