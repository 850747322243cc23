/*
Package server implements msgpack IPC for fuzzy dictionary search.

The server provides a minimal interface for ranked fuzzy matching using
msgpack serialization over stdin/stdout, so editors and other tools can
drive the engine without the terminal UI.

# IPC

The protocol is request/response. Each message carries an ID so clients
can pair responses with in-flight requests and drop the ones a newer
keystroke has superseded.

Search requests use this structure:

	{"id": "req_001", "q": "becuase", "l": 10}

The server responds with matches ranked ascending by score:

	{"id": "req_001", "m": [{"w": "becuase", "s": 0}, {"w": "because", "s": 0.285}], "c": 2, "t": 1450}

Setting "p" runs a prefix completion against the dictionary index instead
of a fuzzy scan:

	{"id": "req_002", "q": "bec", "l": 10, "p": true}

An absent or zero "l" defaults to the configured maximum limit; values
above the maximum are clamped to it. Negative limits are rejected.

Errors come back with the request ID, a message and a code:

	{"id": "req_003", "e": "limit must not be negative", "c": 400}

Timing ("t") is in microseconds. Requests are processed synchronously in
arrival order.
*/
package server

// SearchRequest - minimal search request
type SearchRequest struct {
	ID     string `msgpack:"id"`
	Query  string `msgpack:"q"`
	Limit  int    `msgpack:"l,omitempty"`
	Prefix bool   `msgpack:"p,omitempty"`
}

// SearchMatch - one ranked match in a response
type SearchMatch struct {
	Word  string  `msgpack:"w"`
	Score float64 `msgpack:"s"`
}

// SearchResponse - search response
type SearchResponse struct {
	ID        string        `msgpack:"id"`
	Matches   []SearchMatch `msgpack:"m"`
	Count     int           `msgpack:"c"`
	TimeTaken int64         `msgpack:"t"`
}

// SearchError holds basic error information for search requests
type SearchError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
