/*
Package server implements msgpack IPC for spell checking services.

The server reads msgpack-encoded requests from stdin and writes one msgpack response per request
to stdout. Requests are processed synchronously, in arrival order, with timing info included in
every successful response. Logs go to stderr.

# IPC

Every request names an operation and usually a word:

	{"id": "req_001", "op": "check", "w": "unbaked"}

Check reports whether the word is known, with the stems the decomposition considered:

	{"id": "req_001", "k": true, "b": ["unbak", "unbake", "bake"], "t": 38}

Suggest returns ranked corrections, best first:

	{"id": "req_002", "op": "suggest", "w": "fone", "l": 5}
	{"id": "req_002", "s": [{"w": "phone", "r": 1, "d": 2, "src": "replace"}], "c": 1, "t": 412}

The remaining operations are:

	expand    every form the affix rules produce from a base word   {"f": [...], "c": n}
	phonetic  the phonetic code of a word                          {"p": "FON"}
	complete  known forms starting with a prefix                   {"s": [{"w": ..., "r": ...}], "c": n}
	stats     dictionary and engine statistics                     {"dict": {...}, "engine": {...}}

Failures are reported in place of the response:

	{"id": "req_003", "e": "word too long: 120 characters, max 100", "c": 400}

The "l" limit defaults to server.default_limit and is clamped to server.max_limit.
*/
package server

import "github.com/bastiangx/wordspell/pkg/dictionary"

// Operation names.
const (
	OpCheck    = "check"
	OpSuggest  = "suggest"
	OpExpand   = "expand"
	OpPhonetic = "phonetic"
	OpComplete = "complete"
	OpStats    = "stats"
)

// Error codes.
const (
	CodeBadRequest = 400
	CodeInternal   = 500
)

// Request is a single client message.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Word  string `msgpack:"w,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// CheckResponse answers "check".
type CheckResponse struct {
	ID        string   `msgpack:"id"`
	Known     bool     `msgpack:"k"`
	Bases     []string `msgpack:"b,omitempty"`
	TimeTaken int64    `msgpack:"t"`
}

// RankedWord is one ranked entry of a suggest or complete response.
type RankedWord struct {
	Word     string `msgpack:"w"`
	Rank     uint16 `msgpack:"r"`
	Distance int    `msgpack:"d,omitempty"`
	Source   string `msgpack:"src,omitempty"`
}

// ListResponse answers "suggest" and "complete".
type ListResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []RankedWord `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// ExpandResponse answers "expand".
type ExpandResponse struct {
	ID        string   `msgpack:"id"`
	Forms     []string `msgpack:"f"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// PhoneticResponse answers "phonetic".
type PhoneticResponse struct {
	ID        string `msgpack:"id"`
	Code      string `msgpack:"p"`
	TimeTaken int64  `msgpack:"t"`
}

// StatsResponse answers "stats".
type StatsResponse struct {
	ID         string           `msgpack:"id"`
	Dictionary dictionary.Stats `msgpack:"dict"`
	Engine     map[string]int   `msgpack:"engine"`
	Requests   int              `msgpack:"requests"`
	TimeTaken  int64            `msgpack:"t"`
}

// ErrorResponse holds basic error information for a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
