// Package instructor decodes LLM responses that carry multiple parallel
// tool calls into validated, strongly typed Go values.
//
// # Overview
//
// LLMs answer a parallel-tool-call request with a list of named calls, each
// carrying a JSON argument payload. This package matches every call to one
// of the candidate models declared up front, validates its payload against
// the same JSON Schema advertised to the LLM, and hands back typed
// instances: declare candidates → Parallel (name-indexed registry) →
// advertise Tools() on the request → Decode (lookup, validate, unmarshal)
// → instances.
//
// # Key concepts
//
//   - Single Source of Truth: one set of struct tags (json + jsonschema)
//     drives both the schema sent to the LLM and the validation of the
//     returned payloads.
//   - Lazy decoding: Decode yields one instance per call, in call order,
//     and validates a call only when the consumer pulls it.
//   - Fail loud: an unknown call name or an invalid payload ends the
//     sequence with a typed error; instances already yielded stand.
//
// See Candidate, Parallel, and Response for the core contracts, and
// NewModel / NewParallel / ParallelOf for setup.
//
// # Example
//
//	type Weather struct {
//	    City string `json:"city" jsonschema:"required"`
//	}
//	type Search struct {
//	    Query string `json:"query" jsonschema:"required"`
//	}
//	type WeatherOrSearch struct {
//	    Weather *Weather
//	    Search  *Search
//	}
//
//	parallel, err := instructor.ParallelOf[[]WeatherOrSearch]()
//	if err != nil { ... }
//	// advertise parallel.Tools() (or parallel.LangChainTools()) on the request
//	for instance, err := range parallel.Decode(resp, instructor.ModeParallelTools) {
//	    if err != nil { ... }
//	    switch v := instance.(type) {
//	    case Weather: ...
//	    case Search:  ...
//	    }
//	}
package instructor
