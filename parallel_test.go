package instructor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Weather struct {
	City string `json:"city" jsonschema:"required"`
}

type Search struct {
	Query string `json:"query" jsonschema:"required"`
}

type WeatherOrSearch struct {
	Weather *Weather
	Search  *Search
}

// countingCandidate wraps a Candidate and counts Decode invocations.
type countingCandidate struct {
	Candidate
	decodes int
}

func (c *countingCandidate) Decode(arguments []byte, opts ...DecodeOption) (any, error) {
	c.decodes++
	return c.Candidate.Decode(arguments, opts...)
}

// trackingResponse counts how many times its call list is read.
type trackingResponse struct {
	calls CallList
	reads int
}

func (r *trackingResponse) ToolCalls() []ToolCall {
	r.reads++
	return r.calls
}

func mustWeatherParallel(t *testing.T) *Parallel {
	t.Helper()
	p, err := ParallelOf[[]WeatherOrSearch]()
	require.NoError(t, err)
	return p
}

func TestNewParallel_EmptyModelSet(t *testing.T) {
	t.Parallel()
	_, err := NewParallel()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyModelSet)
}

func TestNewParallel_DuplicateName(t *testing.T) {
	t.Parallel()
	first, err := NewModel[Weather]()
	require.NoError(t, err)
	second, err := NewModel[Search](WithModelName("Weather"))
	require.NoError(t, err)
	_, err = NewParallel(first, second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateModel)
	assert.Contains(t, err.Error(), `"Weather"`)
}

func TestNewParallel_RegistryAndOrder(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	candidates := p.Candidates()
	require.Len(t, candidates, 2)
	assert.Equal(t, "Weather", candidates[0].Name())
	assert.Equal(t, "Search", candidates[1].Name())

	c, ok := p.Lookup("Weather")
	require.True(t, ok)
	assert.Equal(t, "Weather", c.Name())
	_, ok = p.Lookup("Missing")
	assert.False(t, ok)
}

func TestParallelFor_InvalidTypehint(t *testing.T) {
	t.Parallel()
	_, err := ParallelOf[map[string]Weather]()
	assert.ErrorIs(t, err, ErrInvalidTypeShape)
}

func TestDecode_YieldsInstancesInCallOrder(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := CallList{
		{ID: "1", Name: "Weather", Arguments: `{"city":"Paris"}`},
		{ID: "2", Name: "Weather", Arguments: `{"city":"Tokyo"}`},
	}
	instances, err := p.DecodeAll(resp, ModeParallelTools)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, Weather{City: "Paris"}, instances[0])
	assert.Equal(t, Weather{City: "Tokyo"}, instances[1])
}

func TestDecode_MixedCandidates(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := CallList{
		{Name: "Search", Arguments: `{"query":"super bowl winner"}`},
		{Name: "Weather", Arguments: `{"city":"Dallas"}`},
	}
	instances, err := p.DecodeAll(resp, ModeParallelTools)
	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, Search{Query: "super bowl winner"}, instances[0])
	assert.Equal(t, Weather{City: "Dallas"}, instances[1])
}

func TestDecode_ModeMismatch_BeforeReadingResponse(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := &trackingResponse{calls: CallList{{Name: "Weather", Arguments: `{"city":"Paris"}`}}}
	var seen int
	for _, err := range p.Decode(resp, ModeTools) {
		seen++
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrModeMismatch)
		assert.Contains(t, err.Error(), string(ModeTools))
	}
	assert.Equal(t, 1, seen)
	assert.Zero(t, resp.reads, "mode mismatch must fail before the response is read")
}

func TestDecode_NilResponse(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	_, err := p.DecodeAll(nil, ModeParallelTools)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
}

func TestDecode_UnknownToolName_AbortsWithoutRetraction(t *testing.T) {
	t.Parallel()
	weather, err := NewModel[Weather]()
	require.NoError(t, err)
	counting := &countingCandidate{Candidate: weather}
	p, err := NewParallel(counting)
	require.NoError(t, err)

	resp := CallList{
		{Name: "Weather", Arguments: `{"city":"Paris"}`},
		{Name: "Unknown", Arguments: `{}`},
		{Name: "Weather", Arguments: `{"city":"Tokyo"}`},
	}
	instances, err := p.DecodeAll(resp, ModeParallelTools)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTool)
	var ute *UnknownToolError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "Unknown", ute.Name)
	// The call before the failure was already yielded, the one after was
	// never decoded.
	require.Len(t, instances, 1)
	assert.Equal(t, Weather{City: "Paris"}, instances[0])
	assert.Equal(t, 1, counting.decodes)
}

func TestDecode_ValidationError_NamesModelAndField(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := CallList{
		{Name: "Weather", Arguments: `{"town":"Paris"}`},
	}
	_, err := p.DecodeAll(resp, ModeParallelTools)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Weather", ve.Model)
	assert.Contains(t, ve.Err.Error(), "city")
}

func TestDecode_LazyAndEarlyStop(t *testing.T) {
	t.Parallel()
	weather, err := NewModel[Weather]()
	require.NoError(t, err)
	counting := &countingCandidate{Candidate: weather}
	p, err := NewParallel(counting)
	require.NoError(t, err)

	resp := CallList{
		{Name: "Weather", Arguments: `{"city":"Paris"}`},
		{Name: "Weather", Arguments: `{"city":"Tokyo"}`},
		{Name: "Weather", Arguments: `{"city":"Oslo"}`},
	}
	for instance, err := range p.Decode(resp, ModeParallelTools) {
		require.NoError(t, err)
		assert.Equal(t, Weather{City: "Paris"}, instance)
		break
	}
	assert.Equal(t, 1, counting.decodes, "stopping early must leave later calls unvalidated")
}

func TestDecode_Idempotent(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := CallList{
		{Name: "Weather", Arguments: `{"city":"Paris"}`},
		{Name: "Search", Arguments: `{"query":"go"}`},
	}
	first, err := p.DecodeAll(resp, ModeParallelTools)
	require.NoError(t, err)
	second, err := p.DecodeAll(resp, ModeParallelTools)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_OptionsReachCandidates(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := CallList{
		{Name: "Weather", Arguments: `{"city":"Paris","mood":"sunny"}`},
	}
	// Extra fields pass in the default mode and fail under WithStrict.
	instances, err := p.DecodeAll(resp, ModeParallelTools)
	require.NoError(t, err)
	require.Len(t, instances, 1)

	_, err = p.DecodeAll(resp, ModeParallelTools, WithStrict(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Weather", ve.Model)
}

func TestDecode_ConcurrentReuse(t *testing.T) {
	t.Parallel()
	p := mustWeatherParallel(t)
	resp := CallList{
		{Name: "Weather", Arguments: `{"city":"Paris"}`},
		{Name: "Weather", Arguments: `{"city":"Tokyo"}`},
	}
	done := make(chan error, 4)
	for range 4 {
		go func() {
			instances, err := p.DecodeAll(resp, ModeParallelTools)
			if err == nil && len(instances) != 2 {
				err = errors.New("wrong instance count")
			}
			done <- err
		}()
	}
	for range 4 {
		require.NoError(t, <-done)
	}
}
