package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/npillmayer/ccg/lexicon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEngine(t *testing.T, name string, opts ...Option) *Engine {
	t.Helper()
	lex, err := lexicon.Builtin(name)
	require.NoError(t, err)
	e, err := NewEngine(lex, opts...)
	require.NoError(t, err)
	return e
}

func TestEngineLabels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.server")
	defer teardown()
	//
	e := makeEngine(t, "plain")
	r, err := e.Parse(context.Background(), "John sees Mary")
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "sees", "Mary"}, r.Words)
	assert.Equal(t, []string{"S"}, r.Categories)
	assert.True(t, r.Accepted("S"))
	require.Len(t, r.Derivations, 1)
	var lines []string
	r.Derivations[0].Walk(func(d *Derivation, depth int) {
		lines = append(lines, strings.Repeat(" ", depth)+d.Category+" "+d.Rule+" "+d.Word)
	})
	assert.Equal(t, []string{
		"S < ",
		" NP lex John",
		` S\NP > `,
		`  (S\NP)/NP lex sees`,
		"  NP lex Mary",
	}, lines)
	//
	r, err = e.Parse(context.Background(), "sees John Mary")
	require.NoError(t, err)
	assert.Empty(t, r.Categories)
	assert.False(t, r.Accepted("S"))
	r, err = e.Parse(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, r.Categories)
}

func TestEngineFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.server")
	defer teardown()
	//
	e := makeEngine(t, "english", Workers(4))
	r, err := e.Parse(context.Background(), "I must see him")
	require.NoError(t, err)
	assert.Equal(t, []string{"S[form=finite]"}, r.Distinct)
	assert.True(t, r.Accepted("S"))
	assert.False(t, r.Accepted("NP"))
	assert.Len(t, r.Categories, len(r.Derivations))
	r, err = e.Parse(context.Background(), "must see")
	require.NoError(t, err)
	assert.Equal(t, []string{`(S[form=finite]\NP[num=?_1])/NP[case=acc]`}, r.Categories)
}

func TestEngineLimits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.server")
	defer teardown()
	//
	e := makeEngine(t, "plain", MaxTokens(3))
	_, err := e.Parse(context.Background(), "John sees a dog")
	assert.True(t, errors.Is(err, ErrTooLong))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Parse(ctx, "John sees Mary")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.server")
	defer teardown()
	//
	srv := httptest.NewServer(NewHandler(makeEngine(t, "plain", MaxTokens(5))))
	defer srv.Close()
	//
	resp, err := http.Post(srv.URL+"/parse", "application/json", strings.NewReader(`{"sentence":"John sees Mary"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var result Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, []string{"S"}, result.Categories)
	assert.Equal(t, "John sees Mary", result.Sentence)
	//
	resp2, err := http.Post(srv.URL+"/parse", "application/json", strings.NewReader(`{"sentence":`))
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
	//
	resp3, err := http.Post(srv.URL+"/parse", "application/json",
		strings.NewReader(`{"sentence":"John sees a dog with a telescope"}`))
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp3.StatusCode)
	//
	huge := `{"sentence":"` + strings.Repeat("John ", MaxRequestBytes/5) + `"}`
	resp5, err := http.Post(srv.URL+"/parse", "application/json", strings.NewReader(huge))
	require.NoError(t, err)
	defer resp5.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp5.StatusCode)
	var failure ErrorResponse
	require.NoError(t, json.NewDecoder(resp5.Body).Decode(&failure))
	assert.Equal(t, "request body too large", failure.Error)
	//
	resp4, err := http.Get(srv.URL + "/lexicon")
	require.NoError(t, err)
	defer resp4.Body.Close()
	var lex LexiconResponse
	require.NoError(t, json.NewDecoder(resp4.Body).Decode(&lex))
	assert.Equal(t, "plain", lex.Name)
	assert.Equal(t, "John", lex.Entries[0].Word)
	assert.Equal(t, []string{"NP"}, lex.Entries[0].Categories)
}

func TestMetricsEndpoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.server")
	defer teardown()
	//
	e := makeEngine(t, "plain")
	handler := NewHandler(e)
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(`{"sentence":"John sees Mary"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	//
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ccg_chart_parses_total 1")
	//
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, "ok", rec.Body.String())
}
