package notation

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ccg/category"
	"github.com/npillmayer/ccg/feature"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.notation")
	defer teardown()
	//
	c, err := ParseLabel(`(S\NP)/NP`)
	require.NoError(t, err)
	assert.Equal(t, category.Forward, c.Dir())
	assert.Equal(t, category.Backward, c.Result().Dir())
	assert.Equal(t, "NP", c.Argument().Payload())
	assert.Equal(t, "S", c.Result().Result().Payload())
	//
	c, err = ParseLabel(`S\NP/NP`) // left associative
	require.NoError(t, err)
	assert.Equal(t, `(S\NP)/NP`, c.String())
	c, err = ParseLabel(` S / ( S \ NP ) `)
	require.NoError(t, err)
	assert.Equal(t, `S/(S\NP)`, c.String())
}

func TestParseFeatures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.notation")
	defer teardown()
	//
	c, err := ParseFeatures(`(S[form=finite]\NP[case=nom,num=?n])/NP[case=acc]`)
	require.NoError(t, err)
	subj := c.Result().Argument().Payload()
	assert.Equal(t, "NP", subj.Type())
	num, ok := subj.Get("num")
	require.True(t, ok)
	assert.Equal(t, feature.NewVar("n"), num)
	cs, _ := subj.Get("case")
	assert.Equal(t, feature.String("nom"), cs)
	assert.Equal(t, "S", c.Result().Result().Payload().Type())
	//
	c, err = ParseFeatures(`S`)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Payload().Len())
	c, err = ParseFeatures(`[num=sg]`)
	require.NoError(t, err)
	assert.Equal(t, "", c.Payload().Type())
}

func TestParseValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.notation")
	defer teardown()
	//
	s, err := ParseStruct(`NP[agr=agr[num=sg,per=3],tags=<a,"b c",?x>,wh=false,q=true,w=-1.5,e=[],l=<>]`)
	require.NoError(t, err)
	agr, _ := s.Get("agr")
	require.True(t, feature.IsStruct(agr))
	assert.Equal(t, "agr", agr.(*feature.Struct).Type())
	per, _ := agr.(*feature.Struct).Get("per")
	assert.Equal(t, feature.Number(3), per)
	tags, _ := s.Get("tags")
	assert.Equal(t, feature.List{feature.String("a"), feature.String("b c"), feature.NewVar("x")}, tags)
	wh, _ := s.Get("wh")
	assert.Equal(t, feature.Bool(false), wh)
	q, _ := s.Get("q")
	assert.Equal(t, feature.Bool(true), q)
	w, _ := s.Get("w")
	assert.Equal(t, feature.Number(-1.5), w)
	e, _ := s.Get("e")
	assert.True(t, feature.IsStruct(e))
	l, _ := s.Get("l")
	assert.Equal(t, feature.List{}, l)
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.notation")
	defer teardown()
	//
	for _, input := range []string{
		`NP`,
		`(S\NP)/NP`,
		`S/(S\NP)`,
		`((S\NP)\(S\NP))/NP`,
		`NP[case=acc,num=?x]`,
		`(S[form=finite]\NP[num=?subj])/(S[form=base]\NP[num=?subj])`,
		`NP[agr=agr[num=sg,per=3],tags=<a,"b c">]`,
	} {
		c, err := ParseFeatures(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, c.String())
		again, err := ParseFeatures(c.String())
		require.NoError(t, err)
		assert.Equal(t, c.String(), again.String())
	}
}

func TestAtomRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.notation")
	defer teardown()
	//
	atoms := []feature.Atom{
		feature.String("3"), feature.Number(3),
		feature.String("true"), feature.Bool(true),
		feature.String("false"), feature.Bool(false),
		feature.String("-x"), feature.String("-1.5"), feature.Number(-1.5),
		feature.String("3rd"), feature.String("sg"), feature.String("a_b"),
		feature.String(""), feature.String("a b"), feature.String(`say "hi"`),
		feature.Number(1e21), feature.Number(0.25),
	}
	for _, a := range atoms {
		s := feature.NewStruct("NP", feature.Features{"f": a})
		again, err := ParseStruct(s.String())
		require.NoError(t, err, s.String())
		f, _ := again.Get("f")
		assert.Equal(t, a, f, "%s does not read back", s)
	}
	assert.Equal(t, `NP[f="3"]`, feature.NewStruct("NP", feature.Features{"f": feature.String("3")}).String())
	assert.Equal(t, `NP[f=3]`, feature.NewStruct("NP", feature.Features{"f": feature.Number(3)}).String())
	assert.Equal(t, `NP[f="true"]`, feature.NewStruct("NP", feature.Features{"f": feature.String("true")}).String())
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.notation")
	defer teardown()
	//
	for _, x := range []struct {
		input string
		pos   int
	}{
		{``, 0},
		{`(S\NP`, 5},
		{`S\`, 2},
		{`NP[num sg]`, 7},
		{`NP[num=sg,num=pl]`, 10},
		{`NP[num=?]`, 8},
		{`S NP`, 2},
		{`S % NP`, 2},
		{`NP[num=<a,b]`, 11},
		{`NP[f=-x]`, 5},
		{`NP[n=` + strings.Repeat("9", 400) + `]`, 5},
	} {
		_, err := ParseFeatures(x.input)
		require.Error(t, err, x.input)
		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), x.input)
		assert.Equal(t, x.pos, serr.Pos, "position for %q: %v", x.input, err)
	}
	_, err := ParseLabel(`NP[num=sg]`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustLabel(`S/`) })
}
