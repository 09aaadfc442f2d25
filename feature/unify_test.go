package feature

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func np(f Features) *Struct {
	return NewStruct("NP", f)
}

func TestUnifyReflexive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier()
	values := []Value{
		String("sg"),
		Number(3),
		Bool(true),
		NewVar("x"),
		List{String("a"), NewVar("y")},
		np(Features{"num": NewVar("n"), "case": String("nom")}),
		np(Features{"agr": NewStruct("", Features{"num": String("pl"), "per": Number(3)})}),
	}
	for _, x := range values {
		v, env, ok := u.UnifyValues(x, x, u.NewEnv())
		require.True(t, ok, "%s should unify with itself", x)
		assert.Equal(t, 0, env.Len(), "unifying %s with itself should not bind anything", x)
		assert.True(t, Equal(Substitute(x, env), x))
		assert.True(t, Equal(v, x), "unified value %s differs from %s", v, x)
	}
}

func TestUnifySymmetric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier()
	pairs := [][2]Value{
		{np(Features{"num": NewVar("x")}), np(Features{"num": String("sg"), "case": String("nom")})},
		{np(Features{"num": String("sg")}), np(Features{"num": String("pl")})},
		{List{NewVar("a"), NewVar("a")}, List{String("p"), String("q")}},
		{String("x"), np(nil)},
		{NewVar("x"), NewVar("y")},
	}
	for _, p := range pairs {
		_, _, ok3 := u.UnifyValues(p[0], p[1], NewEnv())
		_, _, ok4 := u.UnifyValues(p[1], p[0], NewEnv())
		assert.Equal(t, ok3, ok4, "unify(%s, %s) not symmetric", p[0], p[1])
		if asStruct(p[0]) != nil && asStruct(p[1]) != nil {
			_, ok1 := u.Unify(asStruct(p[0]), asStruct(p[1]), NewEnv())
			_, ok2 := u.Unify(asStruct(p[1]), asStruct(p[0]), NewEnv())
			assert.Equal(t, ok1, ok2)
			assert.Equal(t, ok1, ok3)
		}
	}
}

func asStruct(v Value) *Struct {
	if s, ok := v.(*Struct); ok {
		return s
	}
	return nil
}

func TestUnifyMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier()
	v, env, ok := u.UnifyValues(
		np(Features{"case": String("nom"), "num": NewVar("x")}),
		np(Features{"num": String("sg"), "per": Number(3)}),
		NewEnv())
	require.True(t, ok)
	x, bound := env.Lookup("x")
	require.True(t, bound)
	assert.True(t, Equal(x, String("sg")))
	expected := np(Features{"case": String("nom"), "num": String("sg"), "per": Number(3)})
	assert.True(t, Equal(Substitute(v, env), expected), "merged is %s", Substitute(v, env))
}

func TestSharedVariableKeepsMergedStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier()
	x := NewVar("x")
	shared := NewStruct("", Features{"a": x, "b": x})
	split := NewStruct("", Features{
		"a": NewStruct("", Features{"num": String("sg")}),
		"b": NewStruct("", Features{"per": Number(3)}),
	})
	env, ok := u.Unify(shared, split, NewEnv())
	require.True(t, ok)
	agr := NewStruct("", Features{"num": String("sg"), "per": Number(3)})
	result := u.Apply(shared, env)
	assert.True(t, Equal(result, NewStruct("", Features{"a": agr, "b": agr})), "result is %s", result)
	bound, _ := env.Lookup("x")
	assert.True(t, Equal(Substitute(bound, env), agr))
	//
	_, ok = u.Unify(shared, NewStruct("", Features{
		"a": NewStruct("", Features{"num": String("sg")}),
		"b": NewStruct("", Features{"num": String("pl")}),
	}), NewEnv())
	assert.False(t, ok)
}

func TestUnifyMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier()
	_, ok := u.Unify(np(Features{"num": String("sg")}), np(Features{"num": String("pl")}), NewEnv())
	assert.False(t, ok)
	_, ok = u.Unify(np(nil), NewStruct("S", nil), NewEnv())
	assert.False(t, ok, "different type tags should not unify")
	_, ok = u.Unify(np(nil), NewStruct("", Features{"num": String("sg")}), NewEnv())
	assert.True(t, ok, "untagged structure should unify with tagged one")
	_, _, ok = u.UnifyValues(Number(1), String("1"), NewEnv())
	assert.False(t, ok)
	_, _, ok = u.UnifyValues(List{String("a")}, List{String("a"), String("b")}, NewEnv())
	assert.False(t, ok)
}

func TestUnifyDoesNotModifyEnv(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier()
	env := NewEnv().Bind("y", String("acc"))
	env2, ok := u.Unify(np(Features{"num": NewVar("x")}), np(Features{"num": String("sg")}), env)
	require.True(t, ok)
	assert.Equal(t, 1, env.Len())
	assert.Equal(t, 2, env2.Len())
	_, bound := env.Lookup("x")
	assert.False(t, bound)
}

func TestListThreading(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	x := NewVar("x")
	_, ok := Unify(List{x, x}, List{String("a"), String("b")}, NewEnv())
	assert.False(t, ok, "later list elements must see earlier bindings")
	env, ok := Unify(List{x, x}, List{String("a"), String("a")}, NewEnv())
	assert.True(t, ok)
	assert.True(t, Equal(Substitute(List{x, x}, env), List{String("a"), String("a")}))
}

func TestOccursCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	x, y := NewVar("x"), NewVar("y")
	cyclic := NewStruct("", Features{"agr": NewStruct("", Features{"num": x})})
	_, ok := Unify(x, cyclic, NewEnv())
	assert.False(t, ok, "x must not be bound to a structure containing x")
	_, ok = Unify(cyclic, x, NewEnv())
	assert.False(t, ok)
	// indirect occurrence through a binding
	env := NewEnv().Bind("y", List{x})
	_, ok = Unify(x, NewStruct("", Features{"f": y}), env)
	assert.False(t, ok)
	assert.True(t, Occurs("x", NewStruct("", Features{"f": y}), env))
	assert.False(t, Occurs("x", NewStruct("", Features{"f": y}), NewEnv()))
}

func TestResolveSelfReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	x, y := NewVar("x"), NewVar("y")
	env := NewEnv().Bind("x", x)
	assert.True(t, Equal(Resolve(x, env), x))
	env = NewEnv().Bind("x", y).Bind("y", x)
	r := Resolve(x, env)
	assert.True(t, IsVar(r))
	env = NewEnv().Bind("x", y).Bind("y", String("sg"))
	assert.True(t, Equal(Resolve(x, env), String("sg")))
}

func TestSubstituteKeepsUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	env := NewEnv().Bind("x", np(Features{"num": y})).Bind("y", String("pl"))
	v := Substitute(NewStruct("S", Features{"subj": x, "obj": z}), env)
	expected := NewStruct("S", Features{
		"subj": np(Features{"num": String("pl")}),
		"obj":  z,
	})
	assert.True(t, Equal(v, expected), "substituted value is %s", v)
}

func TestClosedWorld(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	u := NewUnifier(WithPolicy(ClosedWorld))
	_, ok := u.Unify(np(Features{"num": String("sg")}), np(Features{"num": String("sg"), "case": String("nom")}), NewEnv())
	assert.False(t, ok)
	_, ok = u.Unify(np(Features{"num": NewVar("x")}), np(Features{"num": String("sg")}), NewEnv())
	assert.True(t, ok)
	assert.Equal(t, "closed", u.Policy().String())
}

func TestTypeHierarchy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.feature")
	defer teardown()
	//
	h := NewHierarchy().Define("NP", "nominal").Define("N", "nominal").Define("pronoun", "NP")
	require.NoError(t, h.Check())
	assert.True(t, h.IsSubtype("pronoun", "nominal"))
	assert.False(t, h.IsSubtype("nominal", "NP"))
	assert.Equal(t, []string{"N", "NP", "nominal", "pronoun"}, h.Types())
	u := NewUnifier(WithTypes(h))
	v, _, ok := u.UnifyValues(NewStruct("nominal", nil), NewStruct("pronoun", nil), NewEnv())
	require.True(t, ok)
	assert.Equal(t, "pronoun", v.(*Struct).Type())
	_, ok = u.Unify(NewStruct("N", nil), NewStruct("NP", nil), NewEnv())
	assert.False(t, ok, "sibling types should not unify")
	h.Define("nominal", "pronoun")
	assert.Error(t, h.Check())
}
