package either

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/authcorp/libs/go/fp/typeclass"
)

func TestEitherBasicOperations(t *testing.T) {
	t.Run("Right holds a value", func(t *testing.T) {
		e := Right[string](42)
		assert.True(t, e.IsRight())
		assert.False(t, e.IsLeft())
		assert.Equal(t, 42, e.RightOr(0))
		assert.Equal(t, "fallback", e.LeftOr("fallback"))
	})

	t.Run("Left holds a failure", func(t *testing.T) {
		e := Left[int]("boom")
		assert.True(t, e.IsLeft())
		assert.Equal(t, "boom", e.LeftOr(""))
		assert.Equal(t, 7, e.RightOr(7))
	})

	t.Run("zero value is Left", func(t *testing.T) {
		var e Either[string, int]
		assert.True(t, IsLeft(e))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "right(1)", Right[string](1).String())
		assert.Equal(t, "left(x)", Left[int]("x").String())
	})

	t.Run("Swap", func(t *testing.T) {
		assert.Equal(t, Left[string](1), Swap(Right[string](1)))
		assert.Equal(t, Right[int]("a"), Swap(Left[int]("a")))
	})
}

func TestEitherCombinators(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, Right[string](4), Map[string](double)(Right[string](2)))
	assert.Equal(t, Left[int]("e"), Map[string](double)(Left[int]("e")))

	assert.Equal(t, Left[int](3), MapLeft[int](func(s string) int { return len(s) })(Left[int]("abc")))
	assert.Equal(t, Right[int]("2"), Bimap(func(s string) int { return len(s) }, strconv.Itoa)(Right[string](2)))

	half := func(n int) Either[string, int] {
		if n%2 != 0 {
			return Left[int]("odd")
		}
		return Right[string](n / 2)
	}
	assert.Equal(t, Right[string](2), Chain(half)(Right[string](4)))
	assert.Equal(t, Left[int]("odd"), Chain(half)(Right[string](3)))
	assert.Equal(t, Right[string](5), Flatten(Right[string](Right[string](5))))

	assert.Equal(t, Right[string](6), Ap[int](Right[string](3))(Right[string](double)))
	assert.Equal(t, Left[int]("fn"), Ap[int](Left[int]("arg"))(Left[func(int) int]("fn")))
	assert.Equal(t, Left[int]("arg"), Ap[int](Left[int]("arg"))(Right[string](double)))

	assert.Equal(t, Right[string](1), Alt(func() Either[string, int] { return Right[string](2) })(Right[string](1)))
	assert.Equal(t, Right[string](2), Alt(func() Either[string, int] { return Right[string](2) })(Left[int]("x")))

	assert.Equal(t, "x!", Match(func(s string) string { return s + "!" }, strconv.Itoa)(Left[int]("x")))
	assert.Equal(t, 0, GetOrElse(func(string) int { return 0 })(Left[int]("x")))

	positive := FromPredicate(func(n int) bool { return n > 0 }, func(n int) string { return "not positive" })
	assert.Equal(t, Right[string](1), positive(1))
	assert.Equal(t, Left[int]("not positive"), positive(-1))

	assert.True(t, Exists[string](func(n int) bool { return n > 0 })(Right[string](1)))
	assert.False(t, Exists[string](func(n int) bool { return n > 0 })(Left[int]("x")))
}

func TestTryCatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.Equal(t, Right[error](1), TryCatch(func() (int, error) { return 1, nil }))
	})

	t.Run("error is kept", func(t *testing.T) {
		sentinel := errors.New("failed")
		e := TryCatch(func() (int, error) { return 0, sentinel })
		require.True(t, e.IsLeft())
		_, err := ToError(e)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("panic is recovered", func(t *testing.T) {
		e := TryCatch(func() (int, error) { panic("kaboom") })
		_, err := ToError(e)
		assert.ErrorIs(t, err, ErrPanic)
		assert.Contains(t, err.Error(), "kaboom")
	})

	t.Run("panic with error keeps the chain", func(t *testing.T) {
		sentinel := errors.New("inner")
		_, err := ToError(TryCatch(func() (int, error) { panic(sentinel) }))
		assert.ErrorIs(t, err, ErrPanic)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("TryCatchK", func(t *testing.T) {
		parse := TryCatchK(strconv.Atoi)
		assert.Equal(t, Right[error](12), parse("12"))
		assert.True(t, parse("x").IsLeft())
	})

	t.Run("FromError", func(t *testing.T) {
		assert.Equal(t, Right[error]("ok"), FromError("ok", nil))
		assert.True(t, FromError("ok", errors.New("no")).IsLeft())
	})
}

func TestEitherMonadLaws(t *testing.T) {
	gen := rapid.Custom(func(t *rapid.T) Either[string, int] {
		if rapid.Bool().Draw(t, "isRight") {
			return Right[string](rapid.IntRange(-1000, 1000).Draw(t, "right"))
		}
		return Left[int](rapid.StringN(0, 5, -1).Draw(t, "left"))
	})
	f := func(n int) Either[string, int] {
		if n < 0 {
			return Left[int]("negative")
		}
		return Right[string](n + 1)
	}
	g := func(n int) Either[string, int] { return Right[string](n * 3) }

	rapid.Check(t, func(t *rapid.T) {
		m := gen.Draw(t, "m")
		a := rapid.IntRange(-1000, 1000).Draw(t, "a")
		M := Monad[string, int, int]()

		if M.Chain(f)(M.Of(a)) != f(a) {
			t.Fatalf("left identity violated for %d", a)
		}
		if M.Chain(M.Of)(m) != m {
			t.Fatalf("right identity violated for %v", m)
		}
		lhs := M.Chain(g)(M.Chain(f)(m))
		rhs := M.Chain(func(x int) Either[string, int] { return M.Chain(g)(f(x)) })(m)
		if lhs != rhs {
			t.Fatalf("associativity violated: %v != %v", lhs, rhs)
		}
		if Functor[string, int, int]().Map(func(x int) int { return x })(m) != m {
			t.Fatalf("functor identity violated for %v", m)
		}
	})
}

func TestEitherEqAndShow(t *testing.T) {
	E := GetEq(typeclass.EqStrict[string](), typeclass.EqStrict[int]())
	assert.True(t, E.Equals(Right[string](1), Right[string](1)))
	assert.False(t, E.Equals(Right[string](1), Right[string](2)))
	assert.False(t, E.Equals(Right[string](1), Left[int]("1")))
	assert.True(t, E.Equals(Left[int]("a"), Left[int]("a")))

	S := GetShow(typeclass.ShowQuoted(), typeclass.ShowSprint[int]())
	assert.Equal(t, `left("a")`, S.Show(Left[int]("a")))
	assert.Equal(t, "right(3)", S.Show(Right[string](3)))
}

func TestEitherJSON(t *testing.T) {
	data, err := json.Marshal(Right[string](5))
	require.NoError(t, err)
	assert.JSONEq(t, `{"right":5}`, string(data))

	data, err = json.Marshal(Left[int]("bad"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"left":"bad"}`, string(data))

	var decoded Either[string, int]
	require.NoError(t, json.Unmarshal([]byte(`{"right":9}`), &decoded))
	assert.Equal(t, Right[string](9), decoded)
	require.NoError(t, json.Unmarshal([]byte(`{"left":"no"}`), &decoded))
	assert.Equal(t, Left[int]("no"), decoded)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{}`), &decoded), ErrMalformed)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"left":"a","right":1}`), &decoded), ErrMalformed)
}

func TestEitherYAML(t *testing.T) {
	data, err := yaml.Marshal(Right[string](5))
	require.NoError(t, err)
	assert.Equal(t, "right: 5\n", string(data))

	var decoded Either[string, int]
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, Right[string](5), decoded)

	require.NoError(t, yaml.Unmarshal([]byte("left: nope\n"), &decoded))
	assert.Equal(t, Left[int]("nope"), decoded)

	assert.ErrorIs(t, yaml.Unmarshal([]byte("middle: 1\n"), &decoded), ErrMalformed)
}

func TestEitherLogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	logger.Info("result", "ok", Right[string](1), "failed", Left[int]("boom"))
	assert.Equal(t, "level=INFO msg=result ok.right=1 failed.left=boom\n", buf.String())
}
