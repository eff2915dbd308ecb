package array

import (
	"strconv"
	"testing"

	"github.com/authcorp/libs/go/fp/either"
	"github.com/authcorp/libs/go/fp/function"
	"github.com/authcorp/libs/go/fp/option"
	"github.com/authcorp/libs/go/fp/separated"
	"github.com/authcorp/libs/go/fp/tuple"
	"github.com/authcorp/libs/go/fp/typeclass"
	"github.com/stretchr/testify/assert"
)

var (
	eqInt  = typeclass.EqStrict[int]()
	ordInt = typeclass.OrdOrdered[int]()
)

func isEven(n int) bool { return n%2 == 0 }

func TestConstructors(t *testing.T) {
	assert.Equal(t, []int{1}, Of(1))
	assert.Equal(t, []int{}, Zero[int]())
	assert.Equal(t, []int{}, Empty[int]())
	assert.Equal(t, []int{0, 2, 4}, MakeBy(3, func(i int) int { return i * 2 }))
	assert.Equal(t, []int{}, MakeBy(-1, func(i int) int { return i }))
	assert.Equal(t, []string{"a", "a"}, Replicate(2, "a"))
	assert.Equal(t, []int{1, 2, 3}, Range(1, 3))
	assert.Equal(t, []int{5}, Range(5, 1))
	assert.Equal(t, []int{2}, FromPredicate(isEven)(2))
	assert.Equal(t, []int{}, FromPredicate(isEven)(1))
	assert.Equal(t, []int{1}, FromOption(option.Some(1)))
	assert.Equal(t, []int{}, FromOption(option.None[int]()))
	assert.Equal(t, []int{1}, FromEither(either.Right[string](1)))
	assert.Equal(t, []int{}, FromEither(either.Left[int]("e")))

	countdown := Unfold(3, func(n int) option.Option[tuple.Pair[int, int]] {
		if n == 0 {
			return option.None[tuple.Pair[int, int]]()
		}
		return option.Some(tuple.Make(n, n-1))
	})
	assert.Equal(t, []int{3, 2, 1}, countdown)
}

func TestDestructors(t *testing.T) {
	size := Match(function.Constant(-1), func(as []int) int { return len(as) })
	assert.Equal(t, -1, size(nil))
	assert.Equal(t, 2, size([]int{1, 2}))

	headPlusTail := MatchLeft(function.Constant(0), func(head int, tail []int) int { return head + len(tail) })
	assert.Equal(t, 11, headPlusTail([]int{10, 0}))
	assert.Equal(t, 0, headPlusTail(nil))

	last := MatchRight(function.Constant(0), func(_ []int, last int) int { return last })
	assert.Equal(t, 3, last([]int{1, 2, 3}))

	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsNonEmpty([]int{1}))
	assert.Equal(t, 2, Size([]int{1, 2}))
}

func TestLookup(t *testing.T) {
	as := []int{1, 2, 3, 4}

	assert.Equal(t, option.Some(2), Lookup[int](1)(as))
	assert.Equal(t, option.None[int](), Lookup[int](4)(as))
	assert.Equal(t, option.None[int](), Lookup[int](-1)(as))
	assert.Equal(t, option.Some(1), Head(as))
	assert.Equal(t, option.Some(4), Last(as))
	assert.Equal(t, option.None[int](), Head([]int{}))
	assert.Equal(t, option.None[int](), Last([]int{}))
	assert.Equal(t, option.Some([]int{2, 3, 4}), Tail(as))
	assert.Equal(t, option.Some([]int{1, 2, 3}), Init(as))
	assert.Equal(t, option.None[[]int](), Tail([]int{}))

	assert.Equal(t, option.Some(1), FindIndex(isEven)(as))
	assert.Equal(t, option.Some(3), FindLastIndex(isEven)(as))
	assert.Equal(t, option.Some(2), FindFirst(isEven)(as))
	assert.Equal(t, option.Some(4), FindLast(isEven)(as))
	assert.Equal(t, option.None[int](), FindFirst(func(n int) bool { return n > 9 })(as))

	toString := func(n int) option.Option[string] {
		return option.Map(strconv.Itoa)(option.FromPredicate(isEven)(n))
	}
	assert.Equal(t, option.Some("2"), FindFirstMap(toString)(as))
	assert.Equal(t, option.Some("4"), FindLastMap(toString)(as))
}

func TestIndexedUpdates(t *testing.T) {
	as := []int{1, 2, 3}

	assert.Equal(t, option.Some([]int{1, 9, 2, 3}), InsertAt(1, 9)(as))
	assert.Equal(t, option.Some([]int{1, 2, 3, 9}), InsertAt(3, 9)(as))
	assert.Equal(t, option.None[[]int](), InsertAt(4, 9)(as))
	assert.Equal(t, option.Some([]int{1, 9, 3}), UpdateAt(1, 9)(as))
	assert.Equal(t, option.None[[]int](), UpdateAt(3, 9)(as))
	assert.Equal(t, option.Some([]int{1, 2, 30}), ModifyAt(2, func(n int) int { return n * 10 })(as))
	assert.Equal(t, option.Some([]int{1, 3}), DeleteAt[int](1)(as))
	assert.Equal(t, option.None[[]int](), DeleteAt[int](-1)(as))
	assert.True(t, IsOutOfBound(3, as))
	assert.False(t, IsOutOfBound(0, as))

	assert.Equal(t, []int{1, 2, 3}, as, "input must not be mutated")
}

func TestSlicing(t *testing.T) {
	as := []int{2, 4, 5, 6}

	assert.Equal(t, []int{2, 4}, TakeLeft[int](2)(as))
	assert.Equal(t, []int{2, 4, 5, 6}, TakeLeft[int](10)(as))
	assert.Equal(t, []int{}, TakeLeft[int](-1)(as))
	assert.Equal(t, []int{5, 6}, TakeRight[int](2)(as))
	assert.Equal(t, []int{2, 4}, TakeLeftWhile(isEven)(as))
	assert.Equal(t, []int{5, 6}, DropLeft[int](2)(as))
	assert.Equal(t, []int{2, 4}, DropRight[int](2)(as))
	assert.Equal(t, []int{5, 6}, DropLeftWhile(isEven)(as))

	prefix, rest := SpanLeft(isEven)(as)
	assert.Equal(t, []int{2, 4}, prefix)
	assert.Equal(t, []int{5, 6}, rest)

	before, after := SplitAt[int](1)(as)
	assert.Equal(t, []int{2}, before)
	assert.Equal(t, []int{4, 5, 6}, after)

	before, after = SplitAt[int](0)(as)
	assert.Equal(t, []int{}, before)
	assert.Equal(t, as, after)

	assert.Equal(t, [][]int{{2, 4}, {5, 6}}, ChunksOf[int](2)(as))
	assert.Equal(t, [][]int{{2, 4, 5}, {6}}, ChunksOf[int](3)(as))
	assert.Equal(t, [][]int{{2}, {4}, {5}, {6}}, ChunksOf[int](0)(as))
	assert.Equal(t, [][]int{}, ChunksOf[int](2)(nil))

	group := Chop(func(as []int) (int, []int) {
		prefix, rest := SpanLeft(func(n int) bool { return n == as[0] })(as)
		return len(prefix), rest
	})
	assert.Equal(t, []int{2, 1, 3}, group([]int{1, 1, 2, 3, 3, 3}))
}

func TestTransforms(t *testing.T) {
	as := []int{3, 1, 2}

	assert.Equal(t, []int{0, 3, 1, 2}, Prepend(0)(as))
	assert.Equal(t, []int{3, 1, 2, 0}, Append(0)(as))
	assert.Equal(t, []int{2, 1, 3}, Reverse(as))
	assert.Equal(t, []int{2, 3, 1}, Rotate[int](1)(as))
	assert.Equal(t, []int{1, 2, 3}, Rotate[int](-1)(as))
	assert.Equal(t, []int{3, 0, 1, 0, 2}, Intersperse(0)(as))
	assert.Equal(t, []int{0, 3, 0, 1, 0, 2}, PrependAll(0)(as))
	assert.Equal(t, []int{1, 2, 3}, Sort(ordInt)(as))
	assert.Equal(t, []int{3, 1, 2}, as, "input must not be mutated")

	type person struct {
		name string
		age  int
	}
	byAge := typeclass.ContramapOrd(func(p person) int { return p.age })(ordInt)
	byName := typeclass.ContramapOrd(func(p person) string { return p.name })(typeclass.OrdOrdered[string]())
	people := []person{{"b", 2}, {"a", 2}, {"c", 1}}
	assert.Equal(t, []person{{"c", 1}, {"a", 2}, {"b", 2}}, SortBy(byAge, byName)(people))

	assert.Equal(t, []int{1, 2, 3}, Uniq(eqInt)([]int{1, 2, 1, 3, 2}))
	assert.Equal(t, []int{1, 2, 3}, Union(eqInt)([]int{2, 3})([]int{1, 2}))
	assert.Equal(t, []int{2}, Intersection(eqInt)([]int{2, 3})([]int{1, 2}))
	assert.Equal(t, []int{1}, Difference(eqInt)([]int{2, 3})([]int{1, 2}))

	zipped := Zip[int]([]string{"a", "b", "c"})([]int{1, 2})
	assert.Equal(t, []tuple.Pair[int, string]{tuple.Make(1, "a"), tuple.Make(2, "b")}, zipped)
	assert.Equal(t, tuple.Make([]int{1, 2}, []string{"a", "b"}), Unzip(zipped))
	assert.Equal(t, []int{4, 6}, ZipWith([]int{1, 2}, []int{3, 4}, func(a, b int) int { return a + b }))

	assert.Equal(t, []int{10, 9, 7, 4}, ScanLeft(10, func(b, a int) int { return b - a })([]int{1, 2, 3}))
	assert.Equal(t, []int{-8, 9, -7, 10}, ScanRight(10, func(a, b int) int { return a - b })([]int{1, 2, 3}))

	es := []either.Either[string, int]{either.Right[string](1), either.Left[int]("a"), either.Right[string](2)}
	assert.Equal(t, []int{1, 2}, Rights(es))
	assert.Equal(t, []string{"a"}, Lefts(es))

	assert.True(t, Elem(eqInt)(2)(as))
	assert.False(t, Elem(eqInt)(5)(as))
	assert.True(t, Every(func(n int) bool { return n > 0 })(as))
	assert.True(t, Every(isEven)(nil))
	assert.True(t, Exists(isEven)(as))
	assert.False(t, Exists(isEven)(nil))
}

func TestTypeClassOperations(t *testing.T) {
	as := []int{1, 2, 3}
	double := func(n int) int { return n * 2 }

	assert.Equal(t, []int{2, 4, 6}, Map(double)(as))
	assert.Equal(t, []int{1, 3, 5}, MapWithIndex(func(i, n int) int { return i + n })(as))
	assert.Equal(t, []int{2, 4, 11, 12}, Ap[int]([]int{1, 2})([]func(int) int{double, func(n int) int { return n + 10 }}))
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3}, Chain(func(n int) []int { return []int{n, n} })(as))
	assert.Equal(t, []int{2, 3, 3}, ChainWithIndex(func(i, n int) []int { return Replicate(i, n) })(as))
	assert.Equal(t, []int{1, 2, 3}, Flatten([][]int{{1}, {}, {2, 3}}))
	assert.Equal(t, []int{1, 2, 3, 4}, Alt(func() []int { return []int{4} })(as))
	assert.Equal(t, []int{6, 5, 3}, Extend(Reduce(0, func(b, a int) int { return b + a }))(as))
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3}, {3}}, Duplicate(as))

	assert.Equal(t, []int{2}, Filter(isEven)(as))
	assert.Equal(t, []int{1, 3}, FilterWithIndex(func(i, _ int) bool { return i != 1 })(as))
	assert.Equal(t, []string{"2"}, FilterMap(func(n int) option.Option[string] {
		return option.Map(strconv.Itoa)(option.FromPredicate(isEven)(n))
	})(as))
	assert.Equal(t, []int{1, 3}, Compact([]option.Option[int]{option.Some(1), option.None[int](), option.Some(3)}))

	assert.Equal(t, separated.Make([]int{1, 3}, []int{2}), Partition(isEven)(as))
	assert.Equal(t, separated.Make([]int{2, 3}, []int{1}), PartitionWithIndex(func(i, _ int) bool { return i == 0 })(as))
	assert.Equal(t,
		separated.Make([]string{"odd"}, []int{2}),
		PartitionMap(func(n int) either.Either[string, int] {
			if isEven(n) {
				return either.Right[string](n)
			}
			return either.Left[int]("odd")
		})([]int{1, 2}),
	)
	assert.Equal(t, separated.Make([]string{}, []int{}), Separate([]either.Either[string, int]{}))

	assert.Equal(t, "123", Reduce("", func(b string, a int) string { return b + strconv.Itoa(a) })(as))
	assert.Equal(t, 8, ReduceWithIndex(0, func(i, b, a int) int { return b + i*a })(as))
	assert.Equal(t, "321", ReduceRight("", func(a int, b string) string { return b + strconv.Itoa(a) })(as))
	assert.Equal(t, "3:3,2:2,1:1,", ReduceRightWithIndex("", func(i, a int, b string) string {
		return b + strconv.Itoa(a) + ":" + strconv.Itoa(i+1) + ","
	})(as))
	assert.Equal(t, 6, FoldMap[int](typeclass.SumMonoid[int]())(function.Identity[int])(as))
}

func TestInstances(t *testing.T) {
	eq := GetEq(eqInt)
	assert.True(t, eq.Equals([]int{1, 2}, []int{1, 2}))
	assert.False(t, eq.Equals([]int{1, 2}, []int{1}))
	assert.True(t, eq.Equals(nil, []int{}))

	ord := GetOrd(ordInt)
	assert.Equal(t, -1, ord.Compare([]int{1}, []int{1, 0}))
	assert.Equal(t, 1, ord.Compare([]int{2}, []int{1, 9}))
	assert.Equal(t, 0, ord.Compare([]int{1, 2}, []int{1, 2}))

	m := GetMonoid[int]()
	assert.Equal(t, []int{1, 2, 3}, typeclass.ConcatAll(m)([][]int{{1}, {2, 3}}))
	assert.Equal(t, []int{1, 2}, GetSemigroup[int]().Concat([]int{1}, []int{2}))
	assert.Equal(t, `["a", "b"]`, GetShow(typeclass.ShowQuoted()).Show([]string{"a", "b"}))

	f := Filterable[int, string]()
	assert.Equal(t, []string{"2"}, f.FilterMap(func(n int) (string, bool) {
		return strconv.Itoa(n), isEven(n)
	})([]int{1, 2, 3}))

	c := Compactable[string, int]()
	assert.Equal(t, []int{1}, c.Compact([]option.Option[int]{option.Some(1), option.None[int]()}))
}

func TestTraverseIntoOption(t *testing.T) {
	traverse := Traverse[string](
		option.Pointed[[]int](),
		option.Functor[[]int, func(int) []int](),
		option.Apply[int, []int](),
	)
	parse := traverse(option.TryCatchK(strconv.Atoi))

	assert.Equal(t, option.Some([]int{1, 2, 3}), parse([]string{"1", "2", "3"}))
	assert.Equal(t, option.None[[]int](), parse([]string{"1", "x"}))
	assert.Equal(t, option.Some([]int{}), parse(nil))

	sequence := Sequence(
		option.Pointed[[]int](),
		option.Functor[[]int, func(int) []int](),
		option.Apply[int, []int](),
	)
	assert.Equal(t, option.Some([]int{1, 2}), sequence([]option.Option[int]{option.Some(1), option.Some(2)}))
	assert.Equal(t, option.None[[]int](), sequence([]option.Option[int]{option.None[int](), option.Some(2)}))
}

func TestTraverseIntoArray(t *testing.T) {
	sequence := Sequence(
		Pointed[[]int](),
		Functor[[]int, func(int) []int](),
		Apply[int, []int](),
	)

	got := sequence([][]int{{1, 2}, {3, 4}})
	assert.Equal(t, [][]int{{1, 3}, {1, 4}, {2, 3}, {2, 4}}, got)
}

func TestTraverseIntoEither(t *testing.T) {
	traverse := Traverse[int](
		either.Pointed[string, []int](),
		either.Functor[string, []int, func(int) []int](),
		either.Apply[string, int, []int](),
	)
	positive := func(n int) either.Either[string, int] {
		if n > 0 {
			return either.Right[string](n)
		}
		return either.Left[int]("not positive: " + strconv.Itoa(n))
	}

	assert.Equal(t, either.Right[string]([]int{1, 2}), traverse(positive)([]int{1, 2}))
	assert.Equal(t, either.Left[[]int]("not positive: -1"), traverse(positive)([]int{1, -1, -2}))
}

func TestUnionKeepsDistinctElements(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Union(eqInt)([]int{2, 2, 3})([]int{1, 1}))
	assert.Equal(t, []int{1, 3}, Union(eqInt)([]int{3})([]int{1, 1}))
	assert.Equal(t, []int{}, Union(eqInt)(nil)(nil))
}

func TestApplyCombinators(t *testing.T) {
	assert.Equal(t, []int{1, 3}, Concat([]int{3})([]int{1}))
	assert.Equal(t, []int{3, 4}, Flap[int](2)([]func(int) int{
		func(n int) int { return n + 1 },
		func(n int) int { return n * 2 },
	}))
	assert.Equal(t, []int{1, 1, 2, 2}, ApFirst[int]([]string{"a", "b"})([]int{1, 2}))
	assert.Equal(t, []string{"a", "b", "a", "b"}, ApSecond[int]([]string{"a", "b"})([]int{1, 2}))
	assert.Equal(t, []int{}, ApFirst[int]([]string{})([]int{1, 2}))
	assert.Equal(t, []int{2, 2, 3, 3, 3}, ChainFirst(func(n int) []int { return Replicate(n, 0) })([]int{0, 2, 3}))
}

func TestWideMatches(t *testing.T) {
	describe := MatchW(func() string { return "empty" }, Size[int])
	assert.Equal(t, either.Left[int]("empty"), describe(nil))
	assert.Equal(t, either.Right[string](2), describe([]int{5, 6}))

	first := MatchLeftW(func() string { return "empty" }, func(head int, _ []int) int { return head })
	assert.Equal(t, either.Right[string](5), first([]int{5, 6}))
	assert.Equal(t, either.Left[int]("empty"), first(nil))

	last := MatchRightW(func() bool { return false }, func(_ []int, last int) int { return last })
	assert.Equal(t, either.Right[bool](6), last([]int{5, 6}))
	assert.Equal(t, either.Left[int](false), last([]int{}))
}

func TestIndexedFoldsAndPartitions(t *testing.T) {
	weighted := FoldMapWithIndex[int](typeclass.SumMonoid[int]())(func(i, n int) int { return i * n })
	assert.Equal(t, 0*5+1*6+2*7, weighted([]int{5, 6, 7}))

	split := PartitionMapWithIndex(func(i int, s string) either.Either[string, int] {
		if i%2 == 0 {
			return either.Right[string](len(s))
		}
		return either.Left[int](s)
	})
	assert.Equal(t, separated.Make([]string{"bb"}, []int{1, 3}), split([]string{"a", "bb", "ccc"}))
}

func TestDoNotation(t *testing.T) {
	type cell struct{ Row, Col int }
	setRow := func(r int) func(cell) cell { return func(c cell) cell { c.Row = r; return c } }
	setCol := func(col int) func(cell) cell { return func(c cell) cell { c.Col = col; return c } }

	cells := function.Pipe2(
		Do(cell{}),
		Bind(setRow, func(cell) []int { return []int{1, 2} }),
		ApS(setCol, []int{7, 8}),
	)
	assert.Equal(t, []cell{{1, 7}, {1, 8}, {2, 7}, {2, 8}}, cells)

	diagonal := function.Pipe2(
		BindTo(func(r int) cell { return cell{Row: r} })([]int{3, 4}),
		Let(setCol, func(c cell) int { return c.Row }),
		Filter(func(c cell) bool { return c.Row == c.Col }),
	)
	assert.Equal(t, []cell{{3, 3}, {4, 4}}, diagonal)

	assert.Empty(t, Bind(setRow, func(cell) []int { return nil })(Do(cell{})))
}

func TestSetSemigroups(t *testing.T) {
	union := GetUnionMonoid(eqInt)
	assert.Equal(t, []int{1, 2, 3}, union.Concat([]int{1, 1, 2}, []int{2, 3}))
	assert.Equal(t, []int{1}, union.Concat(union.Empty(), []int{1, 1}))
	assert.Equal(t, []int{1, 2}, GetUnionSemigroup(eqInt).Concat([]int{1}, []int{2}))

	assert.Equal(t, []int{2}, GetIntersectionSemigroup(eqInt).Concat([]int{1, 2}, []int{2, 3}))
	assert.Equal(t, []int{1}, GetDifferenceMagma(eqInt).Concat([]int{1, 2}, []int{2, 3}))
}

func TestTraverseWithIndex(t *testing.T) {
	traverse := TraverseWithIndex[string](
		option.Pointed[[]string](),
		option.Functor[[]string, func(string) []string](),
		option.Apply[string, []string](),
	)
	label := traverse(func(i int, s string) option.Option[string] {
		return option.FromPredicate(func(s string) bool { return s != "" })(strconv.Itoa(i) + ":" + s)
	})
	assert.Equal(t, option.Some([]string{"0:a", "1:b"}), label([]string{"a", "b"}))
}

func TestWitherAndWilt(t *testing.T) {
	wither := Wither[string](
		option.Pointed[[]int](),
		option.Functor[[]int, func(option.Option[int]) []int](),
		option.Apply[option.Option[int], []int](),
	)
	lenient := wither(func(s string) option.Option[option.Option[int]] {
		return option.Some(option.TryCatchK(strconv.Atoi)(s))
	})
	assert.Equal(t, option.Some([]int{1, 3}), lenient([]string{"1", "x", "3"}))

	type split = separated.Separated[[]string, []int]
	wilt := Wilt[string](
		option.Pointed[split](),
		option.Functor[split, func(either.Either[string, int]) split](),
		option.Apply[either.Either[string, int], split](),
	)
	classify := wilt(func(s string) option.Option[either.Either[string, int]] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return option.Some(either.Left[int](s))
		}
		return option.Some(either.Right[string](n))
	})
	assert.Equal(t, option.Some(separated.Make([]string{"x"}, []int{1, 3})), classify([]string{"1", "x", "3"}))

	strict := Witherable[string](
		option.Pointed[[]int](),
		option.Functor[[]int, func(option.Option[int]) []int](),
		option.Apply[option.Option[int], []int](),
	)
	failing := strict.Wither(func(string) option.Option[option.Option[int]] { return option.None[option.Option[int]]() })
	assert.True(t, failing([]string{"1"}).IsNone())
}
