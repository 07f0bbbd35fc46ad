package lattice

import "testing"

func TestIntervalJoin(t *testing.T) {
	bot := Bot[Itv, *Itv]()
	top := Top[Itv, *Itv]()

	tests := []struct {
		a, b, expected Interval
	}{
		{bot, bot, bot},
		{bot, top, top},
		{top, bot, top},
		{top, top, top},
		{bot, NewInterval(0, 0), NewInterval(0, 0)},
		{NewInterval(0, 0), bot, NewInterval(0, 0)},
		{NewInterval(0, 0), NewInterval(1, 1), NewInterval(0, 1)},
		{NewInterval(1, 1), NewInterval(0, 0), NewInterval(0, 1)},
		{NewInterval(1, 2), NewInterval(3, 4), NewInterval(1, 4)},
		{NewInterval(-1, 0), NewInterval(0, 1), NewInterval(-1, 1)},
		{NewInterval(0, 1024), IntervalFrom(0), IntervalFrom(0)},
		{IntervalFrom(0), NewInterval(0, 1024), IntervalFrom(0)},
		{NewInterval(-1024, 0), IntervalTo(0), IntervalTo(0)},
		{IntervalTo(-1024), IntervalFrom(1024), top},
	}

	for _, test := range tests {
		test := test
		res := test.a.Join(&test.b)
		if !res.Eq(&test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", &test.a, &test.b, &res, &test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", &test.a, &test.b, &res)
		}
	}
}

func TestIntervalMeet(t *testing.T) {
	bot := Bot[Itv, *Itv]()
	top := Top[Itv, *Itv]()

	tests := []struct {
		a, b, expected Interval
	}{
		{bot, top, bot},
		{top, bot, bot},
		{top, top, top},
		{top, NewInterval(0, 1), NewInterval(0, 1)},
		{NewInterval(0, 1), top, NewInterval(0, 1)},
		{NewInterval(0, 4), NewInterval(2, 8), NewInterval(2, 4)},
		{NewInterval(0, 4), NewInterval(1, 2), NewInterval(1, 2)},
		{NewInterval(0, 1), NewInterval(3, 4), bot},
		{IntervalFrom(0), IntervalTo(10), NewInterval(0, 10)},
		{IntervalFrom(10), IntervalTo(0), bot},
	}

	for _, test := range tests {
		test := test
		res := test.a.Meet(&test.b)
		if !res.Eq(&test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", &test.a, &test.b, &res, &test.expected)
		} else {
			t.Logf("%s ⊓ %s = %s\n", &test.a, &test.b, &res)
		}
	}
}

func TestIntervalWidening(t *testing.T) {
	top := Top[Itv, *Itv]()

	tests := []struct {
		a, b, expected Interval
	}{
		{NewInterval(0, 1), NewInterval(0, 1), NewInterval(0, 1)},
		{NewInterval(0, 1), NewInterval(0, 2), IntervalFrom(0)},
		{NewInterval(0, 1), NewInterval(-1, 1), IntervalTo(1)},
		{NewInterval(0, 1), NewInterval(-1, 2), top},
		{NewInterval(0, 2), NewInterval(0, 1), NewInterval(0, 2)},
		{IntervalFrom(0), IntervalFrom(0), IntervalFrom(0)},
	}

	for _, test := range tests {
		test := test
		res := test.a.Widening(&test.b)
		if !res.Eq(&test.expected) {
			t.Errorf("%s ∇ %s = %s, expected %s\n", &test.a, &test.b, &res, &test.expected)
		}
		if !test.a.Leq(&res) || !test.b.Leq(&res) {
			t.Errorf("%s ∇ %s = %s is not an upper bound\n", &test.a, &test.b, &res)
		}
	}
}

func TestIntervalNarrowing(t *testing.T) {
	tests := []struct {
		a, b, expected Interval
	}{
		{IntervalFrom(0), NewInterval(0, 10), NewInterval(0, 10)},
		{IntervalTo(10), NewInterval(0, 10), NewInterval(0, 10)},
		{NewInterval(0, 10), NewInterval(2, 8), NewInterval(0, 10)},
		{Top[Itv, *Itv](), NewInterval(0, 10), NewInterval(0, 10)},
	}

	for _, test := range tests {
		test := test
		res := test.a.Narrowing(&test.b)
		if !res.Eq(&test.expected) {
			t.Errorf("%s Δ %s = %s, expected %s\n", &test.a, &test.b, &res, &test.expected)
		}
	}
}

func TestIntervalNormalization(t *testing.T) {
	if e := NewInterval(3, 2); !e.IsBot() {
		t.Errorf("Expected [3, 2] to normalize to ⊥, got %s", &e)
	}

	e := FromValue[Itv, *Itv](Itv{loInf: true, hiInf: true})
	if !e.IsTop() {
		t.Errorf("Expected [-∞, ∞] to normalize to ⊤, got %s", &e)
	}

	shifted := NewInterval(0, 10)
	shifted.Apply(func(v *Itv) { v.AddConst(5) })
	if expected := NewInterval(5, 15); !shifted.Eq(&expected) {
		t.Errorf("Expected [5, 15], got %s", &shifted)
	}
}
