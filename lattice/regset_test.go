package lattice

import "testing"

func TestRegisterSetJoin(t *testing.T) {
	tests := []struct {
		a, b, expected RegisterSet
	}{
		{NewRegisterSet(), NewRegisterSet(), NewRegisterSet()},
		{NewRegisterSet("v0"), NewRegisterSet(), NewRegisterSet("v0")},
		{NewRegisterSet("v0"), NewRegisterSet("v1"), NewRegisterSet("v0", "v1")},
		{NewRegisterSet("v0", "v1"), NewRegisterSet("v1", "v2"), NewRegisterSet("v0", "v1", "v2")},
		{Bot[RegSet, *RegSet](), NewRegisterSet("v0"), NewRegisterSet("v0")},
	}

	for _, test := range tests {
		test := test
		res := test.a.Join(&test.b)
		if !res.Eq(&test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", &test.a, &test.b, &res, &test.expected)
		}
	}
}

func TestRegisterSetMeet(t *testing.T) {
	tests := []struct {
		a, b, expected RegisterSet
	}{
		{NewRegisterSet("v0", "v1"), NewRegisterSet("v1", "v2"), NewRegisterSet("v1")},
		{NewRegisterSet("v0"), NewRegisterSet("v1"), NewRegisterSet()},
		{NewRegisterSet("v0"), Top[RegSet, *RegSet](), NewRegisterSet("v0")},
	}

	for _, test := range tests {
		test := test
		res := test.a.Meet(&test.b)
		if !res.Eq(&test.expected) {
			t.Errorf("%s ⊓ %s = %s, expected %s\n", &test.a, &test.b, &res, &test.expected)
		}
	}
}

func TestRegisterSetOrder(t *testing.T) {
	small := NewRegisterSet("v0")
	big := NewRegisterSet("v0", "v1")
	other := NewRegisterSet("v2")

	if !small.Leq(&big) {
		t.Errorf("%s ⊑ %s does not hold\n", &small, &big)
	}
	if big.Leq(&small) {
		t.Errorf("%s ⊑ %s should not hold\n", &big, &small)
	}
	if small.Leq(&other) || other.Leq(&small) {
		t.Errorf("%s and %s should be incomparable\n", &small, &other)
	}
}

func TestRegisterSetMutation(t *testing.T) {
	s := NewRegisterSet("v0")
	s.Apply(func(v *RegSet) {
		v.Add("v1", "v2")
		v.Remove("v0")
	})

	if expected := NewRegisterSet("v1", "v2"); !s.Eq(&expected) {
		t.Errorf("got %s, expected %s\n", &s, &expected)
	}
	if v := s.Value(); !v.Contains("v1") || v.Contains("v0") {
		t.Errorf("membership mismatch in %s\n", &s)
	}
	if names := s.Value().Names(); len(names) != 2 || names[0] != "v1" || names[1] != "v2" {
		t.Errorf("Names() = %v, expected sorted [v1 v2]\n", names)
	}

	// Structure is shared persistently, so copies are unaffected by updates.
	cp := s.Copy()
	s.Apply(func(v *RegSet) { v.Add("v3") })
	if cp.Value().Contains("v3") {
		t.Errorf("copy %s observed a later update\n", &cp)
	}
}
