// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultSet() *Set {
	return New([]string{"LE", "GC"}, "ATC")
}

func TestWrapPageRefs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dotted", "LECB: change Pag. 12", "LECB: change (Pag. 12)"},
		{"accented range", "LEMD: AD 2 Pág 12-13", "LEMD: AD 2 (Pág 12-13)"},
		{"lower case", "pag 5 updated", "(pag 5) updated"},
		{"upper accented", "PÁG. 7", "(PÁG. 7)"},
		{"already wrapped", "LECB: change (Pag. 12)", "LECB: change (Pag. 12)"},
		{"open paren only", "see (Pag 3", "see (Pag 3"},
		{"close paren only", "see Pag 3)", "see Pag 3)"},
		{"two refs", "Pag 1 and Pág. 2-3", "(Pag 1) and (Pág. 2-3)"},
		{"no digits", "Pag. x", "Pag. x"},
		{"no ref", "LECB nothing", "LECB nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapPageRefs(tt.in))
		})
	}
}

func TestWrapPageRefsIsStable(t *testing.T) {
	once := WrapPageRefs("LEBL: SID Pag 4-5 and Pag. 9")
	assert.Equal(t, once, WrapPageRefs(once))
}

func TestHasPageRef(t *testing.T) {
	assert.True(t, HasPageRef("x Pág 1"))
	assert.False(t, HasPageRef("Page one"))
}

func TestNormalizeBullet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"hollow bullet swapped", "○ LEMD AD 2", "\t● LEMD AD 2"},
		{"no bullet prepended", "LEMD AD 2", "\t● LEMD AD 2"},
		{"solid bullet kept", "\t● LEMD AD 2", "\t● LEMD AD 2"},
		{"every hollow bullet swapped", "○ a ○ b", "\t● a \t● b"},
		{"mid-line solid bullet kept", "LEMD x \t● y", "LEMD x \t● y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeBullet(tt.in))
		})
	}
}

func TestNormalizeBulletDoesNotDoublePrepend(t *testing.T) {
	once := NormalizeBullet("GCLP: change")
	assert.Equal(t, once, NormalizeBullet(once))
}

func TestEnsureRegionColon(t *testing.T) {
	s := defaultSet()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"missing colon", "\t● LEMD AD 2", "\t● LEMD: AD 2"},
		{"colon present", "\t● LEMD: AD 2", "\t● LEMD: AD 2"},
		{"canary prefix", "\t● GCLP SID", "\t● GCLP: SID"},
		{"no bullet", "LEMD AD 2", "LEMD AD 2"},
		{"other prefix", "\t● EGLL AD 2", "\t● EGLL AD 2"},
		{"end of line", "\t● LEBL", "\t● LEBL:"},
		{"extra spaces", "\t●  LEBL  SID", "\t●  LEBL:  SID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.EnsureRegionColon(tt.in))
		})
	}
}

func TestHeaderToken(t *testing.T) {
	s := defaultSet()
	tests := []struct {
		name      string
		in        string
		wantToken string
		wantColon bool
		wantOK    bool
	}{
		{"bare fir", "LECB", "LECB", false, true},
		{"fir in title", "FIR LECM MADRID", "LECM", false, true},
		{"atc", "ATC", "ATC", false, true},
		{"entry label", "LECB: change", "LECB", true, true},
		{"first token wins", "GCCC and LECB", "GCCC", false, true},
		{"nothing", "ENR 3.3", "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, colon, ok := s.HeaderToken(tt.in)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantColon, colon)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestHasRegionCode(t *testing.T) {
	s := defaultSet()
	assert.True(t, s.HasRegionCode("○ LEMD AD 2.24"))
	assert.True(t, s.HasRegionCode("GCXO changes"))
	assert.False(t, s.HasRegionCode("ATC only"))
	assert.False(t, s.HasRegionCode("EGLL"))
}

func TestCustomPrefixes(t *testing.T) {
	s := New([]string{"EG"}, "")
	assert.True(t, s.HasRegionCode("EGLL"))
	assert.False(t, s.HasRegionCode("LEMD"))
	_, _, ok := s.HeaderToken("ATC")
	assert.False(t, ok)
	assert.False(t, s.IsATC(""))
}

func TestNoPrefixesMatchesNothing(t *testing.T) {
	s := New(nil, "ATC")
	assert.False(t, s.HasRegionCode("LEMD"))
	token, _, ok := s.HeaderToken("ATC section")
	assert.True(t, ok)
	assert.Equal(t, "ATC", token)
	assert.True(t, s.IsATC(token))
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpaces("a   b  c"))
	assert.Equal(t, "\t● a", CollapseSpaces("\t●  a"))
}
