// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package places_test

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"cloudeng.io/sunlight/geospatial/places"
)

const sampleData = `
US	99553	Akutan	Alaska	AK	Aleutians East	013			54.143	-165.7854	1
GB	BN91	Worthing	England	ENG					50.818	-0.3754	
GB	AL3 8QE	Slip End	England	ENG	Bedfordshire		Central Bedfordshire	E06000056	51.8479	-0.4474	6
`

func TestLookup(t *testing.T) {
	ctx := context.Background()
	pc := places.NewPostalCodes()
	if err := pc.Load(ctx, []byte(sampleData)); err != nil {
		t.Fatalf("failed to load sample data: %v", err)
	}
	if got, want := pc.Len(), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []struct {
		admin, postal string
		want          places.Place
	}{
		{"AK", "99553", places.Place{Name: "Akutan", Latitude: 54.143, Longitude: -165.7854}},
		{"ENG", "BN91", places.Place{Name: "Worthing", Latitude: 50.818, Longitude: -0.3754}},
		{"eng", "al3 8qe", places.Place{Name: "Slip End", Latitude: 51.8479, Longitude: -0.4474}},
	} {
		p, ok := pc.Lookup(tc.admin, tc.postal)
		if !ok {
			t.Errorf("%v %v: not found", tc.admin, tc.postal)
			continue
		}
		if got, want := p, tc.want; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, ok := pc.Lookup("ENG", "AL3 8QF"); ok {
		t.Errorf("expected not to find AL3 8QF")
	}
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()
	for _, data := range []string{
		"US	99553	Akutan\n",
		"US	99553	Akutan	Alaska	AK	Aleutians East	013			x	-165.7854	1\n",
		"US	99553	Akutan	Alaska	AK	Aleutians East	013			54.143	y	1\n",
		"US	99553	Akutan	Alaska	AK	Aleutians East	013			154.143	-165.7854	1\n",
	} {
		if err := places.NewPostalCodes().Load(ctx, []byte(data)); err == nil {
			t.Errorf("%q: expected an error", data)
		}
	}
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()
	filename := filepath.Join(t.TempDir(), "postal.txt")
	if err := os.WriteFile(filename, []byte(sampleData), 0600); err != nil {
		t.Fatal(err)
	}
	pc := places.NewPostalCodes()
	if err := pc.LoadFile(ctx, filename); err != nil {
		t.Fatal(err)
	}
	if _, ok := pc.Lookup("AK", "99553"); !ok {
		t.Errorf("expected to find AK 99553")
	}
	if err := pc.LoadFile(ctx, filename+"-missing"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestParsePostal(t *testing.T) {
	for _, tc := range []struct {
		spec, admin, postal string
		ok                  bool
	}{
		{"AK 99553", "AK", "99553", true},
		{"ENG AL3 8QE", "ENG", "AL3 8QE", true},
		{" ENG  BN91 ", "ENG", "BN91", true},
		{"99553", "", "", false},
		{"", "", "", false},
	} {
		admin, postal, err := places.ParsePostal(tc.spec)
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("%q: got %v, want %v: %v", tc.spec, got, want, err)
		}
		if got, want := admin+"|"+postal, tc.admin+"|"+tc.postal; got != want {
			t.Errorf("%q: got %v, want %v", tc.spec, got, want)
		}
	}
}
