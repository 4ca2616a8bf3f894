// Copyright Notice:
// Copyright 2018-2026 DMTF. All rights reserved.
// License: BSD 3-Clause License. For full text see link: https://github.com/DMTF/Redfish-URI-Validator/blob/master/LICENSE.md

package resource

import (
	"encoding/json"
	"testing"
)

func TestParse_TaggedVariants(t *testing.T) {
	payload := `{
		"@odata.id": "/redfish/v1/Chassis/1",
		"@odata.type": "#Chassis.v1_10_0.Chassis",
		"Name": "Chassis One",
		"Thermal": {"@odata.id": "/redfish/v1/Chassis/1/Thermal"},
		"Fans": [{"Name": "Fan0"}, {"Name": "Fan1"}],
		"Depth": 42
	}`

	res, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if res.Root().Kind() != KindMapping {
		t.Fatal("expected mapping root")
	}

	id, ok := res.ID()
	if !ok || id != "/redfish/v1/Chassis/1" {
		t.Errorf("ID = %q, %v", id, ok)
	}
	typ, ok := res.Type()
	if !ok || typ != "#Chassis.v1_10_0.Chassis" {
		t.Errorf("Type = %q, %v", typ, ok)
	}

	thermal, ok := res.Root().Property("Thermal")
	if !ok || thermal.Kind() != KindMapping {
		t.Fatal("expected Thermal mapping")
	}

	fans, ok := res.Root().Property("Fans")
	if !ok || fans.Kind() != KindSequence {
		t.Fatal("expected Fans sequence")
	}
	if len(fans.Items()) != 2 {
		t.Errorf("expected 2 fans, got %d", len(fans.Items()))
	}

	depth, _ := res.Root().Property("Depth")
	if depth.Kind() != KindScalar {
		t.Error("expected Depth scalar")
	}
}

func TestParse_KeyOrderPreserved(t *testing.T) {
	payload := `{"Zeta": 1, "Alpha": 2, "Mid": 3}`
	res, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	keys := res.Root().Keys()
	want := []string{"Zeta", "Alpha", "Mid"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestParse_NoIdentifier(t *testing.T) {
	res, err := Parse([]byte(`{"foo": "bar"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, ok := res.ID(); ok {
		t.Error("expected no identifier")
	}
}

func TestParse_RejectsNonObject(t *testing.T) {
	if _, err := Parse([]byte(`[1, 2, 3]`)); err == nil {
		t.Error("expected error for array payload")
	}
	if _, err := Parse([]byte(`{bad json`)); err == nil {
		t.Error("expected error for invalid payload")
	}
}

func TestResource_MarshalRoundTrip(t *testing.T) {
	payload := `{"Zeta":{"Inner":[1,"two",true,null]},"Alpha":"a"}`
	res, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != payload {
		t.Errorf("round trip = %s, want %s", out, payload)
	}
}

func TestCollection_UnmarshalJSON(t *testing.T) {
	data := `[{"@odata.id": "/redfish/v1/"}, {"foo": "bar"}]`

	var col Collection
	if err := json.Unmarshal([]byte(data), &col); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if col.Len() != 2 {
		t.Fatalf("Len = %d, want 2", col.Len())
	}

	id, ok := col.Resources()[0].ID()
	if !ok || id != "/redfish/v1/" {
		t.Errorf("first resource ID = %q, %v", id, ok)
	}
	if _, ok := col.Resources()[1].ID(); ok {
		t.Error("second resource should have no identifier")
	}
}

func TestIsServiceRoot(t *testing.T) {
	for _, uri := range []string{"/redfish/v1/", "/redfish/v1"} {
		if !IsServiceRoot(uri) {
			t.Errorf("IsServiceRoot(%q) = false", uri)
		}
	}
	for _, uri := range []string{"/redfish/v1/Chassis", "", "/redfish/"} {
		if IsServiceRoot(uri) {
			t.Errorf("IsServiceRoot(%q) = true", uri)
		}
	}
}
