package attr

import "testing"

func userRec() Record {
	return Record{
		{Key: "id", Value: FromInt(7)},
		{Key: "name", Value: FromString("Alice")},
		{Key: "address", Value: FromRecord(Record{
			{Key: "street", Value: FromString("Oak")},
			{Key: "city", Value: FromString("Montreal")},
			{Key: "country", Value: FromString("CA")},
		})},
	}
}

func TestGetByPath(t *testing.T) {
	rec := userRec()
	tests := []struct {
		name    string
		path    string
		wantKey string
		want    *Value
	}{
		{"top level", "name", "name", &Value{Type: StringType, Str: "Alice"}},
		{"nested", "address.city", "city", &Value{Type: StringType, Str: "Montreal"}},
		{"empty path", "", "", nil},
		{"missing key", "nope", "", nil},
		{"missing nested key", "address.missing", "", nil},
		{"descend into non-record", "name.x", "", nil},
		{"trailing separator", "address.", "", nil},
		{"deep miss", "address.city.x", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetByPath(tt.path, rec)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("GetByPath(%q) = %v, want nil", tt.path, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("GetByPath(%q) = nil, want %v", tt.path, *tt.want)
			}
			if got.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", got.Key, tt.wantKey)
			}
			if !got.Value.Equal(*tt.want) {
				t.Errorf("value = %v, want %v", got.Value, *tt.want)
			}
		})
	}
}

func TestGetByPathLeafKey(t *testing.T) {
	// The resolved attribute carries the leaf segment's own key, not
	// the full dotted path.
	got := GetByPath("address.city", userRec())
	if got == nil || got.Key != "city" {
		t.Fatalf("got %v, want city attribute", got)
	}
}

func TestGetByPathDuplicateKeys(t *testing.T) {
	rec := Record{
		{Key: "x", Value: FromInt(1)},
		{Key: "x", Value: FromInt(2)},
	}
	got := GetByPath("x", rec)
	if got == nil || got.Value.Int != 1 {
		t.Fatalf("got %v, want first occurrence (1)", got)
	}
}

func TestGetByPathDeepNesting(t *testing.T) {
	const depth = 64
	rec := Record{{Key: "leaf", Value: FromBool(true)}}
	path := "leaf"
	for i := 0; i < depth; i++ {
		rec = Record{{Key: "n", Value: FromRecord(rec)}}
		path = "n." + path
	}
	got := GetByPath(path, rec)
	if got == nil || got.Key != "leaf" || !got.Value.Bool {
		t.Fatalf("got %v, want leaf bool attribute", got)
	}
}
