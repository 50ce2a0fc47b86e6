package attr

import "testing"

func person(id int64, name string) Record {
	return Record{
		{Key: "id", Value: FromInt(id)},
		{Key: "name", Value: FromString(name)},
	}
}

func TestFilteredBy(t *testing.T) {
	recs := []Record{
		person(1, "Alice"),
		person(2, "Bob"),
		person(12, "Carol"),
	}
	tests := []struct {
		name  string
		keys  []string
		query string
		want  []string
	}{
		{"single key", []string{"name"}, "al", []string{"Alice"}},
		{"case insensitive", []string{"name"}, "ALICE", []string{"Alice"}},
		{"or over keys", []string{"id", "name"}, "2", []string{"Bob", "Carol"}},
		{"no match", []string{"name"}, "zzz", nil},
		{"empty keys", nil, "a", nil},
		{"unresolvable key", []string{"name.WRONG"}, "Alice", nil},
		{"rendered int match", []string{"id"}, "12", []string{"Carol"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilteredBy(tt.keys, tt.query, recs)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if name := got[i].Get("name").Value.Str; name != tt.want[i] {
					t.Errorf("position %d: got %q, want %q", i, name, tt.want[i])
				}
			}
		})
	}
}

func TestFilteredByPreservesOrder(t *testing.T) {
	recs := []Record{person(1, "ab"), person(2, "ba"), person(3, "aa")}
	got := FilteredBy([]string{"name"}, "a", recs)
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	for i := range got {
		if !got[i].Equal(recs[i]) {
			t.Errorf("position %d: record order or content changed", i)
		}
	}
}

func TestFilteredByNestedKey(t *testing.T) {
	rec := Record{
		{Key: "name", Value: FromRecord(Record{
			{Key: "first", Value: FromString("Ahmad")},
		})},
	}
	if got := FilteredBy([]string{"name.first"}, "Ahmad", []Record{rec}); len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got := FilteredBy([]string{"name.WRONG"}, "Ahmad", []Record{rec}); len(got) != 0 {
		t.Fatalf("got %d records, want 0", len(got))
	}
}
