package internals

import "testing"

func TestParseRecord(t *testing.T) {
	line := "1024\t1700000000.1234\tabc123\tfoo/bar/baz.txt"
	r, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("ParseRecord(%q) failed: %s", line, err)
	}
	if r.Size != "1024" {
		t.Errorf("Size = %q, want %q", r.Size, "1024")
	}
	if r.Hash != "abc123" {
		t.Errorf("Hash = %q, want %q", r.Hash, "abc123")
	}
	if len(r.Parent) != 2 || r.Parent[0] != "foo" || r.Parent[1] != "bar" {
		t.Errorf("Parent = %v, want [foo bar]", r.Parent)
	}
	if r.Name != "baz.txt" {
		t.Errorf("Name = %q, want %q", r.Name, "baz.txt")
	}
}

func TestParseRecordTopLevel(t *testing.T) {
	r, err := ParseRecord("10\t0\tabc\tfile.txt")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(r.Parent) != 0 {
		t.Errorf("Parent = %v, want empty", r.Parent)
	}
	if r.Name != "file.txt" {
		t.Errorf("Name = %q, want file.txt", r.Name)
	}
}

func TestParseRecordMalformed(t *testing.T) {
	tests := []string{
		"only two\tfields",
		"notanumber\t0\tabc\tfile.txt",
		"10\tnotafloat\tabc\tfile.txt",
	}
	for _, line := range tests {
		if _, err := ParseRecord(line); err == nil {
			t.Errorf("ParseRecord(%q) expected an error", line)
		}
	}
}

func TestRecordPathAndLineRoundtrip(t *testing.T) {
	r := Record{Size: "42", MTime: 1.5, Hash: "deadbeef", Parent: []string{"a", "b"}, Name: "c.bin"}
	if r.Path() != "a/b/c.bin" {
		t.Errorf("Path() = %q, want a/b/c.bin", r.Path())
	}
	line := r.Line()
	parsed, err := ParseRecord(line)
	if err != nil {
		t.Fatalf("re-parsing emitted line failed: %s", err)
	}
	if parsed.Path() != r.Path() || parsed.Hash != r.Hash {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", parsed, r)
	}
}

func TestFingerprintOrdersBySize(t *testing.T) {
	small := Record{Size: "5", Hash: "aaa"}
	large := Record{Size: "500", Hash: "aaa"}
	if small.Fingerprint() >= large.Fingerprint() {
		t.Errorf("expected right-justified size to order %q before %q", small.Fingerprint(), large.Fingerprint())
	}
}

func TestSplitPathEmpty(t *testing.T) {
	parent, name := SplitPath("")
	if parent != nil || name != "" {
		t.Errorf("SplitPath(\"\") = (%v, %q), want (nil, \"\")", parent, name)
	}
}

func TestJoinPathInverseOfSplitPath(t *testing.T) {
	paths := []string{"a/b/c.txt", "file.txt"}
	for _, p := range paths {
		parent, name := SplitPath(p)
		if got := JoinPath(parent, name); got != p {
			t.Errorf("JoinPath(SplitPath(%q)) = %q", p, got)
		}
	}
}
