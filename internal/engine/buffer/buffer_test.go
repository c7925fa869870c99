package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.Text() != "" {
		t.Errorf("Text() = %q, want empty", b.Text())
	}
}

func TestNewBufferFromString(t *testing.T) {
	b := NewBufferFromString("hello")
	if b.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", b.Text(), "hello")
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
}

func TestNewBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("from reader"))
	if err != nil {
		t.Fatalf("NewBufferFromReader error: %v", err)
	}
	if b.Text() != "from reader" {
		t.Errorf("Text() = %q, want %q", b.Text(), "from reader")
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		offset  ByteOffset
		text    string
		want    string
		wantEnd ByteOffset
	}{
		{"into empty", "", 0, "abc", "abc", 3},
		{"at start", "world", 0, "hello ", "hello world", 6},
		{"at end", "hello", 5, " world", "hello world", 11},
		{"in middle", "held", 2, "satisfie", "hesatisfield", 10},
		{"empty text", "abc", 1, "", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.initial)
			end, err := b.Insert(tt.offset, tt.text)
			if err != nil {
				t.Fatalf("Insert error: %v", err)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %d, want %d", end, tt.wantEnd)
			}
			if got := b.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")
	if _, err := b.Insert(4, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert(4) err = %v, want ErrOffsetOutOfRange", err)
	}
	if _, err := b.Insert(-1, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert(-1) err = %v, want ErrOffsetOutOfRange", err)
	}
	if b.Text() != "abc" {
		t.Errorf("buffer modified by failed insert: %q", b.Text())
	}
}

func TestDelete(t *testing.T) {
	b := NewBufferFromString("hello world")
	if err := b.Delete(5, 11); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if b.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", b.Text(), "hello")
	}
}

func TestDeleteInvalidRange(t *testing.T) {
	b := NewBufferFromString("abc")
	tests := []struct {
		name       string
		start, end ByteOffset
	}{
		{"negative start", -1, 2},
		{"end before start", 2, 1},
		{"end past buffer", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Delete(tt.start, tt.end); !errors.Is(err, ErrRangeInvalid) {
				t.Errorf("Delete(%d, %d) err = %v, want ErrRangeInvalid", tt.start, tt.end, err)
			}
		})
	}
	if b.Text() != "abc" {
		t.Errorf("buffer modified by failed delete: %q", b.Text())
	}
}

func TestReplace(t *testing.T) {
	b := NewBufferFromString("hello world")
	end, err := b.Replace(6, 11, "there")
	if err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if end != 11 {
		t.Errorf("end = %d, want 11", end)
	}
	if b.Text() != "hello there" {
		t.Errorf("Text() = %q, want %q", b.Text(), "hello there")
	}
}

func TestTextRangeClamps(t *testing.T) {
	b := NewBufferFromString("hello")
	tests := []struct {
		name       string
		start, end ByteOffset
		want       string
	}{
		{"full", 0, 5, "hello"},
		{"middle", 1, 4, "ell"},
		{"end past buffer", 2, 100, "llo"},
		{"negative start", -3, 2, "he"},
		{"inverted", 4, 1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.TextRange(tt.start, tt.end); got != tt.want {
				t.Errorf("TextRange(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestApplyEdit(t *testing.T) {
	b := NewBufferFromString("hello world")
	result, err := b.ApplyEdit(NewEdit(NewRange(0, 5), "goodbye"))
	if err != nil {
		t.Fatalf("ApplyEdit error: %v", err)
	}
	if b.Text() != "goodbye world" {
		t.Errorf("Text() = %q, want %q", b.Text(), "goodbye world")
	}
	if result.OldText != "hello" {
		t.Errorf("OldText = %q, want %q", result.OldText, "hello")
	}
	if result.NewRange != (Range{Start: 0, End: 7}) {
		t.Errorf("NewRange = %v, want [0:7)", result.NewRange)
	}
	if result.Delta != 2 {
		t.Errorf("Delta = %d, want 2", result.Delta)
	}
}

func TestApplyEdits(t *testing.T) {
	b := NewBufferFromString("aaa bbb ccc")

	// Reverse order: highest offset first
	edits := []Edit{
		NewEdit(NewRange(8, 11), "CCC"),
		NewEdit(NewRange(4, 7), "BBB"),
		NewEdit(NewRange(0, 3), "AAA"),
	}
	if err := b.ApplyEdits(edits); err != nil {
		t.Fatalf("ApplyEdits error: %v", err)
	}
	if b.Text() != "AAA BBB CCC" {
		t.Errorf("Text() = %q, want %q", b.Text(), "AAA BBB CCC")
	}
}

func TestApplyEditsRejectsOverlap(t *testing.T) {
	b := NewBufferFromString("aaa bbb ccc")

	edits := []Edit{
		NewEdit(NewRange(0, 3), "AAA"),
		NewEdit(NewRange(4, 7), "BBB"), // wrong order
	}
	if err := b.ApplyEdits(edits); !errors.Is(err, ErrEditsOverlap) {
		t.Errorf("err = %v, want ErrEditsOverlap", err)
	}
	if b.Text() != "aaa bbb ccc" {
		t.Errorf("buffer modified by rejected edits: %q", b.Text())
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"accented", "héllo", 5},
		{"emoji", "hi 👍", 4},
		{"combining mark", "é", 1},
		{"flag", "\U0001F1EA\U0001F1F8", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			if got := b.CharCount(); got != tt.want {
				t.Errorf("CharCount(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestByteAtAndRuneAt(t *testing.T) {
	b := NewBufferFromString("aé")

	if c, ok := b.ByteAt(0); !ok || c != 'a' {
		t.Errorf("ByteAt(0) = %q, %v", c, ok)
	}
	if _, ok := b.ByteAt(10); ok {
		t.Error("ByteAt(10) should report not ok")
	}

	r, size := b.RuneAt(1)
	if r != 'é' || size != 2 {
		t.Errorf("RuneAt(1) = %q, %d, want 'é', 2", r, size)
	}
	if r, size := b.RuneAt(10); size != 0 {
		t.Errorf("RuneAt(10) = %q, %d, want size 0", r, size)
	}
}

func TestRevisionIDAdvances(t *testing.T) {
	b := NewBufferFromString("abc")
	rev := b.RevisionID()
	if _, err := b.Insert(0, "x"); err != nil {
		t.Fatal(err)
	}
	if b.RevisionID() == rev {
		t.Error("RevisionID unchanged after insert")
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	b := NewBufferFromString("hello")
	snap := b.Snapshot()

	if _, err := b.Insert(5, " world"); err != nil {
		t.Fatal(err)
	}

	if snap.Text() != "hello" {
		t.Errorf("snapshot changed after edit: %q", snap.Text())
	}
	if snap.Len() != 5 {
		t.Errorf("snapshot Len = %d, want 5", snap.Len())
	}
	if snap.RevisionID() == b.RevisionID() {
		t.Error("snapshot revision should differ from edited buffer")
	}
	if snap.TextRange(1, 100) != "ello" {
		t.Errorf("snapshot TextRange = %q, want %q", snap.TextRange(1, 100), "ello")
	}
}

func TestRangeHelpers(t *testing.T) {
	r := NewRange(2, 5)
	if r.Len() != 3 {
		t.Errorf("Len = %d, want 3", r.Len())
	}
	if r.IsEmpty() {
		t.Error("non-empty range reported empty")
	}
	if !r.Contains(2) || r.Contains(5) {
		t.Error("Contains boundary behavior wrong")
	}
	if !r.Overlaps(NewRange(4, 6)) {
		t.Error("ranges [2,5) and [4,6) should overlap")
	}
	if r.Overlaps(NewRange(5, 8)) {
		t.Error("ranges [2,5) and [5,8) should not overlap")
	}
	if got := r.Shift(3); got != NewRange(5, 8) {
		t.Errorf("Shift(3) = %v, want [5:8)", got)
	}
	if NewRange(5, 2).IsValid() {
		t.Error("inverted range reported valid")
	}
}

func TestEditHelpers(t *testing.T) {
	ins := NewInsert(3, "abc")
	if !ins.IsInsert() || ins.IsDelete() || ins.IsReplace() {
		t.Error("insert edit misclassified")
	}
	del := NewDelete(0, 3)
	if !del.IsDelete() || del.IsInsert() {
		t.Error("delete edit misclassified")
	}
	rep := NewEdit(NewRange(0, 3), "xy")
	if !rep.IsReplace() {
		t.Error("replace edit misclassified")
	}
	if rep.Delta() != -1 {
		t.Errorf("Delta = %d, want -1", rep.Delta())
	}
	if !NewEdit(NewRange(1, 1), "").IsNoOp() {
		t.Error("empty edit should be a no-op")
	}
}
