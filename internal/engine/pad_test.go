package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestNewPad(t *testing.T) {
	p := New()
	if !p.IsEmpty() {
		t.Error("new pad should be empty")
	}
	if p.ID() == "" {
		t.Error("pad has no ID")
	}
	if p.CanUndo() {
		t.Error("new pad reports CanUndo")
	}
}

func TestNewPadWithContent(t *testing.T) {
	p := New(WithContent("hello"))
	if p.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", p.Text(), "hello")
	}
	if p.Len() != 5 {
		t.Errorf("Len() = %d, want 5", p.Len())
	}
}

func TestNewFromReader(t *testing.T) {
	p, err := NewFromReader(strings.NewReader("from reader"))
	if err != nil {
		t.Fatalf("NewFromReader error: %v", err)
	}
	if p.Text() != "from reader" {
		t.Errorf("Text() = %q", p.Text())
	}
}

func TestPadIDsAreUnique(t *testing.T) {
	a, b := New(), New()
	if a.ID() == b.ID() {
		t.Errorf("two pads share ID %q", a.ID())
	}
}

func TestInsertDeleteReplaceUndo(t *testing.T) {
	p := New(WithContent("hello world"))

	if err := p.Insert(5, ","); err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if p.Text() != "hello, world" {
		t.Errorf("Text() = %q", p.Text())
	}

	if err := p.Replace(7, 12, "there"); err != nil {
		t.Fatalf("Replace error: %v", err)
	}
	if p.Text() != "hello, there" {
		t.Errorf("Text() = %q", p.Text())
	}

	if err := p.Delete(5, 6); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if p.Text() != "hello there" {
		t.Errorf("Text() = %q", p.Text())
	}

	for _, want := range []string{"hello, there", "hello, world", "hello world"} {
		if err := p.Undo(); err != nil {
			t.Fatalf("Undo error: %v", err)
		}
		if p.Text() != want {
			t.Errorf("after undo Text() = %q, want %q", p.Text(), want)
		}
	}
	if err := p.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("final undo err = %v, want ErrNothingToUndo", err)
	}
}

func TestAppendScenario(t *testing.T) {
	p := New()

	if err := p.Append("Hola "); err != nil {
		t.Fatal(err)
	}
	if err := p.Append("Mundo"); err != nil {
		t.Fatal(err)
	}
	if p.Text() != "Hola Mundo" {
		t.Fatalf("Text() = %q, want %q", p.Text(), "Hola Mundo")
	}

	if err := p.Undo(); err != nil || p.Text() != "Hola " {
		t.Fatalf("first undo: err=%v text=%q", err, p.Text())
	}
	if err := p.Undo(); err != nil || p.Text() != "" {
		t.Fatalf("second undo: err=%v text=%q", err, p.Text())
	}
	if err := p.Undo(); !errors.Is(err, ErrNothingToUndo) || p.Text() != "" {
		t.Fatalf("third undo: err=%v text=%q", err, p.Text())
	}
}

func TestReadOnly(t *testing.T) {
	p := New(WithContent("locked"), WithReadOnly())

	if !p.IsReadOnly() {
		t.Error("IsReadOnly() = false")
	}
	if err := p.Insert(0, "x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Insert err = %v, want ErrReadOnly", err)
	}
	if err := p.Append("x"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Append err = %v, want ErrReadOnly", err)
	}
	if err := p.Undo(); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Undo err = %v, want ErrReadOnly", err)
	}
	if err := p.Clear(); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Clear err = %v, want ErrReadOnly", err)
	}
	if p.Text() != "locked" {
		t.Errorf("Text() = %q", p.Text())
	}
}

func TestErrorSentinelsMatchSubpackages(t *testing.T) {
	p := New(WithContent("abc"))

	if err := p.Insert(99, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("Insert err = %v, want wrapped ErrOffsetOutOfRange", err)
	}
	if err := p.Delete(5, 2); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("Delete err = %v, want wrapped ErrRangeInvalid", err)
	}
	if p.UndoCount() != 0 {
		t.Errorf("failed writes were recorded: UndoCount = %d", p.UndoCount())
	}
}

func TestUndoGroups(t *testing.T) {
	p := New()

	p.BeginUndoGroup("greeting")
	if err := p.Append("Hola "); err != nil {
		t.Fatal(err)
	}
	if err := p.Append("Mundo"); err != nil {
		t.Fatal(err)
	}
	p.EndUndoGroup()

	if p.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want 1", p.UndoCount())
	}
	info, ok := p.PeekUndo()
	if !ok || info.Description != "greeting" {
		t.Errorf("PeekUndo = %+v, %v", info, ok)
	}
	if err := p.Undo(); err != nil {
		t.Fatal(err)
	}
	if p.Text() != "" {
		t.Errorf("group undo left %q", p.Text())
	}
}

func TestMaxUndoEntriesOption(t *testing.T) {
	p := New(WithMaxUndoEntries(2))

	for i := 0; i < 4; i++ {
		if err := p.Append("x"); err != nil {
			t.Fatal(err)
		}
	}
	if p.UndoCount() != 2 {
		t.Errorf("UndoCount = %d, want 2", p.UndoCount())
	}
}

func TestSnapshotMemento(t *testing.T) {
	p := New(WithContent("before"))
	snap := p.Snapshot()

	if err := p.Append(" after"); err != nil {
		t.Fatal(err)
	}
	if snap.Text() != "before" {
		t.Errorf("snapshot changed: %q", snap.Text())
	}
	if p.Text() != "before after" {
		t.Errorf("Text() = %q", p.Text())
	}
}

func TestClearAndSetContent(t *testing.T) {
	p := New(WithContent("abc"))
	if err := p.Append("def"); err != nil {
		t.Fatal(err)
	}

	if err := p.SetContent("fresh"); err != nil {
		t.Fatal(err)
	}
	if p.Text() != "fresh" {
		t.Errorf("Text() = %q", p.Text())
	}
	if p.CanUndo() {
		t.Error("history survived SetContent")
	}

	if err := p.Clear(); err != nil {
		t.Fatal(err)
	}
	if !p.IsEmpty() {
		t.Errorf("Clear left %q", p.Text())
	}
}

func TestCharCount(t *testing.T) {
	p := New(WithContent("héllo 👍"))
	if got := p.CharCount(); got != 7 {
		t.Errorf("CharCount = %d, want 7", got)
	}
}

func TestEvalText(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int64
	}{
		{"literal", "42", 42},
		{"sum then product", "(3 + 5) * 2", 16},
		{"precedence", "3 + 5 * 2", 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(WithContent(tt.src))
			got, err := p.EvalText()
			if err != nil {
				t.Fatalf("EvalText error: %v", err)
			}
			if got != tt.want {
				t.Errorf("EvalText() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvalTextError(t *testing.T) {
	p := New(WithContent("not math"))
	if _, err := p.EvalText(); err == nil {
		t.Error("EvalText succeeded on non-arithmetic text")
	}
}

func TestEvalRange(t *testing.T) {
	p := New(WithContent("total: 2 * 21"))
	got, err := p.EvalRange(7, p.Len())
	if err != nil {
		t.Fatalf("EvalRange error: %v", err)
	}
	if got != 42 {
		t.Errorf("EvalRange = %d, want 42", got)
	}
}

// The calc-pad workflow: type an expression, evaluate it, append the result,
// then undo back to the bare expression.
func TestCalcPadWorkflow(t *testing.T) {
	p := New()

	if err := p.Append("(3 + 5) * 2"); err != nil {
		t.Fatal(err)
	}
	v, err := p.EvalText()
	if err != nil {
		t.Fatalf("EvalText error: %v", err)
	}
	if v != 16 {
		t.Fatalf("EvalText = %d, want 16", v)
	}

	if err := p.Append(" = 16"); err != nil {
		t.Fatal(err)
	}
	if p.Text() != "(3 + 5) * 2 = 16" {
		t.Errorf("Text() = %q", p.Text())
	}

	if err := p.Undo(); err != nil {
		t.Fatal(err)
	}
	if p.Text() != "(3 + 5) * 2" {
		t.Errorf("after undo Text() = %q", p.Text())
	}
}
