package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/widget"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func newTestWidgetService(t *testing.T, cb clipboard.Writer) *WidgetService {
	t.Helper()
	w, err := widget.New(generator.New(nil), cb)
	if err != nil {
		t.Fatalf("widget.New() unexpected error: %v", err)
	}
	return NewWidgetService(w)
}

func TestWidgetUpdate_ClampsLength(t *testing.T) {
	svc := newTestWidgetService(t, nil)

	st, err := svc.Update(model.WidgetPatchRequest{Length: intPtr(500), Numbers: boolPtr(true)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Length != generator.MaxLength {
		t.Errorf("expected length %d, got %d", generator.MaxLength, st.Length)
	}
	if len(st.Password) != generator.MaxLength {
		t.Errorf("expected password length %d, got %d", generator.MaxLength, len(st.Password))
	}
	if !st.Numbers || st.Symbols {
		t.Errorf("unexpected toggles: numbers=%v symbols=%v", st.Numbers, st.Symbols)
	}
	if st.Strength != generator.Medium {
		t.Errorf("expected Medium, got %v", st.Strength)
	}
}

func TestWidgetUpdate_PartialKeepsOtherFields(t *testing.T) {
	svc := newTestWidgetService(t, nil)
	if _, err := svc.Update(model.WidgetPatchRequest{Symbols: boolPtr(true)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st, err := svc.Update(model.WidgetPatchRequest{Length: intPtr(30)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !st.Symbols {
		t.Error("expected symbols to stay enabled")
	}
	if st.Length != 30 {
		t.Errorf("expected length 30, got %d", st.Length)
	}
}

func TestWidgetRegenerate(t *testing.T) {
	svc := newTestWidgetService(t, nil)
	before := svc.State()

	st, err := svc.Regenerate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Length != before.Length || len(st.Password) != before.Length {
		t.Errorf("regenerate changed length: %+v -> %+v", before, st)
	}
}

func TestWidgetCopy_Outcomes(t *testing.T) {
	ok := newTestWidgetService(t, clipboard.WriterFunc(func(string) error { return nil }))
	resp := ok.Copy(context.Background())
	if resp.Outcome != "copied" || resp.Error != "" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Message != clipboard.CopiedMessage {
		t.Errorf("unexpected message %q", resp.Message)
	}

	failing := newTestWidgetService(t, clipboard.WriterFunc(func(string) error { return errors.New("no display") }))
	resp = failing.Copy(context.Background())
	if resp.Outcome != "failed" || resp.Error == "" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Message != clipboard.FailedMessage {
		t.Errorf("unexpected message %q", resp.Message)
	}
}
