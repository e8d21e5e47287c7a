package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrPermission", ErrPermission, "permission denied"},
		{"ErrIO", ErrIO, "I/O error"},
		{"ErrInvalid", ErrInvalid, "invalid"},
		{"ErrCanceled", ErrCanceled, "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("expected message %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestHistoryError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := &HistoryError{Op: "clean", Path: "/home/u/.local/share/founder/file_history", Err: ErrNotFound}
		want := `history clean "/home/u/.local/share/founder/file_history": not found`
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})

	t.Run("without path", func(t *testing.T) {
		err := &HistoryError{Op: "append", Err: ErrPermission}
		if err.Error() != "history append: permission denied" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("unwraps", func(t *testing.T) {
		err := &HistoryError{Op: "load", Err: ErrNotFound}
		if !errors.Is(err, ErrNotFound) {
			t.Error("expected errors.Is to match ErrNotFound through HistoryError")
		}
	})
}

func TestFromOS(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if FromOS(nil) != nil {
			t.Error("expected nil for nil input")
		}
	})

	t.Run("not exist", func(t *testing.T) {
		_, osErr := os.Open("/nonexistent/founder/history")
		err := FromOS(osErr)
		if !IsNotFound(err) {
			t.Errorf("expected IsNotFound, got %v", err)
		}
		// The original OS error must stay reachable.
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("expected fs.ErrNotExist to remain in the chain")
		}
	})

	t.Run("permission", func(t *testing.T) {
		err := FromOS(&fs.PathError{Op: "open", Path: "/etc/shadow", Err: fs.ErrPermission})
		if !IsPermission(err) {
			t.Errorf("expected IsPermission, got %v", err)
		}
	})

	t.Run("other errors map to IO", func(t *testing.T) {
		err := FromOS(fmt.Errorf("device gone"))
		if !IsIO(err) {
			t.Errorf("expected IsIO, got %v", err)
		}
	})
}

func TestWrap(t *testing.T) {
	base := ErrNotFound
	wrapped := Wrap(base, "loadHistory")

	if wrapped.Error() != "loadHistory: not found" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("expected errors.Is to work through Wrap")
	}
}

func TestAsHistoryError(t *testing.T) {
	he := &HistoryError{Op: "prune", Path: "/tmp/h", Err: ErrIO}
	wrapped := Wrap(he, "run")

	got, ok := AsHistoryError(wrapped)
	if !ok {
		t.Fatal("expected AsHistoryError to succeed")
	}
	if got.Op != "prune" {
		t.Errorf("expected op 'prune', got %q", got.Op)
	}

	if _, ok := AsHistoryError(ErrIO); ok {
		t.Error("expected AsHistoryError to fail for bare sentinel")
	}
}
