// Package store provides tests for tasks-file persistence and recovery.
package store

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"

	"github.com/nibzard/tasker/internal/task"
)

func testStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.New(&buf)
	path := filepath.Join(t.TempDir(), "tasks.json")
	return New(path, WithLogger(logger)), &buf
}

func TestLoadMissingFileCreatesEmptyArray(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	list, err := s.Load()
	is.NoErr(err)
	is.Equal(len(list), 0)

	data, err := os.ReadFile(s.Path())
	is.NoErr(err)
	is.Equal(strings.TrimSpace(string(data)), "[]")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	in := task.List{
		{ID: 1, Text: "Buy milk", Completed: false, CreatedAt: "2026-08-25T09:00:00Z"},
		{ID: 2, Text: "Müsli kaufen ✓", Completed: true, CreatedAt: "2026-08-25T10:30:00"},
		{ID: 5, Text: "<milk & eggs>", Completed: false, CreatedAt: ""},
	}
	is.NoErr(s.Save(in))

	out, err := s.Load()
	is.NoErr(err)
	is.Equal(out, in)

	// Saving what was loaded reproduces the same document.
	is.NoErr(s.Save(out))
	again, err := s.Load()
	is.NoErr(err)
	is.Equal(again, in)
}

func TestSaveWritesHumanReadableDocument(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	list := task.List{{ID: 1, Text: "Buy milk", Completed: false, CreatedAt: "2026-08-25T09:00:00Z"}}
	is.NoErr(s.Save(list))

	data, err := os.ReadFile(s.Path())
	is.NoErr(err)

	want := `[
  {
    "id": 1,
    "text": "Buy milk",
    "completed": false,
    "created_at": "2026-08-25T09:00:00Z"
  }
]
`
	is.Equal(string(data), want)
}

func TestSaveKeepsNonASCIIVerbatim(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	list := task.List{{ID: 1, Text: "Müsli kaufen ✓ <&>", CreatedAt: "2026-08-25"}}
	is.NoErr(s.Save(list))

	data, err := os.ReadFile(s.Path())
	is.NoErr(err)
	is.True(strings.Contains(string(data), "Müsli kaufen ✓ <&>"))
	is.True(!strings.Contains(string(data), `\u`))
}

func TestSaveNilListWritesEmptyArray(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	is.NoErr(s.Save(nil))

	data, err := os.ReadFile(s.Path())
	is.NoErr(err)
	is.Equal(strings.TrimSpace(string(data)), "[]")
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	is.NoErr(s.Save(task.List{{ID: 1, Text: "x"}}))

	_, err := os.Stat(s.Path() + ".tmp")
	is.True(os.IsNotExist(err))
}

func TestLoadCorruptedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid syntax", "{not json"},
		{"quoted string", `"not an array"`},
		{"object", `{"id": 1}`},
		{"null", "null"},
		{"number", "42"},
		{"empty file", ""},
		{"array of numbers", "[1, 2, 3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			s, logBuf := testStore(t)
			is.NoErr(os.WriteFile(s.Path(), []byte(tt.content), 0644))

			list, err := s.Load()
			is.NoErr(err) // corruption must not surface as an error
			is.Equal(len(list), 0)

			data, err := os.ReadFile(s.Path())
			is.NoErr(err)
			is.Equal(strings.TrimSpace(string(data)), "[]")

			is.True(strings.Contains(logBuf.String(), "corrupted tasks file"))
		})
	}
}

func TestLoadValidEmptyArray(t *testing.T) {
	is := is.New(t)
	s, logBuf := testStore(t)
	is.NoErr(os.WriteFile(s.Path(), []byte("[]"), 0644))

	list, err := s.Load()
	is.NoErr(err)
	is.Equal(len(list), 0)
	is.Equal(logBuf.String(), "") // no diagnostic for a healthy file
}

func TestDecode(t *testing.T) {
	t.Run("null is not an array", func(t *testing.T) {
		is := is.New(t)
		_, err := decode([]byte("null"))
		is.True(err != nil)
		is.True(strings.Contains(err.Error(), "not an array"))
	})

	t.Run("empty array", func(t *testing.T) {
		is := is.New(t)
		list, err := decode([]byte("[]"))
		is.NoErr(err)
		is.True(list != nil)
		is.Equal(len(list), 0)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		is := is.New(t)
		list, err := decode([]byte(`[{"id": 1, "text": "x", "completed": false, "created_at": "", "extra": true}]`))
		is.NoErr(err)
		is.Equal(len(list), 1)
		is.Equal(list[0].ID, 1)
	})
}

func TestReset(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	is.NoErr(s.Save(task.List{{ID: 1, Text: "x"}}))
	is.NoErr(s.Reset())

	list, err := s.Load()
	is.NoErr(err)
	is.Equal(len(list), 0)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantValid  bool
		wantInErr  string
	}{
		{
			name:      "valid file",
			content:   `[{"id": 1, "text": "Buy milk", "completed": false, "created_at": "2026-08-25T09:00:00Z"}]`,
			wantValid: true,
		},
		{
			name:      "empty array",
			content:   "[]",
			wantValid: true,
		},
		{
			name:      "not valid JSON",
			content:   "{oops",
			wantValid: false,
			wantInErr: "not valid JSON",
		},
		{
			name:      "top level not an array",
			content:   `{"id": 1}`,
			wantValid: false,
		},
		{
			name:      "missing required field",
			content:   `[{"id": 1, "text": "x", "completed": false}]`,
			wantValid: false,
			wantInErr: "created_at",
		},
		{
			name:      "wrong field type",
			content:   `[{"id": 1, "text": "x", "completed": "yes", "created_at": ""}]`,
			wantValid: false,
		},
		{
			name:      "non-positive id",
			content:   `[{"id": 0, "text": "x", "completed": false, "created_at": ""}]`,
			wantValid: false,
		},
		{
			name:      "duplicate ids",
			content:   `[{"id": 1, "text": "a", "completed": false, "created_at": ""}, {"id": 1, "text": "b", "completed": false, "created_at": ""}]`,
			wantValid: false,
			wantInErr: "duplicate id 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			s, _ := testStore(t)
			is.NoErr(os.WriteFile(s.Path(), []byte(tt.content), 0644))

			result := s.Validate()
			is.Equal(result.Valid, tt.wantValid)
			if tt.wantInErr != "" {
				found := false
				for _, err := range result.Errors {
					if strings.Contains(err.Error(), tt.wantInErr) {
						found = true
					}
				}
				if !found {
					t.Errorf("no error mentions %q in %v", tt.wantInErr, result.Errors)
				}
			}

			// Validate never rewrites the file.
			data, err := os.ReadFile(s.Path())
			is.NoErr(err)
			is.Equal(string(data), tt.content)
		})
	}
}

func TestValidateMissingFileIsWarning(t *testing.T) {
	is := is.New(t)
	s, _ := testStore(t)

	result := s.Validate()
	is.True(result.Valid)
	is.Equal(len(result.Errors), 0)
	is.Equal(len(result.Warnings), 1)
	is.True(strings.Contains(result.Warnings[0], "not found"))
}

func TestValidationErrorFormat(t *testing.T) {
	is := is.New(t)

	withPath := &ValidationError{Path: "[0].id", Err: os.ErrInvalid}
	is.True(strings.HasPrefix(withPath.Error(), "[0].id: "))

	bare := &ValidationError{Err: os.ErrInvalid}
	is.Equal(bare.Error(), os.ErrInvalid.Error())
	is.Equal(withPath.Unwrap(), os.ErrInvalid)
}

func TestPointerToPath(t *testing.T) {
	tests := []struct {
		ptr  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"/0", "[0]"},
		{"/0/id", "[0].id"},
		{"#/2/created_at", "[2].created_at"},
		{"/a/b", "a.b"},
	}

	for _, tt := range tests {
		if got := pointerToPath(tt.ptr); got != tt.want {
			t.Errorf("pointerToPath(%q) = %q, want %q", tt.ptr, got, tt.want)
		}
	}
}
