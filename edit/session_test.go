package edit_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/sigedit"
	"github.com/fwojciec/sigedit/edit"
	"github.com/fwojciec/sigedit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, html string) *edit.Session {
	t.Helper()
	s, err := edit.NewSession(newParser(), edit.NewEditor(), html)
	require.NoError(t, err)
	return s
}

func TestSession(t *testing.T) {
	t.Parallel()

	t.Run("starts at version 1", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p>`)
		sig, version := s.Signature()

		assert.Equal(t, 1, version)
		assert.Equal(t, "Jane Smith", sig.Elements[0].Value)
	})

	t.Run("returns parse errors", func(t *testing.T) {
		t.Parallel()

		_, err := edit.NewSession(newParser(), edit.NewEditor(), "no markup")

		assert.Equal(t, sigedit.EPARSE, sigedit.ErrorCode(err))
	})

	t.Run("applies transactions in order", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p>`)

		r1, err := s.Apply(&sigedit.Edits{Fields: map[int]string{1: "Jane Doe"}})
		require.NoError(t, err)
		r2, err := s.Apply(&sigedit.Edits{Fields: map[int]string{1: "Janet Doe"}})
		require.NoError(t, err)

		assert.Equal(t, 2, r1.Version)
		assert.Equal(t, 3, r2.Version)
		assert.Contains(t, r2.Signature.HTMLContent, `<p>Janet Doe</p>`)
	})

	t.Run("empty edit keeps version", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p>`)

		r, err := s.Apply(&sigedit.Edits{})
		require.NoError(t, err)

		assert.Equal(t, 1, r.Version)
	})

	t.Run("reports ignored ids", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p><img src="a.png">`)

		r, err := s.Apply(&sigedit.Edits{
			Fields: map[int]string{1: "Jane Doe", 9: "x", 4: "y"},
			Images: map[int]sigedit.ImageEdit{1: {Embedded: "b.png"}, 2: {Embedded: "c.png"}},
		})
		require.NoError(t, err)

		assert.Equal(t, []int{4, 9}, r.IgnoredFields)
		assert.Equal(t, []int{2}, r.IgnoredImages)
	})

	t.Run("reports edits whose value is missing from the html", func(t *testing.T) {
		t.Parallel()

		stored := &sigedit.Signature{
			HTMLContent: `<p>Jane Smith</p><p>Sales &#38; Marketing</p>`,
			Elements: []sigedit.Element{
				{ID: 1, Type: sigedit.FieldName, Value: "Jane Smith"},
				{ID: 2, Type: sigedit.FieldTitle, Value: "Sales & Marketing"},
			},
		}
		s, err := edit.ResumeSession(newParser(), edit.NewEditor(), stored)
		require.NoError(t, err)

		r, err := s.Apply(&sigedit.Edits{Fields: map[int]string{1: "Jane Doe", 2: "Head of Sales"}})
		require.NoError(t, err)

		assert.Equal(t, []int{2}, r.UnappliedFields)
		assert.Empty(t, r.IgnoredFields)
		assert.Equal(t, "Jane Doe", r.Signature.Elements[0].Value)
		assert.Equal(t, "Sales & Marketing", r.Signature.Elements[1].Value)
	})

	t.Run("rejects stale versions", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p>`)

		_, err := s.ApplyAt(1, &sigedit.Edits{Fields: map[int]string{1: "Jane Doe"}})
		require.NoError(t, err)

		_, err = s.ApplyAt(1, &sigedit.Edits{Fields: map[int]string{1: "Jack Doe"}})
		assert.Equal(t, sigedit.ECONFLICT, sigedit.ErrorCode(err))

		sig, version := s.Signature()
		assert.Equal(t, 2, version)
		assert.Contains(t, sig.HTMLContent, `<p>Jane Doe</p>`)
		assert.NotContains(t, sig.HTMLContent, "Jack")
	})

	t.Run("reset starts a new baseline", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p>`)
		_, err := s.Apply(&sigedit.Edits{Fields: map[int]string{1: "Jane Doe"}})
		require.NoError(t, err)

		sig, err := s.Reset(`<p>John Roe</p>`)
		require.NoError(t, err)

		_, version := s.Signature()
		assert.Equal(t, 1, version)
		assert.Equal(t, "John Roe", sig.Elements[0].Value)
	})

	t.Run("resumes from a stored signature", func(t *testing.T) {
		t.Parallel()

		stored := mustParse(t, `<p>Jane Smith</p>`)
		s, err := edit.ResumeSession(newParser(), edit.NewEditor(), stored)
		require.NoError(t, err)

		r, err := s.Apply(&sigedit.Edits{Fields: map[int]string{1: "Jane Doe"}})
		require.NoError(t, err)

		assert.Equal(t, 2, r.Version)
		assert.Contains(t, r.Signature.HTMLContent, `<p>Jane Doe</p>`)
		assert.Contains(t, stored.HTMLContent, `<p>Jane Smith</p>`)
	})

	t.Run("resume requires a signature", func(t *testing.T) {
		t.Parallel()

		_, err := edit.ResumeSession(newParser(), edit.NewEditor(), nil)

		assert.Equal(t, sigedit.EINVALID, sigedit.ErrorCode(err))
	})

	t.Run("editor errors leave state untouched", func(t *testing.T) {
		t.Parallel()

		editor := &mock.SignatureEditor{
			ApplyFn: func(sig *sigedit.Signature, edits *sigedit.Edits) (*sigedit.Signature, error) {
				return nil, sigedit.Errorf(sigedit.EINTERNAL, "boom")
			},
		}
		s, err := edit.NewSession(newParser(), editor, `<p>Jane Smith</p>`)
		require.NoError(t, err)

		_, err = s.Apply(&sigedit.Edits{Fields: map[int]string{1: "Jane Doe"}})
		require.Error(t, err)

		sig, version := s.Signature()
		assert.Equal(t, 1, version)
		assert.Contains(t, sig.HTMLContent, `<p>Jane Smith</p>`)
	})

	t.Run("serializes concurrent transactions", func(t *testing.T) {
		t.Parallel()

		s := newSession(t, `<p>Jane Smith</p>`)
		const n = 20

		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Apply(&sigedit.Edits{Fields: map[int]string{1: fmt.Sprintf("Person %c", 'A'+i)}})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		sig, version := s.Signature()
		assert.Equal(t, n+1, version)
		assert.Contains(t, sig.HTMLContent, sig.Elements[0].Value)
	})
}
