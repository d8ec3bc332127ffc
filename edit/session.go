package edit

import (
	"sort"
	"sync"

	"github.com/fwojciec/sigedit"
)

// Session holds the current version of one signature and serializes edit
// transactions against it, so that each transaction starts from the result
// of the previous one.
type Session struct {
	mu      sync.Mutex
	parser  sigedit.SignatureParser
	editor  sigedit.SignatureEditor
	current *sigedit.Signature
	version int
}

// Result is the outcome of one transaction.
type Result struct {
	Signature *sigedit.Signature
	Version   int

	// IgnoredFields and IgnoredImages list edit IDs that matched nothing.
	IgnoredFields []int
	IgnoredImages []int

	// UnappliedFields and UnappliedImages list known IDs whose current
	// value could not be found in the HTML, so their edit was skipped.
	UnappliedFields []int
	UnappliedImages []int
}

// NewSession parses html and starts a session at version 1.
func NewSession(parser sigedit.SignatureParser, editor sigedit.SignatureEditor, html string) (*Session, error) {
	s := &Session{parser: parser, editor: editor}
	if _, err := s.Reset(html); err != nil {
		return nil, err
	}
	return s, nil
}

// ResumeSession starts a session at version 1 from an already parsed
// signature, such as one loaded from storage.
func ResumeSession(parser sigedit.SignatureParser, editor sigedit.SignatureEditor, sig *sigedit.Signature) (*Session, error) {
	if sig == nil {
		return nil, sigedit.Errorf(sigedit.EINVALID, "signature required")
	}
	return &Session{parser: parser, editor: editor, current: sig.Clone(), version: 1}, nil
}

// Signature returns the current signature and its version.
func (s *Session) Signature() (*sigedit.Signature, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone(), s.version
}

// Reset discards the current signature and parses html as a new baseline.
func (s *Session) Reset(html string) (*sigedit.Signature, error) {
	sig, err := s.parser.Parse(html)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = sig
	s.version = 1
	return sig.Clone(), nil
}

// Apply runs edits against the current signature.
func (s *Session) Apply(edits *sigedit.Edits) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(edits)
}

// ApplyAt runs edits only if the session is still at version. It returns
// ECONFLICT when another transaction has been applied in the meantime.
func (s *Session) ApplyAt(version int, edits *sigedit.Edits) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version != s.version {
		return nil, sigedit.Errorf(sigedit.ECONFLICT, "signature is at version %d, edit was based on version %d", s.version, version)
	}
	return s.apply(edits)
}

func (s *Session) apply(edits *sigedit.Edits) (*Result, error) {
	sig, err := s.editor.Apply(s.current, edits)
	if err != nil {
		return nil, err
	}

	result := &Result{Signature: sig.Clone()}
	if edits != nil {
		result.IgnoredFields = unknownFields(s.current, edits.Fields)
		result.IgnoredImages = unknownImages(s.current, edits.Images)
		result.UnappliedFields, result.UnappliedImages = Unapplied(s.current, sig, edits)
	}

	if !edits.IsEmpty() {
		s.version++
	}
	s.current = sig
	result.Version = s.version
	return result, nil
}

func unknownFields(sig *sigedit.Signature, fields map[int]string) []int {
	var ids []int
	for id := range fields {
		if _, ok := sig.FindElement(id); !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

func unknownImages(sig *sigedit.Signature, images map[int]sigedit.ImageEdit) []int {
	var ids []int
	for id := range images {
		if _, ok := sig.FindImage(id); !ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
