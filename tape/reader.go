package tape

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// Line patterns, in the transition order of the state machine. The
// regexps are anchored: a directive is only recognized at the start of
// a line.
var (
	headerPattern  = regexp.MustCompile(`^\*\*BEGIN,(\d{4}):([A-Z]):([^:]+):(\d+),([^,]+),([^,]*),([^,]*),(.*)$`)
	formPattern    = regexp.MustCompile(`^\\@(\d+)\s*\\\s*(.+)$`)
	sectionPattern = regexp.MustCompile(`^\\:(\d+)`)
	entryPattern   = regexp.MustCompile(`^\\&(\d+)`)
	fieldPattern   = regexp.MustCompile(`^\.(\d+M?)\s+(.*)$`)
)

func parseHeader(line string) (Header, bool) {
	m := headerPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Header{}, false
	}

	year, _ := strconv.Atoi(m[1])

	return Header{
		Year:     year,
		Kind:     ReturnKind(m[2]),
		ClientID: m[3],
		Sequence: m[4],
		IDNumber: m[5],
		Office:   m[6],
		Group:    m[7],
		Location: strings.TrimSpace(m[8]),
	}, true
}

// Stream is a lazy, forward-only sequence of Documents produced by a
// single pass over the input. It holds at most one document of state
// between calls and is not restartable; to start over, call Parse
// again. Abandoning a Stream at any point leaks nothing.
type Stream struct {
	lines []string
	pos   int
	done  bool

	doc     *Document
	form    *Form
	entry   *Entry
	section int
}

// Parse prepares a Stream over already-decoded export text. No input
// is consumed until the first Next call.
func Parse(text string) *Stream {
	return &Stream{lines: strings.Split(text, "\n"), section: 1}
}

// ParseFile decodes path per the candidate encoding order and parses
// it. The file is fully decoded before parsing begins; the returned
// Stream never holds the file open.
func ParseFile(path string) (*Stream, error) {
	text, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(text), nil
}

// First parses text and returns its first document, reading no
// further than the second header line. Convenience for single-client
// exports.
func First(text string) (*Document, bool) {
	return Parse(text).Next()
}

// FirstFile decodes and parses a file, returning its first document.
// The error is ErrNotExport when the file decodes but contains no
// document header.
func FirstFile(path string) (*Document, error) {
	stream, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	doc, ok := stream.Next()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotExport, path)
	}

	return doc, nil
}

// Next consumes input lines until the next header line or end of
// input and returns the document completed by that boundary. ok is
// false once the input is exhausted.
func (s *Stream) Next() (*Document, bool) {
	if s.done {
		return nil, false
	}

	for ; s.pos < len(s.lines); s.pos++ {
		line := strings.TrimRight(s.lines[s.pos], "\r")

		if header, ok := parseHeader(line); ok {
			finished := s.flushDocument()
			s.doc = &Document{Header: header, Forms: make(map[string]*Form)}
			if finished != nil {
				s.pos++

				return finished, true
			}

			continue
		}

		if s.doc == nil {
			continue
		}

		if m := formPattern.FindStringSubmatch(line); m != nil {
			s.flushEntry()

			code := m[1]
			form := s.doc.Forms[code]
			if form == nil {
				form = &Form{Code: code, Name: strings.TrimSpace(m[2])}
				s.doc.Forms[code] = form
			}

			s.form = form
			s.section = 1

			continue
		}

		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			s.section, _ = strconv.Atoi(m[1])

			continue
		}

		if m := entryPattern.FindStringSubmatch(line); m != nil {
			s.flushEntry()

			index, _ := strconv.Atoi(m[1])
			s.entry = &Entry{Section: s.section, Index: index, Fields: make(map[string]Field)}

			continue
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil && s.entry != nil {
			slot := m[1]
			s.entry.insert(Field{
				Slot: slot,
				Text: strings.TrimSpace(m[2]),
				Memo: strings.HasSuffix(slot, "M"),
			})
		}
		// Anything else is ignored: the grammar recovers by skipping.
	}

	s.done = true

	if finished := s.flushDocument(); finished != nil {
		return finished, true
	}

	return nil, false
}

// All returns a range-over-func view of the remaining documents.
// Breaking out of the range is safe at any point.
func (s *Stream) All() iter.Seq[*Document] {
	return func(yield func(*Document) bool) {
		for doc, ok := s.Next(); ok; doc, ok = s.Next() {
			if !yield(doc) {
				return
			}
		}
	}
}

// flushEntry appends the open entry to the open form. An entry opened
// while no form is open is dropped.
func (s *Stream) flushEntry() {
	if s.entry != nil && s.form != nil {
		s.form.Entries = append(s.form.Entries, s.entry)
	}

	s.entry = nil
}

// flushDocument closes the open document and returns it, clearing all
// cursors.
func (s *Stream) flushDocument() *Document {
	s.flushEntry()

	doc := s.doc
	s.doc = nil
	s.form = nil
	s.section = 1

	return doc
}
