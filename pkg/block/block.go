// Package block segments a universal file byte buffer into datasets.
//
// A universal file is a sequence of blocks, each bracketed by a sentinel
// line whose trimmed content is "-1" (written with four leading spaces).
// Block bodies are fixed-column ASCII lines, except for binary dataset
// variants whose body switches to a raw byte payload after a fixed number
// of header lines. The scanner walks the buffer with an explicit byte
// cursor so it can bulk-read a payload and reposition itself after the
// closing sentinel, which a forward-only line reader cannot express.
package block

import (
	"bytes"
	"errors"
	"strings"
)

// Sentinel is the block delimiter token as written to a file: the value -1
// right-justified in six columns. A line trimming to "-1" opens or closes a
// block; the padded form is also the pattern that terminates a binary
// payload.
const Sentinel = "    -1"

// sentinelTrimmed is what a delimiter line trims to.
const sentinelTrimmed = "-1"

// payloadHeaderLines is the number of ASCII lines a binary dataset carries
// before its raw payload begins: the identification line plus eleven header
// lines shared with the equivalent text dataset.
const payloadHeaderLines = 12

// payloadTagThreshold distinguishes the two first-line shapes: a plain
// dataset's first line is the type number alone (at most six characters
// after trimming), while a binary variant packs extra fields onto it.
const payloadTagThreshold = 6

// ErrTruncatedPayload indicates a binary payload whose closing sentinel was
// not found before end of buffer. Blocks fully closed earlier in the buffer
// are unaffected; the payload block itself and anything after it are lost.
var ErrTruncatedPayload = errors.New("binary payload not terminated by closing sentinel")

// Block is one delimited dataset: an ordered run of lines, plus a raw byte
// payload for binary dataset variants. Lines is never empty for a block
// emitted by the scanner, and Lines[0] carries the type tag.
//
// Stored lines keep their leading columns (fixed-width extraction depends
// on them) and are stripped of trailing whitespace; full trimming is
// applied only when comparing against the sentinel.
type Block struct {
	Index   int
	Lines   []string
	Payload []byte
}

// FirstLine returns the line carrying the block's type tag.
func (b Block) FirstLine() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0]
}

// HasPayload reports whether the block carries a raw binary payload.
func (b Block) HasPayload() bool {
	return b.Payload != nil
}

// Scanner walks a byte buffer and produces its blocks in source order.
// It is a single-pass state machine; create a new Scanner per buffer.
type Scanner struct {
	data  []byte
	pos   int
	index int

	block Block
	err   error
	done  bool
}

// NewScanner returns a scanner over data. The scanner does not copy the
// buffer; the caller must not mutate it while scanning.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next advances to the next block. It returns false at end of buffer or on
// a structural error; check Err after the loop.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	inBlock := false
	var lines []string
	payloadCandidate := false

	for {
		raw, ok := s.readLine()
		if !ok {
			// End of buffer. An open block with no closing sentinel
			// is dropped, reproducing the source format's behavior.
			s.done = true
			return false
		}

		line := strings.TrimRight(raw, " \t")

		if strings.TrimSpace(line) == sentinelTrimmed {
			if !inBlock {
				inBlock = true
				lines = nil
				payloadCandidate = false
				continue
			}
			// Closing sentinel. Adjacent sentinels delimit an empty
			// block, which is dropped rather than emitted.
			if len(lines) == 0 {
				inBlock = false
				continue
			}
			s.emit(lines, nil)
			return true
		}

		if !inBlock {
			continue
		}

		if len(lines) == 0 && len(strings.TrimSpace(line)) > payloadTagThreshold {
			payloadCandidate = true
		}
		lines = append(lines, line)

		if payloadCandidate && len(lines) == payloadHeaderLines {
			payload, ok := s.readPayload()
			if !ok {
				s.err = ErrTruncatedPayload
				s.done = true
				return false
			}
			s.emit(lines, payload)
			return true
		}
	}
}

// Block returns the block produced by the last successful Next.
func (s *Scanner) Block() Block {
	return s.block
}

// Err returns the structural error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// readLine consumes one line from the cursor, stripping the terminator.
// A final line with no terminator is returned as-is; mid-line truncation is
// end of stream, not an error. The second return is false at end of buffer.
func (s *Scanner) readLine() (string, bool) {
	if s.pos >= len(s.data) {
		return "", false
	}
	end := bytes.IndexByte(s.data[s.pos:], '\n')
	var line []byte
	if end < 0 {
		line = s.data[s.pos:]
		s.pos = len(s.data)
	} else {
		line = s.data[s.pos : s.pos+end]
		s.pos += end + 1
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return string(line), true
}

// readPayload bulk-reads the rest of the buffer, locates the last
// occurrence of the padded sentinel, and takes everything before it as the
// payload. The cursor is repositioned immediately after the sentinel so
// line scanning resumes there. Returns false when no sentinel remains.
func (s *Scanner) readPayload() ([]byte, bool) {
	remainder := s.data[s.pos:]
	at := bytes.LastIndex(remainder, []byte(Sentinel))
	if at < 0 {
		s.pos = len(s.data)
		return nil, false
	}
	payload := remainder[:at]
	s.pos += at + len(Sentinel)
	return payload, true
}

func (s *Scanner) emit(lines []string, payload []byte) {
	s.block = Block{Index: s.index, Lines: lines, Payload: payload}
	s.index++
}

// ScanAll materializes every block in data. On a structural error the
// blocks closed before the failure are returned alongside the error.
func ScanAll(data []byte) ([]Block, error) {
	s := NewScanner(data)
	var blocks []Block
	for s.Next() {
		blocks = append(blocks, s.Block())
	}
	return blocks, s.Err()
}
