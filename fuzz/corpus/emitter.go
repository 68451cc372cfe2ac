package corpus

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/beacon-fuzz-corpus/crypto/hash"
	"github.com/sirupsen/logrus"
)

// corpusNameLength is the number of hash bytes used to name corpus files.
const corpusNameLength = 8

// Emitter writes accepted operations as `<Label> <hex>` lines and, when a
// corpus directory is set, as raw SSZ files grouped by kind.
type Emitter struct {
	w         io.Writer
	corpusDir string
}

// NewEmitter returns an emitter writing lines to w. An empty corpusDir
// disables file output.
func NewEmitter(w io.Writer, corpusDir string) *Emitter {
	return &Emitter{w: w, corpusDir: corpusDir}
}

// Emit encodes op and writes it out.
func (e *Emitter) Emit(op *Operation) error {
	enc, err := op.Encode()
	if err != nil {
		return errors.Wrapf(err, "could not encode %s", op.Kind)
	}
	fields := logrus.Fields{
		"kind": op.Kind.String(),
		"size": humanize.Bytes(uint64(len(enc))),
	}
	// No line is written unless the corpus file is.
	if e.corpusDir != "" {
		path, err := e.writeFile(op.Kind, enc)
		if err != nil {
			return err
		}
		fields["path"] = path
	}
	if _, err := fmt.Fprintf(e.w, "%s %s\n", op.Kind, hex.EncodeToString(enc)); err != nil {
		return errors.Wrap(err, "could not write corpus line")
	}
	log.WithFields(fields).Debug("Emitted corpus entry")
	return nil
}

// CorpusPath returns the file an encoding of kind k is written to below dir.
func CorpusPath(dir string, k Kind, enc []byte) string {
	h := hash.Hash(enc)
	return filepath.Join(dir, k.String(), hex.EncodeToString(h[:corpusNameLength]))
}

func (e *Emitter) writeFile(k Kind, enc []byte) (string, error) {
	path := CorpusPath(e.corpusDir, k, enc)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", errors.Wrap(err, "could not create corpus directory")
	}
	if err := os.WriteFile(path, enc, 0600); err != nil {
		return "", errors.Wrap(err, "could not write corpus file")
	}
	return path, nil
}
