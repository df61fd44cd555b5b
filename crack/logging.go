package crack

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// previewBytes bounds how much key or ciphertext material reaches the logs.
const previewBytes = 8

// searchLog accumulates the structured fields of one search run. Plaintext
// is never attached.
type searchLog struct {
	op     string
	fields logrus.Fields
}

func newSearchLog(op string) *searchLog {
	return &searchLog{
		op: op,
		fields: logrus.Fields{
			"package": "crack",
			"search":  op,
		},
	}
}

func (l *searchLog) with(key string, value interface{}) *searchLog {
	l.fields[key] = value
	return l
}

// withFields merges every set in order; later sets overwrite earlier keys.
func (l *searchLog) withFields(sets ...logrus.Fields) *searchLog {
	for _, set := range sets {
		for k, v := range set {
			l.fields[k] = v
		}
	}
	return l
}

// failed records err and the stage of the search it came from.
func (l *searchLog) failed(err error, stage string) *searchLog {
	l.fields["error"] = err.Error()
	l.fields["stage"] = stage
	return l
}

func (l *searchLog) entry() *logrus.Entry {
	return logrus.WithFields(l.fields)
}

// begin logs the start of the search at debug level.
func (l *searchLog) begin(what string) {
	l.entry().Debugf("%s: start %s", l.op, what)
}

// PreviewFields describes sensitive bytes by size and a hex preview of at
// most the first eight bytes.
func PreviewFields(name string, data []byte) logrus.Fields {
	preview := "nil"
	if n := len(data); n > 0 {
		if n > previewBytes {
			preview = fmt.Sprintf("%x...", data[:previewBytes])
		} else {
			preview = fmt.Sprintf("%x", data)
		}
	}
	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}

// CandidateFields describes a candidate for logging. The plaintext itself
// is left out.
func CandidateFields(c Candidate) logrus.Fields {
	return logrus.Fields{
		"key":            fmt.Sprintf("%#02x", c.Key),
		"score":          c.Score,
		"valid":          c.Valid,
		"plaintext_size": len(c.Plaintext),
	}
}

// KeysizeFields describes a keysize estimate for logging.
func KeysizeFields(r KeysizeResult) logrus.Fields {
	return logrus.Fields{
		"keysize":  r.Keysize,
		"distance": r.Distance,
	}
}
