package jsonlog

import (
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Exported records are a stream of CBOR maps keyed by the small integers
// in Record's cbor tags. The same record always exports to the same bytes,
// so two exports of one log file can be compared byte for byte.
var (
	recordEncMode cbor.EncMode
	recordDecMode cbor.DecMode
)

// Args decode back into the same map type the JSON reader produces.
var argsMapType = reflect.TypeOf(map[string]any(nil))

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	recordEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("jsonlog: record export mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    argsMapType,
	}
	recordDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("jsonlog: record import mode: %v", err))
	}
}

// EncodeRecord returns the export form of one record.
func EncodeRecord(record Record) ([]byte, error) {
	return recordEncMode.Marshal(record)
}

// DecodeRecord reads one exported record back.
func DecodeRecord(data []byte) (Record, error) {
	var record Record
	if err := recordDecMode.Unmarshal(data, &record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// NewEncoder returns an encoder that appends exported records to w, one
// CBOR item per record. logtool export --format cbor writes through it.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return recordEncMode.NewEncoder(w)
}

// NewDecoder returns a decoder for a stream written by NewEncoder. Decode
// returns io.EOF after the last record.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return recordDecMode.NewDecoder(r)
}
