package jsonlog

import (
	"bytes"
	"io"
	"reflect"
	"testing"
)

func TestRecordCBORRoundTrip(t *testing.T) {
	original := Record{
		Source:  "sync",
		Time:    "2024-03-07 14:03:59",
		Level:   "ERROR",
		Message: "upload failed",
		Args:    map[string]any{"file_id": "42", "peer": "a"},
	}

	data, err := EncodeRecord(original)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}

	decoded, err := DecodeRecord(data)
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestRecordCBORIsDeterministic(t *testing.T) {
	record := Record{
		Source: "sync",
		Time:   "2024-03-07 14:03:59",
		Level:  "WARNING",
		Error:  "boom",
		Args:   map[string]any{"z": "1", "a": "2", "m": "3"},
	}

	first, err := EncodeRecord(record)
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := EncodeRecord(record)
		if err != nil {
			t.Fatalf("EncodeRecord failed: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("encoding is not deterministic")
		}
	}
}

func TestRecordCBOROmitsEmptyFields(t *testing.T) {
	withMessage, err := EncodeRecord(Record{Source: "s", Time: "t", Level: "INFO", Message: "m"})
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	withArgs, err := EncodeRecord(Record{Source: "s", Time: "t", Level: "INFO", Message: "m", Args: map[string]any{"k": "v"}})
	if err != nil {
		t.Fatalf("EncodeRecord failed: %v", err)
	}
	if len(withArgs) <= len(withMessage) {
		t.Errorf("args should add bytes: %d <= %d", len(withArgs), len(withMessage))
	}
}

func TestRecordCBORStream(t *testing.T) {
	records := []Record{
		{Source: "a", Time: "2024-03-07 00:00:00", Level: "INFO", Message: "one"},
		{Source: "b", Time: "2024-03-07 00:00:01", Level: "CRASH", Error: "two"},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	var got []Record
	for {
		var r Record
		err := dec.Decode(&r)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		got = append(got, r)
	}

	if !reflect.DeepEqual(got, records) {
		t.Errorf("stream mismatch:\n got %+v\nwant %+v", got, records)
	}
}
