package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/yndnr/teeline-go/internal/client/cache"
	"github.com/yndnr/teeline-go/internal/core/domain"
	"github.com/yndnr/teeline-go/internal/core/validation"
)

// Response is a decoded service envelope.
type Response struct {
	// Body is the parsed envelope. Numbers are json.Number.
	Body map[string]any
	// Raw is the body exactly as received.
	Raw []byte
	// Status is the envelope's "error" field.
	Status domain.Status
	// Message is the envelope's "message" field, if any.
	Message string
}

// ParseResponse checks raw with validation.ValidateJSON, then decodes the
// envelope. The returned *ProtocolError has no method or path set.
func ParseResponse(raw []byte) (*Response, error) {
	if reason := validation.ValidateJSON(string(raw)); reason.Failed() {
		return nil, &ProtocolError{Kind: KindInvalidJSON, Reason: reason}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, &ProtocolError{Kind: KindDecode, Err: err}
	}

	num, ok := body["error"].(json.Number)
	if !ok {
		return nil, &ProtocolError{Kind: KindDecode, Err: fmt.Errorf("missing integer \"error\" field")}
	}
	status, err := num.Int64()
	if err != nil {
		return nil, &ProtocolError{Kind: KindDecode, Err: fmt.Errorf("\"error\" field: %w", err)}
	}

	resp := &Response{
		Body:   body,
		Raw:    raw,
		Status: domain.Status(status),
	}
	if msg, ok := body["message"].(string); ok {
		resp.Message = msg
	}
	return resp, nil
}

// String returns the string stored under key.
func (r *Response) String(key string) (string, bool) {
	s, ok := r.Body[key].(string)
	return s, ok
}

// Decode unmarshals the value stored under key into v.
func (r *Response) Decode(key string, v any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Raw, &fields); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("decode %q: %w", key, ErrFieldMissing)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

// DecodeBody unmarshals the whole envelope into v. Fields of v that the
// envelope lacks keep their zero values.
func (r *Response) DecodeBody(v any) error {
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	return nil
}

// responseCodec stores responses as their raw body. Decoding parses the
// body again, so a cached copy equals the original.
type responseCodec struct{}

func (responseCodec) Encode(r *Response) ([]byte, error) {
	return r.Raw, nil
}

func (responseCodec) Decode(data []byte) (*Response, error) {
	return ParseResponse(data)
}

// ResponseCodec returns the codec used by byte-oriented cache backends.
func ResponseCodec() cache.Codec[*Response] {
	return responseCodec{}
}
