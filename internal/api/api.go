package api

import (
	"encoding/json"
	"fmt"

	"github.com/xaenox/chat-triage/internal/classifier"
	"github.com/xaenox/chat-triage/internal/models"
)

// ParseError reports input that does not decode into the expected
// message-array shape.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// SerializationError reports a result that could not be encoded back to
// the wire format.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }

// wireMessage uses pointer fields so a missing key can be told apart from
// a zero value; encoding/json does not reject absent fields on its own.
type wireMessage struct {
	Text      *string  `json:"text"`
	Author    *string  `json:"author"`
	Timestamp *float64 `json:"timestamp"`
}

type Service struct {
	classifier classifier.Classifier
}

func NewService(c classifier.Classifier) *Service {
	return &Service{classifier: c}
}

// ClassifyJSON decodes a JSON array of messages, classifies it, and encodes
// the result. Failures are either a *ParseError or a *SerializationError;
// the classification itself cannot fail and no partial result is returned.
func (s *Service) ClassifyJSON(input []byte) ([]byte, error) {
	var wire []wireMessage
	if err := json.Unmarshal(input, &wire); err != nil {
		return nil, &ParseError{Cause: err}
	}

	messages := make([]models.Message, 0, len(wire))
	for i, m := range wire {
		switch {
		case m.Text == nil:
			return nil, &ParseError{Cause: fmt.Errorf("message %d: missing field %q", i, "text")}
		case m.Author == nil:
			return nil, &ParseError{Cause: fmt.Errorf("message %d: missing field %q", i, "author")}
		case m.Timestamp == nil:
			return nil, &ParseError{Cause: fmt.Errorf("message %d: missing field %q", i, "timestamp")}
		}
		messages = append(messages, models.Message{
			Text:      *m.Text,
			Author:    *m.Author,
			Timestamp: *m.Timestamp,
		})
	}

	result := s.classifier.Classify(messages)

	output, err := json.Marshal(result)
	if err != nil {
		return nil, &SerializationError{Cause: err}
	}

	return output, nil
}
