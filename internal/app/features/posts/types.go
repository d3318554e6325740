// internal/app/features/posts/types.go
package posts

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dalemusser/posthub/internal/app/store/docstore"
	"go.uber.org/zap/zapcore"
)

// postInput is the JSON body accepted by create and update. Pointer fields
// tell a missing field apart from an empty one.
type postInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// updateEcho is the update response: the id plus exactly the fields the
// client sent, not a re-read of the stored record.
type updateEcho struct {
	ID      string  `json:"id"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// decodeInput reads the request body. An empty body is an empty input.
func decodeInput(r *http.Request) (postInput, error) {
	var in postInput
	if r.Body == nil {
		return in, nil
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return postInput{}, err
	}
	return in, nil
}

// bodyStatus maps a body read failure to a response status. A body cut off
// by the request size limit is 413; anything else, malformed JSON included,
// is 500.
func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}

// fields returns the partial update for the fields that were sent.
func (in postInput) fields() docstore.Fields {
	f := docstore.Fields{}
	if in.Title != nil {
		f["title"] = *in.Title
	}
	if in.Content != nil {
		f["content"] = *in.Content
	}
	return f
}

func (in postInput) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if in.Title != nil {
		enc.AddString("title", *in.Title)
	}
	if in.Content != nil {
		enc.AddString("content", *in.Content)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
