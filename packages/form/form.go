package form

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Payload is a request payload. Exactly three kinds implement it: Query,
// Values and *Data.
type Payload interface {
	payload()
}

// Query is a pre-encoded query string such as "a=1&b=2". GET requests append
// it to the URL verbatim, so the value must already be URL-encoded.
type Query string

func (Query) payload() {}

// Field is a single named form value.
type Field struct {
	Name  string
	Value string
}

// Values is an ordered sequence of fields. Dispatching copies it, in order,
// into a fresh Data container.
type Values []Field

func (Values) payload() {}

// Data copies the values, in order, into a fresh multipart container.
func (v Values) Data() *Data {
	d := New()
	for _, f := range v {
		d.Append(f.Name, f.Value)
	}
	return d
}

// Data is a multipart/form-data container. Fields keep their append order
// through encoding.
type Data struct {
	parts []part
}

type part struct {
	name     string
	value    string
	filename string
	reader   io.Reader
	content  []byte
	file     bool
}

func (*Data) payload() {}

// New creates an empty container.
func New() *Data {
	return &Data{}
}

// Append adds a plain field and returns the container for chaining.
func (d *Data) Append(name, value string) *Data {
	d.parts = append(d.parts, part{name: name, value: value})
	return d
}

// AppendFile adds a file part whose content is read from r when the body is
// first encoded. The content is kept afterwards, so the container can be
// encoded more than once.
func (d *Data) AppendFile(name, filename string, r io.Reader) *Data {
	d.parts = append(d.parts, part{name: name, filename: filename, reader: r, file: true})
	return d
}

// Len reports the number of appended parts.
func (d *Data) Len() int {
	return len(d.parts)
}

// Encode writes the container as multipart/form-data and returns the body
// together with the boundary-carrying content type.
func (d *Data) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for i := range d.parts {
		p := &d.parts[i]
		if !p.file {
			if err := writer.WriteField(p.name, p.value); err != nil {
				return nil, "", err
			}
			continue
		}

		fw, err := writer.CreateFormFile(p.name, p.filename)
		if err != nil {
			return nil, "", err
		}
		if p.content == nil {
			if p.reader == nil {
				p.content = []byte{}
			} else {
				content, err := io.ReadAll(p.reader)
				if err != nil {
					return nil, "", err
				}
				p.content = content
			}
		}
		if _, err := fw.Write(p.content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
