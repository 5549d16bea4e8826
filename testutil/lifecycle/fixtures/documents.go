package fixtures

import (
	"fmt"
	"time"

	"github.com/AntonStoeckl/document-lifecycle-go/lifecycle"
)

// LocalizedPage is a document with one created/changed pair per locale.
type LocalizedPage struct {
	Title     string
	Locale    string
	CreatedAt *time.Time
	ChangedAt *time.Time
}

// BuildLocalizedPage creates a LocalizedPage without timestamps.
func BuildLocalizedPage(title string, locale string) *LocalizedPage {
	return &LocalizedPage{Title: title, Locale: locale}
}

// Created returns the creation timestamp or nil.
func (p *LocalizedPage) Created() *time.Time {
	return p.CreatedAt
}

// Changed returns the last change timestamp or nil.
func (p *LocalizedPage) Changed() *time.Time {
	return p.ChangedAt
}

// Accessor returns a lifecycle.DocumentAccessor writing into this page.
func (p *LocalizedPage) Accessor() lifecycle.DocumentAccessor {
	return lifecycle.AccessorFunc(func(field string, value any) error {
		return setTimestampField(field, value, &p.CreatedAt, &p.ChangedAt)
	})
}

// Snippet is a document whose created/changed pair is shared by all locales.
type Snippet struct {
	Name      string
	CreatedAt *time.Time
	ChangedAt *time.Time
}

// BuildSnippet creates a Snippet without timestamps.
func BuildSnippet(name string) *Snippet {
	return &Snippet{Name: name}
}

// Created returns the creation timestamp or nil.
func (s *Snippet) Created() *time.Time {
	return s.CreatedAt
}

// Changed returns the last change timestamp or nil.
func (s *Snippet) Changed() *time.Time {
	return s.ChangedAt
}

// GlobalTimestamps marks the Snippet as having locale independent timestamps.
func (s *Snippet) GlobalTimestamps() {}

// Accessor returns a lifecycle.DocumentAccessor writing into this snippet.
func (s *Snippet) Accessor() lifecycle.DocumentAccessor {
	return lifecycle.AccessorFunc(func(field string, value any) error {
		return setTimestampField(field, value, &s.CreatedAt, &s.ChangedAt)
	})
}

// Media is a document without any timestamp behavior.
type Media struct {
	FileName string
	Fields   map[string]any
}

// BuildMedia creates a Media document.
func BuildMedia(fileName string) *Media {
	return &Media{FileName: fileName, Fields: make(map[string]any)}
}

// Accessor returns a lifecycle.DocumentAccessor writing into the Fields map.
func (m *Media) Accessor() lifecycle.DocumentAccessor {
	return lifecycle.AccessorFunc(func(field string, value any) error {
		m.Fields[field] = value
		return nil
	})
}

// TimeP returns a pointer to a copy of t.
func TimeP(t time.Time) *time.Time {
	return &t
}

func setTimestampField(field string, value any, created **time.Time, changed **time.Time) error {
	var target **time.Time

	switch field {
	case lifecycle.FieldCreated:
		target = created
	case lifecycle.FieldChanged:
		target = changed
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	switch v := value.(type) {
	case nil:
		*target = nil
	case *time.Time:
		*target = v
	case time.Time:
		*target = &v
	default:
		return fmt.Errorf("unsupported value of type %T for field %q", value, field)
	}

	return nil
}
