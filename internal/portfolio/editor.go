package portfolio

import (
	"errors"
	"fmt"
)

// Positional editing over the nested sequences inside Content (education,
// skills, projects, experience, certificates, offeredServices,
// consultationTopics, socialLinks). Entries have no server-assigned identity;
// the admin panel addresses them by index, so edits are array splices that
// keep the relative order and identity of untouched entries.

var ErrIndexOutOfRange = errors.New("entry index out of range")

func sequence(c Content, field string) ([]any, error) {
	v, ok := c[field]
	if !ok || v == nil {
		return nil, fmt.Errorf("content has no sequence %q", field)
	}
	seq, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("content field %q is not a sequence", field)
	}
	return seq, nil
}

// UpdateEntry sets one field of the entry at index within the named sequence.
func UpdateEntry(c Content, field string, index int, subField string, value any) error {
	seq, err := sequence(c, field)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(seq) {
		return ErrIndexOutOfRange
	}
	entry, ok := seq[index].(map[string]any)
	if !ok {
		return fmt.Errorf("entry %d of %q is not a record", index, field)
	}
	entry[subField] = value
	return nil
}

// RemoveEntry splices out the entry at index, preserving the order of the
// remaining entries.
func RemoveEntry(c Content, field string, index int) error {
	seq, err := sequence(c, field)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(seq) {
		return ErrIndexOutOfRange
	}
	c[field] = append(seq[:index], seq[index+1:]...)
	return nil
}

// AppendEntry adds a new entry to the end of the named sequence, creating the
// sequence when it does not exist yet.
func AppendEntry(c Content, field string, entry map[string]any) error {
	v, ok := c[field]
	if !ok || v == nil {
		c[field] = []any{any(entry)}
		return nil
	}
	seq, ok := v.([]any)
	if !ok {
		return fmt.Errorf("content field %q is not a sequence", field)
	}
	c[field] = append(seq, any(entry))
	return nil
}
