package passenger

import (
	"fmt"
	"sort"
	"strconv"
)

// Field names accepted by FormState.Update, matching the Details json tags.
const (
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldBirthDate      = "birth_date"
	FieldGender         = "gender"
	FieldDocumentType   = "document_type"
	FieldDocumentNumber = "document_number"
	FieldNationality    = "nationality"
	FieldSaveInfo       = "save_info"
)

// Details is the collected personal data of one traveler. Everything but
// SaveInfo is required before the booking can be submitted.
type Details struct {
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	BirthDate      string `json:"birth_date" validate:"required"`
	Gender         string `json:"gender" validate:"required,oneof=M F"`
	DocumentType   string `json:"document_type" validate:"required,oneof=PASSPORT ID_CARD"`
	DocumentNumber string `json:"document_number" validate:"required"`
	Nationality    string `json:"nationality" validate:"required"`
	SaveInfo       bool   `json:"save_info"`
}

// FormState holds the wizard's per-traveler entries, keyed by 0-based
// traveler index. Entries are created empty when the wizard enters the
// booking step; updates merge field by field and never replace a whole
// entry.
type FormState struct {
	entries []Details
}

func NewFormState(travelerCount int) *FormState {
	if travelerCount < 1 {
		travelerCount = 1
	}

	return &FormState{entries: make([]Details, travelerCount)}
}

func (f *FormState) TravelerCount() int {
	return len(f.entries)
}

func (f *FormState) Entry(index int) (Details, bool) {
	if index < 0 || index >= len(f.entries) {
		return Details{}, false
	}

	return f.entries[index], true
}

// Entries returns a copy of all entries in traveler-index order.
func (f *FormState) Entries() []Details {
	out := make([]Details, len(f.entries))
	copy(out, f.entries)

	return out
}

// Update merges the given field values into the entry at index. Fields are
// applied in a stable order; an unknown field name or an out-of-range
// index rejects the whole update.
func (f *FormState) Update(index int, fields map[string]string) error {
	if index < 0 || index >= len(f.entries) {
		return fmt.Errorf("passenger index %d out of range [0,%d)", index, len(f.entries))
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	entry := f.entries[index]
	for _, name := range names {
		if err := applyField(&entry, name, fields[name]); err != nil {
			return err
		}
	}

	f.entries[index] = entry

	return nil
}

func applyField(entry *Details, name, value string) error {
	switch name {
	case FieldFirstName:
		entry.FirstName = value
	case FieldLastName:
		entry.LastName = value
	case FieldBirthDate:
		entry.BirthDate = value
	case FieldGender:
		entry.Gender = value
	case FieldDocumentType:
		entry.DocumentType = value
	case FieldDocumentNumber:
		entry.DocumentNumber = value
	case FieldNationality:
		entry.Nationality = value
	case FieldSaveInfo:
		save, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		entry.SaveInfo = save
	default:
		return fmt.Errorf("unknown passenger field %q", name)
	}

	return nil
}
