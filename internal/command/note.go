package command

import (
	"fmt"
	"strings"

	"casetrack/internal/core"
	"casetrack/pkg/domain"
)

// AddNote appends Note to the patient at Index in the filtered list.
type AddNote struct {
	Index Index
	Note  domain.Note
}

// Execute appends the note. A zero note is rejected.
func (c AddNote) Execute(m *core.Manager) (Result, error) {
	if c.Note.IsZero() {
		return Result{}, fail(MessageEmptyNote, nil)
	}
	target, err := patientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := target.AddNote(c.Note)
	if err := m.SetPatient(target, edited); err != nil {
		return Result{}, translate(err)
	}
	return Result{
		Feedback: fmt.Sprintf(MessageAddNoteSuccess, edited.Name()),
		Patient:  edited,
		Mutated:  true,
	}, nil
}

// DeleteNote removes the note at NoteIndex from the patient at Index.
type DeleteNote struct {
	Index     Index
	NoteIndex Index
}

// Execute removes the note, failing when NoteIndex is out of range.
func (c DeleteNote) Execute(m *core.Manager) (Result, error) {
	target, err := patientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited, err := target.RemoveNote(c.NoteIndex.ZeroBased())
	if err != nil {
		return Result{}, translate(err)
	}
	if err := m.SetPatient(target, edited); err != nil {
		return Result{}, translate(err)
	}
	return Result{
		Feedback: fmt.Sprintf(MessageDeleteNoteSuccess, c.NoteIndex.OneBased(), edited.Name()),
		Patient:  edited,
		Mutated:  true,
	}, nil
}

// View shows every field of the patient at Index, with numbered notes.
type View struct {
	Index Index
}

// Execute describes the patient without changing the book.
func (c View) Execute(m *core.Manager) (Result, error) {
	target, err := patientAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: describe(target), Patient: target}, nil
}

func describe(p core.Patient) string {
	var b strings.Builder
	fmt.Fprintf(&b, MessageViewSuccess+"\n", p.Name())
	fmt.Fprintf(&b, "Phone: %s\nEmail: %s\nAddress: %s\n", p.Phone(), p.Email(), p.Address())
	if income, ok := p.Income(); ok {
		fmt.Fprintf(&b, "Income: %s\n", income)
	}
	if info := p.MedicalInfo(); !info.IsZero() {
		fmt.Fprintf(&b, "Medical Info: %s\n", info)
	}
	b.WriteString("Tags:")
	for _, t := range p.Tags() {
		fmt.Fprintf(&b, " [%s]", t)
	}
	b.WriteString("\n" + messageNotesHeader)
	notes := p.Notes()
	if len(notes) == 0 {
		b.WriteString(" " + messageNoNotes)
		return b.String()
	}
	for i, n := range notes {
		fmt.Fprintf(&b, "\n%d. %s", i+1, n)
	}
	return b.String()
}
